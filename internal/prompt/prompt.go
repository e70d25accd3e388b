package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const (
	stepsPrompt   = "Enter N (number of steps): "
	mirrorsPrompt = "Enter how many times you want your pyramid mirrored: "
)

// Prompter asks questions on out and reads whitespace-separated answers from in.
// Several answers may arrive on one line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Prompter{in: sc, out: out}
}

// Int writes question and reads the next token as an integer.
// A token that is not an integer, or no token at all, reads as 0.
func (p *Prompter) Int(question string) (int, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return 0, fmt.Errorf("write prompt: %w", err)
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return 0, fmt.Errorf("read answer: %w", err)
		}
		return 0, nil
	}
	v, err := strconv.Atoi(p.in.Text())
	if err != nil {
		return 0, nil
	}
	return v, nil
}

// Steps asks for the step count, at least 1.
func (p *Prompter) Steps() (int, error) {
	n, err := p.Int(stepsPrompt)
	return ClampSteps(n), err
}

// Mirrors asks for the mirror pass count, at least 0.
func (p *Prompter) Mirrors() (int, error) {
	m, err := p.Int(mirrorsPrompt)
	return ClampMirrors(m), err
}

// ClampSteps coerces n <= 0 to 1.
func ClampSteps(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// ClampMirrors coerces negative counts to 0.
func ClampMirrors(m int) int {
	if m < 0 {
		return 0
	}
	return m
}
