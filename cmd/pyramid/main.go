package main

import (
	"fmt"
	"os"

	"stepped-pyramid/internal/debug"
	"stepped-pyramid/internal/env"
	"stepped-pyramid/internal/graphics"
	"stepped-pyramid/internal/logger"
	"stepped-pyramid/internal/prompt"
	"stepped-pyramid/internal/pyramid"
	"stepped-pyramid/internal/scene"
	"stepped-pyramid/internal/triad"
	"stepped-pyramid/internal/viewerconfig"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if _, err := env.Load(env.DefaultPath); err != nil {
		return err
	}
	prefs, err := viewerconfig.Load()
	if err != nil {
		return err
	}
	log := logger.New("")

	in := prompt.New(os.Stdin, os.Stdout)
	n, err := in.Steps()
	if err != nil {
		return err
	}
	tr := triad.Generate(n, triad.NewRand(prefs.Seed))
	mirrors, err := in.Mirrors()
	if err != nil {
		return err
	}

	stepHeight, baseSide := tr.StepHeight(), tr.BaseSide()
	steps := pyramid.New(n, mirrors, baseSide, stepHeight)
	log.Logf("seed=%d steps=%d mirrors=%d magnitude=%g stepHeight=%g baseSide=%g boxes=%d",
		prefs.Seed, n, mirrors, tr.Magnitude, stepHeight, baseSide, len(steps))

	scn := scene.New(prefs.Camera, prefs.Grid, steps)
	overlay := debug.New(prefs.ShowFPS, scn.StepCount())
	draw := func() {
		scn.Draw()
		overlay.Draw()
	}
	graphics.Run(prefs.Window, scn.Update, draw)

	totals := pyramid.Measure(steps)
	log.Logf("perimeter=%g area=%g volume=%g", totals.Perimeter, totals.Area, totals.Volume)
	return totals.Format(os.Stdout)
}
