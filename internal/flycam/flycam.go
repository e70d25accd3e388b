// Package flycam holds the keyboard translation applied to the viewer camera each frame.
// It has no raylib dependency so the movement rules can be tested without a window.
package flycam

// Keys is the set of movement keys held down this frame.
type Keys struct {
	Right, Left   bool // +X / -X
	Forward, Back bool // -Z / +Z (arrow up / arrow down)
	Up, Down      bool // +Y / -Y (Q / E)
}

// Move returns pos shifted by speed along every axis whose key is held.
// Opposite keys held together cancel out.
func Move(pos [3]float32, k Keys, speed float32) [3]float32 {
	if k.Right {
		pos[0] += speed
	}
	if k.Left {
		pos[0] -= speed
	}
	if k.Forward {
		pos[2] -= speed
	}
	if k.Back {
		pos[2] += speed
	}
	if k.Up {
		pos[1] += speed
	}
	if k.Down {
		pos[1] -= speed
	}
	return pos
}
