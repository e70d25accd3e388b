package scene

import (
	"stepped-pyramid/internal/flycam"
	"stepped-pyramid/internal/pyramid"
	"stepped-pyramid/internal/viewerconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	uprightColor  = rl.Red
	invertedColor = rl.Blue
	wireColor     = rl.White
)

// Scene owns the viewer camera and the read-only step sequence it draws.
// Based on raylib examples/core/core_3d_camera_free.
type Scene struct {
	Camera     rl.Camera3D
	Speed      float32
	Grid       viewerconfig.Grid
	steps      []pyramid.Step
	cursorDone bool
}

// New returns a scene with a perspective camera set up from cam, looking at cam.Target with +Y up.
func New(cam viewerconfig.Camera, grid viewerconfig.Grid, steps []pyramid.Step) *Scene {
	s := &Scene{Speed: cam.Speed, Grid: grid, steps: steps}
	s.Camera.Position = toVector3(cam.Position)
	s.Camera.Target = toVector3(cam.Target)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cam.Fovy
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// StepCount returns how many boxes the scene draws.
func (s *Scene) StepCount() int {
	return len(s.steps)
}

// Update runs once per frame: raylib's free camera (mouse look, WASD), then the arrow keys
// and Q/E nudge the camera position by Speed. The cursor is captured on the first frame.
func (s *Scene) Update() {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)

	keys := flycam.Keys{
		Right:   rl.IsKeyDown(rl.KeyRight),
		Left:    rl.IsKeyDown(rl.KeyLeft),
		Forward: rl.IsKeyDown(rl.KeyUp),
		Back:    rl.IsKeyDown(rl.KeyDown),
		Up:      rl.IsKeyDown(rl.KeyQ),
		Down:    rl.IsKeyDown(rl.KeyE),
	}
	s.Camera.Position = toVector3(flycam.Move(fromVector3(s.Camera.Position), keys, s.Speed))
}

// Draw renders the grid and every step as a filled box with a white outline.
// Call after ClearBackground and before any 2D overlay.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	rl.DrawGrid(s.Grid.Slices, s.Grid.Spacing)
	for _, st := range s.steps {
		center := toVector3(st.Center())
		size := st.Size()
		rl.DrawCube(center, size[0], size[1], size[2], stepColor(st))
		rl.DrawCubeWires(center, size[0], size[1], size[2], wireColor)
	}
	rl.EndMode3D()
}

func stepColor(st pyramid.Step) rl.Color {
	if st.Inverted {
		return invertedColor
	}
	return uprightColor
}

func toVector3(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func fromVector3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
