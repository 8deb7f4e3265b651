package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Input samples the keyboard each frame and turns it into a FrameInput.
// Edge keys report true only on the frame the key went down.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) justPressed(w *glfw.Window, key glfw.Key) bool {
	down := w.GetKey(key) == glfw.Press
	was := in.prevKeys[key]
	in.prevKeys[key] = down
	return down && !was
}

func held(w *glfw.Window, key glfw.Key) bool {
	return w.GetKey(key) == glfw.Press
}

func (in *Input) ReadFrame(w *glfw.Window) FrameInput {
	return FrameInput{
		Left:  held(w, glfw.KeyLeft) || held(w, glfw.KeyA),
		Right: held(w, glfw.KeyRight) || held(w, glfw.KeyD),
		Fire:  held(w, glfw.KeySpace),

		Confirm:     in.justPressed(w, glfw.KeyEnter),
		Pause:       in.justPressed(w, glfw.KeyP),
		Back:        in.justPressed(w, glfw.KeyEscape),
		ToggleSound: in.justPressed(w, glfw.KeyS),

		DebugDump:      in.justPressed(w, glfw.KeyF1),
		DebugGod:       in.justPressed(w, glfw.KeyF2),
		DebugClearWave: in.justPressed(w, glfw.KeyF3),
	}
}
