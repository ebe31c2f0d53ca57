package render

import (
	"image/color"

	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

// Op identifies a recorded primitive
type Op int

const (
	OpLine Op = iota
	OpOval
	OpFillOval
	OpText
)

// Command is one recorded drawing call
type Command struct {
	Op       Op
	From, To geometry.Pixel // OpLine
	Box      geometry.Oval  // OpOval, OpFillOval
	At       geometry.Pixel // OpText
	Text     string
	Color    color.Color
	Width    float32
}

// Recorder is a Surface that keeps every call of the last frame. It backs
// headless inspection and tests.
type Recorder struct {
	Viewport viewport.Viewport
	Commands []Command
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset drops the previous frame
func (r *Recorder) Reset(vp viewport.Viewport) {
	r.Viewport = vp
	r.Commands = r.Commands[:0]
}

func (r *Recorder) Line(from, to geometry.Pixel, c color.Color, width float32) {
	r.Commands = append(r.Commands, Command{Op: OpLine, From: from, To: to, Color: c, Width: width})
}

func (r *Recorder) Oval(box geometry.Oval, c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpOval, Box: box, Color: c})
}

func (r *Recorder) FillOval(box geometry.Oval, c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillOval, Box: box, Color: c})
}

func (r *Recorder) Text(at geometry.Pixel, text string, c color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpText, At: at, Text: text, Color: c})
}

// Filter returns the commands of one kind in call order
func (r *Recorder) Filter(op Op) []Command {
	var result []Command
	for _, cmd := range r.Commands {
		if cmd.Op == op {
			result = append(result, cmd)
		}
	}
	return result
}

// LinesColored returns the recorded lines stroked with c
func (r *Recorder) LinesColored(c color.Color) []Command {
	var result []Command
	for _, cmd := range r.Filter(OpLine) {
		if sameColor(cmd.Color, c) {
			result = append(result, cmd)
		}
	}
	return result
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
