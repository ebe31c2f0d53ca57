package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gofnplot/pkg/analysis"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/render"
	"github.com/philipparndt/gofnplot/pkg/scene"
	"github.com/spf13/cobra"
)

var (
	pointer    []int
	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Print the intersections of the visible curves",
		Long: `Build the scene from the environment, the preset and the flags, run one
render pass and print the detected intersections and conic anchors.

  fnplot inspect --show sin,parabola --set sin.a=0 --set parabola.a=0 \
      --set parabola.b=0 --set parabola.c=0`,
		Args: cobra.NoArgs,
		RunE: runInspect,
	}
)

func init() {
	inspectCmd.Flags().IntSliceVar(&pointer, "pointer", nil, "hit-test a pointer position x,y")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := options.BuildScene()
	if err != nil {
		return err
	}

	if len(pointer) != 0 {
		if len(pointer) != 2 {
			return fmt.Errorf("--pointer expects x,y, got %v", pointer)
		}
		s.PointerMove(pointer[0], pointer[1])
	}

	rec := render.NewRecorder()
	frame := render.Scene(rec, s)

	printInspection(cmd.OutOrStdout(), s, frame, rec)
	return nil
}

func printInspection(out io.Writer, s *scene.Scene, frame scene.Frame, rec *render.Recorder) {
	vp := frame.Viewport

	fmt.Fprintln(out, "Scene")
	fmt.Fprintln(out, "=====")
	fmt.Fprintf(out, "Viewport: %dx%d px, scale %.4g px/unit\n", vp.Width, vp.Height, vp.Scale)
	fmt.Fprintf(out, "Visible x range: [%.2f, %.2f]\n\n", vp.ScreenXToWorldX(0), vp.ScreenXToWorldX(vp.Width-1))

	fmt.Fprintln(out, "Families:")
	visible := s.VisibleFamilies()
	if len(visible) == 0 {
		fmt.Fprintln(out, "  (none visible)")
	}
	for _, f := range visible {
		fmt.Fprintf(out, "  %-10s %s%s\n", f, formatParams(f, s.Params(f)), segmentSummary(f, rec))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Intersections: %d\n", len(frame.Intersections))
	for i, p := range frame.Intersections {
		fmt.Fprintf(out, "  %3d  %s  pixel (%d, %d)\n", i+1, render.Readout(p.World), p.Pixel.X, p.Pixel.Y)
	}

	if anchors := frame.Anchors(); len(anchors) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Conic anchors:")
		for i, a := range anchors {
			fmt.Fprintf(out, "  %-10s pixel (%d, %d)\n", frame.Shapes[i].Family, a.X, a.Y)
		}
	}

	if frame.Hovered != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Hovered: %s\n", describeHover(frame.Hovered.Point, frame.Hovered.Pointer))
	} else if len(pointer) == 2 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Hovered: nothing within %d px of (%d, %d)\n", analysis.HoverTolerance, pointer[0], pointer[1])
	}
}

func formatParams(f curve.Family, p curve.Params) string {
	text := ""
	for _, slot := range f.Slots() {
		v, _ := p.Get(slot)
		text += fmt.Sprintf("%s=%g ", slot, v)
	}
	return text
}

func segmentSummary(f curve.Family, rec *render.Recorder) string {
	if f.IsConic() {
		return "(oval)"
	}
	return fmt.Sprintf("(%d segments)", len(rec.LinesColored(render.Color(f))))
}

func describeHover(p analysis.IntersectionPoint, at geometry.Pixel) string {
	return fmt.Sprintf("%s at pixel (%d, %d), pointer (%d, %d)", render.Readout(p.World), p.Pixel.X, p.Pixel.Y, at.X, at.Y)
}
