package main

import (
	rootcmd "github.com/philipparndt/gofnplot/cmd"
	"github.com/philipparndt/gofnplot/internal/window"
	"github.com/spf13/cobra"
)

var rootCmd, options = rootcmd.NewRootCommand(
	"fnplot-ebiten",
	"Software rendered function plotter",
	`Plot the supported function families with the software rasterizer and
present the frames in an ebiten window. The keys match fnplot-raylib.`,
)

func init() {
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := options.BuildScene()
		if err != nil {
			return err
		}

		updates, closer, err := options.FollowPreset()
		if err != nil {
			return err
		}
		defer closer.Close()

		return window.Run(s, window.Options{
			Title:   "fnplot - ebiten",
			Presets: updates,
		})
	}
}

func main() {
	rootcmd.Execute(rootCmd)
}
