package main

import (
	rootcmd "github.com/philipparndt/gofnplot/cmd"
	"github.com/philipparndt/gofnplot/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd, options = rootcmd.NewRootCommand(
	"fnplot-raylib",
	"GPU accelerated function plotter",
	`Plot the supported function families in a raylib window. Keys 1-0 toggle
the families, Tab selects a family, S selects a parameter and the arrow keys
change it. Press H for the full key list.`,
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

		return app.Run(s, app.Options{
			Title:   "fnplot - raylib",
			Presets: updates,
		})
	}
}

func main() {
	rootcmd.Execute(rootCmd)
}
