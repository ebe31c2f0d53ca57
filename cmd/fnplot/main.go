package main

import (
	rootcmd "github.com/philipparndt/gofnplot/cmd"
)

var rootCmd, options = rootcmd.NewRootCommand(
	"fnplot",
	"Inspect function plots from the command line",
	`fnplot computes the same frame as the plot windows without opening one.
It lists the supported function families and prints the intersections of the
visible curves for a given set of parameters.`,
)

func main() {
	rootcmd.Execute(rootCmd)
}
