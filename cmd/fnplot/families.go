package main

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/spf13/cobra"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the supported function families",
	Args:  cobra.NoArgs,
	RunE:  runFamilies,
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}

func runFamilies(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-3s %-10s %-26s %s\n", "Key", "Family", "Formula", "Parameters")
	for i, f := range curve.Families {
		slots := make([]string, 0, len(f.Slots()))
		for _, slot := range f.Slots() {
			lo, hi := slot.Range()
			slots = append(slots, fmt.Sprintf("%s [%g, %g]", slot, lo, hi))
		}
		fmt.Fprintf(out, "%-3d %-10s %-26s %s\n", (i+1)%10, f, f.Formula(), strings.Join(slots, ", "))
	}
	return nil
}
