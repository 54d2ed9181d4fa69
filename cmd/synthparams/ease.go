package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/params"
)

var easeSteps int

var easeCmd = &cobra.Command{
	Use:   "ease [parameter ...]",
	Short: "Tabulate knob curves",
	Long: `Sweep each named parameter from raw 0 to 1 and print the eased value.

Names match case-insensitively on any part of the display name:
  synthparams ease "master" "coarse" --steps 5`,
	RunE: runEase,
}

func init() {
	easeCmd.Flags().IntVar(&easeSteps, "steps", 11, "raw positions per parameter")
}

func runEase(cmd *cobra.Command, args []string) error {
	ids, err := selectIDs(args)
	if err != nil {
		return err
	}
	return printEase(cmd.OutOrStdout(), ids, easeSteps)
}

func printEase(w io.Writer, ids []params.ID, steps int) error {
	if steps < 1 {
		steps = 1
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Parameter\tRaw\tValue\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------\t---\t-----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, id := range ids {
		for i := 0; i < steps; i++ {
			r := 0.0
			if steps > 1 {
				r = float64(i) / float64(steps-1)
			}

			raw := params.DefaultRaw()
			raw[id] = r
			p, err := params.DefaultEaser.Parameters(&raw)
			if err != nil {
				return err
			}
			value, unit, err := p.Strings(id)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(tw, "%s\t%.3f\t%s%s\n", id, r, value, unit); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	return tw.Flush()
}
