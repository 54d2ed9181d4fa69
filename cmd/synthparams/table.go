package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/params"
)

var tableSets []string

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Print the host parameter table",
	Long: `Print every host-visible parameter with its raw value and display text.

Values can be set as a host would before printing:
  synthparams params --set 0=1 --set 22=0.3125`,
	Args: cobra.NoArgs,
	RunE: runParams,
}

func init() {
	paramsCmd.Flags().StringArrayVar(&tableSets, "set", nil, "host write index=raw (repeatable)")
}

func runParams(cmd *cobra.Command, _ []string) error {
	changes := make(chan params.Change, len(tableSets))
	store := params.NewStore(
		params.WithLoggerFactory(logFactory),
		params.WithChanges(changes),
	)

	for _, s := range tableSets {
		index, raw, err := parseAssignment(s)
		if err != nil {
			return err
		}
		if err := store.SetFromHost(index, raw); err != nil {
			return err
		}
	}
	close(changes)
	for c := range changes {
		log.Infof("%s = %.4f", c.ID, c.Value)
	}

	return printTable(cmd.OutOrStdout(), store)
}

func printTable(w io.Writer, store *params.Store) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Index\tName\tRaw\tValue\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t---\t-----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < params.NumHostParams; i++ {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.4f\t%s%s\n",
			i,
			store.ParameterName(i),
			store.Parameter(i),
			store.Text(i),
			store.Label(i),
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
