package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ib-77/ropchain/internal/config"
	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/ib-77/ropchain/pkg/rop/core"
	"github.com/ib-77/ropchain/pkg/rop/lite"
	"github.com/spf13/cobra"
)

func (a *app) batchCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Validate every contact listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			head, err := a.buildChain()
			if err != nil {
				return err
			}

			contacts, err := config.LoadContacts(args[0])
			if err != nil {
				return err
			}

			ctx := a.context(cmd)
			if workers > 0 {
				ctx = core.WithWorkerOptions(ctx, workers)
			}

			reports := lite.Collect(ctx, head, contacts)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tPHONE\tRESULT")
			for _, r := range reports {
				result := r.Outcome.String()
				if !r.Processed() {
					result = "skipped"
					if rop.IsCancellationError(r.Err) {
						result = "cancelled"
					}
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Index, r.Input.Name, r.Input.Phone, result)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			s := lite.Summarize(reports)
			fmt.Fprintf(cmd.OutOrStdout(), "total=%d passed=%d failed=%d skipped=%d\n",
				s.Total, s.Passed, s.Failed, s.Skipped)

			if s.Failed > 0 || s.Skipped > 0 {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of parallel workers (overrides config)")
	return cmd
}
