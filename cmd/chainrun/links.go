package main

import (
	"fmt"
	"strings"

	"github.com/ib-77/ropchain/pkg/rop/chain"
	"github.com/spf13/cobra"
)

func (a *app) linksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "Print the configured chain in traversal order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			head, err := a.buildChain()
			if err != nil {
				return err
			}

			ids, err := chain.Identifiers(head)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ids, " -> "))
			return nil
		},
	}
}
