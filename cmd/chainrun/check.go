package main

import (
	"context"
	"fmt"

	"github.com/ib-77/ropchain/pkg/contact"
	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/ib-77/ropchain/pkg/rop/chain"
	"github.com/ib-77/ropchain/pkg/rop/solo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) checkCmd() *cobra.Command {
	var c contact.Contact

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a single contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			head, err := a.buildChain()
			if err != nil {
				return err
			}

			ctx := a.context(cmd)
			res := solo.Tee(ctx, solo.Validate(ctx, c, chain.Predicate(head)),
				func(ctx context.Context, r rop.Result[contact.Contact]) {
					a.logger.Debug("contact accepted", zap.String("name", r.Result().Name))
				})

			fmt.Fprintln(cmd.OutOrStdout(), describe(ctx, res))
			if !res.IsSuccess() {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&c.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&c.Phone, "phone", "", "contact phone number (E.164)")
	return cmd
}

func describe(ctx context.Context, res rop.Result[contact.Contact]) string {
	return solo.Finally(ctx, res,
		func(_ context.Context, _ contact.Contact) string { return "ok" },
		func(_ context.Context, err error) string { return "rejected: " + err.Error() },
		func(_ context.Context, err error) string { return "cancelled: " + err.Error() },
	)
}
