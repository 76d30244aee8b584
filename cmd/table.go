package cmd

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/socialnetwork/go-inflation/common/types"
	"github.com/socialnetwork/go-inflation/inflation"
)

// computeTable computes the payout of every era concurrently. Payouts are
// returned in the order of eras.
func computeTable(c *cobra.Command, app *App, eras []types.EraIndex) ([]types.Payout, error) {
	supply := app.Config.Projection
	payouts := make([]types.Payout, len(eras))
	eg, ctx := errgroup.WithContext(c.Context())
	eg.SetLimit(runtime.NumCPU())
	for i, era := range eras {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			payouts[i] = inflation.Payout(era, supply.TotalTokens, supply.TotalIssuance)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return payouts, nil
}

func tableCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "table ERA...",
		Short: "Print the payouts of several eras as a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			eras := make([]types.EraIndex, 0, len(args))
			for _, arg := range args {
				era, err := parseEra(arg)
				if err != nil {
					return err
				}
				eras = append(eras, era)
			}
			app, err := newApp(c)
			if err != nil {
				return err
			}
			payouts, err := computeTable(c, app, eras)
			if err != nil {
				return err
			}
			app.log.Debug("computed table", zap.Int("eras", len(payouts)))

			w := tabwriter.NewWriter(app.out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "ERA\tPHASE\tSTAKER\tMAXIMUM\tTREASURY\t")
			for _, payout := range payouts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
					payout.Era, inflation.PhaseAt(payout.Era), payout.Staker, payout.Maximum, payout.Treasury())
			}
			return w.Flush()
		},
	}
	addSupplyFlags(c.Flags())
	return c
}
