package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/socialnetwork/go-inflation/common/types"
	"github.com/socialnetwork/go-inflation/inflation"
	"github.com/socialnetwork/go-inflation/log"
)

func parseEra(arg string) (types.EraIndex, error) {
	era, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, log.ErrBadFlags(fmt.Errorf("parse era %q: %w", arg, err))
	}
	return types.EraIndex(era), nil
}

func payoutCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "payout ERA",
		Short: "Print the payout of a single era as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			era, err := parseEra(args[0])
			if err != nil {
				return err
			}
			app, err := newApp(c)
			if err != nil {
				return err
			}
			supply := app.Config.Projection
			payout := inflation.Payout(era, supply.TotalTokens, supply.TotalIssuance)
			app.log.Info("computed payout",
				zap.Inline(payout),
				zap.Stringer("phase", inflation.PhaseAt(era)),
			)
			return json.NewEncoder(app.out).Encode(payout)
		},
	}
	addSupplyFlags(c.Flags())
	return c
}
