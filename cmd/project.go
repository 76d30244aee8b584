package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/socialnetwork/go-inflation/codec"
	"github.com/socialnetwork/go-inflation/common/types"
	"github.com/socialnetwork/go-inflation/common/util"
	"github.com/socialnetwork/go-inflation/log"
	"github.com/socialnetwork/go-inflation/metrics"
	"github.com/socialnetwork/go-inflation/projection"
)

// Encodings of the project command output.
const (
	EncodingJSON    = "json"
	EncodingSCALE   = "scale"
	EncodingSummary = "summary"
)

// Summary is the result of a projection without the records.
type Summary struct {
	Eras            uint32      `json:"eras"`
	FinalIssuance   json.Number `json:"final_issuance"`
	StakerTotal     json.Number `json:"staker_total"`
	TreasuryTotal   json.Number `json:"treasury_total"`
	NominalIssuance string      `json:"nominal_issuance"`
	Drift           string      `json:"drift"`
}

func newSummary(result *projection.Result) Summary {
	return Summary{
		Eras:            result.Eras,
		FinalIssuance:   json.Number(result.FinalIssuance.String()),
		StakerTotal:     json.Number(result.StakerTotal.String()),
		TreasuryTotal:   json.Number(result.TreasuryTotal.String()),
		NominalIssuance: result.NominalIssuance.Text('f', 6),
		Drift:           result.Drift().Text('f', 6),
	}
}

// newSink writes every payout on its own line.
func newSink(w io.Writer, encoding string) (projection.Sink, error) {
	switch encoding {
	case EncodingJSON:
		enc := json.NewEncoder(w)
		return func(p types.Payout) error {
			return enc.Encode(p)
		}, nil
	case EncodingSCALE:
		return func(p types.Payout) error {
			buf, err := codec.Encode(&p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, util.Encode(buf))
			return err
		}, nil
	case EncodingSummary:
		return func(types.Payout) error { return nil }, nil
	default:
		return nil, log.ErrBadFlags(fmt.Errorf("unknown encoding %q", encoding))
	}
}

func projectCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "project",
		Short: "Project the issuance over a range of eras",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			encoding, err := c.Flags().GetString("encoding")
			if err != nil {
				return log.ErrBadFlags(err)
			}
			output, err := c.Flags().GetString("output")
			if err != nil {
				return log.ErrBadFlags(err)
			}
			app, err := newApp(c)
			if err != nil {
				return err
			}
			var (
				buf bytes.Buffer
				out = app.out
			)
			if output != "" {
				out = &buf
			}
			sink, err := newSink(out, encoding)
			if err != nil {
				return err
			}
			projector := projection.New(app.Config.Projection,
				projection.WithLogger(app.projectionLog),
				projection.WithSink(sink),
			)
			result, err := projector.Run(c.Context())
			if err != nil {
				return fmt.Errorf("project: %w", err)
			}
			if encoding == EncodingSummary {
				if err := json.NewEncoder(out).Encode(newSummary(result)); err != nil {
					return err
				}
			}
			if output != "" {
				size := buf.Len()
				if err := atomic.WriteFile(output, &buf); err != nil {
					return fmt.Errorf("write projection: %w", err)
				}
				app.log.Info("wrote projection", zap.String("path", output), zap.Int("bytes", size))
			}
			if !app.Config.Metrics.Enabled() {
				return nil
			}
			scenario := app.Config.Preset
			if scenario == "" {
				scenario = "custom"
			}
			if err := metrics.Push(c.Context(), app.log, app.Config.Metrics, map[string]string{"scenario": scenario}); err != nil {
				app.log.Error("failed to push metrics", zap.Error(err))
				return err
			}
			app.log.Info("pushed metrics", zap.String("url", app.Config.Metrics.URL))
			return nil
		},
	}
	flags := c.Flags()
	addSupplyFlags(flags)
	flags.Uint32("from", 0, "first projected era")
	flags.Uint32("to", 0, "era after the last projected one")
	flags.Bool("compound", false, "add every payout to the issuance of the next era")
	flags.String("encoding", EncodingJSON,
		fmt.Sprintf("output encoding, one of %s, %s, %s", EncodingJSON, EncodingSCALE, EncodingSummary))
	flags.StringP("output", "o", "", "write the output to a file instead of stdout, replacing it atomically")
	flags.String("push-url", "", "pushgateway to send metrics to after the projection")
	flags.String("push-job", "", "pushgateway job name")
	return c
}
