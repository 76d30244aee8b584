// Package projection replays the issuance schedule over a range of eras the
// way the accounting layer applies it, and reports the minted totals.
package projection

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"lukechampine.com/uint128"

	"github.com/socialnetwork/go-inflation/common/types"
	"github.com/socialnetwork/go-inflation/inflation"
)

// ErrInvalidRange is returned if the first era is after the last one.
var ErrInvalidRange = errors.New("invalid era range")

const (
	// the context is checked once per this many eras.
	checkInterval = 1024
	// number of starting eras whose nominal decay is kept by a Projector.
	decayCacheSize = 64
)

// Sink receives every projected payout in era order.
type Sink func(types.Payout) error

// Result of a projection.
type Result struct {
	// Records holds every payout, unless a sink was configured.
	Records       []types.Payout
	Eras          uint32
	FinalIssuance uint128.Uint128
	StakerTotal   uint128.Uint128
	TreasuryTotal uint128.Uint128
	// NominalIssuance is FinalIssuance computed without rounding.
	NominalIssuance *big.Float
}

// Drift returns FinalIssuance - NominalIssuance.
func (r *Result) Drift() *big.Float {
	drift := amountFloat(r.FinalIssuance)
	return drift.Sub(drift, r.NominalIssuance)
}

// Opt is for configuring Projector.
type Opt func(*Projector)

// WithLogger defines logger for Projector.
func WithLogger(logger *zap.Logger) Opt {
	return func(p *Projector) {
		p.logger = logger
	}
}

// WithSink streams payouts to the sink instead of collecting them in Result.Records.
func WithSink(sink Sink) Opt {
	return func(p *Projector) {
		p.sink = sink
	}
}

// Projector applies the payout of every era in a range to a supply snapshot.
type Projector struct {
	logger *zap.Logger
	cfg    Config
	sink   Sink
	// nominal decay at the first era of a run, computed with bigfloat.Pow.
	decays *lru.Cache[types.EraIndex, *big.Float]
}

// New creates a Projector.
func New(cfg Config, opts ...Opt) *Projector {
	p := &Projector{
		logger: zap.NewNop(),
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(p)
	}
	decays, err := lru.New[types.EraIndex, *big.Float](decayCacheSize)
	if err != nil {
		p.logger.Fatal("failed to create lru cache for nominal decay", zap.Error(err))
	}
	p.decays = decays
	return p
}

// startDecay returns a copy of the nominal decay at era that the caller may mutate.
func (p *Projector) startDecay(era types.EraIndex) *big.Float {
	decay, ok := p.decays.Get(era)
	if !ok {
		decay = nominalDecay(era)
		p.decays.Add(era, decay)
	}
	return newFloat().Copy(decay)
}

// Run projects eras [From, To).
func (p *Projector) Run(ctx context.Context) (*Result, error) {
	if p.cfg.To < p.cfg.From {
		return nil, fmt.Errorf("%w: from %d to %d", ErrInvalidRange, p.cfg.From, p.cfg.To)
	}
	var (
		schedule = inflation.NewSchedule(p.cfg.From)
		issuance = p.cfg.TotalIssuance
		decay    = p.startDecay(p.cfg.From)
		base     = perbillFloat(inflation.DecayBase())
		initial  = amountFloat(p.cfg.TotalIssuance)
		nominal  = amountFloat(p.cfg.TotalIssuance)
		target   = amountFloat(uint128.From64(inflation.TargetIssuance))
		result   = &Result{}
	)
	p.logger.Info("projecting issuance",
		zap.Uint32("from", p.cfg.From.Uint32()),
		zap.Uint32("to", p.cfg.To.Uint32()),
		zap.Stringer("total_tokens", p.cfg.TotalTokens),
		zap.Stringer("total_issuance", p.cfg.TotalIssuance),
		zap.Bool("compound", p.cfg.Compound),
	)
	for era := p.cfg.From; era < p.cfg.To; era++ {
		if era.Difference(p.cfg.From)%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		input, nominalInput := p.cfg.TotalIssuance, initial
		if p.cfg.Compound {
			input, nominalInput = issuance, nominal
		}
		phase := inflation.PhaseAt(era)
		payout := schedule.Next(p.cfg.TotalTokens, input)

		issuance = types.SaturatingAdd(issuance, payout.Maximum)
		result.StakerTotal = types.SaturatingAdd(result.StakerTotal, payout.Staker)
		result.TreasuryTotal = types.SaturatingAdd(result.TreasuryTotal, payout.Treasury())
		result.Eras++

		switch phase {
		case inflation.Decaying:
			nominal.Add(nominal, nominalDecaying(decay, nominalInput))
			decay.Mul(decay, base)
		case inflation.CatchUp:
			if gap := newFloat().Sub(target, nominalInput); gap.Sign() > 0 {
				nominal.Add(nominal, gap)
			}
			p.logger.Info("catch-up mint", zap.Inline(payout))
		}

		p.logger.Debug("era payout", zap.Inline(payout), zap.Stringer("phase", phase))
		recordPayout(phase, payout)
		if p.sink != nil {
			if err := p.sink(payout); err != nil {
				return nil, fmt.Errorf("sink payout for era %d: %w", era, err)
			}
		} else {
			result.Records = append(result.Records, payout)
		}
	}
	result.FinalIssuance = issuance
	result.NominalIssuance = nominal
	recordIssuance(issuance)
	p.logger.Info("projection finished",
		zap.Uint32("eras", result.Eras),
		zap.Stringer("final_issuance", result.FinalIssuance),
		zap.Stringer("staker_total", result.StakerTotal),
		zap.Stringer("treasury_total", result.TreasuryTotal),
		zap.String("drift", result.Drift().Text('f', 3)),
	)
	return result, nil
}
