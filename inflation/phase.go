package inflation

import "github.com/socialnetwork/go-inflation/common/types"

// Phase of the issuance schedule. It is derived from the era alone.
type Phase uint8

const (
	// Decaying eras mint a decaying share of the total issuance.
	Decaying Phase = iota
	// CatchUp is the single era that tops issuance up to TargetIssuance.
	CatchUp
	// Halted eras mint nothing.
	Halted
)

// PhaseAt returns the phase of the schedule in the era.
func PhaseAt(era types.EraIndex) Phase {
	switch {
	case era < CatchUpEra:
		return Decaying
	case era == CatchUpEra:
		return CatchUp
	default:
		return Halted
	}
}

func (p Phase) String() string {
	switch p {
	case Decaying:
		return "decaying"
	case CatchUp:
		return "catch-up"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}
