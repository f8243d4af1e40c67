// Package estimate turns a progress record and a walltime budget into an
// on-track / insufficient-time verdict.
package estimate

import (
	"github.com/sungeunbae/cascade-submit/internal/pbs"
	"github.com/sungeunbae/cascade-submit/internal/rlog"
)

// Kind classifies an estimation verdict.
type Kind int

const (
	// Completed: the run's log is terminal; no calculation needed.
	Completed Kind = iota
	// OnTrack: the projected remaining time fits in the walltime budget.
	OnTrack
	// InsufficientTime: the projection exceeds the remaining walltime.
	InsufficientTime
	// WaitingForData: the log lacks the fields needed for a projection.
	WaitingForData
	// NoWalltime: progress is known but the scheduler supplied no usable
	// walltime data; report progress without a time verdict.
	NoWalltime
)

func (k Kind) String() string {
	switch k {
	case Completed:
		return "COMPLETED"
	case OnTrack:
		return "ON_TRACK"
	case InsufficientTime:
		return "INSUFFICIENT_TIME"
	case WaitingForData:
		return "WAITING_FOR_DATA"
	case NoWalltime:
		return "NO_WALLTIME"
	default:
		return "UNKNOWN"
	}
}

// Verdict is the outcome of one estimation. Numeric fields are only
// meaningful for the kinds that compute them.
type Verdict struct {
	Kind Kind

	TotalSteps int     // planned steps (OnTrack/InsufficientTime/NoWalltime)
	Step       int     // current step
	Percent    float64 // progress percentage

	SecPerStep        float64 // observed throughput
	RemainingEstSec   float64 // projected seconds to finish
	WalltimeRemainSec float64 // scheduler walltime left (OnTrack/InsufficientTime)

	// BufferHours is the signed margin between the walltime budget and the
	// projection: positive when on track, negative by the shortfall.
	BufferHours float64
}

// Estimate produces a verdict for one job.
//
// A terminal log short-circuits to Completed. A projection needs the total
// step count, a positive current step, and the cumulative CPU time; with
// any of them missing the verdict is WaitingForData rather than an error.
// The walltime side prefers a directly reported remaining value over
// limit minus used; with no walltime data at all the verdict reports
// progress only.
func Estimate(rec *rlog.ProgressRecord, budget pbs.Budget) Verdict {
	if rec == nil {
		return Verdict{Kind: WaitingForData}
	}
	if rec.Terminal {
		return Verdict{Kind: Completed}
	}
	if rec.TotalSteps == nil || rec.Step == nil || rec.CPUSec == nil || *rec.Step <= 0 {
		return Verdict{Kind: WaitingForData}
	}

	total := *rec.TotalSteps
	step := *rec.Step
	cpu := *rec.CPUSec

	secPerStep := cpu / float64(step)
	remainingEst := float64(total-step) * secPerStep
	percent := float64(step) / float64(total) * 100.0

	v := Verdict{
		TotalSteps:      total,
		Step:            step,
		Percent:         percent,
		SecPerStep:      secPerStep,
		RemainingEstSec: remainingEst,
	}

	walltimeRemain, ok := budget.Remaining()
	if !ok {
		v.Kind = NoWalltime
		return v
	}

	v.WalltimeRemainSec = float64(walltimeRemain)
	v.BufferHours = (v.WalltimeRemainSec - remainingEst) / 3600.0
	if remainingEst < v.WalltimeRemainSec {
		v.Kind = OnTrack
	} else {
		v.Kind = InsufficientTime
	}
	return v
}
