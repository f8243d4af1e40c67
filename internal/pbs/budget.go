package pbs

import (
	"strconv"
	"strings"

	"github.com/sungeunbae/cascade-submit/internal/utils"
)

// Budget is the walltime accounting for one job: the scheduler-enforced
// limit, how much of it has been consumed, and (on schedulers that report
// it) the remaining seconds directly.
type Budget struct {
	LimitSec     int64  // Resource_List.walltime, 0 when absent or malformed
	UsedSec      int64  // resources_used.walltime, 0 when absent or malformed
	RemainingSec *int64 // Walltime.Remaining, nil unless reported and numeric
}

// Budget extracts the walltime accounting from a job record.
func (r Record) Budget() Budget {
	var b Budget

	if v, ok := r.Get(KeyWalltimeLimit); ok {
		b.LimitSec = utils.ParseWalltime(v)
	}
	if v, ok := r.Get(KeyWalltimeUsed); ok {
		b.UsedSec = utils.ParseWalltime(v)
	}

	// Walltime.Remaining is already in seconds. Only trust it when the
	// field is purely numeric; some PBS builds stuff diagnostics in here.
	if v, ok := r.Get(KeyWalltimeRemaining); ok {
		v = strings.TrimSpace(v)
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			b.RemainingSec = &n
		}
	}
	return b
}

// Remaining returns the remaining walltime in seconds. A directly reported
// value wins; otherwise it is derived as limit - used. The second return is
// false when the scheduler supplied no usable walltime data at all.
func (b Budget) Remaining() (int64, bool) {
	if b.RemainingSec != nil {
		return *b.RemainingSec, true
	}
	if b.LimitSec > 0 {
		rem := b.LimitSec - b.UsedSec
		if rem < 0 {
			rem = 0
		}
		return rem, true
	}
	return 0, false
}
