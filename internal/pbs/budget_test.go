package pbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordWith(attrs string) Record {
	return ParseJobFields(attrs)
}

func TestBudgetFromLimitAndUsed(t *testing.T) {
	rec := recordWith("    Resource_List.walltime = 12:00:00\n    resources_used.walltime = 04:00:00\n")
	b := rec.Budget()

	assert.Equal(t, int64(12*3600), b.LimitSec)
	assert.Equal(t, int64(4*3600), b.UsedSec)
	assert.Nil(t, b.RemainingSec)

	rem, ok := b.Remaining()
	require.True(t, ok)
	assert.Equal(t, int64(8*3600), rem)
}

func TestBudgetPrefersReportedRemaining(t *testing.T) {
	rec := recordWith("    Resource_List.walltime = 12:00:00\n" +
		"    resources_used.walltime = 04:00:00\n" +
		"    Walltime.Remaining = 25000\n")
	b := rec.Budget()

	require.NotNil(t, b.RemainingSec)
	rem, ok := b.Remaining()
	require.True(t, ok)
	assert.Equal(t, int64(25000), rem)
}

func TestBudgetIgnoresNonNumericRemaining(t *testing.T) {
	rec := recordWith("    Resource_List.walltime = 01:00:00\n" +
		"    Walltime.Remaining = 25000 (estimated)\n")
	b := rec.Budget()

	assert.Nil(t, b.RemainingSec)
	rem, ok := b.Remaining()
	require.True(t, ok)
	assert.Equal(t, int64(3600), rem)
}

func TestBudgetMalformedWalltimeParsesToZero(t *testing.T) {
	rec := recordWith("    Resource_List.walltime = twelve hours\n")
	b := rec.Budget()
	assert.Equal(t, int64(0), b.LimitSec)

	_, ok := b.Remaining()
	assert.False(t, ok)
}

func TestBudgetUsedExceedingLimitClampsToZero(t *testing.T) {
	rec := recordWith("    Resource_List.walltime = 01:00:00\n    resources_used.walltime = 01:30:00\n")
	rem, ok := rec.Budget().Remaining()
	require.True(t, ok)
	assert.Equal(t, int64(0), rem)
}

func TestBudgetNoWalltimeData(t *testing.T) {
	_, ok := recordWith("    job_state = R\n").Budget().Remaining()
	assert.False(t, ok)
}
