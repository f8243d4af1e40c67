package pbs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQstat installs a shell script standing in for qstat.
func stubQstat(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qstat")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestNewQstatClientMissingBinary(t *testing.T) {
	_, err := NewQstatClient(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrQstatNotFound)
}

func TestNewQstatClientDirectoryRejected(t *testing.T) {
	_, err := NewQstatClient(t.TempDir())
	assert.ErrorIs(t, err, ErrQstatNotFound)
}

func TestJobFullReturnsOutput(t *testing.T) {
	bin := stubQstat(t, `echo "Job Id: $2"
echo "    job_state = R"`)
	client, err := NewQstatClient(bin)
	require.NoError(t, err)

	out, err := client.JobFull("123")
	require.NoError(t, err)
	assert.Contains(t, out, "Job Id: 123")
	assert.Contains(t, out, "job_state = R")
}

func TestJobFullUnknownJobYieldsEmpty(t *testing.T) {
	// qstat exits non-zero for purged jobs; that is empty metadata, not
	// an error.
	bin := stubQstat(t, `echo "qstat: Unknown Job Id $2" >&2
exit 1`)
	client, err := NewQstatClient(bin)
	require.NoError(t, err)

	out, err := client.JobFull("999")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestArrayListingPassesContainerID(t *testing.T) {
	bin := stubQstat(t, `echo "args: $1 $2"`)
	client, err := NewQstatClient(bin)
	require.NoError(t, err)

	out, err := client.ArrayListing("500[]")
	require.NoError(t, err)
	assert.Contains(t, out, "args: -t 500[]")
}
