package rlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungeunbae/cascade-submit/internal/config"
)

func TestMain(m *testing.M) {
	config.LoadDefaults()
	os.Exit(m.Run())
}

// writeRlog places a progress log in dir's LF/Rlog with the given mtime.
func writeRlog(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	logDir := filepath.Join(dir, config.Global.RlogSubdir)
	require.NoError(t, os.MkdirAll(logDir, 0755))
	path := filepath.Join(logDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

const runningRlog = `emod3d-mpi v3.0.8
model parameters: nx=512 ny=512 nz=256 nt=12000
restart disabled
   500   1800.25   0.994
`

const finishedRlog = `model parameters: nt=12000
 12000  43200.00  0.991
PROGRAM emod3d-mpi IS FINISHED
`

func TestReadRunningLog(t *testing.T) {
	dir := t.TempDir()
	writeRlog(t, dir, "f_REL01.rlog", runningRlog, time.Now())

	rec, err := Read(dir)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.False(t, rec.Terminal)
	require.NotNil(t, rec.TotalSteps)
	assert.Equal(t, 12000, *rec.TotalSteps)
	require.NotNil(t, rec.Step)
	assert.Equal(t, 500, *rec.Step)
	require.NotNil(t, rec.CPUSec)
	assert.InDelta(t, 1800.25, *rec.CPUSec, 1e-9)
}

func TestReadFinishedLog(t *testing.T) {
	dir := t.TempDir()
	writeRlog(t, dir, "f_REL01.rlog", finishedRlog, time.Now())

	rec, err := Read(dir)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.Terminal)
}

func TestTerminalDecidedByLastLineOnly(t *testing.T) {
	// A completion token mid-file (an echoed banner from a previous
	// restart) does not make the run terminal.
	lines := []string{
		"nt=1000",
		"PROGRAM emod3d-mpi IS FINISHED",
		"  10   36.0  0.99",
	}
	rec := Parse(lines)
	assert.False(t, rec.Terminal)
	require.NotNil(t, rec.Step)
	assert.Equal(t, 10, *rec.Step)

	// And the marker on the final line is terminal even with nt earlier.
	rec = Parse([]string{"nt=1000", "PROGRAM emod3d-mpi IS FINISHED"})
	assert.True(t, rec.Terminal)
}

func TestParseUsesFirstNtOccurrence(t *testing.T) {
	rec := Parse([]string{"nt=1000", "nt=2000", " 5  18.0"})
	require.NotNil(t, rec.TotalSteps)
	assert.Equal(t, 1000, *rec.TotalSteps)
}

func TestParseSanitizesNumericColumns(t *testing.T) {
	rec := Parse([]string{"nt=1000*", " 500,  1800.5s  junk"})
	require.NotNil(t, rec.TotalSteps)
	assert.Equal(t, 1000, *rec.TotalSteps)
	require.NotNil(t, rec.Step)
	assert.Equal(t, 500, *rec.Step)
	require.NotNil(t, rec.CPUSec)
	assert.InDelta(t, 1800.5, *rec.CPUSec, 1e-9)
}

func TestParseAbsentFieldsStayNil(t *testing.T) {
	rec := Parse([]string{"starting up", "no numbers here"})
	assert.Nil(t, rec.TotalSteps)
	assert.Nil(t, rec.Step)
	assert.Nil(t, rec.CPUSec)
	assert.False(t, rec.Terminal)
}

func TestReadNoLogReturnsNil(t *testing.T) {
	rec, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestReadPicksNewestLog(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeRlog(t, dir, "older.rlog", finishedRlog, base)
	newest := writeRlog(t, dir, "newer.rlog", runningRlog, base.Add(time.Minute))

	rec, err := Read(dir)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, newest, rec.Path)
	assert.False(t, rec.Terminal)
}

func TestReadIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, config.Global.RlogSubdir)
	require.NoError(t, os.MkdirAll(logDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "notes.txt"), []byte("x"), 0644))

	rec, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStatusClassification(t *testing.T) {
	fresh := t.TempDir()
	assert.Equal(t, StatusNew, Status(fresh))

	running := t.TempDir()
	writeRlog(t, running, "r.rlog", runningRlog, time.Now())
	assert.Equal(t, StatusInProgress, Status(running))

	done := t.TempDir()
	writeRlog(t, done, "r.rlog", finishedRlog, time.Now())
	assert.Equal(t, StatusCompleted, Status(done))
}
