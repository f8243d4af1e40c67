package pbs

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sungeunbae/cascade-submit/internal/utils"
)

// Client issues queries to the job scheduler and returns its raw text output.
// Resolution logic never shells out directly; tests inject a fake returning
// canned listings.
type Client interface {
	// JobFull returns the full attribute dump for one job (qstat -f <id>).
	// An unknown or purged job yields empty output and a nil error: the
	// scheduler forgetting a job is an expected condition, not a failure.
	JobFull(jobID string) (string, error)

	// ArrayListing returns the per-member listing for an array container
	// (qstat -t <id>). Unknown containers yield empty output.
	ArrayListing(containerID string) (string, error)
}

// QstatClient is the exec-backed Client talking to a real PBS installation.
type QstatClient struct {
	qstatBin string
}

// NewQstatClient creates a client using qstat from PATH, or the explicit
// binary when qstatBin is non-empty.
func NewQstatClient(qstatBin string) (*QstatClient, error) {
	binPath := qstatBin
	if binPath == "" {
		var err error
		binPath, err = exec.LookPath("qstat")
		if err != nil {
			return nil, ErrQstatNotFound
		}
	} else {
		if absPath, err := filepath.Abs(binPath); err == nil {
			binPath = absPath
		}
		info, err := os.Stat(binPath)
		if err != nil {
			return nil, ErrQstatNotFound
		}
		if info.IsDir() {
			return nil, ErrQstatNotFound
		}
	}
	return &QstatClient{qstatBin: binPath}, nil
}

// JobFull runs `qstat -f <jobID>`.
func (c *QstatClient) JobFull(jobID string) (string, error) {
	return c.run("-f", jobID)
}

// ArrayListing runs `qstat -t <containerID>`.
func (c *QstatClient) ArrayListing(containerID string) (string, error) {
	return c.run("-t", containerID)
}

func (c *QstatClient) run(args ...string) (string, error) {
	cmd := exec.Command(c.qstatBin, args...)
	utils.PrintDebug("Executing: %s %s", c.qstatBin, strings.Join(args, " "))

	output, err := cmd.Output()
	if err != nil {
		// qstat exits non-zero for unknown job ids ("Unknown Job Id").
		// That is the scheduler's way of saying the job was purged from
		// history, which callers treat as empty metadata.
		if ee, ok := err.(*exec.ExitError); ok {
			utils.PrintDebug("qstat exited non-zero: %s", strings.TrimSpace(string(ee.Stderr)))
			return "", nil
		}
		return "", NewQueryError(c.qstatBin+" "+strings.Join(args, " "), string(output), err)
	}
	return string(output), nil
}
