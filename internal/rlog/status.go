package rlog

// RunStatus classifies a simulation run directory by its progress log.
type RunStatus string

const (
	StatusNew        RunStatus = "NEW"         // no progress log yet
	StatusInProgress RunStatus = "IN_PROGRESS" // log present, not terminal
	StatusCompleted  RunStatus = "COMPLETED"   // latest log ends with the finished marker
)

// Status classifies the run in dir. Unreadable logs count as IN_PROGRESS:
// a log that exists but cannot be read is evidence of a run, not of a
// fresh directory.
func Status(dir string) RunStatus {
	rec, err := Read(dir)
	if err != nil {
		return StatusInProgress
	}
	if rec == nil {
		return StatusNew
	}
	if rec.Terminal {
		return StatusCompleted
	}
	return StatusInProgress
}
