package internal

import (
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultMinSession is the shortest run that is kept as a session. Faster
// exits are treated as accidental launches.
const DefaultMinSession = time.Second

// ExitStatus describes how a launched process ended
type ExitStatus struct {
	Code    int
	Success bool
	Desc    string
}

func (s ExitStatus) String() string {
	return s.Desc
}

// Launcher runs exe to completion and reports its exit status. An error
// means the process could not be started at all.
type Launcher func(exe string) (ExitStatus, error)

// ExecLauncher starts exe with no arguments, attached to this process's
// stdin, stdout and stderr, and blocks until it exits.
func ExecLauncher(exe string) (ExitStatus, error) {
	cmd := exec.Command(exe)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return ExitStatus{}, &LaunchError{Exe: exe, Err: err}
	}

	state := cmd.ProcessState
	return ExitStatus{
		Code:    state.ExitCode(),
		Success: state.Success(),
		Desc:    state.String(),
	}, nil
}

// Recorder launches apps and appends the measured sessions to their ledger
type Recorder struct {
	Clock       clockwork.Clock
	Launch      Launcher
	MinDuration time.Duration
}

// NewRecorder creates a recorder using the real clock and ExecLauncher
func NewRecorder(minDuration time.Duration) *Recorder {
	return &Recorder{
		Clock:       clockwork.NewRealClock(),
		Launch:      ExecLauncher,
		MinDuration: minDuration,
	}
}

// RecordResult is the outcome of one Record call
type RecordResult struct {
	Status   ExitStatus
	Session  Session
	Elapsed  time.Duration
	Recorded bool
}

// Record runs the named app and, if it ran for at least MinDuration, appends
// a session stamped with the launch time to the app in config. Config is only
// modified when Recorded is true; persisting it is left to the caller.
func (r *Recorder) Record(config *Config, name string) (RecordResult, error) {
	app, err := config.Find(name)
	if err != nil {
		return RecordResult{}, err
	}

	start := r.Clock.Now()
	LogDebug("Launching %s (%s)", app.Name, app.Exe)
	status, err := r.Launch(app.Exe)
	if err != nil {
		return RecordResult{}, err
	}
	end := r.Clock.Now()

	elapsed := end.Sub(start)
	result := RecordResult{
		Status:  status,
		Elapsed: elapsed,
		Session: Session{
			Timestamp: NewZoned(start),
			Duration:  SpanFromDuration(elapsed),
		},
	}

	if elapsed < r.MinDuration {
		LogDebug("Discarding %s session of %s (minimum %s)", app.Name, elapsed, r.MinDuration)
		return result, nil
	}

	app.Append(result.Session)
	result.Recorded = true
	LogDebug("Recorded %s session of %s", app.Name, elapsed)
	return result, nil
}
