package command

import (
	"log/slog"
	"strings"
)

// FailurePolicy decides what a failing step does to the sequence it belongs to.
type FailurePolicy int

const (
	// Abort stops the sequence and returns the error.
	Abort FailurePolicy = iota
	// Continue logs the error and moves on to the next step.
	Continue
)

func (p FailurePolicy) String() string {
	switch p {
	case Abort:
		return "abort"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}

// Step is a single external command invocation.
type Step struct {
	Name    string
	Binary  string
	Args    []string
	Policy  FailurePolicy
	Capture bool
}

// Tolerated reports whether a failure of the step should be skipped over.
func (s *Step) Tolerated() bool {
	return s.Policy == Continue
}

func (s *Step) String() string {
	return strings.TrimSpace(s.Binary + " " + strings.Join(s.Args, " "))
}

// Execute runs the step. Captured output is returned with surrounding
// whitespace trimmed, uncaptured steps stream to the terminal and return "".
func (s *Step) Execute() (string, error) {
	slog.Debug("Executing step '" + s.Name + "' (on failure: " + s.Policy.String() + ")")

	cmd := NewShellCommand(s.Binary, s.Args, nil, true)
	if !s.Capture {
		return "", cmd.Run()
	}

	out, err := cmd.Output()
	return strings.TrimSpace(out), err
}
