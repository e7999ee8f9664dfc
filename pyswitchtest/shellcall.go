package pyswitchtest

import (
	"pyswitch/mocks/pyswitch/system/command"
	systemCommand "pyswitch/system/command"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FakeShellCallError makes the recorder fail a call. OnCall is the 1-based
// position of the call to fail; OnArg fails every call whose arguments
// contain the given value.
type FakeShellCallError struct {
	OnCall int
	OnArg  string
	Err    error
}

func (e *FakeShellCallError) matches(call int, args []string) bool {
	if e.OnCall != 0 && e.OnCall == call {
		return true
	}
	return e.OnArg != "" && slices.Contains(args, e.OnArg)
}

type ShellCall struct {
	Binary         string
	ContainsArgs   []string
	EnvVars        []string
	InheritEnvVars bool
}

func (s *ShellCall) Equal(t *testing.T, name string, args []string, envVars []string, inheritEnvVars bool) {
	assert := assert.New(t)
	assert.Equal(s.Binary, name)
	for _, arg := range s.ContainsArgs {
		assert.Contains(args, arg)
	}
	for _, v := range s.EnvVars {
		assert.Contains(envVars, v)
	}
	assert.Equal(s.InheritEnvVars, inheritEnvVars)
}

// RecordedCall is one invocation seen by a ShellCallRecorder.
type RecordedCall struct {
	Name string
	Args []string
}

func (c RecordedCall) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// ShellCallRecorder replaces command.NewShellCommand for the duration of a
// test and records every command that would have been run.
type ShellCallRecorder struct {
	Calls   []RecordedCall
	Errors  []*FakeShellCallError
	Outputs map[string]string
}

// NewShellCallRecorder installs the recorder and restores the real
// constructor when the test finishes. Outputs maps a command line to the
// stdout returned by captured calls.
func NewShellCallRecorder(t *testing.T, outputs map[string]string, errs ...*FakeShellCallError) *ShellCallRecorder {
	r := &ShellCallRecorder{Errors: errs, Outputs: outputs}

	old := systemCommand.NewShellCommand
	t.Cleanup(func() {
		systemCommand.NewShellCommand = old
	})
	systemCommand.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) systemCommand.ShellCommandRunner {
		call := RecordedCall{Name: name, Args: args}
		r.Calls = append(r.Calls, call)

		var err error
		for _, e := range r.Errors {
			if e.matches(len(r.Calls), args) {
				err = e.Err
				break
			}
		}

		m := command.NewMockShellCommandRunner(t)
		m.EXPECT().Run().Return(err).Maybe()
		m.EXPECT().Output().Return(r.Outputs[call.String()], err).Maybe()
		m.EXPECT().String().Return(call.String()).Maybe()
		return m
	}

	return r
}

// CommandLines returns the recorded calls as space-joined command lines.
func (r *ShellCallRecorder) CommandLines() []string {
	lines := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		lines = append(lines, c.String())
	}
	return lines
}

// Index returns the position of the first call matching line, or -1.
func (r *ShellCallRecorder) Index(line string) int {
	return slices.Index(r.CommandLines(), line)
}

var CommonShellCalls = map[string]*ShellCall{
	"aptUpdate": {
		Binary:         "sudo",
		ContainsArgs:   []string{"apt-get", "update", "-y"},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
	"addDeadsnakes": {
		Binary:         "sudo",
		ContainsArgs:   []string{"add-apt-repository", "ppa:deadsnakes/ppa", "-y"},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
	"pipVersion": {
		Binary:         "pip",
		ContainsArgs:   []string{"--version"},
		EnvVars:        nil,
		InheritEnvVars: true,
	},
}
