package python

import (
	"fmt"
	"log/slog"
	"pyswitch/errors"
	"pyswitch/system/command"
	"pyswitch/system/file"
)

const (
	DefaultBootstrapURL = "https://bootstrap.pypa.io/get-pip.py"
	bootstrapScriptName = "get-pip.py"
)

// prepareBootstrapDir creates the directory get-pip.py is downloaded to and
// returns a func removing it again.
func (s *Switcher) prepareBootstrapDir() (func(), error) {
	dir, err := file.TempDir("pyswitch")
	if err != nil {
		return func() {}, fmt.Errorf(errors.TempDirCreateErrorTpl, bootstrapScriptName, err)
	}
	s.scriptPath = dir + "/" + bootstrapScriptName

	return func() {
		if err := file.RemoveAll(dir); err != nil {
			slog.Warn("Failed to remove temporary directory '" + dir + "': " + err.Error())
		}
	}, nil
}

// bootstrapScriptPath falls back to the working directory when no download
// directory was prepared, which is what a dry run shows.
func (s *Switcher) bootstrapScriptPath() string {
	if s.scriptPath == "" {
		return bootstrapScriptName
	}
	return s.scriptPath
}

func (s *Switcher) downloadBootstrapStep() *command.Step {
	return &command.Step{
		Name:   "download " + bootstrapScriptName,
		Binary: "wget",
		Args:   []string{s.opts.BootstrapURL, "-O", s.bootstrapScriptPath()},
		Policy: command.Abort,
	}
}

// runBootstrapStep reinstalls pip for whatever python3 now resolves to.
func (s *Switcher) runBootstrapStep() *command.Step {
	return &command.Step{
		Name:   "reinstall pip",
		Binary: alternativesName,
		Args:   []string{s.bootstrapScriptPath(), "--force-reinstall"},
		Policy: command.Abort,
	}
}
