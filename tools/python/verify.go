package python

import (
	"fmt"
	"log/slog"
	"pyswitch/system/command"
	"strings"

	"github.com/Masterminds/semver"
)

const versionUnavailable = "unavailable"

func (s *Switcher) interpreterVersionStep() *command.Step {
	return &command.Step{
		Name:    "query python3 version",
		Binary:  alternativesName,
		Args:    []string{"--version"},
		Policy:  command.Continue,
		Capture: true,
	}
}

func (s *Switcher) installerVersionStep() *command.Step {
	return &command.Step{
		Name:    "query pip version",
		Binary:  "pip",
		Args:    []string{"--version"},
		Policy:  command.Continue,
		Capture: true,
	}
}

// parseInterpreterVersion reads the output of `python3 --version`, e.g.
// "Python 3.11.9".
func parseInterpreterVersion(out string) (*semver.Version, error) {
	fields := strings.Fields(out)
	if len(fields) < 2 || fields[0] != "Python" {
		return nil, fmt.Errorf("unexpected python version output '%s'", out)
	}
	return semver.NewVersion(fields[1])
}

// matchesRequested reports whether the reported interpreter belongs to the
// requested release line. Only the components given in the request are
// compared, so "3" matches any 3.x.
func (s *Switcher) matchesRequested(reported string) (bool, error) {
	got, err := parseInterpreterVersion(reported)
	if err != nil {
		return false, err
	}
	want, err := semver.NewVersion(s.Version)
	if err != nil {
		return false, fmt.Errorf("requested version '%s' is not a version number: %w", s.Version, err)
	}

	if got.Major() != want.Major() {
		return false, nil
	}
	parts := strings.Count(s.Version, ".") + 1
	if parts >= 2 && got.Minor() != want.Minor() {
		return false, nil
	}
	if parts >= 3 && got.Patch() != want.Patch() {
		return false, nil
	}
	return true, nil
}

func (s *Switcher) checkReportedVersion(reported string) {
	if reported == versionUnavailable {
		return
	}
	ok, err := s.matchesRequested(reported)
	if err != nil {
		slog.Debug("Skipping version comparison: " + err.Error())
		return
	}
	if !ok {
		slog.Warn(fmt.Sprintf("python3 reports '%s' but %s was requested", reported, s.Version))
	}
}
