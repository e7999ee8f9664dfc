package errors

import "fmt"

// Generic errors

var TempDirCreateErrorTpl = "failed to create temporary directory for %s: %w"

// Step errors

var StepFailedErrorTpl = "step '%s' failed: %w"

// Install errors

var SecondaryToolInstallErrorTpl = "failed to install %s: %w"

// Host errors

var HostRestartErrorTpl = "failed to restart %s session: %w"
var RestartCommandParseErrorTpl = "failed to parse restart command '%s': %w"

type UnsupportedOSError struct {
	Vendor  string
	Version string
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("unsupported os %s %s", e.Vendor, e.Version)
}

type UnknownHostError struct {
	Name string
}

func (e *UnknownHostError) Error() string {
	return fmt.Sprintf("unknown host '%s'", e.Name)
}
