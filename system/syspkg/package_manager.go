package syspkg

import (
	"pyswitch/system/command"
)

type PackageList struct {
	Packages []string
}

func (l *PackageList) GetPackages() []string {
	return l.Packages
}

// SystemPackageManager builds package manager invocations. Nothing runs
// until the returned steps are executed.
type SystemPackageManager interface {
	GetBin() string
	UpdateStep() *command.Step
	InstallStep(list *PackageList, policy command.FailurePolicy) *command.Step
	AddRepositoryStep(repository string) *command.Step
	// RepositoryHelperPackage provides the command AddRepositoryStep runs.
	RepositoryHelperPackage() string
}
