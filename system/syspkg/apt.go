package syspkg

import (
	"log/slog"
	"pyswitch/system/command"
	"strings"
)

const sudoBinary = "sudo"

type AptManager struct {
	binary        string
	repoBinary    string
	sudo          bool
	installOpts   []string
	assumeYes     []string
	updateOpts    []string
	addRepoOpts   []string
	repoHelperPkg string
}

func NewAptManager(sudo bool) *AptManager {
	return &AptManager{
		binary:        "apt-get",
		repoBinary:    "add-apt-repository",
		sudo:          sudo,
		installOpts:   []string{"install"},
		assumeYes:     []string{"-y"},
		updateOpts:    []string{"update", "-y"},
		addRepoOpts:   []string{"-y"},
		repoHelperPkg: "software-properties-common",
	}
}

func (m *AptManager) GetBin() string {
	return m.binary
}

// RepositoryHelperPackage is the package that provides add-apt-repository.
func (m *AptManager) RepositoryHelperPackage() string {
	return m.repoHelperPkg
}

// privileged prefixes the invocation with sudo when configured to.
func (m *AptManager) privileged(name string, args []string) (string, []string) {
	if !m.sudo {
		return name, append([]string{}, args...)
	}
	return sudoBinary, append([]string{name}, args...)
}

func (m *AptManager) UpdateStep() *command.Step {
	name, args := m.privileged(m.binary, m.updateOpts)
	return &command.Step{
		Name:   "refresh package index",
		Binary: name,
		Args:   args,
		Policy: command.Abort,
	}
}

func (m *AptManager) InstallStep(list *PackageList, policy command.FailurePolicy) *command.Step {
	packagesToInstall := list.GetPackages()
	slog.Debug("Preparing install of packages: " + strings.Join(packagesToInstall, ", "))

	// Packages go before -y, matching the documented apt-get invocation.
	args := append(append([]string{}, m.installOpts...), packagesToInstall...)
	args = append(args, m.assumeYes...)
	name, args := m.privileged(m.binary, args)
	return &command.Step{
		Name:   "install " + strings.Join(packagesToInstall, " "),
		Binary: name,
		Args:   args,
		Policy: policy,
	}
}

func (m *AptManager) AddRepositoryStep(repository string) *command.Step {
	args := append([]string{repository}, m.addRepoOpts...)
	name, args := m.privileged(m.repoBinary, args)
	return &command.Step{
		Name:   "add repository " + repository,
		Binary: name,
		Args:   args,
		Policy: command.Abort,
	}
}
