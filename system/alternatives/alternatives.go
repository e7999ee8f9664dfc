package alternatives

import (
	"pyswitch/system/command"
	"strconv"
)

const DefaultPriority = 100

// Manager builds update-alternatives invocations.
type Manager struct {
	binary      string
	sudo        bool
	installOpts []string
	setOpts     []string
}

func NewManager(sudo bool) *Manager {
	return &Manager{
		binary:      "update-alternatives",
		sudo:        sudo,
		installOpts: []string{"--install"},
		setOpts:     []string{"--set"},
	}
}

func (m *Manager) GetBin() string {
	return m.binary
}

func (m *Manager) privileged(args []string) (string, []string) {
	if !m.sudo {
		return m.binary, args
	}
	return "sudo", append([]string{m.binary}, args...)
}

// InstallStep registers path as a candidate for the generic link. Running it
// again for the same path only updates the priority. The output is captured
// because update-alternatives reports nothing useful on success.
func (m *Manager) InstallStep(link, name, path string, priority int) *command.Step {
	args := append(append([]string{}, m.installOpts...), link, name, path, strconv.Itoa(priority))
	bin, args := m.privileged(args)
	return &command.Step{
		Name:    "register " + path + " as " + name + " alternative",
		Binary:  bin,
		Args:    args,
		Policy:  command.Abort,
		Capture: true,
	}
}

// SetStep forces name to point at path, overriding automatic mode.
func (m *Manager) SetStep(name, path string) *command.Step {
	args := append(append([]string{}, m.setOpts...), name, path)
	bin, args := m.privileged(args)
	return &command.Step{
		Name:   "select " + path + " for " + name,
		Binary: bin,
		Args:   args,
		Policy: command.Abort,
	}
}
