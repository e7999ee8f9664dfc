package host

import (
	"fmt"
	"log/slog"
	"os"
	"pyswitch/errors"
	"pyswitch/system/command"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/shirou/gopsutil/v3/process"
)

// maxAncestors bounds the walk up the process tree.
const maxAncestors = 16

var kernelMarkers = []string{"colab_kernel_launcher", "ipykernel_launcher", "ipykernel"}

type kernelProcess interface {
	Pid() int32
	Cmdline() (string, error)
	Parent() (kernelProcess, error)
	Kill() error
}

type gopsProcess struct {
	p *process.Process
}

func (g *gopsProcess) Pid() int32 {
	return g.p.Pid
}

func (g *gopsProcess) Cmdline() (string, error) {
	return g.p.Cmdline()
}

func (g *gopsProcess) Parent() (kernelProcess, error) {
	parent, err := g.p.Parent()
	if err != nil {
		return nil, err
	}
	return &gopsProcess{p: parent}, nil
}

func (g *gopsProcess) Kill() error {
	return g.p.Kill()
}

var newProcess = func(pid int32) (kernelProcess, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return nil, err
	}
	return &gopsProcess{p: p}, nil
}

var parentPid = os.Getppid

// Colab restarts a Google Colab session. Killing the kernel makes Colab
// start a fresh one, which resolves python3 through the new alternative.
type Colab struct {
	RestartCommand string
}

func NewColab(restartCommand string) *Colab {
	return &Colab{RestartCommand: restartCommand}
}

func (c *Colab) Name() string {
	return NameColab
}

func (c *Colab) ManualRestartHint() []string {
	return []string{
		"Use: Runtime > Restart session",
		"Or run in a cell: import os; os.kill(os.getpid(), 9)",
	}
}

func (c *Colab) Restart() error {
	if c.RestartCommand != "" {
		return c.runRestartCommand()
	}

	kernel, err := findKernel()
	if err != nil {
		return fmt.Errorf(errors.HostRestartErrorTpl, c.Name(), err)
	}

	slog.Info("Stopping notebook kernel (pid " + strconv.Itoa(int(kernel.Pid())) + ")")
	if err := kernel.Kill(); err != nil {
		return fmt.Errorf(errors.HostRestartErrorTpl, c.Name(), err)
	}
	return nil
}

// KernelPid returns the pid of the notebook kernel Restart would stop.
func (c *Colab) KernelPid() (int32, error) {
	kernel, err := findKernel()
	if err != nil {
		return 0, err
	}
	return kernel.Pid(), nil
}

func (c *Colab) runRestartCommand() error {
	args, err := shellwords.Parse(c.RestartCommand)
	if err != nil {
		return fmt.Errorf(errors.RestartCommandParseErrorTpl, c.RestartCommand, err)
	}
	if len(args) == 0 {
		return fmt.Errorf(errors.RestartCommandParseErrorTpl, c.RestartCommand, fmt.Errorf("empty command"))
	}

	slog.Info("Running restart command: " + c.RestartCommand)
	s := command.NewShellCommand(args[0], args[1:], nil, true)
	if err := s.Run(); err != nil {
		return fmt.Errorf(errors.HostRestartErrorTpl, c.Name(), err)
	}
	return nil
}

// findKernel walks up from the parent process to the nearest notebook kernel.
func findKernel() (kernelProcess, error) {
	p, err := newProcess(int32(parentPid()))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect parent process: %w", err)
	}

	for i := 0; i < maxAncestors && p != nil; i++ {
		cmdline, err := p.Cmdline()
		if err == nil && isKernel(cmdline) {
			return p, nil
		}
		if p.Pid() <= 1 {
			break
		}
		p, err = p.Parent()
		if err != nil {
			slog.Debug("Stopped process tree walk: " + err.Error())
			break
		}
	}

	return nil, fmt.Errorf("no notebook kernel found among ancestor processes")
}

func isKernel(cmdline string) bool {
	for _, marker := range kernelMarkers {
		if strings.Contains(cmdline, marker) {
			return true
		}
	}
	return false
}
