package cmd

import (
	"fmt"
	"io"
	"pyswitch/host"
	"pyswitch/system"
	"pyswitch/tools/python"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var getLocalSystem = system.GetLocalSystem
var isRoot = system.IsRoot

func pythonSwitch(cCtx *cli.Context) error {
	h, err := host.Lookup(cCtx.String("host"), cCtx.String("restart-command"))
	if err != nil {
		return err
	}

	priority := cCtx.Int("priority")
	if priority < 1 {
		return fmt.Errorf("--priority must be a positive number, got %d", priority)
	}

	sudo := cCtx.Bool("sudo")
	dryRun := cCtx.Bool("dry-run")
	if !sudo && !dryRun && !isRoot() {
		return fmt.Errorf("running without sudo requires root privileges")
	}

	localSystem, err := getLocalSystem(sudo)
	if err != nil {
		return err
	}

	opts := &python.SwitchOptions{
		InstallSecondaryTool: cCtx.Bool("install-uv"),
		AutoRestart:          cCtx.Bool("auto-restart"),
		Host:                 h,
		Repository:           cCtx.String("repository"),
		BootstrapURL:         cCtx.String("bootstrap-url"),
		Priority:             priority,
		Out:                  cCtx.App.Writer,
	}

	s, err := python.NewSwitcher(localSystem, cCtx.String("version"), opts)
	if err != nil {
		return err
	}

	if dryRun {
		if note := s.InstalledNote(); note != "" {
			pterm.Fprintln(cCtx.App.Writer, pterm.Info.Sprint(note))
		}
		printPlan(cCtx.App.Writer, s.Plan())
		return nil
	}

	return s.Switch()
}

func printPlan(w io.Writer, p *python.Plan) {
	for _, stage := range p.Stages() {
		pterm.Fprintln(w, pterm.DefaultSection.Sprint(stage.Title))
		for _, step := range stage.Steps {
			line := "  " + step.String()
			if step.Tolerated() {
				line += "  (on failure: " + step.Policy.String() + ")"
			}
			pterm.Fprintln(w, line)
		}
	}
}
