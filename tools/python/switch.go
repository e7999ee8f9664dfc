package python

import (
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"pyswitch/errors"
	"pyswitch/host"
	"pyswitch/system"
	"pyswitch/system/alternatives"
	"pyswitch/system/command"
	"pyswitch/system/syspkg"
	"strings"

	"github.com/pterm/pterm"
)

const (
	DefaultRepository = "ppa:deadsnakes/ppa"
	stageCount        = 5
)

type SwitchOptions struct {
	InstallSecondaryTool bool
	SecondaryTool        string
	AutoRestart          bool
	// Host is nil when pyswitch does not run under a known notebook host.
	Host         host.Host
	Repository   string
	BootstrapURL string
	// Priority of the update-alternatives entry. Zero selects
	// alternatives.DefaultPriority, negative values are rejected.
	Priority int
	Out      io.Writer
}

func DefaultSwitchOptions() *SwitchOptions {
	return &SwitchOptions{
		SecondaryTool: DefaultSecondaryTool,
		AutoRestart:   true,
		Repository:    DefaultRepository,
		BootstrapURL:  DefaultBootstrapURL,
		Priority:      alternatives.DefaultPriority,
		Out:           os.Stdout,
	}
}

// StageStep is a step together with the text shown around it.
type StageStep struct {
	*command.Step
	Announce   string
	SkipNotice string
}

// Stage groups the steps shown under one banner.
type Stage struct {
	Title string
	Steps []*StageStep
}

// Plan is the full ordered sequence of a switch. SecondaryTool is nil unless
// requested.
type Plan struct {
	Sources       *Stage
	Install       *Stage
	Default       *Stage
	Pip           *Stage
	Verify        *Stage
	SecondaryTool *Stage
}

func (p *Plan) Stages() []*Stage {
	stages := []*Stage{p.Sources, p.Install, p.Default, p.Pip, p.Verify}
	if p.SecondaryTool != nil {
		stages = append(stages, p.SecondaryTool)
	}
	return stages
}

// Steps flattens the plan into execution order.
func (p *Plan) Steps() []*command.Step {
	var steps []*command.Step
	for _, stage := range p.Stages() {
		for _, s := range stage.Steps {
			steps = append(steps, s.Step)
		}
	}
	return steps
}

// Switcher makes one interpreter version the system python3.
type Switcher struct {
	*Manager
	opts       *SwitchOptions
	scriptPath string
}

func NewSwitcher(l *system.LocalSystem, version string, opts *SwitchOptions) (*Switcher, error) {
	m, err := NewManager(l, version)
	if err != nil {
		return nil, err
	}
	if l.PackageManager == nil {
		return nil, fmt.Errorf("no system package manager configured")
	}
	if l.Alternatives == nil {
		return nil, fmt.Errorf("no alternatives manager configured")
	}

	defaults := DefaultSwitchOptions()
	if opts == nil {
		opts = defaults
	} else {
		copied := *opts
		opts = &copied
	}
	if opts.Priority < 0 {
		return nil, fmt.Errorf("alternatives priority must not be negative, got %d", opts.Priority)
	}
	if opts.SecondaryTool == "" {
		opts.SecondaryTool = defaults.SecondaryTool
	}
	if opts.Repository == "" {
		opts.Repository = defaults.Repository
	}
	if opts.BootstrapURL == "" {
		opts.BootstrapURL = defaults.BootstrapURL
	}
	if opts.Priority == 0 {
		opts.Priority = defaults.Priority
	}
	if opts.Out == nil {
		opts.Out = defaults.Out
	}

	return &Switcher{Manager: m, opts: opts}, nil
}

func stageTitle(n int, title string) string {
	return fmt.Sprintf("Step %d/%d: %s", n, stageCount, title)
}

func plain(s *command.Step) *StageStep {
	return &StageStep{Step: s}
}

func (s *Switcher) Plan() *Plan {
	pm := s.LocalSystem.PackageManager
	alt := s.LocalSystem.Alternatives

	helper := &syspkg.PackageList{Packages: []string{pm.RepositoryHelperPackage()}}

	p := &Plan{
		Sources: &Stage{
			Title: stageTitle(1, "Updating package sources..."),
			Steps: []*StageStep{
				plain(pm.UpdateStep()),
				plain(pm.InstallStep(helper, command.Abort)),
				plain(pm.AddRepositoryStep(s.opts.Repository)),
				plain(pm.UpdateStep()),
			},
		},
		Install: &Stage{
			Title: stageTitle(2, "Installing Python "+s.Version+"..."),
			Steps: []*StageStep{
				plain(pm.InstallStep(&syspkg.PackageList{Packages: []string{s.PackageName()}}, command.Abort)),
			},
		},
		Default: &Stage{
			Title: stageTitle(3, "Setting Python "+s.Version+" as default..."),
			Steps: []*StageStep{
				plain(alt.InstallStep(alternativesLink, alternativesName, s.PythonPath, s.opts.Priority)),
				plain(alt.SetStep(alternativesName, s.PythonPath)),
			},
		},
		Pip: &Stage{
			Title: stageTitle(4, "Installing pip..."),
			Steps: []*StageStep{
				plain(s.downloadBootstrapStep()),
				plain(s.runBootstrapStep()),
			},
		},
		Verify: &Stage{
			Title: stageTitle(5, "Verifying installation..."),
			Steps: []*StageStep{
				plain(s.interpreterVersionStep()),
				plain(s.installerVersionStep()),
			},
		},
	}

	for _, pkg := range s.AuxiliaryPackageNames() {
		p.Install.Steps = append(p.Install.Steps, &StageStep{
			Step:       pm.InstallStep(&syspkg.PackageList{Packages: []string{pkg}}, command.Continue),
			Announce:   "Installing " + pkg + "...",
			SkipNotice: pkg + " not available, skipping...",
		})
	}

	if s.opts.InstallSecondaryTool {
		p.SecondaryTool = &Stage{
			Title: "Installing " + s.opts.SecondaryTool + " package manager...",
			Steps: []*StageStep{plain(s.secondaryToolStep())},
		}
	}

	return p
}

func (s *Switcher) println(a ...any) {
	pterm.Fprintln(s.opts.Out, a...)
}

func (s *Switcher) runStage(stage *Stage) ([]string, error) {
	s.println(pterm.DefaultSection.Sprint(stage.Title))
	return s.runSteps(stage)
}

// runSteps executes the stage's steps in order and returns their captured
// output. Output of a tolerated step that failed is versionUnavailable.
func (s *Switcher) runSteps(stage *Stage) ([]string, error) {
	outputs := make([]string, 0, len(stage.Steps))
	for _, step := range stage.Steps {
		if step.Announce != "" {
			s.println("   " + step.Announce)
		}

		out, err := step.Execute()
		if err != nil {
			if !step.Tolerated() {
				slog.Error("Step '" + step.Name + "' failed: " + err.Error())
				return outputs, fmt.Errorf(errors.StepFailedErrorTpl, step.Name, err)
			}

			slog.Warn("Step '" + step.Name + "' failed, continuing: " + err.Error())
			if step.SkipNotice != "" {
				s.println(pterm.Warning.Sprint("   " + step.SkipNotice))
			}
			outputs = append(outputs, versionUnavailable)
			continue
		}
		outputs = append(outputs, out)
	}

	return outputs, nil
}

// fail prints the error the way the user sees it and hands it back.
func (s *Switcher) fail(err error) error {
	var exitErr *exec.ExitError
	if goerrors.As(err, &exitErr) {
		s.println(pterm.Error.Sprint("Error occurred during installation: " + err.Error()))
		s.println(pterm.Info.Sprint("Tip: Python " + s.Version + " might not be fully available yet.\n" +
			"Try a stable version like 3.11 or 3.12 instead."))
	} else {
		s.println(pterm.Error.Sprint("Unexpected error: " + err.Error()))
	}
	return err
}

// Switch runs the plan. nil means python3 now resolves to the requested
// version; on error the system is left as the completed steps made it.
func (s *Switcher) Switch() error {
	s.println(pterm.Info.Sprint("Starting Python environment switch to version: " + s.Version + "..."))

	if note := s.InstalledNote(); note != "" {
		s.println(pterm.Info.Sprint(note))
	}

	cleanup, err := s.prepareBootstrapDir()
	defer cleanup()
	if err != nil {
		return s.fail(err)
	}

	p := s.Plan()
	for _, stage := range []*Stage{p.Sources, p.Install, p.Default, p.Pip} {
		if _, err := s.runStage(stage); err != nil {
			return s.fail(err)
		}
	}

	s.println(pterm.DefaultSection.Sprint(p.Verify.Title))
	spinner, _ := pterm.DefaultSpinner.WithWriter(s.opts.Out).Start("Querying python3 and pip versions...")
	versions, err := s.runSteps(p.Verify)
	if err != nil {
		spinner.Fail("Version query failed.")
		return s.fail(err)
	}
	spinner.Success("Version query complete.")
	s.printSummary(versions)
	s.checkReportedVersion(versions[0])

	if p.SecondaryTool != nil {
		if _, err := s.runStage(p.SecondaryTool); err != nil {
			return s.fail(fmt.Errorf(errors.SecondaryToolInstallErrorTpl, s.opts.SecondaryTool, err))
		}
		s.println(pterm.Success.Sprint(s.opts.SecondaryTool + " installed successfully!"))
	}

	s.println(pterm.Warning.Sprint("Note: Environment has been reset.\n" +
		"Please reinstall required packages using '!pip install ...'\n" +
		"(e.g., numpy, pandas, etc.)"))

	if err := s.restart(); err != nil {
		return s.fail(err)
	}

	return nil
}

// InstalledNote tells the user the requested interpreter is already present
// and gets reinstalled and selected anyway. It is empty otherwise.
func (s *Switcher) InstalledNote() string {
	installed, err := s.Installed()
	if err != nil {
		slog.Debug(err.Error())
		return ""
	}
	if !installed {
		return ""
	}
	return "Python " + s.Version + " is already installed at " + s.PythonPath + ", it will be reinstalled and selected."
}

func (s *Switcher) printSummary(versions []string) {
	s.println(pterm.DefaultBox.
		WithTitle("Switch completed! Current environment").
		Sprint(strings.Join(versions, "\n")))
}

func (s *Switcher) restart() error {
	h := s.opts.Host

	if !s.opts.AutoRestart {
		s.println(pterm.Info.Sprint("Tip: Restart manually to apply changes:\n" + strings.Join(manualRestartHint(h), "\n")))
		return nil
	}

	if !host.Detected(h) {
		s.println(pterm.Warning.Sprint("Not running under a notebook host. Please restart your Python environment manually."))
		return nil
	}

	s.println(pterm.Info.Sprint("Restarting " + h.Name() + " session to apply changes...\n" +
		"After restart, run: import sys; print(sys.version)"))
	return h.Restart()
}

func manualRestartHint(h host.Host) []string {
	if h != nil {
		return h.ManualRestartHint()
	}
	return []string{"Restart your Python kernel or interpreter process"}
}
