package cmd

import (
	"pyswitch/host"
	"pyswitch/system/alternatives"
	"pyswitch/tools/python"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	categorySources = "Package sources: "
	categoryRestart = "Session restart: "
	envPrefix       = "PYSWITCH_"
)

func envVars(name string) []string {
	return []string{envPrefix + name}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Load flag values from a YAML file",
		EnvVars: envVars("CONFIG"),
	}
}

func versionFlag(usage string) cli.Flag {
	return altsrc.NewStringFlag(&cli.StringFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   usage,
		EnvVars: envVars("VERSION"),
	})
}

func installUvFlag() cli.Flag {
	return altsrc.NewBoolFlag(&cli.BoolFlag{
		Name:    "install-uv",
		Aliases: []string{"u"},
		Usage:   "Install the uv package manager after pip",
		EnvVars: envVars("INSTALL_UV"),
	})
}

func autoRestartFlag() cli.Flag {
	return altsrc.NewBoolFlag(&cli.BoolFlag{
		Name:     "auto-restart",
		Usage:    "Restart the notebook session when the switch completes",
		Value:    true,
		EnvVars:  envVars("AUTO_RESTART"),
		Category: categoryRestart,
	})
}

func hostFlag() cli.Flag {
	return altsrc.NewStringFlag(&cli.StringFlag{
		Name:        "host",
		Usage:       "Notebook host pyswitch runs under (colab, none)",
		DefaultText: host.NameNone,
		EnvVars:     envVars("HOST"),
		Category:    categoryRestart,
	})
}

func restartCommandFlag() cli.Flag {
	return altsrc.NewStringFlag(&cli.StringFlag{
		Name:     "restart-command",
		Usage:    "Command run to restart the session instead of stopping the kernel",
		EnvVars:  envVars("RESTART_COMMAND"),
		Category: categoryRestart,
	})
}

func repositoryFlag() cli.Flag {
	return altsrc.NewStringFlag(&cli.StringFlag{
		Name:     "repository",
		Usage:    "Package repository providing the interpreter",
		Value:    python.DefaultRepository,
		EnvVars:  envVars("REPOSITORY"),
		Category: categorySources,
	})
}

func bootstrapURLFlag() cli.Flag {
	return altsrc.NewStringFlag(&cli.StringFlag{
		Name:     "bootstrap-url",
		Usage:    "Location of the pip bootstrap script",
		Value:    python.DefaultBootstrapURL,
		EnvVars:  envVars("BOOTSTRAP_URL"),
		Category: categorySources,
	})
}

func priorityFlag() cli.Flag {
	return altsrc.NewIntFlag(&cli.IntFlag{
		Name:    "priority",
		Usage:   "Priority the interpreter is registered with in update-alternatives",
		Value:   alternatives.DefaultPriority,
		EnvVars: envVars("PRIORITY"),
	})
}

func sudoFlag() cli.Flag {
	return altsrc.NewBoolFlag(&cli.BoolFlag{
		Name:    "sudo",
		Usage:   "Prefix privileged commands with sudo",
		Value:   true,
		EnvVars: envVars("SUDO"),
	})
}

func dryRunFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "dry-run",
		Aliases: []string{"n"},
		Usage:   "Print the commands that would run and exit",
	}
}

func switchFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		versionFlag("Python version to switch to, e.g. 3.11"),
		installUvFlag(),
		autoRestartFlag(),
		hostFlag(),
		restartCommandFlag(),
		repositoryFlag(),
		bootstrapURLFlag(),
		priorityFlag(),
		sudoFlag(),
		dryRunFlag(),
	}
}

func hostFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		hostFlag(),
		restartCommandFlag(),
	}
}

// loadConfig fills flags that were not given on the command line or through
// the environment from the --config file.
func loadConfig(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))
}
