package cmd

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

func Cli() *cli.App {
	switchCmdFlags := switchFlags()
	hostCmdFlags := hostFlags()

	app := &cli.App{
		Name:        "pyswitch",
		Usage:       "Python version switcher",
		Description: "Make another Python version the system python3 of a notebook host",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug mode",
				EnvVars: envVars("DEBUG"),
				Action: func(c *cli.Context, debugMode bool) error {
					if debugMode {
						slog.Info("Debug mode enabled")
						pterm.DefaultLogger.Level = pterm.LogLevelDebug
					}
					return nil
				},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "switch",
				Usage:  "Install a Python version and make it the default python3",
				Flags:  switchCmdFlags,
				Before: loadConfig(switchCmdFlags),
				Action: pythonSwitch,
			},
			{
				Name:     "host",
				Usage:    "Inspect the notebook host",
				Category: "host",
				Subcommands: []*cli.Command{
					{
						Name:   "detect",
						Usage:  "Report the configured host and the kernel it would restart",
						Flags:  hostCmdFlags,
						Before: loadConfig(hostCmdFlags),
						Action: hostDetect,
					},
				},
			},
		},
	}
	return app
}
