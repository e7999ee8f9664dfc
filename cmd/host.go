package cmd

import (
	"pyswitch/host"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

func hostDetect(cCtx *cli.Context) error {
	w := cCtx.App.Writer

	h, err := host.Lookup(cCtx.String("host"), cCtx.String("restart-command"))
	if err != nil {
		return err
	}

	if !host.Detected(h) {
		pterm.Fprintln(w, pterm.Warning.Sprint("No notebook host configured. Sessions must be restarted manually."))
		return nil
	}

	pterm.Fprintln(w, pterm.Info.Sprint("Host: "+h.Name()))

	if command := cCtx.String("restart-command"); command != "" {
		pterm.Fprintln(w, pterm.Info.Sprint("Restart command: "+command))
		return nil
	}

	if colab, ok := h.(*host.Colab); ok {
		pid, err := colab.KernelPid()
		if err != nil {
			pterm.Fprintln(w, pterm.Warning.Sprint("Kernel not found: "+err.Error()))
			return nil
		}
		pterm.Fprintln(w, pterm.Info.Sprint("Kernel pid: "+strconv.Itoa(int(pid))))
	}

	return nil
}
