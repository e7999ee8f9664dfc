package python

import (
	"pyswitch/system/command"
)

const DefaultSecondaryTool = "uv"

func (s *Switcher) secondaryToolStep() *command.Step {
	return &command.Step{
		Name:   "install " + s.opts.SecondaryTool,
		Binary: "pip",
		Args:   []string{"install", s.opts.SecondaryTool},
		Policy: command.Abort,
	}
}
