// Package host models the notebook platform pyswitch runs under. A host is
// selected explicitly by name; nothing here inspects the environment to guess.
package host

import (
	"pyswitch/errors"
	"strings"
)

const (
	NameNone  = "none"
	NameColab = "colab"
)

// Host is a notebook platform able to restart the user's session so the new
// interpreter is picked up.
type Host interface {
	Name() string
	Restart() error
	// ManualRestartHint describes how to restart by hand.
	ManualRestartHint() []string
}

// Lookup returns the host registered under name. The empty name and "none"
// return a nil Host. restartCommand overrides the host's own restart
// mechanism when not empty.
func Lookup(name, restartCommand string) (Host, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameNone:
		return nil, nil
	case NameColab:
		return NewColab(restartCommand), nil
	default:
		return nil, &errors.UnknownHostError{Name: name}
	}
}

// Detected reports whether a host capability was provided.
func Detected(h Host) bool {
	return h != nil
}
