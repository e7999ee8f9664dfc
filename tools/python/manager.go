package python

import (
	"fmt"
	"log/slog"
	"pyswitch/system"
	"pyswitch/system/file"
)

const (
	packageTpl       = "python%s"
	binPathTpl       = "/usr/bin/python%s"
	alternativesLink = "/usr/bin/python3"
	alternativesName = "python3"
)

// auxiliaryPackageSuffixes are installed individually after the interpreter.
// Not every release ships all of them (distutils is gone from 3.12 on).
var auxiliaryPackageSuffixes = []string{"-distutils", "-dev", "-venv"}

type Manager struct {
	*system.LocalSystem
	Version    string
	PythonPath string
}

func NewManager(l *system.LocalSystem, version string) (*Manager, error) {
	if version == "" {
		return nil, fmt.Errorf("python version is required")
	}
	if l == nil {
		return nil, fmt.Errorf("local system is required")
	}

	return &Manager{
		LocalSystem: l,
		Version:     version,
		PythonPath:  fmt.Sprintf(binPathTpl, version),
	}, nil
}

// PackageName is the distribution package providing the interpreter.
func (m *Manager) PackageName() string {
	return fmt.Sprintf(packageTpl, m.Version)
}

func (m *Manager) AuxiliaryPackageNames() []string {
	names := make([]string, 0, len(auxiliaryPackageSuffixes))
	for _, suffix := range auxiliaryPackageSuffixes {
		names = append(names, m.PackageName()+suffix)
	}
	return names
}

func (m *Manager) Installed() (bool, error) {
	slog.Debug("Checking for existence of path " + m.PythonPath)
	isFile, err := file.IsFile(m.PythonPath)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing python installation at '%s': %w", m.PythonPath, err)
	}
	return isFile, nil
}
