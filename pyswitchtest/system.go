package pyswitchtest

import (
	"pyswitch/system"
	"pyswitch/system/alternatives"
	"pyswitch/system/syspkg"
)

func NewUbuntuSystem(sudo bool) *system.LocalSystem {
	return &system.LocalSystem{
		Vendor:         "ubuntu",
		Version:        "22.04",
		Arch:           "amd64",
		PackageManager: syspkg.NewAptManager(sudo),
		Alternatives:   alternatives.NewManager(sudo),
	}
}

func NewDebianSystem(sudo bool) *system.LocalSystem {
	return &system.LocalSystem{
		Vendor:         "debian",
		Version:        "12",
		Arch:           "arm64",
		PackageManager: syspkg.NewAptManager(sudo),
		Alternatives:   alternatives.NewManager(sudo),
	}
}
