package system

import (
	"os/user"
	"pyswitch/errors"
	"pyswitch/system/alternatives"
	"pyswitch/system/syspkg"

	"github.com/zcalusic/sysinfo"
)

type LocalSystem struct {
	Vendor         string
	Version        string
	Arch           string
	PackageManager syspkg.SystemPackageManager
	Alternatives   *alternatives.Manager
}

var sysInfo = func() sysinfo.SysInfo {
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return si
}

// GetLocalSystem detects the running distribution. Only apt based vendors
// are accepted since the interpreter packages come from a PPA.
func GetLocalSystem(sudo bool) (*LocalSystem, error) {
	si := sysInfo()

	var pm syspkg.SystemPackageManager
	switch si.OS.Vendor {
	case "ubuntu", "debian":
		pm = syspkg.NewAptManager(sudo)
	default:
		return nil, &errors.UnsupportedOSError{Vendor: si.OS.Vendor, Version: si.OS.Version}
	}

	return &LocalSystem{
		Vendor:         si.OS.Vendor,
		Version:        si.OS.Version,
		Arch:           si.OS.Architecture,
		PackageManager: pm,
		Alternatives:   alternatives.NewManager(sudo),
	}, nil
}

var currentUser = func() (*user.User, error) {
	return user.Current()
}

// IsRoot reports whether pyswitch runs as uid 0. Lookup failures count as
// not root.
func IsRoot() bool {
	current, err := currentUser()
	if err != nil {
		return false
	}
	return current.Uid == "0"
}
