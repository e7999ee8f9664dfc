package syspkg

import (
	"pyswitch/system/command"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAptManager(t *testing.T) {
	assert := assert.New(t)

	m := NewAptManager(true)

	assert.Equal("apt-get", m.GetBin())
	assert.Equal("software-properties-common", m.RepositoryHelperPackage())
	assert.Contains(m.installOpts, "install")
	assert.Contains(m.updateOpts, "update")
	assert.Contains(m.addRepoOpts, "-y")
}

func TestAptManager_UpdateStep(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name       string
		sudo       bool
		wantBinary string
		wantArgs   []string
	}{
		{
			name:       "with sudo",
			sudo:       true,
			wantBinary: "sudo",
			wantArgs:   []string{"apt-get", "update", "-y"},
		},
		{
			name:       "without sudo",
			sudo:       false,
			wantBinary: "apt-get",
			wantArgs:   []string{"update", "-y"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAptManager(tt.sudo).UpdateStep()

			assert.Equal(tt.wantBinary, s.Binary)
			assert.Equal(tt.wantArgs, s.Args)
			assert.Equal(command.Abort, s.Policy)
			assert.False(s.Capture)
		})
	}
}

func TestAptManager_InstallStep(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name     string
		sudo     bool
		list     *PackageList
		policy   command.FailurePolicy
		wantArgs []string
	}{
		{
			name:     "single package",
			sudo:     true,
			list:     &PackageList{Packages: []string{"python3.11"}},
			policy:   command.Abort,
			wantArgs: []string{"apt-get", "install", "python3.11", "-y"},
		},
		{
			name:     "tolerated package without sudo",
			sudo:     false,
			list:     &PackageList{Packages: []string{"python3.11-distutils"}},
			policy:   command.Continue,
			wantArgs: []string{"install", "python3.11-distutils", "-y"},
		},
		{
			name:     "multiple packages",
			sudo:     true,
			list:     &PackageList{Packages: []string{"pkg1", "pkg2"}},
			policy:   command.Abort,
			wantArgs: []string{"apt-get", "install", "pkg1", "pkg2", "-y"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAptManager(tt.sudo)
			s := m.InstallStep(tt.list, tt.policy)

			assert.Equal(tt.wantArgs, s.Args)
			assert.Equal(tt.policy, s.Policy)
			// The manager's own options must not be mutated by appending packages.
			assert.Equal([]string{"install"}, m.installOpts)
			assert.Equal([]string{"-y"}, m.assumeYes)
		})
	}
}

func TestAptManager_AddRepositoryStep(t *testing.T) {
	assert := assert.New(t)

	s := NewAptManager(true).AddRepositoryStep("ppa:deadsnakes/ppa")
	assert.Equal("sudo", s.Binary)
	assert.Equal([]string{"add-apt-repository", "ppa:deadsnakes/ppa", "-y"}, s.Args)
	assert.Equal(command.Abort, s.Policy)

	s = NewAptManager(false).AddRepositoryStep("ppa:example/ppa")
	assert.Equal("add-apt-repository", s.Binary)
	assert.Equal([]string{"ppa:example/ppa", "-y"}, s.Args)
}
