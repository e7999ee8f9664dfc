package pyswitchtest

import (
	"pyswitch/system/file"
	"testing"

	"github.com/spf13/afero"
)

// UseMemFs swaps file.AppFs for an in-memory filesystem until the test ends.
func UseMemFs(t *testing.T) afero.Fs {
	old := file.AppFs
	file.AppFs = afero.NewMemMapFs()
	t.Cleanup(func() {
		file.AppFs = old
	})
	return file.AppFs
}
