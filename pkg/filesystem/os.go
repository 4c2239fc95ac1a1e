package filesystem

import (
	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/spf13/afero"
)

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}
