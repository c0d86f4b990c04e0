package locale

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/spf13/afero"
)

//go:embed data
var embeddedData embed.FS

var defaultLoader = sync.OnceValue(func() *Loader {
	return NewLoader(EmbeddedFs())
})

// EmbeddedFs returns read-only filesystem with locale data compiled into binary.
func EmbeddedFs() afero.Fs {
	root, err := fs.Sub(embeddedData, "data")
	if err != nil {
		panic(err)
	}

	return afero.FromIOFS{FS: root}
}

// DirFs returns read-only filesystem with locale data stored in directory.
func DirFs(dir string) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// Default returns process-wide loader over embedded data.
func Default() *Loader {
	return defaultLoader()
}
