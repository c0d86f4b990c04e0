package writer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mimesis-go/mimesis/internal/generator/models"
)

// Destination describes where a writer puts rows of a schema.
type Destination struct {
	Fs          afero.Fs
	Dir         string
	Name        string
	Columns     []string
	RowsPerFile uint64
	RowsCount   uint64
}

// NewDestination creates Destination for the schema output.
func NewDestination(fs afero.Fs, schema *models.SchemaConfig) *Destination {
	return &Destination{
		Fs:          fs,
		Dir:         schema.OutputConfig.Dir,
		Name:        schema.Name,
		Columns:     schema.FieldNames(),
		RowsPerFile: schema.RowsPerFile,
		RowsCount:   schema.RowsCount,
	}
}

// FileName returns path of the n-th output file.
func (d *Destination) FileName(number uint64, ext string) string {
	return filepath.Join(d.Dir, fmt.Sprintf("%s_%d.%s", d.Name, number, ext))
}

// FileNumber returns number of the file the row with the given index belongs to.
func (d *Destination) FileNumber(rowIdx uint64) uint64 {
	if d.RowsPerFile == 0 {
		return 0
	}

	return rowIdx / d.RowsPerFile
}

// IsFileStart reports whether the row with the given index opens a new file.
func (d *Destination) IsFileStart(rowIdx uint64) bool {
	return d.RowsPerFile == 0 && rowIdx == 0 || d.RowsPerFile != 0 && rowIdx%d.RowsPerFile == 0
}
