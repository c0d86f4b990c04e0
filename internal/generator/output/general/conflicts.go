package general

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const filesToShow = 5

var (
	ConflictFilesWithOldData = "files with old schema data"
	ConflictNotDirectory     = "output path is not a directory"
)

func handleConflicts(fs afero.Fs, conflicts map[string][]string, forceGeneration bool) error {
	for cause, filePaths := range conflicts {
		if len(filePaths) == 0 {
			continue
		}

		if !forceGeneration || cause == ConflictNotDirectory {
			return errors.New(formatConflicts(conflicts))
		}
	}

	if !forceGeneration {
		return nil
	}

	for _, filePaths := range conflicts {
		if err := deleteAllFiles(fs, filePaths); err != nil {
			return errors.WithMessagef(err, "failed to delete conflict files: %s", filePaths)
		}
	}

	return nil
}

// checkDirForSchema finds files that would be overwritten or mixed up with the new schema output.
func checkDirForSchema(fs afero.Fs, dir, name, extension string) (map[string][]string, error) {
	conflicts := make(map[string][]string) // key is cause, value is slice of file names

	info, err := fs.Stat(dir)
	if os.IsNotExist(err) {
		return conflicts, nil
	}

	if err != nil {
		return nil, errors.WithMessagef(errors.New(err.Error()), "failed to stat output dir: %s", dir)
	}

	if !info.IsDir() {
		conflicts[ConflictNotDirectory] = []string{dir}

		return conflicts, nil
	}

	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(name) + `_\d+\.` + regexp.QuoteMeta(extension) + "$")

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.WithMessagef(errors.New(err.Error()), "failed to read output dir: %s", dir)
	}

	for _, entry := range entries {
		if !entry.IsDir() && pattern.MatchString(entry.Name()) {
			conflicts[ConflictFilesWithOldData] = append(
				conflicts[ConflictFilesWithOldData], filepath.Join(dir, entry.Name()),
			)
		}
	}

	return conflicts, nil
}

// formatConflicts makes pretty string from conflicts map.
func formatConflicts(conflicts map[string][]string) string {
	causes := make([]string, 0, len(conflicts))
	for cause := range conflicts {
		causes = append(causes, cause)
	}

	slices.Sort(causes)

	var sb strings.Builder

	sb.WriteString("conflict files found in output dir:\n")

	for _, cause := range causes {
		files := conflicts[cause]
		if len(files) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("cause: %s\n", cause))

		if len(files) > filesToShow {
			sb.WriteString(fmt.Sprintf("\t(showing %d of %d)\n", filesToShow, len(files)))
			files = files[:filesToShow]
		}

		for _, file := range files {
			sb.WriteString(fmt.Sprintf("\t- %s\n", file))
		}
	}

	return sb.String()
}

func deleteAllFiles(fs afero.Fs, filePaths []string) error {
	for _, filePath := range filePaths {
		if err := fs.RemoveAll(filePath); err != nil {
			return errors.WithMessagef(errors.New(err.Error()), "failed to remove file: %s", filePath)
		}
	}

	return nil
}
