package metadata

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/src-d/go-billy.v4"
)

const (
	// DefaultResourceDir is the relative directory, under each class output
	// root, where the annotation processor writes its metadata files. The
	// same relative directory is used for the entry injected into jars.
	DefaultResourceDir = "com/twitter/common/args/apt"
	// DefaultFilePrefix is the basename prefix shared by all metadata files
	// written by the annotation processor.
	DefaultFilePrefix = "cmdline.arg.info.txt"
	// EntrySuffix distinguishes the entry generated at packaging time from
	// the annotation processor's own output files.
	EntrySuffix = ".0"
)

// Scan collects the raw metadata records found under the given class output
// directories. For each directory the fixed relative resource directory is
// listed non-recursively and every file whose basename starts with prefix is
// read line by line. Records are deduplicated across all files and
// directories. A class output root without the resource directory is skipped
// silently as the annotation processor only creates it on demand. An empty
// result is a valid outcome and means there is nothing to merge.
func Scan(log *zap.Logger, fs billy.Filesystem, classDirs []string, resourceDir, prefix string) (map[string]bool, error) {
	lines := map[string]bool{}
	for _, base := range classDirs {
		dir := fs.Join(base, resourceDir)
		fis, err := fs.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				log.Debug("No metadata directory under class output root.", zap.String("directory", dir))
				continue
			}
			log.Error("Failed to list metadata directory.", zap.String("directory", dir), zap.Error(err))
			return nil, err
		}

		for _, fi := range fis {
			if fi.IsDir() || !strings.HasPrefix(fi.Name(), prefix) {
				continue
			}
			f := fs.Join(dir, fi.Name())
			if err = readRecords(fs, f, lines); err != nil {
				log.Error("Failed to read metadata file.", zap.String("file", f), zap.Error(err))
				return nil, err
			}
			log.Debug("Scanned metadata file.", zap.String("file", f))
		}
	}
	return lines, nil
}

func readRecords(fs billy.Filesystem, path string, lines map[string]bool) error {
	f, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines[sc.Text()] = true
	}
	return sc.Err()
}
