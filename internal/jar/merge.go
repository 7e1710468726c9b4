package jar

import (
	"archive/zip"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/src-d/go-billy.v4"
)

// Merge appends a single text entry holding the given records to an existing
// archive. Every pre-existing entry is carried over byte for byte without
// recompression, including any same-named entry written by an earlier
// invocation; consumers of the resource are expected to tolerate duplicated
// entry paths across repeated packaging runs.
//
// The new content is staged in a scratch file next to the archive and only
// replaces it once all handles have been closed cleanly, so a failed merge
// leaves the original archive untouched.
func Merge(log *zap.Logger, fs billy.Filesystem, archivePath string, lines []string, entryName, header string) error {
	fi, err := fs.Stat(archivePath)
	if err != nil {
		log.Error("Failed to locate target archive.", zap.String("archive", archivePath), zap.Error(err))
		return err
	}

	f, err := fs.Open(archivePath)
	if err != nil {
		log.Error("Failed to open target archive.", zap.String("archive", archivePath), zap.Error(err))
		return err
	}
	defer f.Close()

	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		log.Error("Failed to parse target archive.", zap.String("archive", archivePath), zap.Error(err))
		return err
	}

	tmp, err := fs.TempFile(filepath.Dir(archivePath), filepath.Base(archivePath))
	if err != nil {
		log.Error("Failed to create scratch file next to target archive.", zap.String("archive", archivePath), zap.Error(err))
		return err
	}

	if err = writeMerged(zr, tmp, lines, entryName, header); err != nil {
		tmp.Close()
		fs.Remove(tmp.Name())
		log.Error("Failed to write merged archive content.", zap.String("archive", archivePath), zap.String("entry", entryName), zap.Error(err))
		return err
	}

	if err = tmp.Close(); err != nil {
		fs.Remove(tmp.Name())
		log.Error("Failed to close scratch file.", zap.String("file", tmp.Name()), zap.Error(err))
		return err
	}

	if err = fs.Rename(tmp.Name(), archivePath); err != nil {
		fs.Remove(tmp.Name())
		log.Error("Failed to move merged archive into place.", zap.String("archive", archivePath), zap.Error(err))
		return err
	}

	log.Debug("Merged metadata entry into archive.", zap.String("archive", archivePath), zap.String("entry", entryName), zap.Int("records", len(lines)))
	return nil
}

func writeMerged(zr *zip.Reader, out io.Writer, lines []string, entryName, header string) error {
	zw := zip.NewWriter(out)
	for _, entry := range zr.File {
		if err := zw.Copy(entry); err != nil {
			zw.Close()
			return err
		}
	}

	w, err := zw.Create(entryName)
	if err != nil {
		zw.Close()
		return err
	}
	if _, err = io.WriteString(w, Content(lines, header)); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Content renders the deterministic serialized form of the given records: the
// header comment followed by the records in ascending lexicographic order,
// one per line with a terminating newline. Any two permutations of the same
// records produce byte-identical content.
func Content(lines []string, header string) string {
	if len(lines) == 0 {
		return header + "\n"
	}

	sorted := make([]string, len(lines))
	copy(sorted, lines)
	sort.Strings(sorted)
	return header + "\n" + strings.Join(sorted, "\n") + "\n"
}
