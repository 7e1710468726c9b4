package inject

import (
	"go.uber.org/zap"
	"gopkg.in/src-d/go-billy.v4"

	"github.com/jarinject/jarinject/cmd/config"
	"github.com/jarinject/jarinject/internal/graph"
	"github.com/jarinject/jarinject/internal/jar"
	"github.com/jarinject/jarinject/internal/metadata"
)

// Execute runs the metadata injection pipeline over the build graph: for
// every binary unit with recorded jar products the metadata records are
// scanned, filtered down to the classes reachable from the binary and merged
// into each of its jars. The filtered record set is computed once per binary
// and reused across all of its jars.
//
// With dry set the pipeline runs in full but archives are only checked for
// existence instead of being modified.
//
// The prerequisites on the supplied configuration for Execute to be able to
// operate are:
//   - ResourceDir, FilePrefix, Header and SourceExt have been populated.
//   - ClassDirs and the jar product locations resolve on the supplied
//     filesystem.
func Execute(l *zap.Logger, fs billy.Filesystem, g *graph.Graph, m *config.Mapping, dry bool) error {
	if len(m.ClassDirs) == 0 {
		l.Debug("No class output directories configured, skipping metadata injection.")
		return nil
	}

	lines, err := metadata.Scan(l, fs, m.ClassDirs, m.ResourceDir, m.FilePrefix)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		l.Debug("No metadata records found under the configured class output directories.")
		return nil
	}

	w := worker{log: l, fs: fs, m: m, lines: lines, dry: dry}
	for _, u := range g.Units() {
		if !u.IsBinary() {
			continue
		}
		jars := g.Jars(u.Name())
		if len(jars) == 0 {
			l.Debug("Binary has no recorded jar products.", zap.String("unit", u.Name()))
			continue
		}
		if err := w.injectBinary(u, jars); err != nil {
			return err
		}
	}
	return nil
}

type worker struct {
	log   *zap.Logger
	fs    billy.Filesystem
	m     *config.Mapping
	lines map[string]bool
	dry   bool
}

func (w worker) injectBinary(u graph.Unit, jars map[string][]string) error {
	var classnames map[string]bool
	if !w.m.IncludeAll {
		classnames = graph.CollectClassNames(u, w.m.SourceExt)
		w.log.Debug("Collected reachable classes.", zap.String("unit", u.Name()), zap.Int("classes", len(classnames)))
	}

	kept, err := metadata.Filter(w.lines, classnames, w.m.IncludeAll)
	if err != nil {
		w.log.Error("Failed to filter metadata records.", zap.String("unit", u.Name()), zap.Error(err))
		return err
	}
	if len(kept) == 0 {
		w.log.Debug("No metadata records survived filtering, leaving archives untouched.", zap.String("unit", u.Name()))
		return nil
	}

	for basedir, paths := range jars {
		for _, p := range paths {
			archive := w.fs.Join(basedir, p)
			if w.dry {
				if _, err := w.fs.Stat(archive); err != nil {
					w.log.Error("Recorded jar product does not exist.", zap.String("unit", u.Name()), zap.String("archive", archive), zap.Error(err))
					return err
				}
				w.log.Info("Would inject metadata resource.", zap.String("unit", u.Name()), zap.String("archive", archive), zap.Int("records", len(kept)))
				continue
			}
			if err := jar.Merge(w.log, w.fs, archive, kept, w.m.EntryName(), w.m.Header); err != nil {
				return err
			}
			w.log.Info("Injected metadata resource.", zap.String("unit", u.Name()), zap.String("archive", archive), zap.Int("records", len(kept)))
		}
	}
	return nil
}
