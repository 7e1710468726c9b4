package config

import (
	"path"

	"github.com/jarinject/jarinject/internal/metadata"
)

const (
	// DefaultHeader is the comment line heading injected resource entries.
	DefaultHeader = "# Created by jarinject"
	// DefaultSourceExt identifies the language whose sources contribute
	// class names to the reachability filter.
	DefaultSourceExt = ".java"
)

// Mapping holds the resource-injection settings read from the configuration
// file.
type Mapping struct {
	// Class output directories produced by the upstream compile step. These
	// are the roots under which metadata files are searched. An empty list
	// turns the whole injection step into a no-op.
	ClassDirs []string `yaml:"classdirs,omitempty"`
	// If set the reachability filter is bypassed and every metadata record
	// is merged into each binary's jars.
	IncludeAll bool `yaml:"include_all,omitempty"`
	// Relative directory under each class output root that holds the
	// metadata files, and under which the merged entry is written inside
	// each jar. Defaults to the annotation processor's fixed convention.
	ResourceDir string `yaml:"resource_dir,omitempty"`
	// Basename prefix of the metadata files. The injected entry reuses the
	// prefix with a generated-variant suffix appended.
	FilePrefix string `yaml:"file_prefix,omitempty"`
	// Comment line heading the injected entry.
	Header string `yaml:"header,omitempty"`
	// Source-file extension identifying units written in the tracked
	// language.
	SourceExt string `yaml:"source_ext,omitempty"`
}

// ApplyDefaults fills in the fixed upstream conventions for all settings
// that were left unset by the configuration file.
func (m *Mapping) ApplyDefaults() {
	if m.ResourceDir == "" {
		m.ResourceDir = metadata.DefaultResourceDir
	}
	if m.FilePrefix == "" {
		m.FilePrefix = metadata.DefaultFilePrefix
	}
	if m.Header == "" {
		m.Header = DefaultHeader
	}
	if m.SourceExt == "" {
		m.SourceExt = DefaultSourceExt
	}
}

// EntryName is the path of the entry that merged records are written to
// inside each target archive.
func (m *Mapping) EntryName() string {
	return path.Join(m.ResourceDir, m.FilePrefix+metadata.EntrySuffix)
}
