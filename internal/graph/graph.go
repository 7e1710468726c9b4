package graph

import (
	"strings"
)

// Unit is a single node in the dependency graph exported by the upstream
// build. Only the attributes consumed by the injection pipeline are exposed,
// the upstream build remains the owner of the full target model.
type Unit interface {
	// Unique identifier of the unit within the build graph.
	Name() string
	// Whether the unit is a binary-like packaging unit with jar products.
	IsBinary() bool
	// Whether the unit is first-party source as opposed to a third-party or
	// pre-built dependency. Only internal units take part in reachability.
	IsInternal() bool
	// Whether the unit is written in the language associated with the given
	// source-file extension. A unit matches either through an explicit
	// language tag or by carrying at least one source with the extension,
	// so that units whose sources have not been written yet still count.
	HasSources(ext string) bool
	// Paths of the unit's source files, relative to the source root.
	Sources() []string
	// Direct dependencies of the unit.
	Deps() []Unit
}

// WalkInternal visits the given unit and every unit transitively reachable
// from it through internal units. External units prune the walk at their
// position. Each unit is visited at most once, making the walk safe on
// graphs that contain dependency cycles.
func WalkInternal(root Unit, visit func(Unit)) {
	seen := map[string]bool{}
	var walk func(Unit)
	walk = func(u Unit) {
		if seen[u.Name()] || !u.IsInternal() {
			return
		}
		seen[u.Name()] = true
		visit(u)
		for _, d := range u.Deps() {
			walk(d)
		}
	}
	walk(root)
}

// CollectClassNames derives the set of fully-qualified class names declared
// by the transitive internal dependency closure of the given unit. For every
// reachable unit written in the language identified by ext, each source path
// is mapped to a class name by replacing path separators with package
// qualifiers and stripping the source-file extension.
func CollectClassNames(root Unit, ext string) map[string]bool {
	names := map[string]bool{}
	WalkInternal(root, func(u Unit) {
		if !u.HasSources(ext) {
			return
		}
		for _, src := range u.Sources() {
			names[strings.ReplaceAll(strings.TrimSuffix(src, ext), "/", ".")] = true
		}
	})
	return names
}
