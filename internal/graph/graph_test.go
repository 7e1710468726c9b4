package graph

import (
	"testing"

	"go.uber.org/zap"

	"github.com/jarinject/jarinject/internal/testlib"
)

func TestWalkInternal(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		graph   string
		root    string
		visited map[string]bool
	}{
		"SingleUnit": {
			graph: `
units:
  - name: bin
    internal: true
`,
			root:    "bin",
			visited: map[string]bool{"bin": true},
		},
		"LinearChain": {
			graph: `
units:
  - name: bin
    internal: true
    deps: [lib]
  - name: lib
    internal: true
    deps: [base]
  - name: base
    internal: true
`,
			root:    "bin",
			visited: map[string]bool{"bin": true, "lib": true, "base": true},
		},
		"DiamondVisitedOnce": {
			graph: `
units:
  - name: bin
    internal: true
    deps: [left, right]
  - name: left
    internal: true
    deps: [base]
  - name: right
    internal: true
    deps: [base]
  - name: base
    internal: true
`,
			root:    "bin",
			visited: map[string]bool{"bin": true, "left": true, "right": true, "base": true},
		},
		"CycleTerminates": {
			graph: `
units:
  - name: bin
    internal: true
    deps: [lib]
  - name: lib
    internal: true
    deps: [bin]
`,
			root:    "bin",
			visited: map[string]bool{"bin": true, "lib": true},
		},
		"ExternalUnitPrunesWalk": {
			graph: `
units:
  - name: bin
    internal: true
    deps: [thirdparty]
  - name: thirdparty
    deps: [hidden]
  - name: hidden
    internal: true
`,
			root:    "bin",
			visited: map[string]bool{"bin": true},
		},
		"ExternalRoot": {
			graph: `
units:
  - name: bin
`,
			root:    "bin",
			visited: map[string]bool{},
		},
	}

	for n := range tcs {
		tc := tcs[n]
		t.Run(n, func(t *testing.T) {
			t.Parallel()

			g, err := Load(zap.NewNop(), []byte(tc.graph))
			testlib.NoError(t, true, err)

			visited := map[string]bool{}
			for _, u := range g.Units() {
				if u.Name() == tc.root {
					WalkInternal(u, func(v Unit) { visited[v.Name()] = true })
				}
			}
			testlib.Equal(t, false, tc.visited, visited)
		})
	}
}

func TestCollectClassNames(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		graph string
		root  string
		names map[string]bool
	}{
		"SingleSource": {
			graph: `
units:
  - name: bin
    internal: true
    sources: [com/foo/Main.java]
`,
			root:  "bin",
			names: map[string]bool{"com.foo.Main": true},
		},
		"TransitiveSources": {
			graph: `
units:
  - name: bin
    internal: true
    sources: [com/foo/Main.java]
    deps: [lib]
  - name: lib
    internal: true
    sources: [com/foo/lib/Util.java, com/foo/lib/Helper.java]
`,
			root: "bin",
			names: map[string]bool{
				"com.foo.Main":       true,
				"com.foo.lib.Util":   true,
				"com.foo.lib.Helper": true,
			},
		},
		"NonJavaUnitSkipped": {
			graph: `
units:
  - name: bin
    internal: true
    sources: [com/foo/Main.java]
    deps: [scalalib]
  - name: scalalib
    internal: true
    sources: [com/foo/scala/Thing.scala]
`,
			root:  "bin",
			names: map[string]bool{"com.foo.Main": true},
		},
		"LanguageTagWithoutSources": {
			graph: `
units:
  - name: bin
    internal: true
    language: java
`,
			root:  "bin",
			names: map[string]bool{},
		},
		"ExternalDepContributesNothing": {
			graph: `
units:
  - name: bin
    internal: true
    sources: [com/foo/Main.java]
    deps: [prebuilt]
  - name: prebuilt
    sources: [com/bar/Vendored.java]
`,
			root:  "bin",
			names: map[string]bool{"com.foo.Main": true},
		},
		"NoSources": {
			graph: `
units:
  - name: bin
    internal: true
`,
			root:  "bin",
			names: map[string]bool{},
		},
	}

	for n := range tcs {
		tc := tcs[n]
		t.Run(n, func(t *testing.T) {
			t.Parallel()

			g, err := Load(zap.NewNop(), []byte(tc.graph))
			testlib.NoError(t, true, err)

			for _, u := range g.Units() {
				if u.Name() == tc.root {
					testlib.Equal(t, false, tc.names, CollectClassNames(u, ".java"))
				}
			}
		})
	}
}

func TestHasSources(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		unit    unit
		ext     string
		matches bool
	}{
		"BySourceExtension": {
			unit:    unit{sources: []string{"com/foo/Main.java"}},
			ext:     ".java",
			matches: true,
		},
		"ByLanguageTag": {
			unit:    unit{language: "java"},
			ext:     ".java",
			matches: true,
		},
		"TagBeatsMissingSources": {
			unit:    unit{language: "java", sources: []string{"com/foo/Thing.scala"}},
			ext:     ".java",
			matches: true,
		},
		"NoMatch": {
			unit:    unit{language: "scala", sources: []string{"com/foo/Thing.scala"}},
			ext:     ".java",
			matches: false,
		},
		"Empty": {
			unit:    unit{},
			ext:     ".java",
			matches: false,
		},
	}

	for n := range tcs {
		tc := tcs[n]
		t.Run(n, func(t *testing.T) {
			t.Parallel()

			testlib.Equal(t, false, tc.matches, tc.unit.HasSources(tc.ext))
		})
	}
}
