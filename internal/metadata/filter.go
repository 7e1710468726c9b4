package metadata

import (
	"fmt"
	"strings"
)

// The only record kinds that are scoped to a specific class. All other
// keynames describe build-level provenance and always pass the filter.
const (
	fieldKey      = "field"
	positionalKey = "positional"
)

// Filter reduces the scanned records to those relevant for a single binary.
// Blank records are dropped. With includeAll set every remaining record is
// kept. Otherwise records keyed 'field' or 'positional' are kept only when
// the class they reference is part of the supplied class-name set, while
// records with any other keyname pass through unconditionally.
//
// A class-scoped record without a class token indicates corrupted processor
// output and is surfaced as an error together with the offending record.
func Filter(lines map[string]bool, classnames map[string]bool, includeAll bool) ([]string, error) {
	var kept []string
	for line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if includeAll {
			kept = append(kept, line)
			continue
		}

		tokens := strings.Split(trimmed, " ")
		if tokens[0] != fieldKey && tokens[0] != positionalKey {
			kept = append(kept, line)
			continue
		}
		if len(tokens) < 2 || tokens[1] == "" {
			return nil, fmt.Errorf("malformed %s record %q: missing class name", tokens[0], line)
		}
		if classnames[tokens[1]] {
			kept = append(kept, line)
		}
	}
	return kept, nil
}
