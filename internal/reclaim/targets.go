package reclaim

import "path/filepath"

// Outermost drops every target that lies below another target in the list.
// Removing the ancestor removes its descendants too, so deleting both would race.
// The order of the remaining targets is preserved.
func Outermost(targets []string) []string {
	set := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		set[filepath.Clean(target)] = struct{}{}
	}

	out := make([]string, 0, len(targets))

	for _, target := range targets {
		if !hasAncestorIn(filepath.Clean(target), set) {
			out = append(out, target)
		}
	}

	return out
}

func hasAncestorIn(path string, set map[string]struct{}) bool {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if _, ok := set[dir]; ok {
			return true
		}

		if parent := filepath.Dir(dir); parent == dir {
			return false
		}
	}
}
