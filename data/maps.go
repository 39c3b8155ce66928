package data

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultMap is the sample map used when no map is configured.
const DefaultMap = "citadel"

// Names returns the embedded map names, sorted.
func Names() ([]string, error) {
	entries, err := dataFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded maps: %w", err)
	}

	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadMap returns the raw YAML for the named embedded map.
func ReadMap(name string) ([]byte, error) {
	content, err := dataFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no embedded map %q: %w", name, err)
	}
	return content, nil
}

// MustReadMap returns the raw YAML for the named map, panicking on error.
func MustReadMap(name string) []byte {
	content, err := ReadMap(name)
	if err != nil {
		panic(err)
	}
	return content
}
