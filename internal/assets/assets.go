package assets

import (
	"io/fs"
	"sort"
	"strings"
)

// DefaultStyleName is the style used when none is configured.
const DefaultStyleName = "default"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded style by name, without the .css extension.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// Styles lists the embedded style names in sorted order.
func Styles() []string {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".css"); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
