// Package model defines the data structures shared by the header injector and the gallery tools.
package model

// BasePath is the relative prefix put in front of every site-relative link.
// It is either empty or ParentMarker.
type BasePath string

// ParentMarker is the parent-directory marker followed by a separator.
const ParentMarker BasePath = "../"

// RootBase is the base path of pages served from the site root.
const RootBase BasePath = ""

// Valid reports whether b is one of the two allowed base paths.
func (b BasePath) Valid() bool {
	return b == RootBase || b == ParentMarker
}

// Prefix joins the base path with a relative target.
func (b BasePath) Prefix(target string) string {
	return string(b) + target
}

// Fragment is rendered header markup.
type Fragment string

// Logo describes the header logo.
type Logo struct {
	Src    string `yaml:"src"`
	Alt    string `yaml:"alt"`
	Linked bool   `yaml:"linked"`
}

// MenuItem is a single navigation entry.
type MenuItem struct {
	Label    string `yaml:"label"`
	Target   string `yaml:"target"`
	Absolute bool   `yaml:"absolute"`
}

// Variant is a named header configuration: logo options plus an ordered menu.
type Variant struct {
	Name  string     `yaml:"name"`
	Logo  Logo       `yaml:"logo"`
	Items []MenuItem `yaml:"items"`
}
