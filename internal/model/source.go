package model

// Path represents a file system path.
type Path string

// File represents a file discovered under the site root.
type File struct {
	FullPath  Path
	ShortPath Path // relative to the scanned root, used for display
	Hash      string
}

// Page is an HTML document of the site.
type Page struct {
	File    *File
	Scripts []ScriptRef
	// HasHeader is true when the body already starts with a site header.
	HasHeader bool
}

// ScriptRef describes a header script occurrence found in a page.
type ScriptRef struct {
	Src      string
	Base     BasePath
	InHead   bool
	Deferred bool
}
