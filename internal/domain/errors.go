package domain

import "errors"

var (
	// ErrNoBody is returned when a header is injected into a document without a body,
	// or when the header script runs before the body exists.
	ErrNoBody = errors.New("document has no body")
	// ErrNoScript is returned when the document holds no script element at all.
	ErrNoScript = errors.New("document has no script element")
	// ErrInvalidBase is returned for a configured base path other than "" or "../".
	ErrInvalidBase = errors.New(`base path must be "" or "../"`)
	// ErrUnknownVariant is returned when a header variant name is not defined.
	ErrUnknownVariant = errors.New("unknown header variant")
	// ErrImagesDirMissing is returned when the gallery images directory does not exist.
	ErrImagesDirMissing = errors.New("images directory does not exist")
)
