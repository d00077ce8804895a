package domain

import (
	"fmt"
	"strings"

	m "aeronib.com/pkg/navhdr/internal/model"
)

// ResolveBasePath classifies a script source location.
// Only a literal "../" prefix yields the parent marker; everything else, including an
// empty or missing source, maps to the root base path.
func ResolveBasePath(src string) m.BasePath {
	if src != "" && strings.HasPrefix(src, string(m.ParentMarker)) {
		return m.ParentMarker
	}

	return m.RootBase
}

// ParseBasePath validates an explicitly configured base path.
func ParseBasePath(value string) (m.BasePath, error) {
	base := m.BasePath(value)
	if !base.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidBase, value)
	}

	return base, nil
}
