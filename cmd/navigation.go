package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"aeronib.com/pkg/navhdr/internal/domain"
	m "aeronib.com/pkg/navhdr/internal/model"
)

// loadVariant resolves the configured header variant, including variants from
// the optional navigation file.
func loadVariant() (m.Variant, error) {
	var extra [][]byte

	if path := strings.TrimSpace(viper.GetString(headerNavigationKey)); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return m.Variant{}, fmt.Errorf("read navigation file: %w", err)
		}

		extra = append(extra, data)
	}

	nav, err := domain.LoadNavigation(extra...)
	if err != nil {
		return m.Variant{}, err
	}

	return nav.Variant(viper.GetString(headerVariantKey))
}

// explicitBase returns the configured base path, or nil when the base path must
// be derived from the script source.
func explicitBase() (*m.BasePath, error) {
	if !viper.IsSet(headerBaseKey) {
		return nil, nil
	}

	base, err := domain.ParseBasePath(viper.GetString(headerBaseKey))
	if err != nil {
		return nil, err
	}

	return &base, nil
}
