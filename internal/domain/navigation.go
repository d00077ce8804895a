package domain

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	m "aeronib.com/pkg/navhdr/internal/model"
)

// DefaultVariant is the variant used when none is configured.
const DefaultVariant = "a"

//go:embed navigation.yaml
var builtinNavigation []byte

type navigationFile struct {
	Variants []m.Variant `yaml:"variants"`
}

// Navigation holds the header variants known to the tool, keyed by name.
type Navigation struct {
	variants map[string]m.Variant
	names    []string
}

// LoadNavigation decodes the built-in variants, then each extra document in order.
// A later definition replaces an earlier one with the same name.
func LoadNavigation(extra ...[]byte) (*Navigation, error) {
	nav := &Navigation{variants: make(map[string]m.Variant)}

	if err := nav.merge(builtinNavigation); err != nil {
		return nil, fmt.Errorf("built-in navigation: %w", err)
	}

	for _, doc := range extra {
		if err := nav.merge(doc); err != nil {
			return nil, err
		}
	}

	return nav, nil
}

// Variant returns the variant registered under name.
func (n *Navigation) Variant(name string) (m.Variant, error) {
	variant, ok := n.variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return m.Variant{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, name, strings.Join(n.names, ", "))
	}

	return variant, nil
}

// Names returns the registered variant names in definition order.
func (n *Navigation) Names() []string {
	return slices.Clone(n.names)
}

func (n *Navigation) merge(doc []byte) error {
	var file navigationFile
	if err := yaml.Unmarshal(doc, &file); err != nil {
		return fmt.Errorf("decode navigation: %w", err)
	}

	for _, variant := range file.Variants {
		if err := validateVariant(variant); err != nil {
			return err
		}

		key := strings.ToLower(strings.TrimSpace(variant.Name))
		if _, exists := n.variants[key]; !exists {
			n.names = append(n.names, key)
		}

		n.variants[key] = variant
	}

	return nil
}

func validateVariant(variant m.Variant) error {
	if strings.TrimSpace(variant.Name) == "" {
		return errors.New("navigation variant without a name")
	}

	for i, item := range variant.Items {
		if item.Label == "" {
			return fmt.Errorf("variant %q: item %d has no label", variant.Name, i)
		}
	}

	return nil
}
