package domain

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	m "aeronib.com/pkg/navhdr/internal/model"
)

const (
	// HeaderClass marks the injected header element.
	HeaderClass = "site-header"

	logoClass = "logo"
	menuClass = "menu"
)

// BuildHeader returns a detached node tree for the header of variant, with every
// relative target prefixed by base. Absolute targets are left untouched.
func BuildHeader(base m.BasePath, variant m.Variant) *html.Node {
	header := newElement(atom.Header, attr("class", HeaderClass))
	header.AppendChild(buildLogo(base, variant.Logo))

	nav := newElement(atom.Nav, attr("class", menuClass))
	for _, item := range variant.Items {
		link := newElement(atom.A, attr("href", itemTarget(base, item)))
		link.AppendChild(&html.Node{Type: html.TextNode, Data: item.Label})
		nav.AppendChild(link)
	}

	header.AppendChild(nav)

	return header
}

// RenderHeader renders the header of variant for base as markup.
func RenderHeader(base m.BasePath, variant m.Variant) (m.Fragment, error) {
	var sb strings.Builder
	if err := html.Render(&sb, BuildHeader(base, variant)); err != nil {
		return "", fmt.Errorf("render header %q: %w", variant.Name, err)
	}

	return m.Fragment(sb.String()), nil
}

func buildLogo(base m.BasePath, logo m.Logo) *html.Node {
	src := attr("src", base.Prefix(logo.Src))
	alt := attr("alt", logo.Alt)

	if !logo.Linked {
		return newElement(atom.Img, attr("class", logoClass), src, alt)
	}

	link := newElement(atom.A, attr("class", logoClass), attr("href", string(base)))
	link.AppendChild(newElement(atom.Img, src, alt))

	return link
}

func itemTarget(base m.BasePath, item m.MenuItem) string {
	if item.Absolute {
		return item.Target
	}

	return base.Prefix(item.Target)
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
