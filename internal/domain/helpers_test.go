package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()

	doc, err := ParseDocument([]byte(markup))
	require.NoError(t, err)

	return doc
}

// bodyElements returns the tag names of the element children of the body, with
// the class of headers appended ("header.site-header").
func bodyElements(t *testing.T, doc *html.Node) []string {
	t.Helper()

	body := FindBody(doc)
	require.NotNil(t, body)

	var names []string

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		name := c.Data
		if class, ok := attrValue(c, "class"); ok && c.DataAtom == atom.Header {
			name += "." + class
		}

		names = append(names, name)
	}

	return names
}

// menuHrefs returns the href of every link inside the nav of a header.
func menuHrefs(header *html.Node) []string {
	var hrefs []string

	walk(header, func(n *html.Node) bool {
		if isElement(n, atom.A) && hasAncestor(n, atom.Nav) {
			href, _ := attrValue(n, "href")
			hrefs = append(hrefs, href)
		}

		return true
	})

	return hrefs
}

func firstHeader(t *testing.T, doc *html.Node) *html.Node {
	t.Helper()

	body := FindBody(doc)
	require.NotNil(t, body)

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Header) {
			return c
		}
	}

	t.Fatalf("no header in body")

	return nil
}
