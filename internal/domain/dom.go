package domain

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseDocument parses a full HTML document. The parser always synthesizes
// html, head and body elements.
func ParseDocument(content []byte) (*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// RenderDocument serializes doc back to markup.
func RenderDocument(doc *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	return buf.Bytes(), nil
}

// Scripts returns every script element of doc in document order.
func Scripts(doc *html.Node) []*html.Node {
	var scripts []*html.Node

	walk(doc, func(n *html.Node) bool {
		if isElement(n, atom.Script) {
			scripts = append(scripts, n)
		}

		return true
	})

	return scripts
}

// LastScript returns the last script element of doc in document order.
func LastScript(doc *html.Node) (*html.Node, error) {
	scripts := Scripts(doc)
	if len(scripts) == 0 {
		return nil, ErrNoScript
	}

	return scripts[len(scripts)-1], nil
}

// ScriptSrc returns the src attribute of a script element and whether it is set.
func ScriptSrc(script *html.Node) (string, bool) {
	return attrValue(script, "src")
}

// FindBody returns the body element of doc, or nil.
func FindBody(doc *html.Node) *html.Node {
	var body *html.Node

	walk(doc, func(n *html.Node) bool {
		if isElement(n, atom.Body) {
			body = n
			return false
		}

		return true
	})

	return body
}

// InjectHeader inserts header as the first child of the body of doc. Existing
// children keep their order after it. A header attached elsewhere is moved.
// Nothing checks for a header already present: injecting twice yields two headers.
func InjectHeader(doc, header *html.Node) error {
	body := FindBody(doc)
	if body == nil {
		return ErrNoBody
	}

	if header.Parent != nil {
		header.Parent.RemoveChild(header)
	}

	body.InsertBefore(header, body.FirstChild)

	return nil
}

// HasHeader reports whether the first element of the body is a site header.
// Whitespace text and comments before it are ignored.
func HasHeader(doc *html.Node) bool {
	body := FindBody(doc)
	if body == nil {
		return false
	}

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.CommentNode:
			continue
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}

			return false
		case html.ElementNode:
			return c.DataAtom == atom.Header && hasClass(c, HeaderClass)
		default:
			return false
		}
	}

	return false
}

// CountHeaders returns the number of site headers at the top level of the body.
func CountHeaders(doc *html.Node) int {
	body := FindBody(doc)
	if body == nil {
		return 0
	}

	count := 0

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Header) && hasClass(c, HeaderClass) {
			count++
		}
	}

	return count
}

// walk visits n and its descendants in document order until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}

	return true
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func hasClass(n *html.Node, class string) bool {
	value, ok := attrValue(n, "class")
	if !ok {
		return false
	}

	return slices.Contains(strings.Fields(value), class)
}

func hasAncestor(n *html.Node, a atom.Atom) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if isElement(p, a) {
			return true
		}
	}

	return false
}
