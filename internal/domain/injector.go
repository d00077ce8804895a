package domain

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	m "aeronib.com/pkg/navhdr/internal/model"
)

// DefaultScriptName is the file name of the header script referenced by site pages.
const DefaultScriptName = "header.js"

// RunOptions controls how header scripts of a document are evaluated.
type RunOptions struct {
	Variant    m.Variant
	ScriptName string
	// Base overrides the base path derived from the script source when set.
	Base *m.BasePath
	// StripScript removes evaluated header scripts once every header is in place.
	StripScript bool
	// Dedupe skips an evaluation when the body already starts with a site header.
	Dedupe bool
}

// Execution records one evaluation of a header script. Src is the source of the
// script seen as current when it ran, which gives the base path.
type Execution struct {
	Src     string
	Base    m.BasePath
	Skipped bool
}

// Run evaluates every header script of doc the way a browser would while loading
// the page. Blocking scripts run first, in document order, each one seeing itself
// as the last script parsed so far. Deferred and module scripts run once parsing
// is over, in document order, and see the last script of the whole document.
// Each evaluation derives the base path from the current script and inserts a
// freshly built header at the start of the body.
func Run(doc *html.Node, opts RunOptions) ([]Execution, error) {
	name := opts.ScriptName
	if name == "" {
		name = DefaultScriptName
	}

	scripts := HeaderScripts(doc, name)
	executions := make([]Execution, 0, len(scripts))

	for _, script := range executionOrder(scripts) {
		execution, err := evaluate(doc, script, opts)
		if err != nil {
			return executions, err
		}

		executions = append(executions, execution)
	}

	if opts.StripScript {
		for _, script := range scripts {
			if script.Parent != nil {
				script.Parent.RemoveChild(script)
			}
		}
	}

	return executions, nil
}

// HeaderScripts returns the script elements of doc whose source names the header
// script, in document order.
func HeaderScripts(doc *html.Node, name string) []*html.Node {
	var matched []*html.Node

	for _, script := range Scripts(doc) {
		src, ok := ScriptSrc(script)
		if ok && matchesScript(src, name) {
			matched = append(matched, script)
		}
	}

	return matched
}

// DescribeScripts summarizes the header scripts of doc without modifying it. Base
// is the base path the script would use when run.
func DescribeScripts(doc *html.Node, name string) []m.ScriptRef {
	scripts := HeaderScripts(doc, name)
	refs := make([]m.ScriptRef, 0, len(scripts))

	for _, script := range scripts {
		src, _ := ScriptSrc(script)

		base := ResolveBasePath(src)
		if current, err := currentScript(doc, script); err == nil {
			currentSrc, _ := ScriptSrc(current)
			base = ResolveBasePath(currentSrc)
		}

		refs = append(refs, m.ScriptRef{
			Src:      src,
			Base:     base,
			InHead:   hasAncestor(script, atom.Head),
			Deferred: isDeferred(script),
		})
	}

	return refs
}

// executionOrder puts blocking scripts before deferred ones, keeping document
// order within each group.
func executionOrder(scripts []*html.Node) []*html.Node {
	ordered := make([]*html.Node, 0, len(scripts))

	var deferred []*html.Node

	for _, script := range scripts {
		if isDeferred(script) {
			deferred = append(deferred, script)
			continue
		}

		ordered = append(ordered, script)
	}

	return append(ordered, deferred...)
}

func evaluate(doc, script *html.Node, opts RunOptions) (Execution, error) {
	current, err := currentScript(doc, script)
	if err != nil {
		return Execution{}, err
	}

	src, _ := ScriptSrc(current)

	base := ResolveBasePath(src)
	if opts.Base != nil {
		base = *opts.Base
	}

	execution := Execution{Src: src, Base: base}

	if !bodyAvailable(script) {
		return execution, fmt.Errorf("evaluate %q: %w", src, ErrNoBody)
	}

	if opts.Dedupe && HasHeader(doc) {
		slog.Debug("Header already present, skipping", "src", src)

		execution.Skipped = true

		return execution, nil
	}

	if err := InjectHeader(doc, BuildHeader(base, opts.Variant)); err != nil {
		return execution, fmt.Errorf("evaluate %q: %w", src, err)
	}

	slog.Debug("Injected header", "src", src, "base", string(base), "variant", opts.Variant.Name)

	return execution, nil
}

// currentScript returns the last script element present when script runs. A
// blocking script sees every script up to and including itself; a deferred
// script runs after parsing and sees the whole document.
func currentScript(doc, script *html.Node) (*html.Node, error) {
	if isDeferred(script) {
		return LastScript(doc)
	}

	var last *html.Node

	walk(doc, func(n *html.Node) bool {
		if isElement(n, atom.Script) {
			last = n
		}

		return n != script
	})

	if last == nil {
		return nil, ErrNoScript
	}

	return last, nil
}

// bodyAvailable reports whether document.body exists when script runs. Blocking
// scripts in the head run before the body is parsed.
func bodyAvailable(script *html.Node) bool {
	return hasAncestor(script, atom.Body) || isDeferred(script)
}

func isDeferred(script *html.Node) bool {
	if _, ok := attrValue(script, "defer"); ok {
		return true
	}

	kind, _ := attrValue(script, "type")

	return strings.EqualFold(strings.TrimSpace(kind), "module")
}

func matchesScript(src, name string) bool {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}

	return src != "" && path.Base(src) == name
}
