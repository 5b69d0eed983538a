package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sanitize re-parses an HTML fragment and serializes it back with
// script and style elements removed and event-handler or javascript:
// attributes stripped.
func Sanitize(fragment string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyContext())
	if err != nil {
		return "", fmt.Errorf("parse html fragment: %w", err)
	}

	// ParseFragment hands back a flat list of detached siblings. Reparent
	// them under a synthetic body so a top-level script or style element is
	// removed the same way a nested one is.
	root := bodyContext()
	for _, n := range nodes {
		root.AppendChild(n)
	}
	clean(root)

	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
	}
	return b.String(), nil
}

func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}

func clean(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && (c.Data == "script" || c.Data == "style") {
			n.RemoveChild(c)
			continue
		}
		clean(c)
	}

	if n.Type != html.ElementNode {
		return
	}
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if strings.HasPrefix(strings.ToLower(a.Key), "on") {
			continue
		}
		if (a.Key == "href" || a.Key == "src") &&
			strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.Val)), "javascript:") {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}
