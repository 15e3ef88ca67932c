package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// arrayElements lists the element names that are always materialized as
// arrays, for zero, one, or many occurrences in the source. Naive conversion
// collapses a lone child into a bare object, which would force every consumer
// to special-case singleton feeds.
var arrayElements = map[string]bool{
	"item":            true,
	"entry":           true,
	"media:content":   true,
	"media:thumbnail": true,
	"enclosure":       true,
}

// nsPrefixes maps well-known namespace URLs to their conventional prefixes so
// element keys stay stable regardless of how a feed declares its namespaces.
// Atom and RSS 1.0 are conventionally default namespaces, so they map to bare
// local names.
var nsPrefixes = map[string]string{
	"http://search.yahoo.com/mrss/":               "media",
	"http://purl.org/rss/1.0/modules/content/":    "content",
	"http://purl.org/dc/elements/1.1/":            "dc",
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#": "rdf",
	"http://www.w3.org/2005/Atom":                 "",
	"http://purl.org/rss/1.0/":                    "",
}

type frame struct {
	node        Node
	name        string
	text        strings.Builder
	hasChildren bool
}

// Parse converts raw feed XML into a generic nested model. HTML/XML entities
// are decoded, non-UTF-8 charsets are transcoded, and the names listed in
// arrayElements always come out as arrays. Malformed XML fails the whole
// parse; no partial model is returned.
func Parse(data []byte) (Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return charset.NewReaderLabel(label, input)
	}

	root := &frame{node: Node{}}
	stack := []*frame{root}
	sawElement := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			sawElement = true
			child := &frame{node: Node{}, name: elementName(t.Name)}
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
					continue
				}
				child.node[attrPrefix+strings.ToLower(attr.Name.Local)] = attr.Value
			}
			stack[len(stack)-1].hasChildren = true
			stack = append(stack, child)

		case xml.EndElement:
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return nil, fmt.Errorf("malformed XML: unbalanced closing tag </%s>", t.Name.Local)
			}
			insert(stack[len(stack)-1].node, closed.name, closed.value())

		case xml.CharData:
			stack[len(stack)-1].text.Write([]byte(t))
		}
	}

	if !sawElement {
		return nil, fmt.Errorf("malformed XML: no elements found")
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("malformed XML: %d unclosed elements", len(stack)-1)
	}

	return root.node, nil
}

// value collapses a closed element: text-only elements become plain strings,
// anything with attributes or children stays a Node with the trimmed text
// under "#text".
func (f *frame) value() any {
	text := strings.TrimSpace(f.text.String())
	if !f.hasChildren && len(f.node) == 0 {
		return text
	}
	if text != "" {
		f.node[textKey] = text
	}
	return f.node
}

func insert(parent Node, name string, value any) {
	existing, ok := parent[name]
	if !ok {
		if arrayElements[name] {
			parent[name] = []any{value}
		} else {
			parent[name] = value
		}
		return
	}
	if list, ok := existing.([]any); ok {
		parent[name] = append(list, value)
		return
	}
	parent[name] = []any{existing, value}
}

// elementName produces the model key for an element. Local names are
// lowercased since feeds disagree on tag casing. Known namespaces get their
// conventional prefix, an undeclared prefix passes through as written, and an
// unrecognized namespace URL falls back to the bare local name.
func elementName(name xml.Name) string {
	local := strings.ToLower(name.Local)
	if name.Space == "" {
		return local
	}
	if prefix, ok := nsPrefixes[name.Space]; ok {
		if prefix == "" {
			return local
		}
		return prefix + ":" + local
	}
	if strings.ContainsAny(name.Space, "/:") {
		return local
	}
	return strings.ToLower(name.Space) + ":" + local
}
