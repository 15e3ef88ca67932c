package parser

// Node is the generic model produced by parsing feed XML. Child elements are
// stored under their (lowercased) names, attributes under "@"-prefixed keys,
// and mixed text content under "#text". A text-only element collapses to a
// plain string value.
type Node map[string]any

const (
	attrPrefix = "@"
	textKey    = "#text"
)

// Child returns the named child as a Node, unwrapping a one-or-more array to
// its first element. Returns nil when absent or not a node.
func (n Node) Child(name string) Node {
	switch t := n[name].(type) {
	case Node:
		return t
	case []any:
		if len(t) > 0 {
			if child, ok := t[0].(Node); ok {
				return child
			}
		}
	}
	return nil
}

// Text returns the text content of the named child: the string value itself,
// the "#text" entry of a node, or the first non-empty text in an array.
func (n Node) Text(name string) string {
	return asText(n[name])
}

// Attr returns the named attribute of this node, or "" when absent.
func (n Node) Attr(name string) string {
	if s, ok := n[attrPrefix+name].(string); ok {
		return s
	}
	return ""
}

// List returns the named child coerced to an array: an existing array as-is,
// a single value wrapped, absence as nil. Element names in arrayElements are
// already materialized as arrays by Parse; List covers everything else.
func (n Node) List(name string) []any {
	switch t := n[name].(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}

func asText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case Node:
		if s, ok := t[textKey].(string); ok {
			return s
		}
	case []any:
		for _, e := range t {
			if s := asText(e); s != "" {
				return s
			}
		}
	}
	return ""
}
