// Package frontmatter parses the YAML meta header at the top of a content page.
//
// A header is either fenced by "---" lines or wrapped in a "/* ... */" comment
// block. Only registered headers are extracted; lookup of the YAML field is
// case-insensitive.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"

	domainerrors "github.com/tilboerner/pico-multilanguage/internal/errors"
)

// Header maps a meta key to the front-matter field that populates it.
type Header struct {
	Key   string `json:"key"`
	Field string `json:"field"`
}

// Headers is the ordered set of known meta headers. A key may be listed more
// than once with different fields; the first field present wins.
type Headers []Header

// Add registers field as a source for key. Exact duplicates are ignored.
func (h *Headers) Add(key, field string) {
	for _, existing := range *h {
		if existing.Key == key && strings.EqualFold(existing.Field, field) {
			return
		}
	}
	*h = append(*h, Header{Key: key, Field: field})
}

// Keys returns the distinct meta keys in registration order.
func (h Headers) Keys() []string {
	seen := make(map[string]bool, len(h))
	keys := make([]string, 0, len(h))
	for _, header := range h {
		if seen[header.Key] {
			continue
		}
		seen[header.Key] = true
		keys = append(keys, header.Key)
	}
	return keys
}

// DefaultHeaders returns the headers every page understands.
func DefaultHeaders() Headers {
	return Headers{
		{Key: "title", Field: "Title"},
		{Key: "description", Field: "Description"},
		{Key: "author", Field: "Author"},
		{Key: "date", Field: "Date"},
		{Key: "robots", Field: "Robots"},
		{Key: "template", Field: "Template"},
	}
}

// Fields holds parsed meta values keyed by meta key.
// Every registered key is present, missing ones as "".
type Fields map[string]string

// Get returns the value for key, or "" when unset.
func (f Fields) Get(key string) string {
	return f[key]
}

// Parse extracts the registered headers from raw and returns them together
// with the remaining page body. Content without a header yields empty fields
// and the unchanged content.
func Parse(raw string, headers Headers) (Fields, string, error) {
	fields := make(Fields, len(headers))
	for _, key := range headers.Keys() {
		fields[key] = ""
	}

	block, body, ok := split(raw)
	if !ok {
		return fields, raw, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, "", domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid front matter")
	}

	lookup, err := mappingValues(&doc)
	if err != nil {
		return nil, "", err
	}

	for _, header := range headers {
		if fields[header.Key] != "" {
			continue
		}
		node, found := lookup[strings.ToLower(header.Field)]
		if !found {
			continue
		}
		value, err := scalarValue(node)
		if err != nil {
			return nil, "", domainerrors.Wrapf(err, domainerrors.CodeValidation, "header %s", header.Field)
		}
		fields[header.Key] = value
	}

	return fields, body, nil
}

// split separates the header block from the body.
func split(raw string) (block, body string, ok bool) {
	s := strings.TrimPrefix(raw, "\ufeff")

	var closing string
	switch {
	case strings.HasPrefix(s, "---"):
		s, closing = s[3:], "---"
	case strings.HasPrefix(s, "/*"):
		s, closing = s[2:], "*/"
	default:
		return "", raw, false
	}

	nl := strings.IndexByte(s, '\n')
	if nl < 0 || strings.TrimSpace(s[:nl]) != "" {
		return "", raw, false
	}
	s = s[nl+1:]

	offset := 0
	for offset <= len(s) {
		end := strings.IndexByte(s[offset:], '\n')
		var line, rest string
		if end < 0 {
			line, rest = s[offset:], ""
		} else {
			line, rest = s[offset:offset+end], s[offset+end+1:]
		}

		if strings.TrimSpace(line) == closing {
			return s[:offset], rest, true
		}
		if end < 0 {
			break
		}
		offset += end + 1
	}

	// Unterminated header: treat the whole file as body.
	return "", raw, false
}

// mappingValues indexes the top-level mapping of doc by lowercased key.
// The first occurrence of a key wins. An empty document has no values.
func mappingValues(doc *yaml.Node) (map[string]*yaml.Node, error) {
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, domainerrors.Validationf("invalid front matter: line %d: expected a mapping of headers", root.Line)
	}

	values := make(map[string]*yaml.Node, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := strings.ToLower(root.Content[i].Value)
		if _, seen := values[key]; !seen {
			values[key] = root.Content[i+1]
		}
	}
	return values, nil
}

// scalarValue returns the text of a scalar exactly as written, so 007 stays
// "007" and 1e3 stays "1e3". Null is "". Lists and maps are rejected.
func scalarValue(node *yaml.Node) (string, error) {
	node = resolve(node)
	if node.Kind != yaml.ScalarNode {
		return "", domainerrors.Validationf("line %d: expected a single value", node.Line)
	}
	if node.Tag == "!!null" {
		return "", nil
	}
	return node.Value, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
