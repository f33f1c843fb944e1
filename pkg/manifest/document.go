// Package manifest models a west manifest as a YAML node tree.
//
// The tree is kept as decoded by gopkg.in/yaml.v3 so that a single field can
// be changed in place and the document written back with its key order,
// comments and optional top-level "manifest" wrapper intact.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Key names in a west manifest.
const (
	// WrapperKey is the optional top-level key holding the effective manifest.
	WrapperKey = "manifest"

	// ProjectsKey holds the sequence of project records.
	ProjectsKey = "projects"

	// RepoPathKey identifies a project record.
	RepoPathKey = "repo-path"

	// RevisionKey is the pinned revision of a project record.
	RevisionKey = "revision"
)

const (
	strTag  = "!!str"
	nullTag = "!!null"
)

// Document is a decoded manifest.
//
// Fields:
//   - root: The YAML document node; nil for an empty file
//   - body: The effective mapping (the wrapper's value when wrapped); nil when
//     the document has no top-level mapping
//   - wrapped: Whether the effective mapping sits under WrapperKey
type Document struct {
	root    *yaml.Node
	body    *yaml.Node
	wrapped bool
}

// Parse decodes manifest content into a Document.
//
// It performs the following operations:
//   - Step 1: Decode the first YAML document into a node tree
//   - Step 2: Reject content holding more than one YAML document
//   - Step 3: Select the effective mapping, unwrapping a top-level
//     "manifest" mapping when present
//
// Content that decodes to nothing (an empty file, or only comments) yields a
// Document with no projects. A top-level value that is not a mapping is kept
// for encoding but never matches a project.
//
// Parameters:
//   - content: Raw manifest bytes
//
// Returns:
//   - *Document: The decoded document
//   - error: The YAML syntax error, if any
func Parse(content []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("expected a single document, found another at line %d", extra.Line)
	}

	doc := &Document{root: &root}

	top := resolve(&root)
	if top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = resolve(top.Content[0])
	}
	if top.Kind != yaml.MappingNode {
		return doc, nil
	}

	doc.body = top
	if inner := mappingValue(top, WrapperKey); inner != nil && inner.Kind == yaml.MappingNode {
		doc.body = inner
		doc.wrapped = true
	}

	return doc, nil
}

// Wrapped reports whether the effective manifest sits under a top-level
// "manifest" key.
func (d *Document) Wrapped() bool {
	return d.wrapped
}

// Empty reports whether the document has no top-level mapping.
func (d *Document) Empty() bool {
	return d.body == nil
}

// Encode serializes the whole document, wrapper included, in block style with
// two-space indentation and the original key order.
//
// Flow style is cleared on every node before encoding, so inline mappings and
// sequences from the input come out as nested blocks.
//
// Returns:
//   - []byte: The encoded YAML; empty for an empty document
//   - error: Encoder failure
func (d *Document) Encode() ([]byte, error) {
	if d.root == nil {
		return []byte{}, nil
	}

	clearFlowStyle(d.root)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	return buf.Bytes(), nil
}

// mappingValue returns the value node for key in a mapping node, or nil.
// Aliased values are resolved.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if k := m.Content[i]; k.Kind == yaml.ScalarNode && k.Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func clearFlowStyle(n *yaml.Node) {
	if n == nil {
		return
	}
	n.Style &^= yaml.FlowStyle
	for _, c := range n.Content {
		clearFlowStyle(c)
	}
}
