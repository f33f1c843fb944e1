package manifest

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is one record of the manifest's projects sequence.
//
// It wraps the record's mapping node; changes made through SetRevision land
// directly in the owning Document.
type Project struct {
	node *yaml.Node

	// Index is the position of the record in the projects sequence.
	Index int

	// RepoPath is the record's repo-path value.
	RepoPath string
}

// LookupKey derives the repo-path lookup key from a repository identifier.
//
// Only the segment after the last "/" is used, so "lhasystems/zephyr_boards"
// and "zephyr_boards" both yield "zephyr_boards".
//
// Parameters:
//   - identifier: A repository identifier, optionally namespace-qualified
//
// Returns:
//   - string: The final path segment of identifier
func LookupKey(identifier string) string {
	if i := strings.LastIndex(identifier, "/"); i >= 0 {
		return identifier[i+1:]
	}
	return identifier
}

// Projects returns the records of the projects sequence in order.
//
// Items that are not mappings are skipped. A missing or non-sequence
// projects key yields nil.
func (d *Document) Projects() []*Project {
	seq := mappingValue(d.body, ProjectsKey)
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil
	}

	projects := make([]*Project, 0, len(seq.Content))
	for i, item := range seq.Content {
		item = resolve(item)
		if item.Kind != yaml.MappingNode {
			continue
		}
		p := &Project{node: item, Index: i}
		if v := mappingValue(item, RepoPathKey); v != nil && v.Kind == yaml.ScalarNode && v.ShortTag() != nullTag {
			p.RepoPath = v.Value
		}
		projects = append(projects, p)
	}
	return projects
}

// FindProject returns the first project whose repo-path equals key exactly.
//
// Matching is case-sensitive with no normalization, and scanning stops at
// the first hit. An empty key never matches, so records without a repo-path
// are never selected.
//
// Parameters:
//   - key: The lookup key, usually from LookupKey
//
// Returns:
//   - *Project: The matching project
//   - bool: false when no project matches
func (d *Document) FindProject(key string) (*Project, bool) {
	if key == "" {
		return nil, false
	}
	for _, p := range d.Projects() {
		if p.RepoPath == key {
			return p, true
		}
	}
	return nil, false
}

// Revision returns the project's current revision.
//
// Returns:
//   - string: The revision text; empty when absent, null, or not a scalar
//   - bool: false when the revision key is absent or null
func (p *Project) Revision() (string, bool) {
	v := mappingValue(p.node, RevisionKey)
	if v == nil || (v.Kind == yaml.ScalarNode && v.ShortTag() == nullTag) {
		return "", false
	}
	if v.Kind != yaml.ScalarNode {
		return "", true
	}
	return v.Value, true
}

// SetRevision sets the project's revision to rev.
//
// When the current revision is already rev nothing is touched. An absent
// revision key is appended to the end of the record; an existing one is
// replaced in place, keeping its comments, anchor and quoting style. The
// value is always a string scalar, quoted whenever the plain form would read
// back as another type under YAML 1.1 or 1.2 ("123", "on", "no", "1:30").
//
// Parameters:
//   - rev: The new revision
//
// Returns:
//   - bool: true if the document was changed
func (p *Project) SetRevision(rev string) bool {
	if current, ok := p.Revision(); ok && current == rev && p.revisionIsScalar() {
		return false
	}

	for i := 0; i+1 < len(p.node.Content); i += 2 {
		if k := p.node.Content[i]; k.Kind == yaml.ScalarNode && k.Value == RevisionKey {
			replaceScalar(resolveForWrite(p.node, i+1), revisionValue(rev))
			return true
		}
	}

	p.node.Content = append(p.node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: RevisionKey},
		revisionValue(rev),
	)
	return true
}

func (p *Project) revisionIsScalar() bool {
	v := mappingValue(p.node, RevisionKey)
	return v != nil && v.Kind == yaml.ScalarNode
}

// resolveForWrite returns the value node at index i of mapping m. An alias
// value is replaced by a fresh scalar so the anchored node, which other
// records may share, stays untouched.
func resolveForWrite(m *yaml.Node, i int) *yaml.Node {
	v := m.Content[i]
	if v.Kind == yaml.AliasNode {
		v = &yaml.Node{Kind: yaml.ScalarNode}
		m.Content[i] = v
	}
	return v
}

// revisionValue builds the scalar node for rev the way yaml.v3 would encode
// a Go string, so old-style booleans and base-60 numbers come out quoted.
func revisionValue(rev string) *yaml.Node {
	var n yaml.Node
	if err := n.Encode(rev); err != nil || n.Kind != yaml.ScalarNode {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: rev, Style: yaml.DoubleQuotedStyle}
	}
	n.Tag = strTag
	return &n
}

// replaceScalar turns n into value. A quoted style already on n wins over a
// plain or quoted value style; block styles for multi-line values are kept.
func replaceScalar(n *yaml.Node, value *yaml.Node) {
	style := value.Style
	if quoted := n.Style & (yaml.SingleQuotedStyle | yaml.DoubleQuotedStyle); quoted != 0 &&
		style&(yaml.LiteralStyle|yaml.FoldedStyle) == 0 {
		style = quoted
	}
	n.Kind = yaml.ScalarNode
	n.Tag = value.Tag
	n.Value = value.Value
	n.Style = style
	n.Content = nil
	n.Alias = nil
}
