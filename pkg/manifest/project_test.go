package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestLookupKey tests derivation of the repo-path lookup key.
func TestLookupKey(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{identifier: "lhasystems/zephyr_boards", want: "zephyr_boards"},
		{identifier: "zephyr_boards", want: "zephyr_boards"},
		{identifier: "github.com/lhasystems/zephyr_boards", want: "zephyr_boards"},
		{identifier: "lhasystems/", want: ""},
		{identifier: "", want: ""},
		{identifier: "Zephyr_Boards", want: "Zephyr_Boards"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupKey(tt.identifier))
		})
	}
}

// TestLookupKeyIdempotent tests that deriving a key from a key is a no-op.
func TestLookupKeyIdempotent(t *testing.T) {
	for _, id := range []string{"lhasystems/zephyr_boards", "a/b/c", "plain"} {
		key := LookupKey(id)
		assert.Equal(t, key, LookupKey(key))
	}
}

// TestFindProject tests project matching by repo-path.
//
// It verifies:
//   - Matching is exact and case-sensitive
//   - The first of several matching records wins
//   - Records without a repo-path, and non-mapping items, never match
func TestFindProject(t *testing.T) {
	content := `projects:
  - just-a-string
  - name: no-repo-path
    revision: abc
  - name: first
    repo-path: dup
    revision: r1
  - name: second
    repo-path: dup
    revision: r2
  - name: nested
    repo-path: [not, scalar]
  - name: boards
    repo-path: zephyr_boards
`
	doc := mustParse(t, content)

	t.Run("exact match", func(t *testing.T) {
		p, ok := doc.FindProject("zephyr_boards")
		require.True(t, ok)
		assert.Equal(t, "zephyr_boards", p.RepoPath)
		assert.Equal(t, 5, p.Index)
	})

	t.Run("first match wins", func(t *testing.T) {
		p, ok := doc.FindProject("dup")
		require.True(t, ok)
		rev, _ := p.Revision()
		assert.Equal(t, "r1", rev)
		assert.Equal(t, 2, p.Index)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := doc.FindProject("Zephyr_Boards")
		assert.False(t, ok)
	})

	t.Run("empty key", func(t *testing.T) {
		_, ok := doc.FindProject("")
		assert.False(t, ok)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := doc.FindProject("missing")
		assert.False(t, ok)
	})

	t.Run("non-scalar repo-path", func(t *testing.T) {
		_, ok := doc.FindProject("not")
		assert.False(t, ok)
	})
}

// TestFindProjectNoProjects tests documents without a usable projects sequence.
func TestFindProjectNoProjects(t *testing.T) {
	for _, content := range []string{"", "projects: []\n", "projects:\n", "other: 1\n", "- repo-path: a\n"} {
		doc := mustParse(t, content)
		_, ok := doc.FindProject("a")
		assert.False(t, ok, "content %q", content)
	}
}

// TestFindProjectAlias tests that aliased records are matched.
func TestFindProjectAlias(t *testing.T) {
	doc := mustParse(t, "base: &boards\n  repo-path: zephyr_boards\n  revision: r1\nprojects:\n  - *boards\n")

	p, ok := doc.FindProject("zephyr_boards")
	require.True(t, ok)
	rev, present := p.Revision()
	assert.True(t, present)
	assert.Equal(t, "r1", rev)
}

// TestRevision tests reading the current revision.
func TestRevision(t *testing.T) {
	tests := []struct {
		name        string
		record      string
		want        string
		wantPresent bool
	}{
		{name: "string", record: "revision: v1.2.3", want: "v1.2.3", wantPresent: true},
		{name: "quoted", record: `revision: "0042"`, want: "0042", wantPresent: true},
		{name: "number", record: "revision: 42", want: "42", wantPresent: true},
		{name: "empty string", record: `revision: ""`, want: "", wantPresent: true},
		{name: "null", record: "revision: null", wantPresent: false},
		{name: "tilde", record: "revision: ~", wantPresent: false},
		{name: "empty value", record: "revision:", wantPresent: false},
		{name: "absent", record: "name: x", wantPresent: false},
		{name: "mapping", record: "revision: {a: b}", want: "", wantPresent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, "projects:\n  - repo-path: p\n    "+tt.record+"\n")
			p, ok := doc.FindProject("p")
			require.True(t, ok)

			got, present := p.Revision()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPresent, present)
		})
	}
}

// TestSetRevision tests the in-place revision mutation.
//
// It verifies:
//   - An equal revision is left untouched
//   - A different, null or non-scalar revision is replaced
//   - An absent revision is appended
func TestSetRevision(t *testing.T) {
	tests := []struct {
		name        string
		record      string
		rev         string
		wantChanged bool
	}{
		{name: "same value", record: "revision: abc", rev: "abc", wantChanged: false},
		{name: "same number text", record: "revision: 123", rev: "123", wantChanged: false},
		{name: "different value", record: "revision: abc", rev: "def", wantChanged: true},
		{name: "null value", record: "revision: null", rev: "def", wantChanged: true},
		{name: "absent", record: "name: x", rev: "def", wantChanged: true},
		{name: "mapping value", record: "revision: {a: b}", rev: "def", wantChanged: true},
		{name: "empty to empty", record: `revision: ""`, rev: "", wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, "projects:\n  - repo-path: p\n    "+tt.record+"\n")
			p, ok := doc.FindProject("p")
			require.True(t, ok)

			assert.Equal(t, tt.wantChanged, p.SetRevision(tt.rev))

			got, present := p.Revision()
			assert.True(t, present)
			assert.Equal(t, tt.rev, got)

			// A second call with the same value never changes anything.
			assert.False(t, p.SetRevision(tt.rev))
		})
	}
}

// TestSetRevisionQuotesNonStrings tests that revisions which look like other
// YAML types survive a round trip as strings.
func TestSetRevisionQuotesNonStrings(t *testing.T) {
	for _, rev := range []string{"12345", "true", "1.10", "null", "0x1f"} {
		t.Run(rev, func(t *testing.T) {
			doc := mustParse(t, "projects:\n  - repo-path: p\n    revision: abc\n")
			p, ok := doc.FindProject("p")
			require.True(t, ok)
			require.True(t, p.SetRevision(rev))

			out, err := doc.Encode()
			require.NoError(t, err)

			var decoded struct {
				Projects []map[string]interface{} `yaml:"projects"`
			}
			require.NoError(t, yaml.Unmarshal(out, &decoded))
			require.Len(t, decoded.Projects, 1)
			assert.Equal(t, rev, decoded.Projects[0]["revision"])
		})
	}
}

// TestSetRevisionQuotesYAML11Ambiguous tests that values a YAML 1.1 reader
// would take as booleans or base-60 numbers are written quoted, for both the
// replace and the append path.
func TestSetRevisionQuotesYAML11Ambiguous(t *testing.T) {
	tests := []struct {
		rev  string
		want string
	}{
		{rev: "on", want: `revision: "on"`},
		{rev: "no", want: `revision: "no"`},
		{rev: "OFF", want: `revision: "OFF"`},
		{rev: "1:30", want: `revision: "1:30"`},
		{rev: "v1.0.0", want: "revision: v1.0.0"},
	}

	records := map[string]string{
		"replace": "revision: 1234567",
		"append":  "name: x",
	}

	for _, tt := range tests {
		for path, record := range records {
			t.Run(path+"/"+tt.rev, func(t *testing.T) {
				doc := mustParse(t, "projects:\n  - repo-path: p\n    "+record+"\n")
				p, ok := doc.FindProject("p")
				require.True(t, ok)
				require.True(t, p.SetRevision(tt.rev))

				out, err := doc.Encode()
				require.NoError(t, err)
				assert.Contains(t, string(out), tt.want)

				var decoded struct {
					Projects []map[string]interface{} `yaml:"projects"`
				}
				require.NoError(t, yaml.Unmarshal(out, &decoded))
				assert.Equal(t, tt.rev, decoded.Projects[0]["revision"])
			})
		}
	}
}

// TestSetRevisionKeepsQuoting tests that an existing quoting style survives.
func TestSetRevisionKeepsQuoting(t *testing.T) {
	doc := mustParse(t, "projects:\n  - repo-path: p\n    revision: 'abc' # pinned\n")
	p, ok := doc.FindProject("p")
	require.True(t, ok)
	require.True(t, p.SetRevision("def"))

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(out), "revision: 'def' # pinned")
}

// TestSetRevisionAliasedValue tests that an aliased revision is replaced
// without modifying the anchored value.
func TestSetRevisionAliasedValue(t *testing.T) {
	content := "defaults:\n  rev: &rev v1.0.0\nprojects:\n  - repo-path: a\n    revision: *rev\n  - repo-path: b\n    revision: *rev\n"
	doc := mustParse(t, content)

	a, ok := doc.FindProject("a")
	require.True(t, ok)
	require.True(t, a.SetRevision("v2.0.0"))

	b, ok := doc.FindProject("b")
	require.True(t, ok)
	rev, _ := b.Revision()
	assert.Equal(t, "v1.0.0", rev)

	out, err := doc.Encode()
	require.NoError(t, err)

	var decoded struct {
		Projects []map[string]string `yaml:"projects"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "v2.0.0", decoded.Projects[0]["revision"])
	assert.Equal(t, "v1.0.0", decoded.Projects[1]["revision"])
}
