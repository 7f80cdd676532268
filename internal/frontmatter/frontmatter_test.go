package frontmatter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBibliography(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"single string",
			"---\nbibliography: refs.bib\n---\n# Title\n",
			[]string{"refs.bib"},
		},
		{
			"sequence",
			"---\nbibliography:\n  - a.bib\n  - b.bib\n---\nbody\n",
			[]string{"a.bib", "b.bib"},
		},
		{
			"absent field",
			"---\ntitle: My Paper\n---\nbody\n",
			nil,
		},
		{
			"no front matter",
			"# Just a heading\n\nbibliography: not-front-matter.bib\n",
			nil,
		},
		{
			"unterminated block",
			"---\nbibliography: refs.bib\nbody without closing\n",
			nil,
		},
		{
			"leading blank lines before block",
			"\n\n---\nbibliography: late.bib\n---\n",
			[]string{"late.bib"},
		},
		{
			"empty string value",
			"---\nbibliography: \"\"\n---\n",
			nil,
		},
		{
			"non-string scalar ignored",
			"---\nbibliography: 42\n---\n",
			nil,
		},
		{
			"mixed sequence keeps strings",
			"---\nbibliography:\n  - a.bib\n  - 7\n  - b.bib\n---\n",
			[]string{"a.bib", "b.bib"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, block.Bibliography()); diff != "" {
				t.Errorf("Bibliography() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse("---\nbibliography: [unclosed\n---\n")
	if err == nil {
		t.Fatal("Parse() with malformed YAML: expected error")
	}
}

func TestGet(t *testing.T) {
	block, err := Parse("---\ntitle: Paper\n---\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	v, ok := block.Get("title")
	if !ok || v != "Paper" {
		t.Errorf("Get(title) = %v, %v", v, ok)
	}
	if _, ok := block.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}
