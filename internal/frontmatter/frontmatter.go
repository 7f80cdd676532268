// Package frontmatter extracts and parses the YAML metadata block at
// the top of a document.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter marks the start and end of a front matter block.
const Delimiter = "---"

// Block holds the parsed front matter fields of one document.
type Block struct {
	fields map[string]any
}

// Parse extracts the leading front matter block from document text and
// parses it. A document without a block yields an empty Block, not an
// error; malformed YAML inside a block is an error.
func Parse(text string) (*Block, error) {
	raw, ok := extract(text)
	if !ok {
		return &Block{fields: map[string]any{}}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return &Block{fields: fields}, nil
}

// extract returns the text between the opening and closing delimiters.
// The opening delimiter must be the first non-blank line.
func extract(text string) (string, bool) {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == Delimiter {
			start = i
		}
		break
	}
	if start < 0 {
		return "", false
	}

	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			return strings.Join(lines[start+1:i], "\n"), true
		}
	}
	return "", false
}

// Get returns the raw value of a front matter field.
func (b *Block) Get(key string) (any, bool) {
	v, ok := b.fields[key]
	return v, ok
}

// Bibliography returns the declared bibliography paths. The field may
// be absent (nil result), a single string, or a sequence of strings;
// scalar non-string values are ignored.
func (b *Block) Bibliography() []string {
	v, ok := b.fields["bibliography"]
	if !ok {
		return nil
	}

	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		return []string{val}
	case []any:
		var paths []string
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				paths = append(paths, s)
			}
		}
		return paths
	default:
		return nil
	}
}
