// Package frontend parses optional YAML frontmatter from content files.
package frontend

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the scoring-relevant frontmatter a content file may carry. All
// fields are optional; unknown keys are ignored.
type Meta struct {
	ContentType    string `yaml:"content_type"`
	TargetAudience string `yaml:"target_audience"`
	Product        string `yaml:"product"`
	Title          string `yaml:"title"`
}

// Parse extracts YAML frontmatter delimited by --- lines and returns the
// parsed metadata plus the remaining body. Content without a leading ---
// is returned unchanged with empty metadata.
func Parse(content string) (*Meta, string, error) {
	if !strings.HasPrefix(content, "---") {
		return &Meta{}, content, nil
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		// Opening delimiter without a closing one; treat as plain body.
		return &Meta{}, content, nil
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return nil, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return &meta, strings.TrimPrefix(parts[2], "\n"), nil
}
