// Package discovery finds scoreable content files under a root directory and
// infers each file's content type from its path.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/copyscore/internal/types"
)

// ContentPatterns are the globs used to find scoreable content files,
// relative to the scan root.
var ContentPatterns = []string{"**/*.md", "**/*.txt"}

// TypePattern maps a glob pattern to a content type for path-based type
// detection. Patterns are matched in order; first match wins.
type TypePattern struct {
	Pattern string
	Type    types.ContentType
}

// typePatterns defines the canonical directory layouts for each channel.
// More specific layouts come first; anything unmatched defaults to blog.
var typePatterns = []TypePattern{
	{"**/landing_page/**", types.ContentTypeLandingPage},
	{"**/landing-pages/**", types.ContentTypeLandingPage},
	{"**/landing/**", types.ContentTypeLandingPage},
	{"**/email/**", types.ContentTypeEmail},
	{"**/emails/**", types.ContentTypeEmail},
	{"**/newsletters/**", types.ContentTypeEmail},
	{"**/social/**", types.ContentTypeSocial},
	{"**/youtube/**", types.ContentTypeYouTube},
	{"**/videos/**", types.ContentTypeYouTube},
	{"**/blog/**", types.ContentTypeBlog},
	{"**/posts/**", types.ContentTypeBlog},
}

// DiscoverFiles returns every content file under root matching
// ContentPatterns, minus exclusions, sorted for deterministic processing.
// Paths are returned relative to root.
func DiscoverFiles(root string, excludes []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", root)
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range ContentPatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("globbing %s: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || isExcluded(m, excludes) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// DetectContentType infers a file's content type from its path relative to
// the scan root. Unmatched paths fall back to blog.
func DetectContentType(relPath string) types.ContentType {
	rel := filepath.ToSlash(relPath)
	for _, tp := range typePatterns {
		if ok, _ := doublestar.Match(tp.Pattern, rel); ok {
			return tp.Type
		}
	}
	return types.ContentTypeBlog
}

func isExcluded(relPath string, excludes []string) bool {
	rel := filepath.ToSlash(relPath)
	for _, pattern := range excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
