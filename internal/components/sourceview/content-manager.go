package sourceview

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	lru "github.com/hashicorp/golang-lru/v2"
)

// contentManager colorizes step snippets and caches the result per step
// title, since the same few snippets are re-rendered on every visit.
type contentManager struct {
	cache *lru.Cache[string, string]
}

func newContentManager() contentManager {
	cache, err := lru.New[string, string](8)
	if err != nil {
		panic(err)
	}
	return contentManager{
		cache: cache,
	}
}

func (m *contentManager) getSource(title, source string) (string, error) {
	if content, ok := m.cache.Get(title); ok {
		return content, nil
	}

	content, err := colorize(source)
	if err != nil {
		return "", err
	}
	m.cache.Add(title, content)

	return content, nil
}

func colorize(content string) (string, error) {
	sb := strings.Builder{}

	err := quick.Highlight(&sb, content, "go", "terminal8", "native")
	if err != nil {
		return "", fmt.Errorf("error highlighting the source snippet: %w", err)
	}

	return sb.String(), nil
}
