// Package fs provides a file-based ResourceStore. Content is persisted
// as one file per resource under a base directory, so the memoization
// cache survives across crawl runs.
package fs

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/crawlkit"
)

// Ensure Store implements crawlkit.ResourceStore at compile time.
var _ crawlkit.ResourceStore = (*Store)(nil)

// Store persists resource content as files under a base directory.
// Concurrent writes to different identifiers are safe; writes to the
// same identifier do not occur within a crawl because the visited
// tracker admits a single claimant per identifier.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// PathForID converts a resource identifier to a relative file path.
// Example: https://example.com/docs/api → example.com/docs/api.html
//
// The mapping is injective for identifiers that share a normalized
// form: URLs that differ only by query string get distinct names via a
// hash suffix, and every path gains an extension so a resource can
// never collide with the directory of its children.
func PathForID(id string) (string, error) {
	u, err := url.Parse(id)
	if err != nil {
		return "", crawlkit.Errorf(crawlkit.EINVALID, "invalid resource identifier %q: %v", id, err)
	}
	if u.Host == "" {
		return "", crawlkit.Errorf(crawlkit.EINVALID, "resource identifier %q has no host", id)
	}

	path := u.Path
	switch {
	case path == "" || path == "/":
		path = "index"
	default:
		path = strings.TrimPrefix(path, "/")
		if strings.HasSuffix(path, "/") {
			path += "index"
		}
	}

	if u.RawQuery != "" {
		path = fmt.Sprintf("%s-%x", path, xxhash.Sum64String(id))
	}

	return filepath.Join(u.Host, filepath.FromSlash(path+".html")), nil
}

func (s *Store) fullPath(id string) (string, error) {
	rel, err := PathForID(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, rel), nil
}

// Exists reports whether content for id has been persisted.
func (s *Store) Exists(ctx context.Context, id string) bool {
	full, err := s.fullPath(id)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// Read returns the persisted content for id.
func (s *Store) Read(ctx context.Context, id string) (string, error) {
	full, err := s.fullPath(id)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(full)
	if os.IsNotExist(err) {
		return "", crawlkit.Errorf(crawlkit.ENOTFOUND, "resource %q not found", id)
	}
	if err != nil {
		return "", crawlkit.Errorf(crawlkit.EINTERNAL, "reading %q: %v", id, err)
	}
	return string(data), nil
}

// Write persists content for id. The file appears atomically: content
// is staged to a temporary file and renamed into place, so readers
// never observe a partial write.
func (s *Store) Write(ctx context.Context, id string, content string) error {
	full, err := s.fullPath(id)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return crawlkit.Errorf(crawlkit.EINTERNAL, "creating directory for %q: %v", id, err)
	}

	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return crawlkit.Errorf(crawlkit.EINTERNAL, "writing %q: %v", id, err)
	}
	if err := os.Rename(tmp, full); err != nil {
		return crawlkit.Errorf(crawlkit.EINTERNAL, "committing %q: %v", id, err)
	}
	return nil
}
