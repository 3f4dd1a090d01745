package crawlkit

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Resource represents a fetched unit of content keyed by its identifier.
// Identifiers are opaque normalized URL strings; two identifiers are
// equal iff they denote the same logical resource. Normalization is a
// collaborator concern and happens before an identifier enters the core.
type Resource struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the resource contains invalid fields.
func (r *Resource) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "resource identifier required")
	}
	return nil
}

// ContentHash computes a hash of the content using xxhash.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
