package fs_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/crawlkit"
	"github.com/fwojciec/crawlkit/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathForID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "simple path",
			id:   "https://example.com/docs/api",
			want: "example.com/docs/api.html",
		},
		{
			name: "root",
			id:   "https://example.com",
			want: "example.com/index.html",
		},
		{
			name: "root with slash",
			id:   "https://example.com/",
			want: "example.com/index.html",
		},
		{
			name: "trailing slash",
			id:   "https://example.com/docs/",
			want: "example.com/docs/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.PathForID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathForID_QueryStringsProduceDistinctPaths(t *testing.T) {
	t.Parallel()

	a, err := fs.PathForID("https://example.com/search?q=one")
	require.NoError(t, err)
	b, err := fs.PathForID("https://example.com/search?q=two")
	require.NoError(t, err)
	c, err := fs.PathForID("https://example.com/search")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestPathForID_ParentNeverCollidesWithChildDirectory(t *testing.T) {
	t.Parallel()

	parent, err := fs.PathForID("https://example.com/docs")
	require.NoError(t, err)
	child, err := fs.PathForID("https://example.com/docs/intro")
	require.NoError(t, err)

	assert.Equal(t, "example.com/docs.html", parent)
	assert.Equal(t, "example.com/docs/intro.html", child)
}

func TestPathForID_RejectsHostlessIdentifier(t *testing.T) {
	t.Parallel()

	_, err := fs.PathForID("not-a-url")
	assert.Equal(t, crawlkit.EINVALID, crawlkit.ErrorCode(err))
}

func TestStore_WriteReadRoundtrip(t *testing.T) {
	t.Parallel()

	store := fs.NewStore(t.TempDir())
	ctx := context.Background()
	id := "https://example.com/docs/page"

	assert.False(t, store.Exists(ctx, id))

	require.NoError(t, store.Write(ctx, id, "<html>content</html>"))

	assert.True(t, store.Exists(ctx, id))

	content, err := store.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "<html>content</html>", content)
}

func TestStore_ReadMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := fs.NewStore(t.TempDir())

	_, err := store.Read(context.Background(), "https://example.com/missing")
	assert.Equal(t, crawlkit.ENOTFOUND, crawlkit.ErrorCode(err))
}

func TestStore_SurvivesAcrossInstances(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	id := "https://example.com/docs/page"

	first := fs.NewStore(dir)
	require.NoError(t, first.Write(ctx, id, "persisted"))

	second := fs.NewStore(dir)
	assert.True(t, second.Exists(ctx, id))
	content, err := second.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "persisted", content)
}

func TestStore_ConcurrentWritesToDistinctIdentifiers(t *testing.T) {
	t.Parallel()

	store := fs.NewStore(t.TempDir())
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("https://example.com/page/%d", i)
			assert.NoError(t, store.Write(ctx, id, fmt.Sprintf("content %d", i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		id := fmt.Sprintf("https://example.com/page/%d", i)
		content, err := store.Read(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("content %d", i), content)
	}
}
