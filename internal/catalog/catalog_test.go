package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

const smallCatalog = `
categories:
  - name: "Design"
    services:
      - id: logo
        name: "Logo"
        price: 500
        customizable: true
        includes: ["3 concepts"]
`

func TestDefaultCatalog(t *testing.T) {
	categories := Default()

	require.Len(t, categories, 5)
	count := 0
	for _, c := range categories {
		for _, s := range c.Services {
			assert.Equal(t, c.Name, s.Category)
			count++
		}
	}
	assert.Equal(t, 15, count)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "categories: ["},
		{"empty", "categories: []"},
		{"unnamed category", "categories:\n  - services: []"},
		{"missing id", "categories:\n  - name: A\n    services:\n      - name: x"},
		{"duplicate id", "categories:\n  - name: A\n    services:\n      - id: x\n      - id: x"},
		{"negative price", "categories:\n  - name: A\n    services:\n      - id: x\n        price: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestStore_FindAndReplace(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Default())

	svc, err := store.FindByID(ctx, "web-design")
	require.NoError(t, err)
	assert.Equal(t, 25000.0, svc.Price)

	small, err := Parse([]byte(smallCatalog))
	require.NoError(t, err)
	store.Replace(small)

	_, err = store.FindByID(ctx, "web-design")
	assert.True(t, apperror.IsNotFound(err))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "logo", list[0].ID)

	categories, err := store.Categories(ctx)
	require.NoError(t, err)
	categories[0].Services[0].Price = 1
	again, _ := store.FindByID(ctx, "logo")
	assert.Equal(t, 500.0, again.Price)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o644))

	categories, err := LoadFile(path)
	require.NoError(t, err)
	store := NewStore(categories)

	w, err := NewWatcher(path, store, nil)
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	reloaded := make(chan int, 1)
	w.OnReload(func(n int) { reloaded <- n })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	updated := smallCatalog + "      - id: banner\n        name: \"Banner\"\n        price: 200\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case n := <-reloaded:
		assert.Equal(t, 2, n)
	case <-time.After(5 * time.Second):
		t.Fatal("catalog was not reloaded")
	}

	_, err = store.FindByID(ctx, "banner")
	assert.NoError(t, err)
}

func TestWatcher_KeepsCatalogOnBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o644))

	store := NewStore(Default())
	w, err := NewWatcher(path, store, nil)
	require.NoError(t, err)
	defer w.watcher.Close()

	require.NoError(t, os.WriteFile(path, []byte("categories: ["), 0o644))
	w.reload()

	_, err = store.FindByID(context.Background(), "web-design")
	assert.NoError(t, err)
}
