package fs_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/dataminer"
	"github.com/fwojciec/dataminer/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() dataminer.ResultSet {
	return dataminer.ResultSet{
		{
			{Name: "title", Value: "Desk Lamp", Found: true},
			{Name: "price", Value: "$19.99", Found: true},
			{Name: "detail_url", Value: "/p/lamp?ref=a&b=c", Found: true},
		},
		{
			{Name: "title", Value: "Chaise longue « été »", Found: true},
			{Name: "price"},
			{Name: "detail_url"},
		},
	}
}

func TestStore_Store_JSON(t *testing.T) {
	t.Parallel()

	t.Run("writes indented array that round-trips", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		out, err := store.Store(context.Background(), sampleRecords(), dataminer.FormatJSON, "products")

		require.NoError(t, err)
		assert.True(t, out.Written)
		assert.Equal(t, 2, out.Records)
		assert.Equal(t, filepath.Join(dir, "products.json"), out.Path)

		data, err := os.ReadFile(out.Path)
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, []map[string]any{
			{"title": "Desk Lamp", "price": "$19.99", "detail_url": "/p/lamp?ref=a&b=c"},
			{"title": "Chaise longue « été »", "price": nil, "detail_url": nil},
		}, got)
	})

	t.Run("preserves field order, non-ASCII and HTML characters", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		out, err := store.Store(context.Background(), sampleRecords(), dataminer.FormatJSON, "products")
		require.NoError(t, err)

		data, err := os.ReadFile(out.Path)
		require.NoError(t, err)
		content := string(data)

		assert.True(t, strings.HasPrefix(content, "[\n  {\n    \"title\": \"Desk Lamp\",\n    \"price\": \"$19.99\","))
		assert.Contains(t, content, "« été »")
		assert.Contains(t, content, "?ref=a&b=c")
		assert.Contains(t, content, `"price": null`)
	})

	t.Run("writes empty array for empty result set", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		out, err := store.Store(context.Background(), nil, dataminer.FormatJSON, "output")

		require.NoError(t, err)
		assert.True(t, out.Written)
		data, err := os.ReadFile(out.Path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("accepts upper-case format", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		out, err := fs.NewStore(dir).Store(context.Background(), sampleRecords(), "JSON", "products")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "products.json"), out.Path)
	})
}

func TestStore_Store_CSV(t *testing.T) {
	t.Parallel()

	t.Run("writes header from first record and one row per record", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		out, err := store.Store(context.Background(), sampleRecords(), dataminer.FormatCSV, "products")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "products.csv"), out.Path)

		f, err := os.Open(out.Path)
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)

		assert.Equal(t, [][]string{
			{"title", "price", "detail_url"},
			{"Desk Lamp", "$19.99", "/p/lamp?ref=a&b=c"},
			{"Chaise longue « été »", "", ""},
		}, rows)
	})

	t.Run("writes nothing for empty result set", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		out, err := fs.NewStore(dir).Store(context.Background(), dataminer.ResultSet{}, dataminer.FormatCSV, "products")

		require.NoError(t, err)
		assert.False(t, out.Written)
		assert.Empty(t, out.Path)
		assert.NoFileExists(t, filepath.Join(dir, "products.csv"))
	})
}

func TestStore_Store_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := fs.NewStore(dir).Store(context.Background(), sampleRecords(), "xml", "products")

	var serr *dataminer.SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "xml", serr.Format)
	assert.Nil(t, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Store_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "out")

	out, err := fs.NewStore(dir).Store(context.Background(), sampleRecords(), dataminer.FormatJSON, "products")

	require.NoError(t, err)
	assert.FileExists(t, out.Path)
}

func TestStore_Store_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	_, err := fs.NewStore(dir).Store(context.Background(), sampleRecords(), dataminer.FormatJSON, "products")

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestStore_Store_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewStore(dir).Store(ctx, sampleRecords(), dataminer.FormatJSON, "products")

	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, "products.json"))
}

func TestEncodeCSV_UsesCRLF(t *testing.T) {
	t.Parallel()

	var b strings.Builder

	err := fs.EncodeCSV(&b, dataminer.ResultSet{{{Name: "a", Value: "1", Found: true}}})

	require.NoError(t, err)
	assert.Equal(t, "a\r\n1\r\n", b.String())
}
