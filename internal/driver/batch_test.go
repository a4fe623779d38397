package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"jsfmt/internal/driver"
	"jsfmt/internal/format"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.js", "var a;")
	m := writeFixture(t, dir, "sub/m.mjs", "var m;")
	c := writeFixture(t, dir, "sub/deep/c.cjs", "var c;")
	writeFixture(t, dir, "notes.txt", "not source")
	writeFixture(t, dir, "sub/readme.md", "nope")

	files, err := driver.CollectSourceFiles([]string{dir, a})
	require.NoError(t, err)
	require.Equal(t, []string{a, c, m}, files, "sorted, deduplicated, extension-filtered")
}

func TestFormatPathsRewritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "input.js", "var  x  =  1 ;")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Options: format.Default(),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	require.True(t, results[0].Changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "var x = 1;\n", string(content))
}

func TestFormatPathsCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "input.js", "var  x  =  1 ;")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Check:   true,
		Options: format.Default(),
	})
	require.NoError(t, err)
	require.True(t, results[0].Changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "var  x  =  1 ;", string(content), "check mode must leave the file alone")
}

func TestFormatPathsUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "input.js", "var x = 1;\n")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Options: format.Default(),
	})
	require.NoError(t, err)
	require.False(t, results[0].Changed)
}

func TestFormatPathsEmptyFileFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "empty.js", "")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Options: format.Default(),
	})
	require.NoError(t, err)
	require.Error(t, results[0].Err)
	require.Contains(t, results[0].Err.Error(), "provide content to process")
}

func TestFormatPathsNoSources(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "notes.txt", "plain text")

	_, err := driver.FormatPaths(context.Background(), []string{dir}, driver.FormatOptions{
		Options: format.Default(),
	})
	require.Error(t, err)
}

func TestFormatPathsUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "input.js", "var  x  =  1 ;")
	cache, err := driver.OpenDiskCacheAt(filepath.Join(dir, "cache"))
	require.NoError(t, err)

	opts := driver.FormatOptions{Options: format.Default(), Cache: cache, Stdout: true}

	first, err := driver.FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.False(t, first[0].FromCache)

	second, err := driver.FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.True(t, second[0].FromCache)
	require.Equal(t, first[0].Formatted, second[0].Formatted)
}

type recordingSink struct {
	mu     sync.Mutex
	events []driver.Event
}

func (s *recordingSink) Send(ev driver.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestFormatPathsEmitsProgressEvents(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "input.js", "var  x  =  1 ;")
	sink := &recordingSink{}

	_, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Options:  format.Default(),
		Progress: sink,
		Stdout:   true,
	})
	require.NoError(t, err)

	require.Len(t, sink.events, 2)
	require.Equal(t, driver.StatusFormatting, sink.events[0].Status)
	require.Equal(t, driver.StatusDone, sink.events[1].Status)
	require.Equal(t, path, sink.events[0].Path)
}

func TestFormatPathsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	path := writeFixture(t, dir, "input.js", "var x;")

	_, err := driver.FormatPaths(ctx, []string{path}, driver.FormatOptions{Options: format.Default()})
	require.ErrorIs(t, err, context.Canceled)
}
