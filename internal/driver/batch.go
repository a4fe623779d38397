package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsfmt/internal/format"
)

// EventStatus describes the state of one file in a batch run.
type EventStatus string

const (
	StatusFormatting EventStatus = "formatting"
	StatusDone       EventStatus = "done"
	StatusCached     EventStatus = "cached"
	StatusUnchanged  EventStatus = "unchanged"
	StatusError      EventStatus = "error"
)

// Event is a progress notification for one file.
type Event struct {
	Path   string
	Status EventStatus
}

// EventSink receives progress events. Implementations must be safe for
// concurrent use.
type EventSink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel, dropping them when full.
type ChannelSink struct{ Ch chan<- Event }

func (s ChannelSink) Send(ev Event) {
	select {
	case s.Ch <- ev:
	default:
	}
}

// FormatOptions configures a batch formatting run.
type FormatOptions struct {
	// Check reports whether files would change without touching them.
	Check bool
	// Stdout returns formatted content in the results instead of writing
	// files.
	Stdout bool
	// Options is the per-file configuration handed to Process.
	Options format.Options
	// Cache, when non-nil, memoizes results across runs.
	Cache *DiskCache
	// Workers limits concurrent files; 0 means GOMAXPROCS.
	Workers int
	// Progress, when non-nil, receives per-file events.
	Progress EventSink
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	FromCache bool
	Err       error
	Formatted []byte
	Stats     Stats
}

var sourceExtensions = map[string]struct{}{
	".js":  {},
	".mjs": {},
	".cjs": {},
}

// FormatPaths formats the given files or directories (recursing into
// directories for JavaScript sources). Files are processed in parallel;
// results come back in the deterministic collection order.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectSourceFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			notify(opts.Progress, path, StatusFormatting)
			results[i] = formatSingleFile(path, opts)
			notify(opts.Progress, path, statusOf(results[i]))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func notify(sink EventSink, path string, status EventStatus) {
	if sink != nil {
		sink.Send(Event{Path: path, Status: status})
	}
}

func statusOf(res FormatResult) EventStatus {
	switch {
	case res.Err != nil:
		return StatusError
	case res.FromCache:
		return StatusCached
	case !res.Changed:
		return StatusUnchanged
	default:
		return StatusDone
	}
}

func formatSingleFile(path string, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	key := CacheKey(content, opts.Options)
	if payload, ok := opts.Cache.Load(key); ok {
		res.Formatted = payload.Output
		res.Stats = payload.Stats
		res.FromCache = true
	} else {
		out := Process(string(content), opts.Options)
		if !out.Success {
			res.Err = errors.New(out.Error)
			return res
		}
		res.Formatted = fileBody(out.Output)
		res.Stats = out.Stats
		if opts.Cache != nil {
			// a failed store is just a miss next time
			_ = opts.Cache.Store(key, &CachePayload{Output: res.Formatted, Stats: res.Stats})
		}
	}

	res.Changed = !bytes.Equal(content, res.Formatted)
	if opts.Check || opts.Stdout || !res.Changed {
		return res
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, res.Formatted, mode.Perm()); err != nil {
		res.Err = err
	}
	return res
}

// fileBody terminates generator output with a newline for on-disk files.
func fileBody(output string) []byte {
	if output == "" || strings.HasSuffix(output, "\n") {
		return []byte(output)
	}
	return []byte(output + "\n")
}

// CollectSourceFiles expands the given files and directories into the
// sorted, deduplicated list of JavaScript sources a batch run would touch.
func CollectSourceFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(sub string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, ok := sourceExtensions[filepath.Ext(sub)]; ok {
				add(sub)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("format: walking %s: %w", path, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
