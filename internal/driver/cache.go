package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"jsfmt/internal/format"
)

// Cache schema version - increment when CachePayload layout changes.
const cacheSchemaVersion uint16 = 1

// DiskCache memoizes formatting results on disk, keyed by a digest of the
// input content and the effective options. Safe for concurrent use. The
// core pipeline stays pure; only the batch driver consults the cache.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the stored value for one (content, options) pair.
type CachePayload struct {
	Schema uint16 `msgpack:"schema"`
	Output []byte `msgpack:"output"`
	Stats  Stats  `msgpack:"stats"`
}

// OpenDiskCache initializes a disk cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at dir (tests, overrides).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey derives the lookup digest for content formatted under opts.
func CacheKey(content []byte, opts format.Options) [32]byte {
	h := sha256.New()
	h.Write(content)
	fmt.Fprintf(h, "|%s|%d|%d|%v|%v|%v|%v|%v|%v|%v|%v|%v|%v|%v|%d|%v",
		opts.Mode, opts.IndentSize, opts.IndentType,
		opts.InsertSpaceAfterKeywords, opts.InsertSpaceBeforeFunctionParen,
		opts.InsertSpaceAfterFunctionParen, opts.InsertSpaceBeforeOpeningBrace,
		opts.InsertNewLineBeforeOpeningBrace, opts.InsertNewLineAfterOpeningBrace,
		opts.InsertNewLineBeforeClosingBrace, opts.PreserveComments,
		opts.PreserveEmptyLines, opts.AddSemicolons, opts.TrailingCommas,
		opts.QuoteStyle, opts.ValidateSyntax)
	var key [32]byte
	h.Sum(key[:0])
	return key
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "res", hexKey[:2], hexKey+".bin")
}

// Load returns the cached payload for key, if present and readable.
func (c *DiskCache) Load(key [32]byte) (*CachePayload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var payload CachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// Store writes the payload for key. Errors are returned but callers may
// treat a failed store as a cache miss.
func (c *DiskCache) Store(key [32]byte, payload *CachePayload) error {
	if c == nil {
		return errors.New("cache: nil DiskCache")
	}
	payload.Schema = cacheSchemaVersion
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Clear removes every cached result.
func (c *DiskCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.RemoveAll(filepath.Join(c.dir, "res"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
