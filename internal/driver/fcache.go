package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"chisel/internal/format"
	"chisel/internal/source"
)

// Digest is a SHA-256 cache key.
type Digest [32]byte

// Increment when Payload changes shape.
const cacheSchemaVersion uint16 = 1

// Cache keeps formatted output keyed by content and options digest, so an
// unchanged file costs one hash instead of a full format pass.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is the on-disk cache record for one formatted file.
type Payload struct {
	Schema    uint16
	Path      string
	Formatted []byte
}

// OpenCache initializes the disk cache at the standard location.
func OpenCache(app string) (*Cache, error) {
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
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "fmt", hexKey+".mp")
}

// Get returns the cached formatted content for key, if present.
func (c *Cache) Get(key Digest) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = f.Close()
	}()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return payload.Formatted, true
}

// Put serializes and writes formatted content under key.
func (c *Cache) Put(key Digest, path string, formatted []byte) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	payload := Payload{
		Schema:    cacheSchemaVersion,
		Path:      path,
		Formatted: formatted,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена.
	return os.Rename(f.Name(), p)
}

// DropAll invalidates the cache, useful after schema or option changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey mixes the file content hash with every option that can change
// the formatted output.
func cacheKey(sf *source.File, opts format.Options) Digest {
	opts = opts.WithDefaults()
	h := sha256.New()
	h.Write(sf.Hash[:])
	h.Write([]byte(optionsFingerprint(opts)))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func optionsFingerprint(opts format.Options) string {
	inline := byte('0')
	if opts.InlineBlockComments {
		inline = '1'
	}
	return string([]byte{
		byte(opts.MaxWidth >> 8), byte(opts.MaxWidth),
		byte(opts.IndentWidth),
		byte(opts.Tactic),
		byte(opts.IndentStyle),
		byte(opts.TrailingSeparator),
		inline,
	}) + opts.Separator
}
