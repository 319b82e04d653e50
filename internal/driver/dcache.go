package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"citrine/internal/diag"
	"citrine/internal/project"
	"citrine/internal/source"
)

// Increment when CachedResult changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores per-file parse verdicts keyed by content hash, so an
// unchanged file skips re-parsing on the next check run. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedResult is the cached verdict for one file content.
type CachedResult struct {
	Schema      uint16
	Path        string
	Diagnostics []CachedDiag
}

// CachedDiag is one diagnostic with file-relative positions; the FileID
// is rebound on load since IDs are not stable across runs.
type CachedDiag struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
}

// OpenDiskCache initializes the cache at the standard user location.
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

// OpenDiskCacheAt uses an explicit directory, for tests.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put writes a payload atomically: encode to a temp file, then rename.
func (c *DiskCache) Put(key project.Digest, payload *CachedResult) error {
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
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; the bool reports whether the key was present. A
// schema mismatch counts as absent.
func (c *DiskCache) Get(key project.Digest, out *CachedResult) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// lookupCached rebuilds a Bag from the cache for this file content.
func lookupCached(c *DiskCache, file *source.File) (*diag.Bag, bool) {
	if c == nil {
		return nil, false
	}
	var payload CachedResult
	ok, err := c.Get(project.Digest(file.Hash), &payload)
	if err != nil || !ok {
		return nil, false
	}
	bag := diag.NewBag(len(payload.Diagnostics))
	for _, d := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary: source.Span{
				File:  file.ID,
				Start: d.Start,
				End:   d.End,
			},
		})
	}
	return bag, true
}

// storeCached records the verdict for this file content. Best effort: a
// write failure only costs the next run a re-parse.
func storeCached(c *DiskCache, file *source.File, bag *diag.Bag) {
	if c == nil {
		return
	}
	payload := CachedResult{
		Schema: diskCacheSchemaVersion,
		Path:   file.Path,
	}
	for _, d := range bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiag{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	_ = c.Put(project.Digest(file.Hash), &payload)
}
