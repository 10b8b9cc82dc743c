package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lumen/internal/scopes"
)

// Current schema version - increment when ExportPayload format changes.
const exportCacheSchemaVersion uint16 = 1

// Digest keys cache entries.
type Digest [sha256.Size]byte

// ExportKey derives the cache key for one (session, container) pair.
func ExportKey(session, qualifiedName string) Digest {
	return sha256.Sum256([]byte(session + "\x00" + qualifiedName))
}

// ExportPayload stores one container's classifier exports for fast
// recompilation: enough to seed name sets without re-enumerating the
// declaration graph.
type ExportPayload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	Session       string
	QualifiedName string

	// Classifier names in sorted order, kinds aligned by index.
	Names []string
	Kinds []uint8
}

// ExportCache stores classifier exports on disk, keyed by Digest.
// Thread-safe for concurrent access.
type ExportCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenExportCache initializes a cache under dir; an empty dir selects the
// standard XDG location for the given application name.
func OpenExportCache(app, dir string) (*ExportCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ExportCache{dir: dir}, nil
}

func (c *ExportCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "scopes", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload, atomically replacing any previous
// entry for the same key.
func (c *ExportCache) Put(key Digest, payload *ExportPayload) error {
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

// Get reads a payload. A missing entry, a schema mismatch, or a corrupt
// file all report a miss; only I/O failures surface as errors.
func (c *ExportCache) Get(key Digest, out *ExportPayload) (bool, error) {
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
		return false, nil // corrupt entry: treat as a miss
	}
	if out.Schema != exportCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// ExportScope captures a leaf scope's classifier exports as a payload.
// The owner name comes from the scope itself; local containers have no
// stable name and are not cacheable.
func ExportScope(scope *scopes.Leaf) (*ExportPayload, error) {
	owners := scope.OwnerLookupNames()
	if len(owners) == 0 {
		name := scope.Table().Strings.MustLookup(scope.Container().Name)
		return nil, fmt.Errorf("driver: local container %q has no cacheable qualified name", name)
	}

	type entry struct {
		name string
		kind uint8
	}
	var entries []entry
	for nameID := range scope.ClassifierNames() {
		sym, _, ok := scope.FindClassifier(nameID)
		if !ok {
			continue
		}
		d := scope.Table().Decls.Get(sym)
		if d == nil {
			continue
		}
		entries = append(entries, entry{
			name: scope.Table().Strings.MustLookup(nameID),
			kind: uint8(d.Kind),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	payload := &ExportPayload{
		Schema:        exportCacheSchemaVersion,
		Session:       scope.Session().Name(),
		QualifiedName: owners[0],
	}
	for _, e := range entries {
		payload.Names = append(payload.Names, e.name)
		payload.Kinds = append(payload.Kinds, e.kind)
	}
	return payload, nil
}
