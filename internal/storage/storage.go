package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/instance"
)

// DistanceCache persists precomputed single-tile distance maps (the
// output of heuristic.DistanceToPolyominoAndTargetArea's PreCompute) keyed
// by the originating board's canonical hash and the destination they were
// computed for. No solver or CLI path in this module reads or writes it.
type DistanceCache struct {
	db *badger.DB
}

// NewDistanceCache opens the cache at the default per-user database
// directory (see GetDatabaseDir).
func NewDistanceCache() (*DistanceCache, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenDistanceCache(dir)
}

// OpenDistanceCache opens (creating if absent) the badger store at dir.
func OpenDistanceCache(dir string) (*DistanceCache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open distance cache: %w", err)
	}
	return &DistanceCache{db: db}, nil
}

// Close closes the underlying database.
func (c *DistanceCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func cacheKey(boardHash uint64, target board.Point) []byte {
	return []byte(fmt.Sprintf("dist:%x:%d,%d", boardHash, target.X, target.Y))
}

type distanceEntry struct {
	X, Y int
	D    int
}

// Put stores the distance map computed for (boardHash, target).
func (c *DistanceCache) Put(boardHash uint64, target board.Point, distances map[board.Point]int) error {
	entries := make([]distanceEntry, 0, len(distances))
	for p, d := range distances {
		entries = append(entries, distanceEntry{X: p.X, Y: p.Y, D: d})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(boardHash, target), data)
	})
}

// Get retrieves a previously stored distance map, if present.
func (c *DistanceCache) Get(boardHash uint64, target board.Point) (map[board.Point]int, bool, error) {
	var entries []distanceEntry
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(boardHash, target))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entries)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	out := make(map[board.Point]int, len(entries))
	for _, e := range entries {
		out[board.Point{X: e.X, Y: e.Y}] = e.D
	}
	return out, true, nil
}

// InstanceStore reads and writes Instance JSON files on disk.
type InstanceStore struct{}

// Load reads and decodes an Instance from path.
func (InstanceStore) Load(path string) (*instance.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return instance.Decode(data)
}

// Exists reports whether a file already exists at path, used by callers
// that must not silently overwrite a previous run's output.
func (InstanceStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Save encodes and writes inst to path, refusing to overwrite an existing
// file unless overwrite is true.
func (InstanceStore) Save(path string, inst *instance.Instance, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("storage: %s already exists", path)
		}
	}
	data, err := instance.Encode(inst)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SolutionStore reads and writes Solution JSON files on disk.
type SolutionStore struct{}

// Exists reports whether a file already exists at path.
func (SolutionStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Save encodes and writes sol to path, refusing to overwrite an existing
// file unless overwrite is true.
func (SolutionStore) Save(path string, sol *instance.Solution, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("storage: %s already exists", path)
		}
	}
	data, err := instance.EncodeSolution(sol)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads and decodes a Solution from path.
func (SolutionStore) Load(path string) (*instance.Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return instance.DecodeSolution(data)
}
