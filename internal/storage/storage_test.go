package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/tiltmp/internal/board"
	"github.com/hailam/tiltmp/internal/instance"
)

func TestDistanceCachePutGetRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tiltmp-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cache, err := OpenDistanceCache(filepath.Join(tmpDir, "cache"))
	if err != nil {
		t.Fatalf("OpenDistanceCache: %v", err)
	}
	defer cache.Close()

	target := board.Point{X: 3, Y: 4}
	distances := map[board.Point]int{
		{X: 0, Y: 0}: 7,
		{X: 1, Y: 1}: 5,
	}
	if err := cache.Put(0xdeadbeef, target, distances); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := cache.Get(0xdeadbeef, target)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if len(got) != 2 || got[board.Point{X: 0, Y: 0}] != 7 || got[board.Point{X: 1, Y: 1}] != 5 {
		t.Fatalf("distances not preserved: %v", got)
	}
}

func TestDistanceCacheMissReturnsFalse(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tiltmp-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cache, err := OpenDistanceCache(filepath.Join(tmpDir, "cache"))
	if err != nil {
		t.Fatalf("OpenDistanceCache: %v", err)
	}
	defer cache.Close()

	_, ok, err := cache.Get(1, board.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected cache miss")
	}
}

func TestInstanceStoreSaveLoadRefusesOverwrite(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tiltmp-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	b := board.NewBoard(3, 3, board.NewPlainGlueRules(nil))
	inst := &instance.Instance{Board: b, TargetShape: []board.Point{{X: 0, Y: 0}}}
	path := filepath.Join(tmpDir, "inst.json")

	var store InstanceStore
	if err := store.Save(path, inst, false); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !store.Exists(path) {
		t.Fatalf("expected file to exist after Save")
	}
	if err := store.Save(path, inst, false); err == nil {
		t.Fatalf("expected overwrite to be refused")
	}
	if err := store.Save(path, inst, true); err != nil {
		t.Fatalf("expected overwrite=true to succeed: %v", err)
	}

	loaded, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Board.Width != 3 {
		t.Fatalf("loaded instance mismatch: %+v", loaded.Board)
	}
}

func TestSolutionStoreSaveLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tiltmp-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	b := board.NewBoard(3, 3, board.NewPlainGlueRules(nil))
	inst := &instance.Instance{Board: b}
	sol := &instance.Solution{
		ControlSequence: []board.Direction{board.North},
		NumberOfNodes:   3,
		Instance:        inst,
	}
	path := filepath.Join(tmpDir, "sol.json")

	var store SolutionStore
	if err := store.Save(path, sol, false); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.NumberOfNodes != 3 || len(loaded.ControlSequence) != 1 {
		t.Fatalf("loaded solution mismatch: %+v", loaded)
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Fatal("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Fatalf("data directory was not created: %s", dataDir)
	}
}
