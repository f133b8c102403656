package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-gearlock/internal/inventory"
	"github.com/pixil98/go-gearlock/internal/loadout"
	"github.com/pixil98/go-gearlock/internal/sim"
	"github.com/pixil98/go-testutil"
)

func writeAsset(t *testing.T, dir string, file string, body string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, file), []byte(body), 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func TestNewFileStore_Loadouts(t *testing.T) {
	tests := map[string]struct {
		files  map[string]string
		expIds []Identifier
		expErr string
	}{
		"empty directory": {
			files: map[string]string{},
		},
		"loads titan and yggdrasil loadouts": {
			files: map[string]string{
				"titan.json":     `{"version":1,"id":"titan","spec":{"name":"Titan","items":[1,2,3]}}`,
				"yggdrasil.json": `{"version":1,"id":"yggdrasil","spec":{"name":"Yggdrasil","items":[4]}}`,
			},
			expIds: []Identifier{"titan", "yggdrasil"},
		},
		"walks subdirectories and ignores other files": {
			files: map[string]string{
				"late/titan.json": `{"version":1,"id":"titan","spec":{"name":"Titan"}}`,
				"notes.txt":       `not an asset`,
			},
			expIds: []Identifier{"titan"},
		},
		"invalid json": {
			files:  map[string]string{"bad.json": `{invalid json`},
			expErr: "unmarshalling asset",
		},
		"unnamed loadout": {
			files:  map[string]string{"bad.json": `{"version":1,"id":"bad","spec":{"items":[1]}}`},
			expErr: "loadout name is required",
		},
		"empty item id": {
			files:  map[string]string{"bad.json": `{"version":1,"id":"bad","spec":{"name":"Bad","items":[5,0]}}`},
			expErr: "item 1: id must be positive",
		},
		"missing spec": {
			files:  map[string]string{"bad.json": `{"version":1,"id":"bad"}`},
			expErr: "spec must be set",
		},
		"duplicate ids": {
			files: map[string]string{
				"a.json": `{"version":1,"id":"titan","spec":{"name":"A"}}`,
				"b.json": `{"version":1,"id":"titan","spec":{"name":"B"}}`,
			},
			expErr: "duplicate key detected: titan",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			for f, body := range tt.files {
				err := os.MkdirAll(filepath.Join(dir, filepath.Dir(f)), 0755)
				if err != nil {
					t.Fatalf("failed to create dir: %v", err)
				}
				writeAsset(t, dir, f, body)
			}

			store, err := NewFileStore[*loadout.Spec](dir)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "record count", len(store.records), len(tt.expIds))
			for _, id := range tt.expIds {
				_, ok := store.Get(id)
				testutil.AssertEqual(t, "found "+id.String(), ok, true)
			}
		})
	}
}

func TestNewFileStore_NonExistentDirectory(t *testing.T) {
	_, err := NewFileStore[*loadout.Spec]("/nonexistent/path/that/does/not/exist")
	testutil.AssertErrorContains(t, err, "loading /nonexistent/path")
}

func TestFileStore_GetLoadout(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "titan.json", `{"version":1,"id":"titan","spec":{"name":"Titan","items":[7,8]}}`)

	fs, err := NewFileStore[*loadout.Spec](dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var store Storer[*loadout.Spec] = fs

	spec, ok := store.Get("titan")
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "name", spec.Name, "Titan")
	testutil.AssertEqual(t, "items", len(spec.Items), 2)
	testutil.AssertEqual(t, "first item", spec.Items[0], inventory.ItemId(7))

	_, ok = store.Get("yggdrasil")
	testutil.AssertEqual(t, "found missing", ok, false)
}

func TestFileStore_GetCharacter(t *testing.T) {
	tests := map[string]struct {
		body   string
		expErr string
	}{
		"valid character": {
			body: `{"version":1,"id":"main","spec":{
				"gear":{"head":{"id":1,"category":"head"},"weapon2_unlocked":true},
				"progress":{"boss_id":58},
				"titans":[{"interval":3600,"elapsed":120}],
				"highest_autokill":1
			}}`,
		},
		"unknown item category": {
			body:   `{"version":1,"id":"main","spec":{"gear":{"head":{"id":1,"category":"hat"}}}}`,
			expErr: "unknown item category: hat",
		},
		"zero titan interval": {
			body:   `{"version":1,"id":"main","spec":{"titans":[{"interval":0}]}}`,
			expErr: "titan 1: interval must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeAsset(t, dir, "main.json", tt.body)

			store, err := NewFileStore[*sim.State](dir)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			state, ok := store.Get("main")
			testutil.AssertEqual(t, "found", ok, true)
			testutil.AssertEqual(t, "head", state.Gear.Head.Id, inventory.ItemId(1))
			testutil.AssertEqual(t, "head category", state.Gear.Head.Category, inventory.CategoryHead)
			testutil.AssertEqual(t, "weapon2 unlocked", state.Gear.Weapon2Unlocked, true)
			testutil.AssertEqual(t, "boss", state.Progress.BossId, 58)
			testutil.AssertEqual(t, "titan elapsed", state.Titans[0].Elapsed, 120.0)
		})
	}
}
