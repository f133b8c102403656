package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-gearlock/internal/titan"
	"github.com/pixil98/go-testutil"
)

const titanLoadout = `{"version":1,"id":"titan","spec":{"name":"titan","items":[11,12]}}`
const yggLoadout = `{"version":1,"id":"ygg","spec":{"name":"yggdrasil","items":[21]}}`
const character = `{
	"version": 1,
	"id": "main",
	"spec": {
		"gear": {
			"head": {"id": 1, "category": "head"},
			"bag": [{"id": 11, "category": "head"}, {"id": 21, "category": "head"}]
		},
		"progress": {"boss_id": 60},
		"titans": [{"interval": 3600, "elapsed": 0}],
		"adventure_available": true,
		"highest_autokill": 0
	}
}`

func writeAsset(t *testing.T, dir, name, body string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644)
	if err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	loadouts := t.TempDir()
	writeAsset(t, loadouts, "titan.json", titanLoadout)
	writeAsset(t, loadouts, "ygg.json", yggLoadout)

	chars := t.TempDir()
	writeAsset(t, chars, "main.json", character)

	cfg := &Config{
		TickInterval: "1s",
		Lookahead:    "45s",
		Nats:         NatsConfig{Port: 4333},
	}
	cfg.Loadouts.Path = loadouts
	cfg.Loadouts.Titan = "titan"
	cfg.Loadouts.Yggdrasil = "ygg"
	cfg.Sim.Path = chars
	cfg.Sim.Character = "main"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Config)
		expErr string
	}{
		"valid": {
			mutate: func(*Config) {},
		},
		"bad tick interval": {
			mutate: func(c *Config) { c.TickInterval = "soon" },
			expErr: "parsing tick_interval",
		},
		"tick interval too short": {
			mutate: func(c *Config) { c.TickInterval = "10ms" },
			expErr: "tick_interval must be at least 100ms",
		},
		"negative lookahead": {
			mutate: func(c *Config) { c.Lookahead = "-5s" },
			expErr: "lookahead must be positive",
		},
		"missing loadout ids": {
			mutate: func(c *Config) {
				c.Loadouts.Titan = ""
				c.Loadouts.Yggdrasil = ""
			},
			expErr: "loadouts: titan is required",
		},
		"missing sim path": {
			mutate: func(c *Config) { c.Sim.Path = "" },
			expErr: "sim: path is required",
		},
		"nonexistent loadout path": {
			mutate: func(c *Config) { c.Loadouts.Path = filepath.Join(c.Loadouts.Path, "nope") },
			expErr: "loadouts: invalid path",
		},
		"short titan table": {
			mutate: func(c *Config) { c.Titans = titan.DefaultTitans()[:3] },
			expErr: "expected 12 titans, got 3",
		},
		"bad nats timeout": {
			mutate: func(c *Config) { c.Nats.StartTimeout = "later" },
			expErr: "parsing start_timeout",
		},
		"bad message template": {
			mutate: func(c *Config) { c.Nats.MessageTemplate = "{{ .Kind" },
			expErr: "message_template",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestBuildWorkers(t *testing.T) {
	workers, err := BuildWorkers(testConfig(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok := workers["driver"]
	testutil.AssertEqual(t, "driver worker", ok, true)
	_, ok = workers["nats"]
	testutil.AssertEqual(t, "nats worker", ok, true)
}

func TestBuildWorkers_Errors(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Config)
		expErr string
	}{
		"unknown character": {
			mutate: func(c *Config) { c.Sim.Character = "alt" },
			expErr: `sim character: asset "alt" not found`,
		},
		"unknown yggdrasil loadout": {
			mutate: func(c *Config) { c.Loadouts.Yggdrasil = "missing" },
			expErr: `yggdrasil loadout: asset "missing" not found`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			_, err := BuildWorkers(cfg)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}

	_, err := BuildWorkers("not a config")
	testutil.AssertErrorContains(t, err, "unable to cast config")
}

func TestConfig_BuildLoadouts(t *testing.T) {
	cfg := testConfig(t)

	l, err := cfg.Loadouts.BuildLoadouts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "titan items", len(l.Titan), 2)
	testutil.AssertEqual(t, "yggdrasil items", len(l.Yggdrasil), 1)
	testutil.AssertEqual(t, "yggdrasil first", int(l.Yggdrasil[0]), 21)
}
