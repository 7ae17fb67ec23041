package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anacrolix/log"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/ordmap.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	// Load with empty path uses default search (may use defaults if no config file)
	cfg, _ := Load("")
	if cfg.Stores.TreeDegree != 32 {
		t.Errorf("default tree_degree: got %d", cfg.Stores.TreeDegree)
	}
	if cfg.Stores.PathDegree != 64 {
		t.Errorf("default path_degree: got %d", cfg.Stores.PathDegree)
	}
	if cfg.Stores.DefaultKind != "tree" {
		t.Errorf("default kind: got %s", cfg.Stores.DefaultKind)
	}
	if cfg.LogLevel() != log.Info {
		t.Errorf("default log level: got %v", cfg.LogLevel())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
stores:
  tree_degree: 8
  path_degree: 1
  bloom_capacity: 500
  bloom_false_prob: 2.5
  default_kind: " SEQ "
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Stores.TreeDegree != 8 {
		t.Errorf("tree_degree: got %d", cfg.Stores.TreeDegree)
	}
	if cfg.Stores.PathDegree != 64 {
		t.Errorf("invalid path_degree not repaired: got %d", cfg.Stores.PathDegree)
	}
	if cfg.Stores.BloomCapacity != 500 {
		t.Errorf("bloom_capacity: got %d", cfg.Stores.BloomCapacity)
	}
	if cfg.Stores.BloomFalseProb != 0.01 {
		t.Errorf("invalid bloom_false_prob not repaired: got %v", cfg.Stores.BloomFalseProb)
	}
	if cfg.Stores.DefaultKind != "seq" {
		t.Errorf("default_kind: got %q", cfg.Stores.DefaultKind)
	}
	if cfg.LogLevel() != log.Debug {
		t.Errorf("log level: got %v", cfg.LogLevel())
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("stores: [oops"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
