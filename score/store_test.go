package score

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "none", "highscore.toml"))

	v, ok, err := store.HighScore()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if ok || v != 0 {
		t.Errorf("Expected no stored value, got %d, %v", v, ok)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.toml")
	store := NewFileStore(path)

	if err := store.SetHighScore(42); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read score file: %v", err)
	}
	if !strings.Contains(string(data), "high_score = 42") {
		t.Errorf("Unexpected file content:\n%s", data)
	}

	v, ok, err := NewFileStore(path).HighScore()
	if err != nil || !ok || v != 42 {
		t.Errorf("HighScore = %d, %v, %v; want 42, true, nil", v, ok, err)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the score file, found %d entries", len(entries))
	}
}

func TestFileStoreZeroIsStored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.toml")
	store := NewFileStore(path)

	if err := store.SetHighScore(0); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}
	v, ok, err := store.HighScore()
	if err != nil || !ok || v != 0 {
		t.Errorf("HighScore = %d, %v, %v; want 0, true, nil", v, ok, err)
	}
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.toml")
	if err := os.WriteFile(path, []byte("# nothing yet\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, ok, err := NewFileStore(path).HighScore()
	if err != nil || ok {
		t.Errorf("Expected absent value, got ok=%v err=%v", ok, err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.toml")
	if err := os.WriteFile(path, []byte("high_score = = 3"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := NewFileStore(path).HighScore(); err == nil {
		t.Error("Expected decode error for corrupt file")
	}
}

func TestKeeperWithFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.toml")

	out, err := NewKeeper(NewFileStore(path)).Report(2500)
	if err != nil || !out.IsNewHighScore {
		t.Fatalf("First report = %+v, %v", out, err)
	}

	// A fresh keeper over the same file sees the persisted value
	out, err = NewKeeper(NewFileStore(path)).Report(2999)
	if err != nil {
		t.Fatalf("Second report failed: %v", err)
	}
	if out.IsNewHighScore || out.HighScore != 2 {
		t.Errorf("Second report = %+v, want tie at 2", out)
	}
}
