package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndGetScript(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScript("keynote", "Welcome, everyone."); err != nil {
		t.Fatalf("SaveScript() failed: %v", err)
	}

	sc, err := store.GetScript("keynote")
	if err != nil {
		t.Fatalf("GetScript() failed: %v", err)
	}
	if sc.Body != "Welcome, everyone." {
		t.Errorf("Body = %q", sc.Body)
	}

	// Saving again under the same name updates, not duplicates.
	if _, err := store.SaveScript("keynote", "Revised opening."); err != nil {
		t.Fatalf("SaveScript() update failed: %v", err)
	}
	sc, err = store.GetScript("keynote")
	if err != nil {
		t.Fatalf("GetScript() after update failed: %v", err)
	}
	if sc.Body != "Revised opening." {
		t.Errorf("Body after update = %q", sc.Body)
	}

	scripts, err := store.ListScripts(10)
	if err != nil {
		t.Fatalf("ListScripts() failed: %v", err)
	}
	if len(scripts) != 1 {
		t.Errorf("ListScripts() returned %d scripts, want 1", len(scripts))
	}
}

func TestGetScriptNotFound(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.GetScript("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetScript(missing) = %v, want ErrNotFound", err)
	}
}

func TestDeleteScript(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScript("temp", "body"); err != nil {
		t.Fatalf("SaveScript() failed: %v", err)
	}

	if err := store.DeleteScript("temp"); err != nil {
		t.Fatalf("DeleteScript() failed: %v", err)
	}
	if err := store.DeleteScript("temp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestListScriptsOrder(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := store.SaveScript(name, "body of "+name); err != nil {
			t.Fatalf("SaveScript(%q) failed: %v", name, err)
		}
	}

	scripts, err := store.ListScripts(0)
	if err != nil {
		t.Fatalf("ListScripts() failed: %v", err)
	}
	if len(scripts) != 3 {
		t.Fatalf("ListScripts() returned %d scripts, want 3", len(scripts))
	}
}
