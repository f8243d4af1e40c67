package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocateFaultByPath(t *testing.T) {
	dir := t.TempDir()
	faultDir := filepath.Join(dir, "AlpineF2K")
	if err := os.MkdirAll(faultDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, name, ok := locateFault(faultDir)
	if !ok {
		t.Fatalf("locateFault(%s) failed", faultDir)
	}
	if got != faultDir {
		t.Errorf("expected %s, got %s", faultDir, got)
	}
	if name != "AlpineF2K" {
		t.Errorf("expected fault name AlpineF2K, got %s", name)
	}
}

func TestLocateFaultByNameUnderRuns(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Runs", "AlpineF2K"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	orig, _ := os.Getwd()
	defer os.Chdir(orig)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	got, name, ok := locateFault("AlpineF2K")
	if !ok {
		t.Fatalf("locateFault by name failed")
	}
	if name != "AlpineF2K" {
		t.Errorf("expected fault name AlpineF2K, got %s", name)
	}
	if filepath.Base(filepath.Dir(got)) != "Runs" {
		t.Errorf("expected directory under Runs, got %s", got)
	}
}

func TestLocateFaultMissing(t *testing.T) {
	if _, _, ok := locateFault("/definitely/not/here"); ok {
		t.Error("expected lookup to fail for a missing directory")
	}
}
