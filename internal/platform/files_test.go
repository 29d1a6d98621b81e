package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func stubCommands(t *testing.T, run func(name string, args ...string) error) *[][]string {
	t.Helper()
	var calls [][]string
	origRun, origLook := runCommand, lookPath
	runCommand = func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return run(name, args...)
	}
	lookPath = func(file string) (string, error) {
		return "", errors.New("not found")
	}
	t.Cleanup(func() {
		runCommand, lookPath = origRun, origLook
	})
	return &calls
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_CurrentDir(t *testing.T) {
	if err := CreateDirectoryIfNotExists("."); err != nil {
		t.Errorf("expected no error for current dir, got %v", err)
	}
	if err := CreateDirectoryIfNotExists(""); err != nil {
		t.Errorf("expected no error for empty dir, got %v", err)
	}
}

func TestEnsureParentDir(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "a", "b", "userRecords.txt")

	if err := EnsureParentDir(filePath); err != nil {
		t.Fatalf("EnsureParentDir failed: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(filePath)); err != nil || !info.IsDir() {
		t.Fatalf("parent directory was not created: %v", err)
	}
}

func TestResolveRecordsPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	abs := filepath.Join(t.TempDir(), "records.txt")

	tests := []struct {
		base, path, expected string
	}{
		{"", "userRecords.txt", filepath.Join(wd, "userRecords.txt")},
		{"/data", "userRecords.txt", filepath.Join("/data", "userRecords.txt")},
		{"/data", abs, abs},
	}

	for _, tt := range tests {
		t.Run(tt.base+"_"+tt.path, func(t *testing.T) {
			result, err := ResolveRecordsPath(tt.base, tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("ResolveRecordsPath(%q, %q) = %q, expected %q", tt.base, tt.path, result, tt.expected)
			}
		})
	}

	if _, err := ResolveRecordsPath("/data", ""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	if err := OpenFileWithDefaultApp(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestOpenFileWithDefaultApp_RunsCommand(t *testing.T) {
	if runtime.GOOS != OSLinux && runtime.GOOS != OSDarwin && runtime.GOOS != OSWindows {
		t.Skipf("unsupported OS %s", runtime.GOOS)
	}
	calls := stubCommands(t, func(string, ...string) error { return nil })

	filePath := filepath.Join(t.TempDir(), "userRecords.txt")
	if err := os.WriteFile(filePath, []byte("x\n"), DefaultFilePermissions); err != nil {
		t.Fatal(err)
	}

	if err := OpenFileWithDefaultApp(filePath); err != nil {
		t.Fatalf("OpenFileWithDefaultApp failed: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(*calls))
	}
	call := (*calls)[0]
	if call[len(call)-1] != filePath {
		t.Errorf("expected last argument %s, got %v", filePath, call)
	}
}

func TestOpenFileInManagerLinux_NoManager(t *testing.T) {
	stubCommands(t, func(string, ...string) error { return errors.New("exit 1") })

	err := openFileInManagerLinux("/tmp/userRecords.txt")
	if err == nil || err.Error() != "no suitable file manager found" {
		t.Errorf("expected no file manager error, got %v", err)
	}
}
