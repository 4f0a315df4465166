// Package testhelpers provides shared test utilities: scratch repositories
// and the gitpush binary built once per test process.
package testhelpers

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

// BinaryName is the file name of the built gitpush binary
const BinaryName = "gitpush"

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// GetSharedBinaryPath returns the shared binary path, building it on first access.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		sharedBinaryPath, binaryErr = buildBinary()
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred during binary building.
func GetBinaryError() error {
	return binaryErr
}

// buildBinary builds the gitpush binary and returns its path.
func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "gitpush-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, BinaryName)

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gitpush")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, nil
}

// findModuleRoot walks up the directory tree from startDir to find the module root
// (directory containing go.mod file).
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// TestMain builds the binary once before running any tests of the package.
func TestMain(m *testing.M, cleanup func()) {
	binaryPath := GetSharedBinaryPath()
	if err := GetBinaryError(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build gitpush binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if cleanup != nil {
		cleanup()
	}
	_ = os.RemoveAll(filepath.Dir(binaryPath))
	os.Exit(code)
}

// InstallBinary copies the shared binary into the scene's repository root
// and ignores it, so the binary's own directory is the repository.
func (s *Scene) InstallBinary(t *testing.T) string {
	t.Helper()

	src := GetSharedBinaryPath()
	if err := GetBinaryError(); err != nil {
		t.Fatalf("failed to build gitpush binary: %v", err)
	}

	dst := filepath.Join(s.Dir, BinaryName)
	if err := copyFile(src, dst); err != nil {
		t.Fatalf("failed to install binary: %v", err)
	}

	if err := os.WriteFile(filepath.Join(s.Dir, ".gitignore"), []byte("/"+BinaryName+"\n"), 0600); err != nil {
		t.Fatalf("failed to write .gitignore: %v", err)
	}
	if err := s.Repo.RunGitCommand("add", ".gitignore"); err != nil {
		t.Fatalf("failed to stage .gitignore: %v", err)
	}
	if err := s.Repo.RunGitCommand("commit", "-m", "ignore binary"); err != nil {
		t.Fatalf("failed to commit .gitignore: %v", err)
	}

	return dst
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	//nolint:gosec // 0755 is correct for an executable binary
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
