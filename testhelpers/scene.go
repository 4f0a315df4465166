package testhelpers

import (
	"os"
	"testing"
)

// DefaultRemoteName is the remote name gitpush pushes to by default
const DefaultRemoteName = "Remote"

// Scene represents a test scene with a temporary Git repository and,
// optionally, a bare remote.
type Scene struct {
	Dir       string
	Repo      *GitRepo
	RemoteDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene in a temporary directory.
// The process working directory is left untouched: gitpush runs git in an
// explicit directory, never in the caller's.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// Keep git invoked by the code under test away from the user's config
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_TERMINAL_PROMPT", "0")

	tmpDir := t.TempDir()

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if scene.RemoteDir != "" && os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(scene.RemoteDir)
		}
	})

	return scene
}

// BasicSceneSetup creates a scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// RemoteSceneSetup creates a scene with a single commit and a bare remote named "Remote".
func RemoteSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	bareDir, err := scene.Repo.CreateBareRemote(DefaultRemoteName)
	if err != nil {
		return err
	}
	scene.RemoteDir = bareDir
	return nil
}
