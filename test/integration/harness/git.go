package harness

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestRepo is a throwaway git repository whose history is written by the test.
type TestRepo struct {
	Path string
	tb   testing.TB
}

// NewTestRepo initializes a repository at dir with an empty "main" branch.
func NewTestRepo(tb testing.TB, dir string) *TestRepo {
	tb.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		tb.Fatalf("Failed to create repository directory: %v", err)
	}
	runGitCommand(tb, dir, "", "init", "--initial-branch=main")

	return &TestRepo{Path: dir, tb: tb}
}

// Clone clones the repository into dir. The clone has only the default branch
// locally; every other branch is a remote-tracking ref under origin.
func (r *TestRepo) Clone(dir string) *TestRepo {
	r.tb.Helper()
	runGitCommand(r.tb, filepath.Dir(dir), "", "clone", r.Path, dir)
	return &TestRepo{Path: dir, tb: r.tb}
}

// WriteMailmap commits a .mailmap file with the given entries.
func (r *TestRepo) WriteMailmap(entries ...string) {
	r.tb.Helper()
	content := strings.Join(entries, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(r.Path, ".mailmap"), []byte(content), 0644); err != nil {
		r.tb.Fatalf("Failed to write .mailmap: %v", err)
	}
	runGitCommand(r.tb, r.Path, "", "add", ".mailmap")
	runGitCommand(r.tb, r.Path, "", "commit", "-m", "Add mailmap")
}

// Commit writes lines to file and commits the change as author.
// Existing content of file is replaced, so rewriting a file produces deletions.
func (r *TestRepo) Commit(author, file string, lines int) {
	r.tb.Helper()

	var content strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&content, "%s line %d\n", author, i)
	}
	path := filepath.Join(r.Path, file)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.tb.Fatalf("Failed to create directory for %s: %v", file, err)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0644); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", file, err)
	}
	runGitCommand(r.tb, r.Path, author, "add", file)
	runGitCommand(r.tb, r.Path, author, "commit", "-m", "Update "+file)
}

// CommitBinary commits a file containing a NUL byte, which git reports as binary.
func (r *TestRepo) CommitBinary(author, file string) {
	r.tb.Helper()

	if err := os.WriteFile(filepath.Join(r.Path, file), []byte{0x00, 0x01, 0x02, 0xff}, 0644); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", file, err)
	}
	runGitCommand(r.tb, r.Path, author, "add", file)
	runGitCommand(r.tb, r.Path, author, "commit", "-m", "Add "+file)
}

// Checkout switches to branch, creating it when create is set.
func (r *TestRepo) Checkout(branch string, create bool) {
	r.tb.Helper()
	if create {
		runGitCommand(r.tb, r.Path, "", "checkout", "-b", branch)
		return
	}
	runGitCommand(r.tb, r.Path, "", "checkout", branch)
}

// runGitCommand executes a git command in dir, committing as author when set.
func runGitCommand(tb testing.TB, dir, author string, args ...string) {
	tb.Helper()

	if author == "" {
		author = "Test User"
	}
	email := strings.ToLower(strings.ReplaceAll(author, " ", ".")) + "@example.com"

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME="+author,
		"GIT_AUTHOR_EMAIL="+email,
		"GIT_COMMITTER_NAME="+author,
		"GIT_COMMITTER_EMAIL="+email,
		"GIT_CONFIG_NOSYSTEM=1",
		"HOME="+dir,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
