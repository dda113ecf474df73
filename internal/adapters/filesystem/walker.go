package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/ports"
)

const repositoryMarker = ".git"

// Walker implements ports.RepositoryFinder by walking the local filesystem
type Walker struct {
	publisher ports.ProgressPublisher
	readDir   func(string) ([]os.DirEntry, error)
	skipDirs  map[string]struct{}
}

// Verify interface compliance at compile time
var _ ports.RepositoryFinder = (*Walker)(nil)

// NewWalker creates a Walker that never descends into directories named in skipDirs
func NewWalker(publisher ports.ProgressPublisher, skipDirs []string) *Walker {
	skip := make(map[string]struct{}, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = struct{}{}
	}
	return &Walker{
		publisher: publisher,
		readDir:   os.ReadDir,
		skipDirs:  skip,
	}
}

// Discover returns every repository below root in depth-first, name-sorted order.
// Unreadable directories are reported and skipped. Only context cancellation fails the walk.
func (w *Walker) Discover(ctx context.Context, root, sessionID string) ([]domain.RepositoryRef, error) {
	repos := []domain.RepositoryRef{}
	if err := w.walk(ctx, filepath.Clean(root), sessionID, &repos); err != nil {
		return nil, err
	}
	logging.Logger.Info("Repository discovery finished", "root", root, "count", len(repos))
	return repos, nil
}

func (w *Walker) walk(ctx context.Context, dir, sessionID string, repos *[]domain.RepositoryRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := w.readDir(dir)
	if err != nil {
		logging.Logger.Warn("Cannot read directory", "dir", dir, "error", err)
		w.publisher.Publish(sessionID, fmt.Sprintf("Cannot read directory %s: %v", dir, err), domain.SeverityWarning)
		if len(entries) == 0 {
			return nil
		}
	}

	for _, entry := range entries {
		// Symlinks report false here, so they are never followed
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		if name == repositoryMarker {
			ref := domain.NewRepositoryRef(dir)
			*repos = append(*repos, ref)
			logging.Logger.Debug("Found repository", "path", ref.Path)
			w.publisher.Publish(sessionID, fmt.Sprintf("Found repository: %s", ref.Name), domain.SeverityInfo)
			continue
		}
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := w.skipDirs[name]; skip {
			continue
		}

		if err := w.walk(ctx, filepath.Join(dir, name), sessionID, repos); err != nil {
			return err
		}
	}

	return nil
}
