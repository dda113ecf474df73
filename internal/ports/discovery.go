package ports

import (
	"context"

	"codetally/internal/domain"
)

// RepositoryFinder discovers repositories below a root directory
type RepositoryFinder interface {
	Discover(ctx context.Context, root, sessionID string) ([]domain.RepositoryRef, error)
}
