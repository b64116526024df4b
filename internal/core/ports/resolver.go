package ports

import (
	"context"

	"go.trai.ch/smelt/internal/core/domain"
)

// Resolver locates and parses Solidity source files.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// ResolveSourceName resolves a source name to a parsed file.
	ResolveSourceName(ctx context.Context, sourceName string) (*domain.ResolvedFile, error)

	// ResolveImport resolves an import specifier found in from.
	ResolveImport(ctx context.Context, from *domain.ResolvedFile, specifier string) (*domain.ResolvedFile, error)

	// LocalPathToSourceName converts an absolute path inside the project to its source name.
	LocalPathToSourceName(absolutePath string) (string, error)
}

// SourceFinder discovers the Solidity sources of a project.
type SourceFinder interface {
	// SourcePaths returns the absolute paths of all Solidity files under dir, sorted.
	SourcePaths(ctx context.Context, dir string) ([]string, error)
}

// ResolverFactory creates resolvers rooted at a project directory.
type ResolverFactory interface {
	// NewResolver returns a Resolver for the project at root. Files resolved
	// through the same Resolver are returned as the same instance.
	NewResolver(root string) Resolver
}
