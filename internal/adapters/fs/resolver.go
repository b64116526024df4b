package fs

import (
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Resolver        = (*Resolver)(nil)
	_ ports.ResolverFactory = (*ResolverFactory)(nil)
)

// ResolverFactory creates Resolvers that share one Parser.
type ResolverFactory struct {
	parser *Parser
}

// NewResolverFactory creates a new ResolverFactory.
func NewResolverFactory(parser *Parser) *ResolverFactory {
	return &ResolverFactory{parser: parser}
}

// NewResolver implements ports.ResolverFactory.
func (f *ResolverFactory) NewResolver(root string) ports.Resolver {
	return NewResolver(root, f.parser)
}

// Resolver maps source names to files in the project or in node_modules.
// Local files take precedence over libraries with the same source name.
type Resolver struct {
	root   string
	parser *Parser

	mu        sync.Mutex
	files     map[string]*domain.ResolvedFile // absolute path -> file
	libraries map[string]*domain.LibraryInfo  // library name -> info
}

// NewResolver creates a Resolver for the project at root.
func NewResolver(root string, parser *Parser) *Resolver {
	return &Resolver{
		root:      root,
		parser:    parser,
		files:     make(map[string]*domain.ResolvedFile),
		libraries: make(map[string]*domain.LibraryInfo),
	}
}

// LocalPathToSourceName converts an absolute path inside the project root to
// its slash separated source name.
func (r *Resolver) LocalPathToSourceName(absolutePath string) (string, error) {
	rel, err := filepath.Rel(r.root, absolutePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrFileOutsideProject, "path", absolutePath)
	}
	sourceName := filepath.ToSlash(rel)

	if err := r.checkCasing(r.root, sourceName); err != nil {
		return "", err
	}
	return sourceName, nil
}

// ResolveSourceName resolves a normalized source name.
func (r *Resolver) ResolveSourceName(ctx context.Context, sourceName string) (*domain.ResolvedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateSourceName(sourceName); err != nil {
		return nil, err
	}

	local := filepath.Join(r.root, filepath.FromSlash(sourceName))
	if _, err := os.Stat(local); err == nil {
		if err := r.checkCasing(r.root, sourceName); err != nil {
			return nil, err
		}
		return r.load(local, sourceName, nil)
	}

	return r.resolveLibraryFile(sourceName)
}

// ResolveImport resolves specifier as imported by from. Relative specifiers
// are resolved against from's source name. Library files may only import
// files of libraries.
func (r *Resolver) ResolveImport(
	ctx context.Context,
	from *domain.ResolvedFile,
	specifier string,
) (*domain.ResolvedFile, error) {
	sourceName, err := importSourceName(from, specifier)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "import", specifier), "from", from.SourceName)
	}

	if from.IsLibrary() && isRelative(specifier) {
		prefix := from.Library.Name + "/"
		if !strings.HasPrefix(sourceName, prefix) {
			return nil, zerr.With(zerr.With(domain.ErrIllegalImport, "import", specifier), "from", from.SourceName)
		}
	}

	file, err := r.ResolveSourceName(ctx, sourceName)
	if err != nil {
		return nil, zerr.With(err, "from", from.SourceName)
	}
	if from.IsLibrary() && !file.IsLibrary() {
		return nil, zerr.With(zerr.With(domain.ErrIllegalImport, "import", specifier), "from", from.SourceName)
	}
	return file, nil
}

func (r *Resolver) resolveLibraryFile(sourceName string) (*domain.ResolvedFile, error) {
	name := libraryName(sourceName)
	modules := filepath.Join(r.root, domain.NodeModulesDirName)

	abs := filepath.Join(modules, filepath.FromSlash(sourceName))
	if _, err := os.Stat(abs); err != nil {
		return nil, zerr.With(domain.ErrSourceNotFound, "source", sourceName)
	}
	if err := r.checkCasing(modules, sourceName); err != nil {
		return nil, err
	}

	info, err := r.library(name)
	if err != nil {
		return nil, err
	}
	return r.load(abs, sourceName, info)
}

// library reads and memoizes the package.json of an installed library.
func (r *Resolver) library(name string) (*domain.LibraryInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info, ok := r.libraries[name]; ok {
		return info, nil
	}

	info := &domain.LibraryInfo{Name: name}
	manifest := filepath.Join(r.root, domain.NodeModulesDirName, filepath.FromSlash(name), "package.json")
	data, err := os.ReadFile(manifest) //nolint:gosec // Path is derived from the project root
	switch {
	case errors.Is(err, iofs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read package.json"), "path", manifest)
	default:
		var pkg struct {
			Version string `json:"version"`
		}
		if err := json.Unmarshal(data, &pkg); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse package.json"), "path", manifest)
		}
		info.Version = pkg.Version
	}

	r.libraries[name] = info
	return info, nil
}

// load reads and parses the file at abs, returning the memoized instance when
// it was resolved before.
func (r *Resolver) load(abs, sourceName string, library *domain.LibraryInfo) (*domain.ResolvedFile, error) {
	r.mu.Lock()
	if f, ok := r.files[abs]; ok {
		r.mu.Unlock()
		return f, nil
	}
	r.mu.Unlock()

	stat, err := os.Stat(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "source", sourceName)
	}
	data, err := os.ReadFile(abs) //nolint:gosec // Path is derived from the project root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", abs)
	}

	content := string(data)
	hash := ContentHash(content)
	file := &domain.ResolvedFile{
		AbsolutePath:         abs,
		SourceName:           sourceName,
		Content:              r.parser.Parse(content, hash),
		LastModificationDate: stat.ModTime(),
		ContentHash:          hash,
		Library:              library,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.files[abs]; ok {
		return existing, nil
	}
	r.files[abs] = file
	return file, nil
}

// checkCasing verifies that every segment of sourceName under base matches
// the casing of the directory entry on disk.
func (r *Resolver) checkCasing(base, sourceName string) error {
	dir := base
	for _, segment := range strings.Split(sourceName, "/") {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
		}

		var actual string
		for _, e := range entries {
			if e.Name() == segment {
				actual = segment
				break
			}
			if strings.EqualFold(e.Name(), segment) {
				actual = e.Name()
			}
		}
		if actual == "" {
			return zerr.With(domain.ErrSourceNotFound, "source", sourceName)
		}
		if actual != segment {
			return zerr.With(zerr.With(domain.ErrSourceNameCasing, "source", sourceName), "actual", actual)
		}
		dir = filepath.Join(dir, actual)
	}
	return nil
}

// importSourceName computes the source name that specifier refers to.
func importSourceName(from *domain.ResolvedFile, specifier string) (string, error) {
	if strings.Contains(specifier, `\`) || path.IsAbs(specifier) {
		return "", domain.ErrInvalidImport
	}

	if !isRelative(specifier) {
		if err := validateSourceName(specifier); err != nil {
			return "", err
		}
		return specifier, nil
	}

	joined := path.Join(path.Dir(from.SourceName), specifier)
	if joined == ".." || strings.HasPrefix(joined, "../") {
		return "", domain.ErrInvalidImport
	}
	return joined, nil
}

// validateSourceName rejects names that are not normalized slash separated
// relative paths.
func validateSourceName(sourceName string) error {
	if sourceName == "" ||
		strings.Contains(sourceName, `\`) ||
		path.IsAbs(sourceName) ||
		path.Clean(sourceName) != sourceName ||
		sourceName == ".." || strings.HasPrefix(sourceName, "../") {
		return zerr.With(domain.ErrInvalidImport, "source", sourceName)
	}
	return nil
}

func isRelative(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

// libraryName returns the package name a library source name belongs to.
// Scoped packages span two segments.
func libraryName(sourceName string) string {
	parts := strings.SplitN(sourceName, "/", 3)
	if strings.HasPrefix(sourceName, "@") && len(parts) > 1 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}
