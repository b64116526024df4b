package planner

import (
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/zerr"
)

// constraintCache memoizes parsed version pragmas. Pragmas repeat across
// most files of a project, so each distinct expression is parsed once.
type constraintCache struct {
	parsed sync.Map // map[string]*semver.Constraints
}

func (c *constraintCache) parse(pragma string) (*semver.Constraints, error) {
	if v, ok := c.parsed.Load(pragma); ok {
		return v.(*semver.Constraints), nil
	}
	constraint, err := semver.NewConstraint(pragma)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPragma.Error()), "pragma", pragma)
	}
	actual, _ := c.parsed.LoadOrStore(pragma, constraint)
	return actual.(*semver.Constraints), nil
}

// parseAll parses every pragma of the given files. Each pragma stays a
// separate constraint so that alternatives inside one pragma keep their meaning.
func (c *constraintCache) parseAll(files ...*domain.ResolvedFile) ([]*semver.Constraints, error) {
	var out []*semver.Constraints
	for _, f := range files {
		for _, pragma := range f.Content.VersionPragmas {
			constraint, err := c.parse(pragma)
			if err != nil {
				return nil, zerr.With(err, "file", f.SourceName)
			}
			out = append(out, constraint)
		}
	}
	return out, nil
}

// satisfiesAll reports whether v satisfies every constraint.
func satisfiesAll(v *semver.Version, constraints []*semver.Constraints) bool {
	for _, c := range constraints {
		if !c.Check(v) {
			return false
		}
	}
	return true
}

// parseVersion parses an exact compiler version.
func parseVersion(version string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCompilerVersion.Error()), "version", version)
	}
	return v, nil
}
