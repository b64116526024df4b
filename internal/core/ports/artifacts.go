package ports

import "go.trai.ch/smelt/internal/core/domain"

// ArtifactManager persists artifacts and build infos under an artifacts directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactManager interface {
	// SaveBuildInfo writes the build info of a job and returns its path.
	SaveBuildInfo(dir, version string, input domain.CompilerInput, output domain.CompilerOutput) (string, error)

	// SaveArtifact writes the artifact of a contract and its debug file pointing at buildInfoPath.
	SaveArtifact(dir string, artifact domain.Artifact, buildInfoPath string) error

	// ArtifactExists reports whether the artifact of contractName declared in sourceName is on disk.
	ArtifactExists(dir, sourceName, contractName string) bool

	// RemoveObsoleteArtifacts deletes every artifact not claimed by one of the entries.
	RemoveObsoleteArtifacts(dir string, entries map[string]domain.CacheEntry) error

	// RemoveObsoleteBuildInfos deletes every build info no remaining artifact points at.
	RemoveObsoleteBuildInfos(dir string) error

	// Clean removes the artifacts directory.
	Clean(dir string) error
}
