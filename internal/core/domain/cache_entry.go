package domain

// CacheEntry records the state of a source file at its last successful compilation.
type CacheEntry struct {
	LastModificationDate int64      `json:"lastModificationDate"`
	ContentHash          string     `json:"contentHash,omitempty"`
	SourceName           string     `json:"sourceName"`
	SolcConfig           SolcConfig `json:"solcConfig"`
	Imports              []string   `json:"imports"`
	VersionPragmas       []string   `json:"versionPragmas"`
	Artifacts            []string   `json:"artifacts"`
}
