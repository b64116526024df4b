package domain

import "time"

// FileContent is the parsed content of a Solidity source file.
type FileContent struct {
	RawContent     string
	Imports        []string
	VersionPragmas []string
}

// LibraryInfo identifies the package a library source file was resolved from.
type LibraryInfo struct {
	Name    string
	Version string
}

// ResolvedFile is a Solidity source file located on disk and parsed.
// AbsolutePath is the file's identity; SourceName is the logical name the compiler sees.
type ResolvedFile struct {
	AbsolutePath         string
	SourceName           string
	Content              FileContent
	LastModificationDate time.Time
	ContentHash          string
	Library              *LibraryInfo
}

// IsLibrary reports whether the file was resolved from an installed library.
func (f *ResolvedFile) IsLibrary() bool {
	return f.Library != nil
}

// LastModificationMillis returns the modification time in milliseconds since the epoch.
func (f *ResolvedFile) LastModificationMillis() int64 {
	return f.LastModificationDate.UnixMilli()
}
