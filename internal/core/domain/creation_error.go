package domain

import (
	"fmt"
	"slices"
	"strings"
)

// CreationErrorKind classifies why no compilation job could be created for a file.
type CreationErrorKind int

const (
	// NoCompatibleVersion means no configured compiler satisfies the file's own pragmas.
	NoCompatibleVersion CreationErrorKind = iota
	// IncompatibleOverride means the file's compiler override does not satisfy its pragmas.
	IncompatibleOverride
	// ImportsIncompatibleFile means the file's pragmas are satisfiable but not
	// together with the pragmas of the files it imports.
	ImportsIncompatibleFile
	// OtherCreationError is any other failure, such as an unparseable pragma.
	OtherCreationError
)

// creationErrorKinds lists every kind in report order.
var creationErrorKinds = []CreationErrorKind{
	IncompatibleOverride,
	NoCompatibleVersion,
	ImportsIncompatibleFile,
	OtherCreationError,
}

// String returns the kind's identifier.
func (k CreationErrorKind) String() string {
	switch k {
	case NoCompatibleVersion:
		return "NO_COMPATIBLE_VERSION"
	case IncompatibleOverride:
		return "INCOMPATIBLE_OVERRIDE"
	case ImportsIncompatibleFile:
		return "IMPORTS_INCOMPATIBLE_FILE"
	case OtherCreationError:
		return "OTHER"
	default:
		return fmt.Sprintf("CreationErrorKind(%d)", int(k))
	}
}

// reportHeading returns the heading under which files of this kind are listed.
func (k CreationErrorKind) reportHeading() string {
	switch k {
	case IncompatibleOverride:
		return "These files have overridden compilations that are incompatible with their version pragmas:"
	case NoCompatibleVersion:
		return "These files don't match any compiler in your config:"
	case ImportsIncompatibleFile:
		return "These files have imports with incompatible pragmas:"
	case OtherCreationError:
		return "These files and its dependencies cannot be compiled with your config:"
	default:
		return k.String() + ":"
	}
}

// CreationError attributes a job creation failure to a file.
type CreationError struct {
	Kind CreationErrorKind
	File *ResolvedFile
}

// Error implements the error interface.
func (e *CreationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.File.SourceName)
}

// CreationErrors groups source names of failed files by kind.
type CreationErrors map[CreationErrorKind][]string

// Add records a failure.
func (c CreationErrors) Add(e *CreationError) {
	c[e.Kind] = append(c[e.Kind], e.File.SourceName)
}

// Merge appends every failure of other to c.
func (c CreationErrors) Merge(other CreationErrors) {
	for kind, names := range other {
		c[kind] = append(c[kind], names...)
	}
}

// HasErrors reports whether any failure was recorded.
func (c CreationErrors) HasErrors() bool {
	for _, names := range c {
		if len(names) > 0 {
			return true
		}
	}
	return false
}

// Count returns the number of recorded failures.
func (c CreationErrors) Count() int {
	n := 0
	for _, names := range c {
		n += len(names)
	}
	return n
}

// Report formats every failure as a user facing message, grouped by kind.
func (c CreationErrors) Report() string {
	var b strings.Builder
	b.WriteString("The project couldn't be compiled, see reasons below.\n")

	for _, kind := range creationErrorKinds {
		names := c[kind]
		if len(names) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(kind.reportHeading())
		b.WriteString("\n\n")

		sorted := slices.Clone(names)
		slices.Sort(sorted)
		for _, name := range slices.Compact(sorted) {
			b.WriteString("  * ")
			b.WriteString(name)
			b.WriteString("\n")
		}
	}

	return b.String()
}
