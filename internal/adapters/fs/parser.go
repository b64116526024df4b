package fs

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/smelt/internal/core/domain"
)

var (
	pragmaPattern = regexp.MustCompile(`\bpragma\s+solidity\s+([^;]+);`)
	importPattern = regexp.MustCompile(
		`\bimport\s+(?:"([^"]+)"|'([^']+)'|[^;"']*?\bfrom\s*(?:"([^"]+)"|'([^']+)'))`,
	)
)

// Parser extracts imports and version pragmas from Solidity sources.
// Results are memoized by content hash.
type Parser struct {
	parsed sync.Map // content hash -> domain.FileContent
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ContentHash returns the hex encoded xxhash of content.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Parse returns the parsed form of content. hash must be ContentHash(content).
func (p *Parser) Parse(content, hash string) domain.FileContent {
	if cached, ok := p.parsed.Load(hash); ok {
		return cached.(domain.FileContent) //nolint:forcetypeassert // Only FileContent is stored
	}

	code := stripComments(content)
	parsed := domain.FileContent{
		RawContent:     content,
		Imports:        []string{},
		VersionPragmas: []string{},
	}
	for _, m := range pragmaPattern.FindAllStringSubmatch(code, -1) {
		parsed.VersionPragmas = append(parsed.VersionPragmas, strings.TrimSpace(m[1]))
	}
	for _, m := range importPattern.FindAllStringSubmatch(code, -1) {
		for _, group := range m[1:] {
			if group != "" {
				parsed.Imports = append(parsed.Imports, group)
				break
			}
		}
	}

	p.parsed.Store(hash, parsed)
	return parsed
}

// stripComments blanks out line and block comments, leaving string
// literals untouched.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '"' || c == '\'':
			end := i + 1
			for end < len(src) && src[end] != c && src[end] != '\n' {
				if src[end] == '\\' {
					end++
				}
				end++
			}
			end = min(end, len(src)-1)
			b.WriteString(src[i : end+1])
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				b.WriteByte('\n')
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			b.WriteByte(' ')
			i += end + 3
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
