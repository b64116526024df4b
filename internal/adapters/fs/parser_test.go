package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/smelt/internal/adapters/fs"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		imports []string
		pragmas []string
	}{
		{
			name:    "empty",
			source:  "",
			imports: []string{},
			pragmas: []string{},
		},
		{
			name: "all import forms",
			source: `pragma solidity ^0.8.0;
import "./A.sol";
import './B.sol' as B;
import * as C from "./C.sol";
import {D, E as F} from '@lib/D.sol';
import "./G.sol";
contract X {}
`,
			imports: []string{"./A.sol", "./B.sol", "./C.sol", "@lib/D.sol", "./G.sol"},
			pragmas: []string{"^0.8.0"},
		},
		{
			name: "multiple pragmas",
			source: `pragma solidity >=0.5.0 <0.9.0;
pragma solidity   ^0.7.0 || ^0.8.0 ;
pragma abicoder v2;
`,
			imports: []string{},
			pragmas: []string{">=0.5.0 <0.9.0", "^0.7.0 || ^0.8.0"},
		},
		{
			name: "comments are ignored",
			source: `// import "./Line.sol";
/* pragma solidity 0.4.0;
import "./Block.sol"; */
import "./Real.sol"; // trailing
pragma solidity 0.8.9;
`,
			imports: []string{"./Real.sol"},
			pragmas: []string{"0.8.9"},
		},
		{
			name:    "comment markers inside strings",
			source:  `import "./we//ird.sol"; string constant s = "/*"; import "./After.sol";`,
			imports: []string{"./we//ird.sol", "./After.sol"},
			pragmas: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parser := fs.NewParser()
			got := parser.Parse(tt.source, fs.ContentHash(tt.source))

			assert.Equal(t, tt.source, got.RawContent)
			assert.Equal(t, tt.imports, got.Imports)
			assert.Equal(t, tt.pragmas, got.VersionPragmas)
		})
	}
}

func TestParser_Memoizes(t *testing.T) {
	t.Parallel()

	parser := fs.NewParser()
	src := `import "./A.sol";`
	hash := fs.ContentHash(src)

	first := parser.Parse(src, hash)
	// The same hash returns the memoized result.
	second := parser.Parse("ignored", hash)
	assert.Equal(t, first, second)
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	assert.Len(t, fs.ContentHash("contract A {}"), 16)
	assert.Equal(t, fs.ContentHash("a"), fs.ContentHash("a"))
	assert.NotEqual(t, fs.ContentHash("a"), fs.ContentHash("b"))
}
