package ports

import (
	"context"

	"go.trai.ch/smelt/internal/core/domain"
)

// Compiler invokes a Solidity compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile runs the compiler of the given version on input.
	// Diagnostics reported by the compiler are part of the output, not the error.
	Compile(ctx context.Context, version string, input domain.CompilerInput) (*domain.CompilerOutput, error)
}
