package domain

import "encoding/json"

// CompilerInput is the solc standard JSON input of a compilation job.
type CompilerInput struct {
	Language string                 `json:"language"`
	Sources  map[string]InputSource `json:"sources"`
	Settings SolcSettings           `json:"settings"`
}

// InputSource is the content of one source file in a CompilerInput.
type InputSource struct {
	Content string `json:"content"`
}

// DefaultOutputSelection is the output selection requested when none is configured.
func DefaultOutputSelection() map[string]map[string][]string {
	return map[string]map[string][]string{
		"*": {
			"*": {
				"abi",
				"evm.bytecode",
				"evm.deployedBytecode",
				"evm.methodIdentifiers",
				"metadata",
			},
			"": {"ast"},
		},
	}
}

// NewCompilerInput builds the compiler input for a job. Sources are keyed by source name.
func NewCompilerInput(job *CompilationJob) CompilerInput {
	sources := make(map[string]InputSource, len(job.ResolvedFiles()))
	for _, f := range job.ResolvedFiles() {
		sources[f.SourceName] = InputSource{Content: f.Content.RawContent}
	}

	settings := job.SolcConfig().Settings
	if len(settings.OutputSelection) == 0 {
		settings.OutputSelection = DefaultOutputSelection()
	}

	return CompilerInput{
		Language: "Solidity",
		Sources:  sources,
		Settings: settings,
	}
}

// Severity levels reported by solc.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// CompilerError is a diagnostic reported by solc.
type CompilerError struct {
	Severity         string          `json:"severity"`
	Type             string          `json:"type"`
	Component        string          `json:"component"`
	Message          string          `json:"message"`
	FormattedMessage string          `json:"formattedMessage,omitempty"`
	SourceLocation   *SourceLocation `json:"sourceLocation,omitempty"`
}

// SourceLocation points at a byte range in a source file.
type SourceLocation struct {
	File  string `json:"file"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// CompilerOutput is the solc standard JSON output.
type CompilerOutput struct {
	Errors    []CompilerError                      `json:"errors,omitempty"`
	Sources   map[string]OutputSource              `json:"sources,omitempty"`
	Contracts map[string]map[string]ContractOutput `json:"contracts,omitempty"`
}

// OutputSource is the per-source part of the compiler output.
type OutputSource struct {
	ID  int             `json:"id"`
	AST json.RawMessage `json:"ast,omitempty"`
}

// ContractOutput is the compiler output of a single contract.
type ContractOutput struct {
	ABI      json.RawMessage `json:"abi,omitempty"`
	Metadata string          `json:"metadata,omitempty"`
	EVM      EVMOutput       `json:"evm"`
}

// EVMOutput holds the bytecode sections of a contract output.
type EVMOutput struct {
	Bytecode          BytecodeOutput    `json:"bytecode"`
	DeployedBytecode  BytecodeOutput    `json:"deployedBytecode"`
	MethodIdentifiers map[string]string `json:"methodIdentifiers,omitempty"`
}

// BytecodeOutput is a bytecode object with its unresolved library links.
type BytecodeOutput struct {
	Object         string                                `json:"object"`
	LinkReferences map[string]map[string][]LinkReference `json:"linkReferences,omitempty"`
}

// LinkReference is the position of a library address placeholder.
type LinkReference struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// HasErrors reports whether any diagnostic has error severity.
func (o *CompilerOutput) HasErrors() bool {
	for _, e := range o.Errors {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ContractCount returns the number of contracts in the output.
func (o *CompilerOutput) ContractCount() int {
	n := 0
	for _, contracts := range o.Contracts {
		n += len(contracts)
	}
	return n
}
