package domain

import (
	"encoding/json"
	"strings"
)

// Artifact and build info format identifiers.
const (
	ArtifactFormat  = "smelt-sol-artifact-1"
	DebugFileFormat = "smelt-sol-dbg-1"
	BuildInfoFormat = "smelt-sol-build-info-1"
	ArtifactFileExt = ".json"
	DebugFileSuffix = ".dbg.json"
)

// Artifact is the persisted compilation result of one contract.
type Artifact struct {
	Format                 string                                `json:"_format"`
	ContractName           string                                `json:"contractName"`
	SourceName             string                                `json:"sourceName"`
	ABI                    json.RawMessage                       `json:"abi"`
	Bytecode               string                                `json:"bytecode"`
	DeployedBytecode       string                                `json:"deployedBytecode"`
	LinkReferences         map[string]map[string][]LinkReference `json:"linkReferences"`
	DeployedLinkReferences map[string]map[string][]LinkReference `json:"deployedLinkReferences"`
}

// NewArtifact builds the artifact of contractName declared in sourceName.
func NewArtifact(sourceName, contractName string, out ContractOutput) Artifact {
	abi := out.ABI
	if len(abi) == 0 {
		abi = json.RawMessage("[]")
	}
	return Artifact{
		Format:                 ArtifactFormat,
		ContractName:           contractName,
		SourceName:             sourceName,
		ABI:                    abi,
		Bytecode:               withHexPrefix(out.EVM.Bytecode.Object),
		DeployedBytecode:       withHexPrefix(out.EVM.DeployedBytecode.Object),
		LinkReferences:         nonNilLinks(out.EVM.Bytecode.LinkReferences),
		DeployedLinkReferences: nonNilLinks(out.EVM.DeployedBytecode.LinkReferences),
	}
}

// DebugFile links an artifact to the build info it was produced by.
type DebugFile struct {
	Format    string `json:"_format"`
	BuildInfo string `json:"buildInfo"`
}

// BuildInfo is the compiler input and output of one compilation job.
type BuildInfo struct {
	Format          string         `json:"_format"`
	ID              string         `json:"id"`
	SolcVersion     string         `json:"solcVersion"`
	SolcLongVersion string         `json:"solcLongVersion,omitempty"`
	Input           CompilerInput  `json:"input"`
	Output          CompilerOutput `json:"output"`
}

func withHexPrefix(object string) string {
	if strings.HasPrefix(object, "0x") {
		return object
	}
	return "0x" + object
}

func nonNilLinks(links map[string]map[string][]LinkReference) map[string]map[string][]LinkReference {
	if links == nil {
		return map[string]map[string][]LinkReference{}
	}
	return links
}
