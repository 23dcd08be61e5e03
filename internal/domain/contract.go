package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractFactory is everything needed to issue a contract-creation
// transaction for a named contract type.
type ContractFactory struct {
	Name         string
	SourceName   string
	ArtifactPath string
	ABI          abi.ABI
	Bytecode     []byte
}

// FullyQualifiedName returns the Hardhat style "source:Name" identifier.
func (f *ContractFactory) FullyQualifiedName() string {
	return f.SourceName + ":" + f.Name
}

// HasConstructor reports whether the contract declares constructor inputs.
func (f *ContractFactory) HasConstructor() bool {
	return len(f.ABI.Constructor.Inputs) > 0
}
