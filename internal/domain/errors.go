package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrContractNotFound is returned when no artifact matches a contract name
	ErrContractNotFound = errors.New("contract not found")

	// ErrAmbiguousContract is returned when a simple contract name matches several artifacts
	ErrAmbiguousContract = errors.New("ambiguous contract name")

	// ErrNotDeployable is returned for abstract contracts and interfaces (empty bytecode)
	ErrNotDeployable = errors.New("contract is not deployable")

	// ErrNetworkNotFound is returned when a network is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrInvalidPrivateKey is returned when the deployer key is missing or malformed
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrChainIDMismatch is returned when the RPC endpoint reports a different chain
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrDeploymentReverted is returned when the creation receipt has a failed status
	ErrDeploymentReverted = errors.New("deployment reverted")

	// ErrNotConnected is returned when the deployer is used before Connect
	ErrNotConnected = errors.New("not connected to blockchain")
)

// ContractNotFoundErr carries the requested name and close matches.
type ContractNotFoundErr struct {
	Name        string
	Suggestions []string
}

func (e ContractNotFoundErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no artifact found for contract %q", e.Name)
	}
	return fmt.Sprintf("no artifact found for contract %q, did you mean: %s?",
		e.Name, strings.Join(e.Suggestions, ", "))
}

func (e ContractNotFoundErr) Is(target error) bool {
	return target == ErrContractNotFound
}

type AmbiguousContractErr struct {
	Name    string
	Matches []*ContractFactory
}

func (e AmbiguousContractErr) Error() string {
	names := make([]string, len(e.Matches))
	for i, m := range e.Matches {
		names[i] = m.FullyQualifiedName()
	}
	sort.Strings(names)

	var suggestions []string
	for _, name := range names {
		suggestions = append(suggestions, "  - "+name)
	}

	return fmt.Sprintf("multiple artifacts found for contract %q - use the fully qualified source:Name form:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}

func (e AmbiguousContractErr) Is(target error) bool {
	return target == ErrAmbiguousContract
}

// DeploymentRejectedError is the single failure kind reported by the
// deployment runner. It names the target that failed and wraps the cause.
type DeploymentRejectedError struct {
	Label        string
	ContractName string
	Err          error
}

func (e *DeploymentRejectedError) Error() string {
	return fmt.Sprintf("%s deployment rejected (%s): %v", e.Label, e.ContractName, e.Err)
}

func (e *DeploymentRejectedError) Unwrap() error {
	return e.Err
}
