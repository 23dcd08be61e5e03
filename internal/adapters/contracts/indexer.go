package contracts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/marketcollection/mkdeploy/internal/domain"
)

// maxSuggestions bounds the "did you mean" list
const maxSuggestions = 3

// hardhatArtifact is the subset of a Hardhat compilation artifact we need
type hardhatArtifact struct {
	Format         string                                `json:"_format"`
	ContractName   string                                `json:"contractName"`
	SourceName     string                                `json:"sourceName"`
	ABI            json.RawMessage                       `json:"abi"`
	Bytecode       string                                `json:"bytecode"`
	LinkReferences map[string]map[string]json.RawMessage `json:"linkReferences"`
}

type indexEntry struct {
	factory   *domain.ContractFactory
	libraries []string
}

// Indexer discovers Hardhat artifacts and indexes them by name
type Indexer struct {
	artifactsDir  string
	contracts     map[string]*indexEntry   // key: "source:Name"
	contractNames map[string][]*indexEntry // key: contract name
	log           *slog.Logger
	mu            sync.RWMutex
	once          sync.Once
	indexErr      error
}

// NewIndexer creates a new artifact indexer rooted at artifactsDir
func NewIndexer(artifactsDir string, log *slog.Logger) *Indexer {
	return &Indexer{
		artifactsDir:  artifactsDir,
		contracts:     make(map[string]*indexEntry),
		contractNames: make(map[string][]*indexEntry),
		log:           log,
	}
}

// Index walks the artifacts directory. Only the first call does any work.
func (i *Indexer) Index() error {
	i.once.Do(func() {
		i.indexErr = i.index()
	})
	return i.indexErr
}

func (i *Indexer) index() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	info, err := os.Stat(i.artifactsDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("artifacts directory %s not found, run `npx hardhat compile` first", i.artifactsDir)
	}

	err = filepath.WalkDir(i.artifactsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}
		return i.processArtifact(path)
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	i.log.Debug("indexed artifacts",
		slog.String("dir", i.artifactsDir),
		slog.Int("contracts", len(i.contracts)),
	)
	return nil
}

// processArtifact parses and indexes a single artifact file
func (i *Indexer) processArtifact(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var artifact hardhatArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		// Not an artifact, e.g. a cache file
		return nil
	}
	if artifact.ContractName == "" || artifact.SourceName == "" || len(artifact.ABI) == 0 {
		return nil
	}

	parsed, err := abi.JSON(bytes.NewReader(artifact.ABI))
	if err != nil {
		return fmt.Errorf("invalid ABI in %s: %w", path, err)
	}

	entry := &indexEntry{
		factory: &domain.ContractFactory{
			Name:         artifact.ContractName,
			SourceName:   artifact.SourceName,
			ArtifactPath: path,
			ABI:          parsed,
		},
	}

	for source, libs := range artifact.LinkReferences {
		for lib := range libs {
			entry.libraries = append(entry.libraries, source+":"+lib)
		}
	}
	sort.Strings(entry.libraries)

	// Unlinked bytecode carries __$...$__ placeholders and does not decode
	if len(entry.libraries) == 0 && artifact.Bytecode != "" {
		code, err := hexutil.Decode(artifact.Bytecode)
		if err != nil {
			return fmt.Errorf("invalid bytecode in %s: %w", path, err)
		}
		entry.factory.Bytecode = code
	}

	fqn := entry.factory.FullyQualifiedName()
	i.contracts[fqn] = entry
	i.contractNames[artifact.ContractName] = append(i.contractNames[artifact.ContractName], entry)

	return nil
}

// GetContract returns the factory for a simple or fully qualified name
func (i *Indexer) GetContract(key string) (*domain.ContractFactory, error) {
	if err := i.Index(); err != nil {
		return nil, err
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	entry, err := i.lookup(key)
	if err != nil {
		return nil, err
	}

	if len(entry.libraries) > 0 {
		return nil, fmt.Errorf("%w: %s needs linked libraries (%s)",
			domain.ErrNotDeployable, entry.factory.FullyQualifiedName(), strings.Join(entry.libraries, ", "))
	}
	if len(entry.factory.Bytecode) == 0 {
		return nil, fmt.Errorf("%w: %s is abstract or an interface",
			domain.ErrNotDeployable, entry.factory.FullyQualifiedName())
	}

	return entry.factory, nil
}

func (i *Indexer) lookup(key string) (*indexEntry, error) {
	if strings.Contains(key, ":") {
		if entry, ok := i.contracts[key]; ok {
			return entry, nil
		}
		return nil, domain.ContractNotFoundErr{Name: key, Suggestions: i.suggest(key)}
	}

	entries := i.contractNames[key]
	switch len(entries) {
	case 0:
		return nil, domain.ContractNotFoundErr{Name: key, Suggestions: i.suggest(key)}
	case 1:
		return entries[0], nil
	default:
		return nil, domain.AmbiguousContractErr{
			Name: key,
			Matches: lo.Map(entries, func(e *indexEntry, _ int) *domain.ContractFactory {
				return e.factory
			}),
		}
	}
}

// suggest returns close names: case-insensitive matches first, then fuzzy ones
func (i *Indexer) suggest(key string) []string {
	var names []string
	if strings.Contains(key, ":") {
		names = lo.Keys(i.contracts)
	} else {
		names = lo.Keys(i.contractNames)
	}
	sort.Strings(names)

	fold := cases.Fold()
	folded := fold.String(key)
	exact := lo.Filter(names, func(name string, _ int) bool {
		return fold.String(name) == folded
	})

	fuzzyMatches := lo.Map(fuzzy.Find(key, names), func(m fuzzy.Match, _ int) string {
		return m.Str
	})

	suggestions := lo.Uniq(append(exact, fuzzyMatches...))
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
