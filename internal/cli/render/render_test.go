package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/domain/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestDeployRenderer(t *testing.T) {
	var out, details bytes.Buffer
	r := NewDeployRenderer(&out, &details, true)

	targets := domain.MarketplaceTargets()
	market := &domain.DeployedContract{
		ContractName: "MarketPlace",
		Address:      common.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3"),
		BlockNumber:  1,
	}
	erc721 := &domain.DeployedContract{
		ContractName: "ERC721Royalty",
		Address:      common.HexToAddress("0xe7f1725e7734ce288f8367e1bb143e90bb3f0512"),
		BlockNumber:  2,
	}

	require.NoError(t, r.ContractDeployed(targets[0], market))
	require.NoError(t, r.ContractDeployed(targets[1], erc721))

	assert.Equal(t,
		"Market: 0x5FbDB2315678afecb367f032d93F642f64180aa3\n"+
			"ERC721: 0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512\n",
		out.String())

	require.NoError(t, r.Render(&usecase.DeployMarketplaceResult{
		Network:  &config.Network{Name: "sepolia", ChainID: 11155111, ExplorerURL: "https://sepolia.etherscan.io"},
		Deployed: []*domain.DeployedContract{market, erc721},
	}))
	assert.Contains(t, details.String(), "Deployed 2 contracts")
	assert.Contains(t, details.String(), "https://sepolia.etherscan.io/address/0x5FbDB2315678afecb367f032d93F642f64180aa3")
	// the summary never touches the address stream
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestDeployRendererQuiet(t *testing.T) {
	var out, details bytes.Buffer
	r := NewDeployRenderer(&out, &details, false)

	require.NoError(t, r.Render(&usecase.DeployMarketplaceResult{
		Deployed: []*domain.DeployedContract{{ContractName: "MarketPlace"}},
	}))
	assert.Empty(t, details.String())
}

func TestNetworksRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewNetworksRenderer(&out, false)

	err := r.Render(&usecase.ListNetworksResult{
		Current: "localhost",
		Networks: []usecase.NetworkStatus{
			{Name: "localhost", ChainID: 31337, RPCURL: "http://127.0.0.1:8545", HasKey: true},
			{Name: "sepolia", Error: errors.New("no url")},
		},
	})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "NETWORK")
	assert.Contains(t, output, "31337")
	assert.Contains(t, output, "http://127.0.0.1:8545")
	assert.Contains(t, output, "no url")
	assert.Contains(t, output, "*")
}

func TestNetworksRendererEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&out, false).Render(&usecase.ListNetworksResult{}))
	assert.Contains(t, out.String(), "No networks configured")
}

func TestSaveArgsRenderer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewSaveArgsRenderer(&out).Render(&usecase.SaveArgumentsResult{Path: "/p/arguments/erc721.js"}))
	assert.Equal(t, "/p/arguments/erc721.js\n", out.String())
}
