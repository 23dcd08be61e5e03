package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// DeployRenderer prints one "<Label>: <address>" line per confirmed
// deployment on out. Nothing else goes to out so the lines can be parsed.
type DeployRenderer struct {
	out     io.Writer
	details io.Writer
	verbose bool
}

// NewDeployRenderer creates a new deploy renderer. When verbose is set a
// short summary with tx and explorer links is written to details.
func NewDeployRenderer(out, details io.Writer, verbose bool) *DeployRenderer {
	return &DeployRenderer{
		out:     out,
		details: details,
		verbose: verbose,
	}
}

// ContractDeployed prints the address line as soon as a deployment is confirmed
func (r *DeployRenderer) ContractDeployed(target domain.DeploymentTarget, contract *domain.DeployedContract) error {
	_, err := fmt.Fprintf(r.out, "%s: %s\n", target.Label, contract.Address.Hex())
	return err
}

// Render prints the verbose summary of a completed run
func (r *DeployRenderer) Render(result *usecase.DeployMarketplaceResult) error {
	if !r.verbose || len(result.Deployed) == 0 {
		return nil
	}

	faint := color.New(color.Faint)
	fmt.Fprintln(r.details, FormatSuccess(fmt.Sprintf("Deployed %d contracts", len(result.Deployed))))

	explorer := ""
	if result.Network != nil {
		explorer = result.Network.ExplorerURL
		faint.Fprintf(r.details, "Network: %s (chain %d)\n", result.Network.Name, result.Network.ChainID)
	}

	for _, c := range result.Deployed {
		faint.Fprintf(r.details, "  %s tx %s block %d gas %d\n",
			c.ContractName, c.TxHash.Hex(), c.BlockNumber, c.GasUsed)
		if explorer != "" {
			faint.Fprintf(r.details, "    %s/address/%s\n", explorer, c.Address.Hex())
		}
	}

	return nil
}

var (
	_ usecase.DeploymentReporter                 = (*DeployRenderer)(nil)
	_ Renderer[*usecase.DeployMarketplaceResult] = (*DeployRenderer)(nil)
)
