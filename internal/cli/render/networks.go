package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/marketcollection/mkdeploy/internal/usecase"
)

var (
	currentStyle = color.New(color.FgGreen, color.Bold)
	errorStyle   = color.New(color.FgRed)
	mutedStyle   = color.New(color.Faint)
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// Render renders the list of networks as a table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		_, err := fmt.Fprintln(r.out, "No networks configured in mkdeploy.toml [networks]")
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"", "NETWORK", "CHAIN ID", "RPC URL", "KEY"})
	for _, n := range result.Networks {
		marker := ""
		name := n.Name
		if n.Name == result.Current {
			marker = "*"
			name = r.paint(currentStyle, n.Name)
		}

		if n.Error != nil {
			t.AppendRow(table.Row{marker, name, "-", r.paint(errorStyle, n.Error.Error()), ""})
			continue
		}

		key := r.paint(mutedStyle, "none")
		if n.HasKey {
			key = "set"
		}
		t.AppendRow(table.Row{marker, name, strconv.FormatUint(n.ChainID, 10), n.RPCURL, key})
	}

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}

func (r *NetworksRenderer) paint(c *color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
