package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/driptrace/driptrace/unionfind"
)

// showCommand creates the show command for inspecting a network.
func (c *CLI) showCommand() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the nodes, pipes, and components of a network",
		Long: `Print the nodes, pipes, and components of a network.

Without --network the built-in farm fixture is shown: a water source and
four fields joined by seven candidate pipes. The component count folds every
pipe through a disjoint set, so an unconnected network is visible before any
algorithm runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.OutOrStdout(), network)
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "TOML network file (default: built-in farm)")

	return cmd
}

// runShow loads the network and prints its tables.
func (c *CLI) runShow(w io.Writer, path string) error {
	g, nodes, err := c.loadNetwork(path)
	if err != nil {
		return err
	}

	ds := unionfind.New(g.NodeCount())
	for _, e := range g.Edges() {
		ds.Union(e.U, e.V)
	}
	components := fmt.Sprintf("%d components", ds.Count())
	if ds.Count() == 1 {
		components = "1 component"
	}

	printTitle(w, "Irrigation network")
	printDetail(w, "%d nodes, %d pipes, %s", g.NodeCount(), g.EdgeCount(), components)
	printNewline(w)

	if len(nodes) > 0 {
		col := styleDim.Width(4)
		fmt.Fprintln(w, "  "+col.Render("#")+styleDim.Render("label           kind    position"))
		for i, n := range nodes {
			fmt.Fprintf(w, "  %s%-16s%-8s(%g,%g)\n",
				col.Render(fmt.Sprint(i)), n.Label, n.Kind, n.X, n.Y)
		}
		printNewline(w)
	}

	if g.EdgeCount() > 0 {
		fmt.Fprintln(w, "  "+styleDim.Render("pipe    length"))
		for _, e := range g.Edges() {
			fmt.Fprintf(w, "  %-8s%gm\n", fmt.Sprintf("%d-%d", e.U, e.V), e.Weight)
		}
	}

	return nil
}
