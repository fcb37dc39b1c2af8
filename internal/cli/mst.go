package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/driptrace/driptrace/kruskal"
	"github.com/driptrace/driptrace/report"
)

// mstCommand creates the mst command for streaming a Kruskal trace.
func (c *CLI) mstCommand() *cobra.Command {
	var (
		network string
		rate    float64
	)

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Stream the Kruskal trace and summarize the spanning tree",
		Long: `Stream the Kruskal trace and summarize the spanning tree.

Pipes are examined lightest first; each one is checked, then kept (green)
or rejected (red) depending on whether it would close a cycle. The summary
lists the kept pipes, their total length, and the build cost at --rate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMST(cmd.OutOrStdout(), network, rate)
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "TOML network file (default: built-in farm)")
	cmd.Flags().Float64Var(&rate, "rate", report.DefaultRate, "pipe cost per meter")

	return cmd
}

// runMST streams every decision and folds them into the summary in one pass.
func (c *CLI) runMST(w io.Writer, path string, rate float64) error {
	g, _, err := c.loadNetwork(path)
	if err != nil {
		return err
	}

	seq, err := kruskal.Trace(g)
	if err != nil {
		return err
	}
	c.Logger.Debugf("tracing %d pipes across %d nodes", g.EdgeCount(), g.NodeCount())

	// Tee the stream: each event prints as it is pulled, and the summary
	// folds the same sequence.
	s := report.Summarize(func(yield func(kruskal.Event) bool) {
		for ev := range seq {
			fmt.Fprintln(w, renderMSTEvent(ev))
			if !yield(ev) {
				return
			}
		}
	})

	printNewline(w)
	if components := g.NodeCount() - len(s.Accepted); components > 1 {
		printWarning(w, "spanning forest: %d pipes across %d components, %gm",
			len(s.Accepted), components, s.Total)
	} else {
		printSuccess(w, "spanning tree: %d pipes, %gm", len(s.Accepted), s.Total)
	}
	for _, a := range s.Accepted {
		printItem(w, "%d-%d (%gm)", a.U, a.V, a.Weight)
	}
	printDetail(w, "cost $%g at $%g/m", s.Total*rate, rate)

	return nil
}

// renderMSTEvent styles one Kruskal decision line.
func renderMSTEvent(ev kruskal.Event) string {
	switch e := ev.(type) {
	case kruskal.Check:
		return styleCheck.Render(e.String())
	case kruskal.Accept:
		return styleAccept.Render(e.String())
	case kruskal.Reject:
		return styleReject.Render(e.String())
	}

	return fmt.Sprint(ev)
}
