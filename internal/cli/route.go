package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driptrace/driptrace/dijkstra"
	"github.com/driptrace/driptrace/report"
)

// routeCommand creates the route command for streaming a Dijkstra run.
func (c *CLI) routeCommand() *cobra.Command {
	var (
		network string
		rate    float64
	)

	cmd := &cobra.Command{
		Use:   "route <source> <target>",
		Short: "Stream a Dijkstra run and price the cheapest route",
		Long: `Stream a Dijkstra run and price the cheapest route.

Nodes finalize in order of distance from the source; every examined pipe
either relaxes a neighbor (green) or loses to a shorter known route (dim).
The distance table, the reconstructed path, and the cost at --rate follow.
An unreachable target is a valid answer, not an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("source %q is not a node index", args[0])
			}
			target, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("target %q is not a node index", args[1])
			}

			return c.runRoute(cmd.OutOrStdout(), network, source, target, rate)
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "TOML network file (default: built-in farm)")
	cmd.Flags().Float64Var(&rate, "rate", report.DefaultRate, "pipe cost per meter")

	return cmd
}

// runRoute runs the algorithm, streams its trace, and prints the answer.
func (c *CLI) runRoute(w io.Writer, path string, source, target int, rate float64) error {
	g, nodes, err := c.loadNetwork(path)
	if err != nil {
		return err
	}
	if target < 0 || target >= g.NodeCount() {
		return fmt.Errorf("target node %d outside [0,%d)", target, g.NodeCount())
	}

	res, err := dijkstra.Run(g, source)
	if err != nil {
		return err
	}
	c.Logger.Debugf("run from %d produced %d events", source, len(res.Events))

	for ev := range res.Trace() {
		fmt.Fprintln(w, renderRouteEvent(ev))
	}
	printNewline(w)

	fmt.Fprintln(w, "  "+styleDim.Render("node  distance"))
	for i, d := range res.Dist {
		dist := "unreachable"
		if !math.IsInf(d, 1) {
			dist = fmt.Sprintf("%gm", d)
		}
		if nodes != nil {
			fmt.Fprintf(w, "  %-6d%-14s%s\n", i, dist, styleDim.Render(label(nodes, i)))
		} else {
			fmt.Fprintf(w, "  %-6d%s\n", i, dist)
		}
	}
	printNewline(w)

	route := report.NewRoute(res, target)
	if !route.Reachable() {
		printWarning(w, "%s is unreachable from %s", label(nodes, target), label(nodes, source))

		return nil
	}

	printSuccess(w, "route %s -> %s: %s (%gm)",
		label(nodes, source), label(nodes, target), renderHops(route), route.Distance)
	printDetail(w, "cost $%g at $%g/m", route.Cost(rate), rate)

	return nil
}

// renderHops joins the node indices along the route; standing water gets a
// one-word answer.
func renderHops(route report.Route) string {
	if len(route.Hops) == 0 {
		return "already there"
	}

	steps := []string{strconv.Itoa(route.Source)}
	for _, h := range route.Hops {
		steps = append(steps, strconv.Itoa(h.To))
	}

	return strings.Join(steps, " -> ")
}

// renderRouteEvent styles one Dijkstra decision line.
func renderRouteEvent(ev dijkstra.Event) string {
	switch e := ev.(type) {
	case dijkstra.Finalized:
		return styleFinal.Render(e.String())
	case dijkstra.Relaxed:
		return styleRelax.Render(e.String())
	case dijkstra.CompareWorse:
		return styleWorse.Render(e.String())
	}

	return fmt.Sprint(ev)
}
