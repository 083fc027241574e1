package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trafficwise/flowroute/render"
	"github.com/trafficwise/flowroute/route"
)

// routeResult is the persisted record of one query, mirroring what the
// interactive flow prints.
type routeResult struct {
	Algorithm          string   `json:"algorithm"`
	Start              string   `json:"start"`
	End                string   `json:"end"`
	Path               []string `json:"path"`
	TotalEffectiveCost float64  `json:"total_effective_cost"`
}

func newRouteCmd() *cobra.Command {
	var (
		from, to string
		algo     string
		saveFile string
		dotFile  string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute a shortest path between two nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}

			var (
				path []string
				cost float64
			)
			switch algo {
			case "dijkstra":
				path, cost, err = route.ShortestPath(g, from, to)
			case "astar":
				path, cost, err = route.AStar(g, from, to)
			default:
				return fmt.Errorf("unknown algorithm %q (want dijkstra or astar)", algo)
			}
			if err != nil {
				return err
			}

			if math.IsInf(cost, 1) {
				fmt.Printf("No path found from %s to %s.\n", from, to)
				return nil
			}

			fmt.Printf("%s path: %s\n", algo, strings.Join(path, " -> "))
			fmt.Printf("Total effective distance (considering traffic): %.3f\n", cost)

			if saveFile != "" {
				res := routeResult{
					Algorithm:          algo,
					Start:              from,
					End:                to,
					Path:               path,
					TotalEffectiveCost: cost,
				}
				data, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(saveFile, append(data, '\n'), 0o644); err != nil {
					return fmt.Errorf("save result: %w", err)
				}
				fmt.Println("Saved to", saveFile)
			}

			if dotFile != "" {
				title := fmt.Sprintf("%s path: %s -> %s", algo, from, to)
				dot := render.DOT(g, render.WithPath(path), render.WithTitle(title))
				if err := os.WriteFile(dotFile, []byte(dot), 0o644); err != nil {
					return fmt.Errorf("write DOT: %w", err)
				}
				fmt.Println("DOT written to", dotFile)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start node")
	cmd.Flags().StringVar(&to, "to", "", "end node")
	cmd.Flags().StringVar(&algo, "algo", "dijkstra", "algorithm: dijkstra|astar")
	cmd.Flags().StringVar(&saveFile, "save", "", "write the result as JSON to this file")
	cmd.Flags().StringVar(&dotFile, "dot", "", "write a Graphviz DOT rendering to this file")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
