package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trafficwise/flowroute/loader"
	"github.com/trafficwise/flowroute/route"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run both algorithms A→Z over the bundled sample network",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := loader.Sample()
			start, end := "A", "Z"

			dijPath, dijCost, err := route.ShortestPath(g, start, end)
			if err != nil {
				return err
			}
			astPath, astCost, err := route.AStar(g, start, end)
			if err != nil {
				return err
			}

			fmt.Printf("Dijkstra: %s  %.3f\n", strings.Join(dijPath, " -> "), dijCost)
			fmt.Printf("A*      : %s  %.3f\n", strings.Join(astPath, " -> "), astCost)

			return nil
		},
	}
}
