package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the nodes and edges of the loaded network",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}

			fmt.Println("Nodes:", strings.Join(g.Nodes(), " "))
			fmt.Println("Edges:")
			for _, e := range g.Edges() {
				fmt.Printf("  %s -> %s : dist=%g, traffic=%g, effective=%.2f\n",
					e.From, e.To, e.Distance, e.TrafficFactor, e.EffectiveWeight())
			}

			return nil
		},
	}
}
