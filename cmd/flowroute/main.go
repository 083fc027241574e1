// Command flowroute is the command-line driver for the congestion-aware
// routing engine: one-shot shortest-path queries over CSV-loaded networks,
// graph inspection, DOT export, a demo mode, and the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trafficwise/flowroute/core"
	"github.com/trafficwise/flowroute/loader"
)

var (
	flagGraphCSV  string
	flagCoordsCSV string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "flowroute",
		Short:        "flowroute — congestion-aware shortest paths over road networks",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagGraphCSV, "csv", "", "edge CSV file (u,v,distance,traffic_factor); empty loads the sample network")
	rootCmd.PersistentFlags().StringVar(&flagCoordsCSV, "coords", "", "coordinate CSV file (node,x,y)")

	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadGraph builds the working graph from the persistent flags: the bundled
// sample network when --csv is absent, otherwise the given files.
func loadGraph() (*core.Graph, error) {
	if flagGraphCSV == "" {
		return loader.Sample(), nil
	}

	f, err := os.Open(flagGraphCSV)
	if err != nil {
		return nil, fmt.Errorf("open edge CSV: %w", err)
	}
	defer f.Close()

	g, err := loader.FromCSV(f)
	if err != nil {
		return nil, err
	}

	if flagCoordsCSV != "" {
		cf, err := os.Open(flagCoordsCSV)
		if err != nil {
			return nil, fmt.Errorf("open coords CSV: %w", err)
		}
		defer cf.Close()
		if err := loader.CoordsFromCSV(g, cf); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}

	return log
}
