package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/trafficwise/flowroute/core"
	"github.com/trafficwise/flowroute/loader"
	"github.com/trafficwise/flowroute/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.LoadConfig()
			log := newLogger(cfg.LogLevel)

			// CLI flags win over environment-configured files.
			if flagGraphCSV == "" && cfg.GraphCSV != "" {
				flagGraphCSV = cfg.GraphCSV
			}
			if flagCoordsCSV == "" && cfg.CoordsCSV != "" {
				flagCoordsCSV = cfg.CoordsCSV
			}

			var (
				g   *core.Graph
				err error
			)
			if flagGraphCSV == "" {
				log.Info("no edge CSV configured, serving the sample network")
				g = loader.Sample()
			} else if g, err = loadGraph(); err != nil {
				return err
			}

			log.WithField("addr", cfg.Addr).
				WithField("nodes", g.NodeCount()).
				WithField("edges", g.EdgeCount()).
				Info("starting flowroute server")

			srv := server.New(g, log)
			if err := srv.Router(cfg.CORSOrigins).Run(cfg.Addr); err != nil {
				log.WithError(err).Error("server stopped")
				os.Exit(1)
			}

			return nil
		},
	}
}
