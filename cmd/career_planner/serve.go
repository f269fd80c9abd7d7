package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-planner/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP API",
	Long:  `Start an HTTP server on the loopback interface that exposes the planner as a REST API plus a websocket change feed.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Interface to listen on (default from config, 127.0.0.1)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8787)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if cmd.Flags().Changed("host") {
		a.cfg.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		a.cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Host:         a.cfg.Host,
		Port:         a.cfg.Port,
		ResultsLimit: a.cfg.ResultsLimit,
	}, a.session, a.catalog, a.logger)

	return srv.Run(ctx)
}
