package main

import (
	"github.com/spf13/cobra"

	"keypadCalc/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server for the calculator widget",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadCfg(envFiles(cmd)...)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Server.Port = port
		}
		return app.New(cfg).Run()
	},
}

func init() {
	serveCmd.Flags().String("port", "", "порт HTTP (перекрывает CALCULATOR_SERVER_PORT)")
	rootCmd.AddCommand(serveCmd)
}
