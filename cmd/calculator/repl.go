package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"keypadCalc/internal/api/terminal"
	"keypadCalc/internal/app"
	"keypadCalc/internal/pkg/logger"
	"keypadCalc/internal/usecase/calculator"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Terminal keypad: type keys like `7 + 5 =`, `h` for history, `q` to quit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadCfg(envFiles(cmd)...)
		if err != nil {
			return err
		}
		// в терминальном режиме лог только в файл, чтобы не мешать экрану
		log, closeLog, err := logger.NewFile(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		uc := calculator.New(cfg.Session, nil, nil, nil, log)
		interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		return terminal.New(uc, os.Stdout, interactive, interactive).Run(ctx, os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
