package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "calculator",
	Short: "Keypad calculator: HTTP backend for the widget and a terminal keypad",
}

// Execute запускает корневую команду; ошибка — код выхода 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("env", "", "путь к .env (по умолчанию .env в текущей директории)")
}

func envFiles(cmd *cobra.Command) []string {
	if p, _ := cmd.Flags().GetString("env"); p != "" {
		return []string{p}
	}
	return nil
}
