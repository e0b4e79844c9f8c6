// Package main консольная утилита для обмена yaml файлами и резервных копий без запуска сервера
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "interviewctl",
	Short:         "Interview scorer CLI",
	Long:          "Импорт и выгрузка шаблонов, результатов, наборов и резервных копий в yaml, статистика по результатам.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
