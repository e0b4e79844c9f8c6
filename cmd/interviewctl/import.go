package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Загрузить yaml файл",
	Long:  "Загружает шаблон, результат, настройки, набор или резервную копию. Тип определяется по содержимому файла.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "ошибка чтения файла %s", args[0])
	}
	s, err := openServices()
	if err != nil {
		return err
	}
	view, err := s.importer.Import(data)
	if err != nil {
		return err
	}
	if view.ID != "" {
		fmt.Printf("загружено: %s %s\n", view.Kind, view.ID)
	} else {
		fmt.Printf("загружено: %s\n", view.Kind)
	}
	return nil
}
