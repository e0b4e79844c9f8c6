package main

import (
	"fmt"
	"os"

	"interview-scorer-backend/lib/interchange"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var backupOutputFile string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Выгрузить резервную копию всех данных",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := openServices()
		if err != nil {
			return err
		}
		bundle, err := s.backup.Snapshot()
		if err != nil {
			return err
		}
		return dumpTo(backupOutputFile, bundle)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Восстановить данные из резервной копии",
	Long:  "Текущие шаблоны, результаты, наборы и настройки полностью заменяются содержимым файла.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	backupCmd.Flags().StringVarP(&backupOutputFile, "out", "o", "", "Файл для записи (по умолчанию stdout)")
	rootCmd.AddCommand(backupCmd, restoreCmd)
}

func runRestore(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "ошибка чтения файла %s", args[0])
	}
	doc, err := interchange.Load(data)
	if err != nil {
		return err
	}
	if doc.Kind != interchange.KindBackup {
		return errors.Errorf("файл %s не является резервной копией (%s)", args[0], doc.Kind)
	}
	s, err := openServices()
	if err != nil {
		return err
	}
	summary, err := s.backup.Restore(*doc.Backup)
	if err != nil {
		return err
	}
	fmt.Printf("восстановлено: шаблонов %d, результатов %d, наборов %d\n",
		summary.Templates, summary.Results, summary.Runs)
	return nil
}
