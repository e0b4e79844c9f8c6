package main

import (
	"interview-scorer-backend/lib/interchange"

	"github.com/spf13/cobra"
)

var exportOutputFile string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Выгрузить данные в yaml",
}

var exportTemplateCmd = &cobra.Command{
	Use:   "template <id>",
	Short: "Выгрузить шаблон",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := openServices()
		if err != nil {
			return err
		}
		tpl, err := s.templates.Get(args[0])
		if err != nil {
			return err
		}
		return dumpTo(exportOutputFile, tpl)
	},
}

var exportResultCmd = &cobra.Command{
	Use:   "result <id>",
	Short: "Выгрузить результат интервью",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := openServices()
		if err != nil {
			return err
		}
		details, err := s.results.Get(args[0])
		if err != nil {
			return err
		}
		return dumpTo(exportOutputFile, details.ResultView)
	},
}

var exportSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Выгрузить шкалу оценок",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := openServices()
		if err != nil {
			return err
		}
		settings, err := s.settings.Get()
		if err != nil {
			return err
		}
		return dumpTo(exportOutputFile, settings)
	},
}

var exportRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Выгрузить набор вместе с результатами",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := openServices()
		if err != nil {
			return err
		}
		bundle, err := s.runs.Export(args[0])
		if err != nil {
			return err
		}
		return dumpTo(exportOutputFile, bundle)
	},
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutputFile, "out", "o", "", "Файл для записи (по умолчанию stdout)")
	exportCmd.AddCommand(exportTemplateCmd, exportResultCmd, exportSettingsCmd, exportRunCmd)
	rootCmd.AddCommand(exportCmd)
}

func dumpTo(path string, value interface{}) error {
	data, err := interchange.Dump(value)
	if err != nil {
		return err
	}
	return writeOutput(path, data)
}
