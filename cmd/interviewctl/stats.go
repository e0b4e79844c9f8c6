package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	statisticsapimodels "interview-scorer-backend/models/api/statistics"

	"github.com/spf13/cobra"
)

var (
	statsRunID   string
	statsXlsFile string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Статистика по результатам интервью",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsRunID, "run", "", "ID набора")
	statsCmd.Flags().StringVar(&statsXlsFile, "xlsx", "", "Выгрузить статистику в Excel файл")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	s, err := openServices()
	if err != nil {
		return err
	}
	filter := statisticsapimodels.Filter{RecruitmentRunID: statsRunID}
	if statsXlsFile != "" {
		buffer, err := s.statistics.Export(filter)
		if err != nil {
			return err
		}
		return writeOutput(statsXlsFile, buffer.Bytes())
	}
	dashboard, err := s.statistics.Dashboard(filter)
	if err != nil {
		return err
	}
	return printDashboard(os.Stdout, dashboard)
}

func printDashboard(out io.Writer, dashboard statisticsapimodels.Dashboard) error {
	summary := dashboard.Summary
	if summary.Count == 0 {
		_, err := fmt.Fprintln(out, "результатов нет")
		return err
	}
	fmt.Fprintf(out, "интервью: %d, средний: %.1f%%, лучший: %.1f%%, худший: %.1f%%\n\n",
		summary.Count, summary.Average, summary.Best, summary.Worst)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tКандидат\tДата\tБаллы\t%")
	for n, entry := range dashboard.Leaderboard {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f/%.1f\t%.1f\n",
			n+1, entry.Name, entry.Date, entry.RawScore, entry.MaxScore, entry.Score)
	}
	return w.Flush()
}
