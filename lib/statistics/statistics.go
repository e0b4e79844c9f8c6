package statisticshandler

import (
	"fmt"
	"math"
	"sort"

	resultapimodels "interview-scorer-backend/models/api/result"
	statisticsapimodels "interview-scorer-backend/models/api/statistics"
)

const (
	unknownCategory = "Unknown"
	histogramBins   = 10
)

// Leaderboard результаты по убыванию процента
func Leaderboard(results []resultapimodels.ResultView) []statisticsapimodels.LeaderboardEntry {
	list := make([]statisticsapimodels.LeaderboardEntry, 0, len(results))
	for _, r := range results {
		list = append(list, statisticsapimodels.LeaderboardEntry{
			ResultID: r.ID,
			Name:     r.CandidateName,
			Score:    r.Percentage(),
			RawScore: r.TotalScore,
			MaxScore: r.MaxPossibleScore,
			Date:     r.Date.Format("2006-01-02"),
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
	return list
}

// Distribution точки "категория - процент кандидата". Категории сводятся по названию,
// чтобы сравнивать результаты разных шаблонов
func Distribution(results []resultapimodels.ResultView) []statisticsapimodels.DistributionPoint {
	points := make([]statisticsapimodels.DistributionPoint, 0)
	for _, r := range results {
		names := make([]string, 0)
		totals := map[string]*[2]float64{}
		for _, q := range r.Questions {
			name := r.CategoryName(q.CategoryID)
			if name == "" {
				name = unknownCategory
			}
			stats, ok := totals[name]
			if !ok {
				stats = &[2]float64{}
				totals[name] = stats
				names = append(names, name)
			}
			stats[1] += 100 * q.Multiplier
			if q.Answer != nil {
				stats[0] += q.Answer.Score
			}
		}
		for _, name := range names {
			stats := totals[name]
			if stats[1] <= 0 {
				continue
			}
			points = append(points, statisticsapimodels.DistributionPoint{
				Category:  name,
				Score:     stats[0] / stats[1] * 100,
				Candidate: r.CandidateName,
			})
		}
	}
	return points
}

// Heatmap матрица кандидат x категория; nil - категории не было в интервью кандидата
func Heatmap(results []resultapimodels.ResultView) statisticsapimodels.Heatmap {
	unique := map[string]struct{}{}
	for _, r := range results {
		for _, cat := range r.Categories {
			unique[cat.Name] = struct{}{}
		}
	}
	categories := make([]string, 0, len(unique))
	for name := range unique {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	heatmap := statisticsapimodels.Heatmap{
		Categories: categories,
		Rows:       make([]statisticsapimodels.HeatmapRow, 0, len(results)),
	}
	for _, r := range results {
		byName := map[string]float64{}
		for _, cat := range r.Categories {
			total, max := 0.0, 0.0
			for _, q := range r.Questions {
				if q.CategoryID != cat.ID {
					continue
				}
				max += 100 * q.Multiplier
				if q.Answer != nil {
					total += q.Answer.Score
				}
			}
			value := 0.0
			if max > 0 {
				value = total / max * 100
			}
			byName[cat.Name] = value
		}
		row := statisticsapimodels.HeatmapRow{
			Candidate: r.CandidateName,
			Scores:    make([]statisticsapimodels.HeatmapCell, 0, len(categories)),
		}
		for _, name := range categories {
			cell := statisticsapimodels.HeatmapCell{Category: name}
			if value, ok := byName[name]; ok {
				value := value
				cell.Value = &value
			}
			row.Scores = append(row.Scores, cell)
		}
		heatmap.Rows = append(heatmap.Rows, row)
	}
	return heatmap
}

// Histogram 10 интервалов по 10%, 100% попадает в последний
func Histogram(results []resultapimodels.ResultView) []statisticsapimodels.HistogramBin {
	bins := make([]statisticsapimodels.HistogramBin, histogramBins)
	for idx := range bins {
		bins[idx] = statisticsapimodels.HistogramBin{
			Range: fmt.Sprintf("%d-%d%%", idx*10, (idx+1)*10),
			Min:   idx * 10,
			Max:   (idx + 1) * 10,
		}
	}
	for _, r := range results {
		bins[binIndex(r.Percentage())].Count++
	}
	return bins
}

func Summary(results []resultapimodels.ResultView) statisticsapimodels.Summary {
	summary := statisticsapimodels.Summary{Count: len(results)}
	if len(results) == 0 {
		return summary
	}
	summary.Worst = math.Inf(1)
	summary.Best = math.Inf(-1)
	total := 0.0
	for _, r := range results {
		pct := r.Percentage()
		total += pct
		summary.Best = math.Max(summary.Best, pct)
		summary.Worst = math.Min(summary.Worst, pct)
	}
	summary.Average = total / float64(len(results))
	return summary
}

func Build(results []resultapimodels.ResultView) statisticsapimodels.Dashboard {
	return statisticsapimodels.Dashboard{
		Summary:      Summary(results),
		Leaderboard:  Leaderboard(results),
		Distribution: Distribution(results),
		Heatmap:      Heatmap(results),
		Histogram:    Histogram(results),
	}
}

func binIndex(pct float64) int {
	idx := int(math.Floor(pct / 10))
	if idx < 0 {
		return 0
	}
	if idx > histogramBins-1 {
		return histogramBins - 1
	}
	return idx
}
