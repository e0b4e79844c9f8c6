package statisticsapimodels

type LeaderboardEntry struct {
	ResultID string  `json:"resultId"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"` // процент
	RawScore float64 `json:"rawScore"`
	MaxScore float64 `json:"maxScore"`
	Date     string  `json:"date"`
}

// DistributionPoint процент кандидата по категории (категории сводятся по названию)
type DistributionPoint struct {
	Category  string  `json:"category"`
	Score     float64 `json:"score"`
	Candidate string  `json:"candidate"`
}

type HeatmapCell struct {
	Category string   `json:"category"`
	Value    *float64 `json:"value"` // nil - категории нет в интервью кандидата
}

type HeatmapRow struct {
	Candidate string        `json:"candidate"`
	Scores    []HeatmapCell `json:"scores"`
}

type Heatmap struct {
	Categories []string     `json:"categories"`
	Rows       []HeatmapRow `json:"rows"`
}

type HistogramBin struct {
	Range string `json:"range"`
	Count int    `json:"count"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Best    float64 `json:"best"`
	Worst   float64 `json:"worst"`
}

type Dashboard struct {
	Summary      Summary             `json:"summary"`
	Leaderboard  []LeaderboardEntry  `json:"leaderboard"`
	Distribution []DistributionPoint `json:"distribution"`
	Heatmap      Heatmap             `json:"heatmap"`
	Histogram    []HistogramBin      `json:"histogram"`
}

type Filter struct {
	RecruitmentRunID string `query:"run_id"`
}
