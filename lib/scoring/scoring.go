package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"interview-scorer-backend/models"
	resultapimodels "interview-scorer-backend/models/api/result"
	settingsapimodels "interview-scorer-backend/models/api/settings"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/pkg/errors"
)

const shortTextLen = 15

// MaxScore максимальный балл вопроса: 100 * множитель
func MaxScore(q templateapimodels.Question) float64 {
	return models.MaxRawScore * q.Multiplier
}

// FeedbackOptions глобальная шкала для типа вопроса, затем пользовательские варианты вопроса
func FeedbackOptions(q templateapimodels.Question, settings settingsapimodels.Settings) []templateapimodels.FeedbackOption {
	options := make([]templateapimodels.FeedbackOption, 0, 4+len(q.CustomFeedbacks))
	switch q.Type {
	case models.QuestionTypeIndirect:
		for _, key := range models.IndirectFeedbackOrder {
			item, ok := settings.Indirect[key]
			if !ok {
				continue
			}
			options = append(options, templateapimodels.FeedbackOption{Key: string(key), Label: item.Label, Score: item.Score})
		}
	default:
		for _, key := range models.DirectFeedbackOrder {
			item, ok := settings.Direct[key]
			if !ok {
				continue
			}
			options = append(options, templateapimodels.FeedbackOption{Key: string(key), Label: item.Label, Score: item.Score})
		}
	}
	for _, f := range q.CustomFeedbacks {
		options = append(options, templateapimodels.FeedbackOption{Label: f.Label, Score: f.Score, IsCustom: true})
	}
	return options
}

// Answer ответ с баллом, умноженным на множитель вопроса и ограниченным [0, 100*множитель]
func Answer(q templateapimodels.Question, label string, baseScore float64, isCustom bool) resultapimodels.AnswerData {
	return resultapimodels.AnswerData{
		Feedback: label,
		Score:    clampScore(q, baseScore*q.Multiplier),
		IsCustom: isCustom,
	}
}

// ResolveAnswer ищет вариант оценки по ключу шкалы или подписи и строит ответ
func ResolveAnswer(q templateapimodels.Question, settings settingsapimodels.Settings, feedback string, isCustom bool) (resultapimodels.AnswerData, error) {
	feedback = strings.TrimSpace(feedback)
	for _, option := range FeedbackOptions(q, settings) {
		if option.IsCustom != isCustom {
			continue
		}
		if option.Label == feedback || (option.Key != "" && strings.EqualFold(option.Key, feedback)) {
			return Answer(q, option.Label, option.Score, option.IsCustom), nil
		}
	}
	return resultapimodels.AnswerData{}, errors.Wrapf(models.ErrFeedbackNotFound, "вопрос %q, оценка %q", q.Text, feedback)
}

// Compute итог по вопросам: максимум = сумма 100*множитель, итог не больше максимума
func Compute(questions []templateapimodels.Question, answers map[string]resultapimodels.AnswerData) resultapimodels.ScoreStats {
	stats := resultapimodels.ScoreStats{}
	for _, q := range questions {
		stats.Max += MaxScore(q)
		if answer, ok := answers[q.ID]; ok {
			stats.Total += clampScore(q, answer.Score)
		}
	}
	stats.Percentage = percentage(stats.Total, stats.Max)
	return stats
}

// CategoryBreakdown оценка по каждой категории в порядке категорий
func CategoryBreakdown(categories []templateapimodels.Category, questions []templateapimodels.Question, answers map[string]resultapimodels.AnswerData) []resultapimodels.CategoryScore {
	sorted := SortedCategories(categories)
	result := make([]resultapimodels.CategoryScore, 0, len(sorted))
	for _, cat := range sorted {
		item := resultapimodels.CategoryScore{
			CategoryID: cat.ID,
			Name:       cat.Name,
		}
		for _, q := range questions {
			if q.CategoryID != cat.ID {
				continue
			}
			item.Questions++
			item.Max += MaxScore(q)
			if answer, ok := answers[q.ID]; ok {
				item.Answered++
				item.Score += clampScore(q, answer.Score)
			}
		}
		item.Percentage = percentage(item.Score, item.Max)
		item.Proficiency = int(math.Round(item.Percentage))
		result = append(result, item)
	}
	return result
}

// QuestionSeries вопросы по порядку категорий, затем по порядку внутри категории
func QuestionSeries(categories []templateapimodels.Category, questions []templateapimodels.Question, answers map[string]resultapimodels.AnswerData) []resultapimodels.QuestionPoint {
	catOrder := make(map[string]int, len(categories))
	for _, cat := range categories {
		catOrder[cat.ID] = cat.Order
	}
	sorted := append([]templateapimodels.Question(nil), questions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := catOrder[sorted[i].CategoryID], catOrder[sorted[j].CategoryID]
		if ci != cj {
			return ci < cj
		}
		return sorted[i].Order < sorted[j].Order
	})
	result := make([]resultapimodels.QuestionPoint, 0, len(sorted))
	for idx, q := range sorted {
		maxScore := MaxScore(q)
		score := 0.0
		if answer, ok := answers[q.ID]; ok {
			score = clampScore(q, answer.Score)
		}
		result = append(result, resultapimodels.QuestionPoint{
			Name:       fmt.Sprintf("Q%d", idx+1),
			QuestionID: q.ID,
			ShortText:  shortText(q.Text),
			Score:      score,
			Missed:     maxScore - score,
			Max:        maxScore,
		})
	}
	return result
}

// Details результат с разбивкой по категориям и вопросам
func Details(view resultapimodels.ResultView) resultapimodels.ResultDetails {
	tpl := view.Template()
	answers := view.Answers()
	return resultapimodels.ResultDetails{
		ResultView:     view,
		Score:          Compute(tpl.Questions, answers),
		CategoryScores: CategoryBreakdown(tpl.Categories, tpl.Questions, answers),
		Series:         QuestionSeries(tpl.Categories, tpl.Questions, answers),
	}
}

// SortedCategories копия категорий, упорядоченная по Order
func SortedCategories(categories []templateapimodels.Category) []templateapimodels.Category {
	sorted := append([]templateapimodels.Category(nil), categories...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

func clampScore(q templateapimodels.Question, score float64) float64 {
	maxScore := MaxScore(q)
	if score > maxScore {
		return maxScore
	}
	if score < 0 {
		return 0
	}
	return score
}

func percentage(total, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return total / max * 100
}

func shortText(text string) string {
	runes := []rune(text)
	if len(runes) > shortTextLen {
		runes = runes[:shortTextLen]
	}
	return string(runes) + "..."
}
