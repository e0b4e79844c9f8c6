package models

type QuestionType string

const (
	QuestionTypeDirect   QuestionType = "DIRECT"   // вопрос с однозначным ответом
	QuestionTypeIndirect QuestionType = "INDIRECT" // открытый вопрос, оценивается качество ответа
)

func (t QuestionType) IsValid() bool {
	return t == QuestionTypeDirect || t == QuestionTypeIndirect
}

type DirectFeedback string

const (
	DirectCorrect DirectFeedback = "CORRECT"
	DirectWrong   DirectFeedback = "WRONG"
	DirectTried   DirectFeedback = "TRIED"
	DirectSilent  DirectFeedback = "SILENT"
)

// DirectFeedbackOrder порядок вывода шкалы для прямых вопросов
var DirectFeedbackOrder = []DirectFeedback{DirectCorrect, DirectTried, DirectWrong, DirectSilent}

func (f DirectFeedback) IsValid() bool {
	for _, key := range DirectFeedbackOrder {
		if f == key {
			return true
		}
	}
	return false
}

type IndirectFeedback string

const (
	IndirectExcellent IndirectFeedback = "EXCELLENT"
	IndirectGood      IndirectFeedback = "GOOD"
	IndirectNotGood   IndirectFeedback = "NOT_GOOD"
	IndirectBad       IndirectFeedback = "BAD"
)

// IndirectFeedbackOrder порядок вывода шкалы для косвенных вопросов
var IndirectFeedbackOrder = []IndirectFeedback{IndirectExcellent, IndirectGood, IndirectNotGood, IndirectBad}

func (f IndirectFeedback) IsValid() bool {
	for _, key := range IndirectFeedbackOrder {
		if f == key {
			return true
		}
	}
	return false
}

// MaxRawScore максимальный балл за вопрос без учета множителя
const MaxRawScore = 100.0
