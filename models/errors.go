package models

import "github.com/pkg/errors"

var (
	ErrTemplateNotFound = errors.New("шаблон не найден")
	ErrCategoryNotFound = errors.New("категория не найдена")
	ErrQuestionNotFound = errors.New("вопрос не найден")
	ErrFeedbackNotFound = errors.New("вариант оценки не найден")
	ErrResultNotFound   = errors.New("результат интервью не найден")
	ErrRunNotFound      = errors.New("набор не найден")
)

// IsNotFound ошибка отсутствия записи, отдается клиенту как 404
func IsNotFound(err error) bool {
	cause := errors.Cause(err)
	switch cause {
	case ErrTemplateNotFound, ErrCategoryNotFound, ErrQuestionNotFound,
		ErrFeedbackNotFound, ErrResultNotFound, ErrRunNotFound:
		return true
	}
	return false
}

// ValidationError ошибка входных данных, отдается клиенту как 400
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return errors.WithStack(ValidationError{Message: errors.Errorf(format, args...).Error()})
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(ValidationError)
	return ok
}
