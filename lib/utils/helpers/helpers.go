package helpers

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// NewID идентификатор для шаблонов, категорий, вопросов и результатов
func NewID() string {
	return uuid.New().String()
}

var nonFileChars = regexp.MustCompile(`[^\p{L}\p{N}_\-.]+`)

// FileName имя файла выгрузки: пробелы заменяются на _, как в исходных выгрузках
func FileName(name, suffix, ext string) string {
	base := strings.Join(strings.Fields(name), "_")
	base = nonFileChars.ReplaceAllString(base, "")
	if base == "" {
		base = "export"
	}
	if suffix != "" {
		base += "_" + suffix
	}
	return base + "." + ext
}
