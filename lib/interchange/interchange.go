package interchange

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	backupapimodels "interview-scorer-backend/models/api/backup"
	resultapimodels "interview-scorer-backend/models/api/result"
	runapimodels "interview-scorer-backend/models/api/run"
	settingsapimodels "interview-scorer-backend/models/api/settings"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindTemplate Kind = "template"
	KindResult   Kind = "result"
	KindSettings Kind = "settings"
	KindRun      Kind = "run"
	KindBackup   Kind = "backup"
)

// Document разобранный файл обмена, заполнено поле, соответствующее Kind
type Document struct {
	Kind     Kind
	Template *templateapimodels.TemplateView
	Result   *resultapimodels.ResultView
	Settings *settingsapimodels.Settings
	Run      *runapimodels.Bundle
	Backup   *backupapimodels.Bundle
}

// ImportError ошибка разбора файла обмена, Message можно показывать пользователю
type ImportError struct {
	Message string
	Cause   error
}

func (e ImportError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e ImportError) Unwrap() error {
	return e.Cause
}

func IsImportError(err error) bool {
	var importErr ImportError
	return errors.As(err, &importErr)
}

func Dump(v interface{}) ([]byte, error) {
	buf := bytes.Buffer{}
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования yaml")
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования yaml")
	}
	return buf.Bytes(), nil
}

func Load(data []byte) (Document, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, ImportError{Message: "Failed to parse YAML file", Cause: err}
	}
	if len(raw) == 0 {
		return Document{}, ImportError{Message: "File is empty"}
	}
	kind, ok := detectKind(raw)
	if !ok {
		return Document{}, ImportError{Message: "Unknown file format"}
	}
	if err := validateShape(kind, normalize(raw)); err != nil {
		return Document{}, err
	}

	doc := Document{Kind: kind}
	var target interface{}
	switch kind {
	case KindBackup:
		doc.Backup = &backupapimodels.Bundle{}
		target = doc.Backup
	case KindRun:
		doc.Run = &runapimodels.Bundle{}
		target = doc.Run
	case KindResult:
		doc.Result = &resultapimodels.ResultView{}
		target = doc.Result
	case KindTemplate:
		doc.Template = &templateapimodels.TemplateView{}
		target = doc.Template
	case KindSettings:
		doc.Settings = &settingsapimodels.Settings{}
		target = doc.Settings
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return Document{}, ImportError{Message: fmt.Sprintf("Invalid %s file", kind), Cause: err}
	}
	return doc, nil
}

// detectKind порядок проверок важен: резервная копия и набор тоже содержат results
func detectKind(raw map[string]interface{}) (Kind, bool) {
	has := func(keys ...string) bool {
		for _, key := range keys {
			if _, ok := raw[key]; !ok {
				return false
			}
		}
		return true
	}
	_, questionsIsList := raw["questions"].([]interface{})
	switch {
	case has("templates", "results", "settings", "runs"):
		return KindBackup, true
	case has("runInfo", "results"):
		return KindRun, true
	case has("candidateName") && questionsIsList:
		return KindResult, true
	case has("categories", "questions"):
		return KindTemplate, true
	case has("direct", "indirect"):
		return KindSettings, true
	}
	return "", false
}

var schemas = map[Kind]string{
	KindTemplate: templateSchema,
	KindResult:   resultSchema,
	KindSettings: settingsSchema,
	KindRun:      runBundleSchema,
	KindBackup:   backupSchema,
}

func validateShape(kind Kind, doc interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemas[kind]),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return ImportError{Message: fmt.Sprintf("Invalid %s file", kind), Cause: err}
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return ImportError{
		Message: fmt.Sprintf("Invalid %s file", kind),
		Cause:   errors.New(strings.Join(details, "; ")),
	}
}

// normalize приводит результат разбора yaml к виду, который понимает json
func normalize(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(value))
		for key, item := range value {
			result[key] = normalize(item)
		}
		return result
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(value))
		for key, item := range value {
			result[fmt.Sprint(key)] = normalize(item)
		}
		return result
	case []interface{}:
		result := make([]interface{}, 0, len(value))
		for _, item := range value {
			result = append(result, normalize(item))
		}
		return result
	case time.Time:
		return value.Format(time.RFC3339Nano)
	}
	return v
}
