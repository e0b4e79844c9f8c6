package interchange

// схемы проверяют только форму документа, смысловая проверка - в обработчиках

const categoriesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name"],
    "properties": {
      "id": {"type": "string"},
      "name": {"type": "string"},
      "order": {"type": "number"}
    }
  }
}`

const questionsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "type", "multiplier", "categoryId"],
    "properties": {
      "id": {"type": "string"},
      "text": {"type": "string"},
      "type": {"enum": ["DIRECT", "INDIRECT"]},
      "multiplier": {"type": "number"},
      "categoryId": {"type": "string"},
      "order": {"type": "number"},
      "customFeedbacks": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["label", "score"],
          "properties": {
            "id": {"type": "string"},
            "label": {"type": "string"},
            "score": {"type": "number"}
          }
        }
      },
      "answer": {
        "type": "object",
        "required": ["feedback", "score"],
        "properties": {
          "feedback": {"type": "string"},
          "score": {"type": "number"},
          "note": {"type": "string"},
          "isCustom": {"type": "boolean"}
        }
      }
    }
  }
}`

const templateSchema = `{
  "type": "object",
  "required": ["name", "categories", "questions"],
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string", "minLength": 1},
    "categories": ` + categoriesSchema + `,
    "questions": ` + questionsSchema + `
  }
}`

const resultSchema = `{
  "type": "object",
  "required": ["candidateName", "categories", "questions", "totalScore", "maxPossibleScore"],
  "properties": {
    "id": {"type": "string"},
    "recruitmentRunId": {"type": "string"},
    "templateName": {"type": "string"},
    "candidateName": {"type": "string", "minLength": 1},
    "categories": ` + categoriesSchema + `,
    "questions": ` + questionsSchema + `,
    "totalScore": {"type": "number"},
    "maxPossibleScore": {"type": "number"},
    "summary": {"type": "string"}
  }
}`

const scaleItemSchema = `{
  "type": "object",
  "required": ["label", "score"],
  "properties": {
    "label": {"type": "string", "minLength": 1},
    "score": {"type": "number"}
  }
}`

const settingsSchema = `{
  "type": "object",
  "required": ["direct", "indirect"],
  "properties": {
    "direct": {
      "type": "object",
      "required": ["CORRECT", "WRONG", "TRIED", "SILENT"],
      "properties": {
        "CORRECT": ` + scaleItemSchema + `,
        "WRONG": ` + scaleItemSchema + `,
        "TRIED": ` + scaleItemSchema + `,
        "SILENT": ` + scaleItemSchema + `
      },
      "additionalProperties": false
    },
    "indirect": {
      "type": "object",
      "required": ["EXCELLENT", "GOOD", "NOT_GOOD", "BAD"],
      "properties": {
        "EXCELLENT": ` + scaleItemSchema + `,
        "GOOD": ` + scaleItemSchema + `,
        "NOT_GOOD": ` + scaleItemSchema + `,
        "BAD": ` + scaleItemSchema + `
      },
      "additionalProperties": false
    }
  }
}`

const runSchema = `{
  "type": "object",
  "required": ["name", "startDate"],
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "startDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "endDate": {"type": "string"},
    "status": {"enum": ["ACTIVE", "COMPLETED"]}
  }
}`

const runBundleSchema = `{
  "type": "object",
  "required": ["runInfo", "results"],
  "properties": {
    "runInfo": ` + runSchema + `,
    "results": {"type": "array", "items": ` + resultSchema + `}
  }
}`

const backupSchema = `{
  "type": "object",
  "required": ["templates", "results", "settings", "runs"],
  "properties": {
    "templates": {"type": "array", "items": ` + templateSchema + `},
    "results": {"type": "array", "items": ` + resultSchema + `},
    "settings": ` + settingsSchema + `,
    "runs": {"type": "array", "items": ` + runSchema + `}
  }
}`
