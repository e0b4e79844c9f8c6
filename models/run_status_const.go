package models

type RunStatus string

const (
	RunStatusActive    RunStatus = "ACTIVE"
	RunStatusCompleted RunStatus = "COMPLETED"
)

func (s RunStatus) IsValid() bool {
	return s == RunStatusActive || s == RunStatusCompleted
}

// DateLayout формат дат набора (начало/окончание)
const DateLayout = "2006-01-02"
