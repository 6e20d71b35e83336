package models

// PriorityLevel is the tier a service is shown under in the catalog.
type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

func (p PriorityLevel) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Service struct {
	ID               string        `json:"id" yaml:"id"`
	Name             string        `json:"name" yaml:"name" validate:"required,max=100"`
	Description      string        `json:"description" yaml:"description" validate:"required"`
	Category         string        `json:"category" yaml:"category" validate:"required"`
	ExpectedDuration int           `json:"expectedDuration" yaml:"expectedDuration" validate:"min=1,max=120"` // minutes per session
	PriorityLevel    PriorityLevel `json:"priorityLevel" yaml:"priorityLevel" validate:"oneof=low medium high"`
	Icon             string        `json:"icon" yaml:"icon"`
	IsOpen           bool          `json:"isOpen" yaml:"isOpen"` // closed services accept no new entries
}
