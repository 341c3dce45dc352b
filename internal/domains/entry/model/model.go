package model

import (
	"fmt"
	"strings"
)

const (
	EntityName = "entry"

	FieldID       = "id"
	FieldName     = "name"
	FieldStatus   = "status"
	FieldPriority = "priority"
	FieldAssignee = "assignee"
	FieldDueDate  = "dueDate"
	FieldProgress = "progress"
)

// Entry is one trackable unit of work shown in the project table.
type Entry struct {
	ID       string   `yaml:"id"       validate:"required"`
	Name     string   `yaml:"name"     validate:"required"`
	Status   Status   `yaml:"status"   validate:"required"`
	Priority Priority `yaml:"priority" validate:"required"`
	Assignee string   `yaml:"assignee" validate:"required"`
	DueDate  string   `yaml:"dueDate"  validate:"required,datetime=2006-01-02"`
	Progress int      `yaml:"progress" validate:"gte=0,lte=100"`
}

// Variant is the display emphasis a badge is rendered with.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantOutline     Variant = "outline"
	VariantDestructive Variant = "destructive"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusActive
	StatusCompleted
	StatusPending
	StatusOnHold
)

var Statuses = []Status{StatusActive, StatusCompleted, StatusPending, StatusOnHold}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	case StatusPending:
		return "Pending"
	case StatusOnHold:
		return "On Hold"
	case StatusUnknown:
	}

	return "Unknown"
}

func (s Status) Variant() Variant {
	switch s {
	case StatusActive:
		return VariantDefault
	case StatusCompleted:
		return VariantSecondary
	case StatusPending:
		return VariantOutline
	case StatusOnHold:
		return VariantDestructive
	case StatusUnknown:
	}

	return VariantOutline
}

func (s Status) MarshalText() ([]byte, error) {
	if s == StatusUnknown {
		return nil, fmt.Errorf("cannot marshal unknown status")
	}

	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}

	*s = status

	return nil
}

// ParseStatus accepts the display text of a status, case-insensitive. "On Hold" may
// also be written without the space.
func ParseStatus(value string) (Status, error) {
	normalized := normalize(value)

	for _, status := range Statuses {
		if normalize(status.String()) == normalized {
			return status, nil
		}
	}

	return StatusUnknown, fmt.Errorf("unknown status %q", value)
}

type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	case PriorityUnknown:
	}

	return "Unknown"
}

func (p Priority) Variant() Variant {
	switch p {
	case PriorityCritical, PriorityHigh:
		return VariantDestructive
	case PriorityMedium:
		return VariantSecondary
	case PriorityLow:
		return VariantOutline
	case PriorityUnknown:
	}

	return VariantOutline
}

func (p Priority) MarshalText() ([]byte, error) {
	if p == PriorityUnknown {
		return nil, fmt.Errorf("cannot marshal unknown priority")
	}

	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	priority, err := ParsePriority(string(text))
	if err != nil {
		return err
	}

	*p = priority

	return nil
}

func ParsePriority(value string) (Priority, error) {
	normalized := normalize(value)

	for _, priority := range Priorities {
		if normalize(priority.String()) == normalized {
			return priority, nil
		}
	}

	return PriorityUnknown, fmt.Errorf("unknown priority %q", value)
}

func normalize(value string) string {
	return strings.ToLower(strings.ReplaceAll(value, " ", ""))
}
