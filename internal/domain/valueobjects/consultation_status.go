package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrInvalidConsultationStatus = errors.New("invalid consultation status")
)

// ConsultationStatus é um value object que garante que o status seja sempre válido
type ConsultationStatus struct {
	value string
}

var (
	StatusScheduled = ConsultationStatus{value: "scheduled"}
	StatusCompleted = ConsultationStatus{value: "completed"}
	StatusCancelled = ConsultationStatus{value: "cancelled"}
)

var knownStatuses = []ConsultationStatus{StatusScheduled, StatusCompleted, StatusCancelled}

// NewConsultationStatus cria um novo status validado
func NewConsultationStatus(status string) (ConsultationStatus, error) {
	status = strings.TrimSpace(strings.ToLower(status))

	for _, s := range knownStatuses {
		if s.value == status {
			return s, nil
		}
	}

	return ConsultationStatus{}, ErrInvalidConsultationStatus
}

// String retorna o valor do status
func (s ConsultationStatus) String() string {
	return s.value
}

// IsZero indica se o status não foi definido
func (s ConsultationStatus) IsZero() bool {
	return s.value == ""
}
