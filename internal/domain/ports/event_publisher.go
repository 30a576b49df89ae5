package ports

// Tipos de eventos publicados para a agenda em tempo real
const (
	EventConsultationCreated = "consultation.created"
	EventConsultationUpdated = "consultation.updated"
	EventConsultationDeleted = "consultation.deleted"
	EventProfessionalDeleted = "professional.deleted"
)

// EventPublisher publica eventos de domínio. Implementações não devem bloquear.
type EventPublisher interface {
	Publish(eventType string, payload any)
}

// NopPublisher descarta todos os eventos
type NopPublisher struct{}

func (NopPublisher) Publish(string, any) {}
