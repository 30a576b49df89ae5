package postgres

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:uuid;primary_key"`
	Username     string `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// ProfessionalModel é o model GORM para profissionais.
// As consultas são removidas em cascata junto com o profissional.
type ProfessionalModel struct {
	ID            string              `gorm:"type:uuid;primary_key"`
	NameSocial    string              `gorm:"type:varchar(255);not null;index"`
	Profession    string              `gorm:"type:varchar(150);not null"`
	Address       string              `gorm:"type:text;not null;default:''"`
	Contact       string              `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt     int64               `gorm:"autoCreateTime:milli;index"`
	UpdatedAt     int64               `gorm:"autoUpdateTime:milli"`
	Consultations []ConsultationModel `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ProfessionalModel) TableName() string {
	return "professionals"
}

// ConsultationModel é o model GORM para consultas.
// O índice único no par (professional_id, scheduled_at) impede agenda duplicada.
type ConsultationModel struct {
	ID             string    `gorm:"type:uuid;primary_key"`
	ProfessionalID string    `gorm:"type:uuid;not null;uniqueIndex:idx_consultations_professional_slot,priority:1"`
	ScheduledAt    time.Time `gorm:"not null;uniqueIndex:idx_consultations_professional_slot,priority:2;index"`
	Notes          string    `gorm:"type:text;not null;default:''"`
	Status         string    `gorm:"type:varchar(20);not null;default:'scheduled';index"`
	CreatedAt      int64     `gorm:"autoCreateTime:milli"`
	UpdatedAt      int64     `gorm:"autoUpdateTime:milli"`
}

func (ConsultationModel) TableName() string {
	return "consultations"
}

// AllModels lista os models migrados pelo AutoMigrate, na ordem de dependência
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProfessionalModel{},
		&ConsultationModel{},
	}
}
