package model

import "time"

// PatientModel mirrors the 'pacientes' table.
type PatientModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null"`
	Species     string `gorm:"type:varchar(50);not null"`
	Breed       string `gorm:"type:varchar(100)"`
	OwnerID     uint   `gorm:"not null;index"`
	DateOfBirth *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "pacientes"
}
