package model

import "time"

// OwnerModel mirrors the 'propietarios' table. PasswordHash is nullable:
// legacy rows imported from the old record system have no password.
type OwnerModel struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Email        string  `gorm:"type:varchar(255);unique;not null"`
	PasswordHash *string `gorm:"type:varchar(255)"`
	Phone        string  `gorm:"type:varchar(30)"`
	Active       bool    `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Patients []PatientModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (OwnerModel) TableName() string {
	return "propietarios"
}
