package model

import "time"

// PasswordResetTokenModel mirrors the 'password_reset_tokens' table. The
// 'usado' column name is kept from the original schema.
type PasswordResetTokenModel struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"type:varchar(64);unique;not null"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_reset_email_type"`
	UserType  string    `gorm:"type:varchar(20);not null;index:idx_reset_email_type"`
	ExpiresAt time.Time `gorm:"not null;index"`
	Used      bool      `gorm:"column:usado;not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
