// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are numeric and generated by the
// database sequence.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	Name         string `gorm:"type:varchar(255)"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Rentals  []RentalModel  `gorm:"foreignKey:OwnerID"`
	Messages []MessageModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
