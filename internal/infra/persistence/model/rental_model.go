package model

import "time"

// RentalModel mirrors the 'rentals' table. Picture holds the public URL of the
// uploaded listing image and stays empty until one has been ingested.
type RentalModel struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Surface     float64 `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Picture     string  `gorm:"type:varchar(255)"`
	Description string  `gorm:"type:text"`
	OwnerID     uint64  `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (RentalModel) TableName() string {
	return "rentals"
}
