package model

import "time"

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;index"`
	RentalID  uint64 `gorm:"not null;index"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User   *UserModel   `gorm:"foreignKey:UserID"`
	Rental *RentalModel `gorm:"foreignKey:RentalID"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
