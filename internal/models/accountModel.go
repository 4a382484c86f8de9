package models

import (
	"time"
)

type Account struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"uniqueIndex;not null"`
	Currency string  `gorm:"type:varchar(3);not null;default:USD"`
	Balance  float64 `gorm:"type:decimal(20,2);not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
