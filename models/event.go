package models

import "time"

// Event represents a club event shown on the public site
type Event struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;index"`
	Date        time.Time `json:"date" db:"date" gorm:"not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Images      []Image   `json:"images" gorm:"foreignKey:EventID;references:ID;constraint:OnDelete:CASCADE"`
}

// EventPatch carries a partial update; nil fields keep their prior value
type EventPatch struct {
	Name        *string    `json:"name"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}
