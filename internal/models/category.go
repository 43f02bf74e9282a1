package models

import "time"

// Category is a fixed taxonomy node for public forums. The three rows
// (Vie Pratique, Tabous et Sans Filtre, Culture & Détente) are seeded once
// at setup time and read-only from the application's perspective.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Category) TableName() string {
	return "categories"
}
