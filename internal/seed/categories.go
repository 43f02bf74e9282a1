package seed

import (
	"cheznous/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInCategory is a permanent forum category.
type BuiltInCategory struct {
	Name        string
	Description string
}

// BuiltInCategories defines the three fixed categories every deployment
// carries. Public forums must belong to exactly one of them.
var BuiltInCategories = []BuiltInCategory{
	{Name: "Vie Pratique", Description: "Logement, transport, travail et démarches du quotidien."},
	{Name: "Tabous et Sans Filtre", Description: "Les sujets dont on ne parle pas à table."},
	{Name: "Culture & Détente", Description: "Musique, coupé-décalé, sport, séries et détente."},
}

// Categories seeds the fixed categories, updating descriptions in place when
// they already exist.
func Categories(db *gorm.DB) error {
	for _, item := range BuiltInCategories {
		category := models.Category{
			Name:        item.Name,
			Description: item.Description,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description"}),
		}).Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
