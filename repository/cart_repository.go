package repository

import (
	"github.com/Antdol/LittleLemonAPI/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser returns the user's lines with their menu items preloaded.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id").
		Find(&lines).Error
	return lines, err
}

// LockLines reads the user's lines inside tx, taking row locks where the
// dialect has them (SQLite serializes writers instead).
func (r *CartRepository) LockLines(tx *gorm.DB, userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("id").
		Find(&lines).Error
	return lines, err
}

// Upsert inserts the line or overwrites quantity and prices of the existing
// (user, menu item) row. Quantities are replaced, not added.
func (r *CartRepository) Upsert(tx *gorm.DB, line *entity.CartLine) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit_price", "price"}),
	}).Create(line).Error
}

// ClearCart deletes every line of the user and returns how many went.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&entity.CartLine{})
	return res.RowsAffected, res.Error
}
