package repository

import (
	"github.com/Antdol/LittleLemonAPI/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("title").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}
