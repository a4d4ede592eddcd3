package repository

import (
	"github.com/Antdol/LittleLemonAPI/entity"

	"gorm.io/gorm"
)

// GroupRepository is the role directory: groups and the user_groups join table.
type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) FindByName(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// RolesOf returns the names of every group userID belongs to.
func (r *GroupRepository) RolesOf(userID uint) ([]string, error) {
	var names []string
	err := r.DB.Table("auth_groups AS g").
		Joins("JOIN user_groups ug ON ug.group_id = g.id").
		Where("ug.user_id = ?", userID).
		Order("g.name").
		Pluck("g.name", &names).Error
	return names, err
}

func (r *GroupRepository) HasRole(userID uint, role string) (bool, error) {
	var cnt int64
	err := r.DB.Table("user_groups AS ug").
		Joins("JOIN auth_groups g ON g.id = ug.group_id").
		Where("ug.user_id = ? AND g.name = ?", userID, role).
		Count(&cnt).Error
	return cnt > 0, err
}

// Members lists the users of a group ordered by id.
func (r *GroupRepository) Members(role string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Model(&entity.User{}).
		Select("users.id, users.username").
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Joins("JOIN auth_groups g ON g.id = ug.group_id").
		Where("g.name = ?", role).
		Order("users.id").
		Find(&users).Error
	return users, err
}

// AddMember is a no-op when the membership already exists.
func (r *GroupRepository) AddMember(user *entity.User, g *entity.Group) error {
	return r.DB.Model(user).Association("Groups").Append(g)
}

// RemoveMember deletes exactly one membership row and reports whether it existed.
func (r *GroupRepository) RemoveMember(userID, groupID uint) (bool, error) {
	res := r.DB.Exec("DELETE FROM user_groups WHERE user_id = ? AND group_id = ?", userID, groupID)
	return res.RowsAffected > 0, res.Error
}
