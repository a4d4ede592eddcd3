package entity

// Role names. A user holding neither is a customer.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery Crew"
)

type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:150;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}

// "groups" is reserved in MySQL 8.
func (Group) TableName() string { return "auth_groups" }
