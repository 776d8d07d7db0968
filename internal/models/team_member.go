package models

type TeamMember struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"not null;index" json:"userId"`
	TeamID uint64 `gorm:"not null;index" json:"teamId"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
	Team *Team `gorm:"foreignKey:TeamID" json:"-"`
}
