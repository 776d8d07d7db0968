package models

type Team struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// Relations
	Members []TeamMember `gorm:"foreignKey:TeamID" json:"-"`
	Tasks   []Task       `gorm:"foreignKey:TeamID" json:"-"`
}
