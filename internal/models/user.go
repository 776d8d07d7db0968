package models

type User struct {
	ID               uint64 `gorm:"primarykey" json:"id"`
	Username         string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password         string `gorm:"type:varchar(255);not null" json:"password,omitempty"`
	FullName         string `gorm:"type:varchar(255);not null" json:"fullName"`
	Email            string `gorm:"type:varchar(255);not null" json:"email"`
	Avatar           string `gorm:"type:varchar(512)" json:"avatar"`
	ExperiencePoints int    `gorm:"not null;default:0" json:"experiencePoints"`
	Rank             string `gorm:"type:varchar(50);not null;default:'Beginner'" json:"rank"`

	// Relations
	CreatedTasks  []Task         `gorm:"foreignKey:CreatedBy" json:"-"`
	AssignedTasks []Task         `gorm:"foreignKey:AssignedTo" json:"-"`
	Memberships   []TeamMember   `gorm:"foreignKey:UserID" json:"-"`
	Comments      []Comment      `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
	Activities    []Activity     `gorm:"foreignKey:UserID" json:"-"`
}
