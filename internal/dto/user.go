package dto

import "github.com/teamflow/teamflow-api/internal/models"

// UserSummaryDTO is the trimmed user representation attached to tasks,
// comments and activities. It never carries credentials.
type UserSummaryDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// UserDTO is the full user representation with the password stripped
type UserDTO struct {
	ID               uint64 `json:"id"`
	Username         string `json:"username"`
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Avatar           string `json:"avatar,omitempty"`
	ExperiencePoints int    `json:"experiencePoints"`
	Rank             string `json:"rank"`
}

// MemberUserDTO is the user representation in team rosters; it includes the
// email address for display but still excludes the password.
type MemberUserDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:       user.ID,
		FullName: user.FullName,
		Username: user.Username,
		Avatar:   user.Avatar,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:               user.ID,
		Username:         user.Username,
		FullName:         user.FullName,
		Email:            user.Email,
		Avatar:           user.Avatar,
		ExperiencePoints: user.ExperiencePoints,
		Rank:             user.Rank,
	}
}

// ToMemberUserDTO converts a User model to MemberUserDTO
func ToMemberUserDTO(user models.User) MemberUserDTO {
	return MemberUserDTO{
		ID:       user.ID,
		FullName: user.FullName,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
	}
}
