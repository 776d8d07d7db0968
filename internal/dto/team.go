package dto

import "github.com/teamflow/teamflow-api/internal/models"

// TeamMemberDTO represents a team membership with the member's user attached
type TeamMemberDTO struct {
	ID     uint64         `json:"id"`
	UserID uint64         `json:"userId"`
	TeamID uint64         `json:"teamId"`
	User   *MemberUserDTO `json:"user,omitempty"`
}

// ToTeamMemberDTO converts a TeamMember model to TeamMemberDTO
func ToTeamMemberDTO(member models.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:     member.ID,
		UserID: member.UserID,
		TeamID: member.TeamID,
	}
}
