package dto

import (
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// CreateFamilyRequest defines the data needed to create a family.
type CreateFamilyRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

// JoinFamilyRequest holds the invite code shared by a parent.
type JoinFamilyRequest struct {
	InviteCode string `json:"inviteCode" binding:"required,hexadecimal,len=16"`
}

// FamilyResponse defines the family data returned by the API.
type FamilyResponse struct {
	FamilyID   string    `json:"familyID"`
	Name       string    `json:"name"`
	InviteCode string    `json:"inviteCode"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `json:"createdBy"`
}

// ListFamiliesResponse wraps the families a user belongs to.
type ListFamiliesResponse struct {
	Families []FamilyResponse `json:"families"`
}

// FamilyMemberResponse defines a family membership returned by the API.
type FamilyMemberResponse struct {
	UserID   string    `json:"userID"`
	UserName string    `json:"userName"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ListFamilyMembersResponse wraps the members of a family.
type ListFamilyMembersResponse struct {
	Members []FamilyMemberResponse `json:"members"`
}

// ToFamilyResponse converts a domain.Family to FamilyResponse DTO
func ToFamilyResponse(f *domain.Family) FamilyResponse {
	return FamilyResponse{
		FamilyID:   f.FamilyID,
		Name:       f.Name,
		InviteCode: f.InviteCode,
		CreatedAt:  f.CreatedAt,
		CreatedBy:  f.CreatedBy,
	}
}

// ToListFamiliesResponse converts a slice of domain.Family to ListFamiliesResponse DTO
func ToListFamiliesResponse(families []domain.Family) ListFamiliesResponse {
	resp := ListFamiliesResponse{Families: make([]FamilyResponse, len(families))}
	for i := range families {
		resp.Families[i] = ToFamilyResponse(&families[i])
	}
	return resp
}

// ToListFamilyMembersResponse converts a slice of domain.FamilyMember to ListFamilyMembersResponse DTO
func ToListFamilyMembersResponse(members []domain.FamilyMember) ListFamilyMembersResponse {
	resp := ListFamilyMembersResponse{Members: make([]FamilyMemberResponse, len(members))}
	for i, m := range members {
		resp.Members[i] = FamilyMemberResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		}
	}
	return resp
}
