package core

import (
	"github.com/google/uuid"
)

// MemberRole distinguishes regular members from library clerks.
type MemberRole string

const (
	RoleMember MemberRole = "Member"
	RoleClerk  MemberRole = "Clerk"
)

// Member is a read-only reference for the lending engine; the engine never
// mutates members, it only resolves them by identity.
type Member struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Address string
	Role    MemberRole
}

// BuildMember creates a new Member with the given attributes.
func BuildMember(id uuid.UUID, name string, phone string, address string, role MemberRole) Member {
	return Member{
		ID:      id,
		Name:    name,
		Phone:   phone,
		Address: address,
		Role:    role,
	}
}
