package lending

import (
	"context"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

// RegisterMember creates a new member.
func (e Engine) RegisterMember(
	ctx context.Context,
	name string,
	phone string,
	address string,
	role core.MemberRole,
) (core.Member, error) {

	member := core.BuildMember(uuid.New(), name, phone, address, role)

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		return s.Members().Insert(ctx, member)
	})

	if err != nil {
		return core.Member{}, err
	}

	return member, nil
}

// GetMember loads a single member.
func (e Engine) GetMember(ctx context.Context, id uuid.UUID) (core.Member, error) {
	var member core.Member

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var lookupErr error
		member, lookupErr = s.Members().GetByID(ctx, id)

		return lookupErr
	})

	if err != nil {
		return core.Member{}, err
	}

	return member, nil
}

// ListMembers returns all members.
func (e Engine) ListMembers(ctx context.Context) ([]core.Member, error) {
	var members []core.Member

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var listErr error
		members, listErr = s.Members().List(ctx)

		return listErr
	})

	if err != nil {
		return nil, err
	}

	return members, nil
}

// UpdateMember replaces a member's contact attributes and role.
func (e Engine) UpdateMember(
	ctx context.Context,
	id uuid.UUID,
	name string,
	phone string,
	address string,
	role core.MemberRole,
) (core.Member, error) {

	var member core.Member

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var lookupErr error
		member, lookupErr = s.Members().GetByID(ctx, id)
		if lookupErr != nil {
			return lookupErr
		}

		member.Name = name
		member.Phone = phone
		member.Address = address
		member.Role = role

		return s.Members().Update(ctx, member)
	})

	if err != nil {
		return core.Member{}, err
	}

	return member, nil
}

// DeleteMember removes a member record entirely. Ledger entries referencing
// the member are kept; the ledger is append-only.
func (e Engine) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		if _, lookupErr := s.Members().GetByID(ctx, id); lookupErr != nil {
			return lookupErr
		}

		return s.Members().Delete(ctx, id)
	})
}
