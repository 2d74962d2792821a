package httpapi

import (
	"time"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

type createBookRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Author string `json:"author" validate:"required,max=200"`
}

type updateBookRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Author string `json:"author" validate:"required,max=200"`
}

type createMemberRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Address string `json:"address" validate:"required,max=500"`
	Role    string `json:"role" validate:"required,oneof=Member Clerk"`
}

type updateMemberRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Address string `json:"address" validate:"required,max=500"`
	Role    string `json:"role" validate:"required,oneof=Member Clerk"`
}

type createTransactionRequest struct {
	MemberID uuid.UUID `json:"memberId" validate:"required"`
	BookID   uuid.UUID `json:"bookId" validate:"required"`
	Kind     string    `json:"kind" validate:"required"`
}

type createHoldRequest struct {
	MemberID uuid.UUID `json:"memberId" validate:"required"`
	BookID   uuid.UUID `json:"bookId" validate:"required"`
}

type bookResponse struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	Author   string     `json:"author"`
	Status   string     `json:"status"`
	HolderID *uuid.UUID `json:"holderId,omitempty"`
}

type memberResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
	Role    string    `json:"role"`
}

type transactionResponse struct {
	ID         uuid.UUID  `json:"id"`
	MemberID   uuid.UUID  `json:"memberId"`
	BookID     uuid.UUID  `json:"bookId"`
	OccurredAt time.Time  `json:"occurredAt"`
	Kind       string     `json:"kind"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
}

type holdResponse struct {
	ID       uuid.UUID `json:"id"`
	MemberID uuid.UUID `json:"memberId"`
	BookID   uuid.UUID `json:"bookId"`
	StartAt  time.Time `json:"startAt"`
	EndAt    time.Time `json:"endAt"`
	Active   bool      `json:"active"`
}

type currentHolderResponse struct {
	CheckedOut bool                 `json:"checkedOut"`
	CheckOut   *transactionResponse `json:"checkOut,omitempty"`
}

func toBookResponse(book core.Book) bookResponse {
	return bookResponse{
		ID:       book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Status:   string(book.Status),
		HolderID: book.HolderID,
	}
}

func toBookResponses(books []core.Book) []bookResponse {
	responses := make([]bookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, toBookResponse(book))
	}

	return responses
}

func toMemberResponse(member core.Member) memberResponse {
	return memberResponse{
		ID:      member.ID,
		Name:    member.Name,
		Phone:   member.Phone,
		Address: member.Address,
		Role:    string(member.Role),
	}
}

func toMemberResponses(members []core.Member) []memberResponse {
	responses := make([]memberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, toMemberResponse(member))
	}

	return responses
}

func toTransactionResponse(entry core.Transaction) transactionResponse {
	return transactionResponse{
		ID:         entry.ID,
		MemberID:   entry.MemberID,
		BookID:     entry.BookID,
		OccurredAt: entry.OccurredAt,
		Kind:       string(entry.Kind),
		DueDate:    entry.DueDate,
	}
}

func toTransactionResponses(entries []core.Transaction) []transactionResponse {
	responses := make([]transactionResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTransactionResponse(entry))
	}

	return responses
}

func toHoldResponse(hold core.Hold) holdResponse {
	return holdResponse{
		ID:       hold.ID,
		MemberID: hold.MemberID,
		BookID:   hold.BookID,
		StartAt:  hold.StartAt,
		EndAt:    hold.EndAt,
		Active:   hold.Active,
	}
}

func toHoldResponses(holds []core.Hold) []holdResponse {
	responses := make([]holdResponse, 0, len(holds))
	for _, hold := range holds {
		responses = append(responses, toHoldResponse(hold))
	}

	return responses
}
