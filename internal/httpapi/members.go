package httpapi

import (
	"net/http"

	"library-lending/internal/core"
)

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	var request createMemberRequest
	if err := decodeAndValidate(r, &request); err != nil {
		h.writeBadRequest(w, msgInvalidRequestBody)

		return
	}

	member, err := h.engine.RegisterMember(
		r.Context(),
		request.Name,
		request.Phone,
		request.Address,
		core.MemberRole(request.Role),
	)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusCreated, toMemberResponse(member))
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramMemberID)
	if !ok {
		return
	}

	member, err := h.engine.GetMember(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toMemberResponse(member))
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.engine.ListMembers(r.Context())
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toMemberResponses(members))
}

func (h *Handler) updateMember(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramMemberID)
	if !ok {
		return
	}

	var request updateMemberRequest
	if err := decodeAndValidate(r, &request); err != nil {
		h.writeBadRequest(w, msgInvalidRequestBody)

		return
	}

	member, err := h.engine.UpdateMember(
		r.Context(),
		id,
		request.Name,
		request.Phone,
		request.Address,
		core.MemberRole(request.Role),
	)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toMemberResponse(member))
}

func (h *Handler) deleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramMemberID)
	if !ok {
		return
	}

	if err := h.engine.DeleteMember(r.Context(), id); err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) listMemberTransactions(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramMemberID)
	if !ok {
		return
	}

	entries, err := h.engine.ListMemberTransactions(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toTransactionResponses(entries))
}

func (h *Handler) listMemberHolds(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramMemberID)
	if !ok {
		return
	}

	holds, err := h.engine.ListMemberHolds(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toHoldResponses(holds))
}
