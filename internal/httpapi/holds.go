package httpapi

import (
	"net/http"
)

func (h *Handler) createHold(w http.ResponseWriter, r *http.Request) {
	var request createHoldRequest
	if err := decodeAndValidate(r, &request); err != nil {
		h.writeBadRequest(w, msgInvalidRequestBody)

		return
	}

	hold, err := h.engine.PlaceHold(r.Context(), request.MemberID, request.BookID)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusCreated, toHoldResponse(hold))
}

func (h *Handler) getHold(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramHoldID)
	if !ok {
		return
	}

	hold, err := h.engine.GetHold(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toHoldResponse(hold))
}

func (h *Handler) listHolds(w http.ResponseWriter, r *http.Request) {
	holds, err := h.engine.ListHolds(r.Context())
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toHoldResponses(holds))
}

func (h *Handler) cancelHold(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramHoldID)
	if !ok {
		return
	}

	if err := h.engine.CancelHold(r.Context(), id); err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}
