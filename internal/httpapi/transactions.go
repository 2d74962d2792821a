package httpapi

import (
	"net/http"

	"library-lending/internal/core"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var request createTransactionRequest
	if err := decodeAndValidate(r, &request); err != nil {
		h.writeBadRequest(w, msgInvalidRequestBody)

		return
	}

	entries, err := h.engine.RecordTransaction(
		r.Context(),
		request.MemberID,
		request.BookID,
		core.TransactionKind(request.Kind),
	)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusCreated, toTransactionResponses(entries))
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramTransactionID)
	if !ok {
		return
	}

	entry, err := h.engine.GetTransaction(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toTransactionResponse(entry))
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	entries, err := h.engine.ListTransactions(r.Context())
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toTransactionResponses(entries))
}
