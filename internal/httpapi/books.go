package httpapi

import (
	"net/http"
)

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var request createBookRequest
	if err := decodeAndValidate(r, &request); err != nil {
		h.writeBadRequest(w, msgInvalidRequestBody)

		return
	}

	book, err := h.engine.AddBook(r.Context(), request.Title, request.Author)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusCreated, toBookResponse(book))
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramBookID)
	if !ok {
		return
	}

	book, err := h.engine.GetBook(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.engine.ListBooks(r.Context())
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toBookResponses(books))
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramBookID)
	if !ok {
		return
	}

	var request updateBookRequest
	if err := decodeAndValidate(r, &request); err != nil {
		h.writeBadRequest(w, msgInvalidRequestBody)

		return
	}

	book, err := h.engine.UpdateBook(r.Context(), id, request.Title, request.Author)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *Handler) removeBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramBookID)
	if !ok {
		return
	}

	if err := h.engine.RemoveBook(r.Context(), id); err != nil {
		h.writeDomainError(w, err)

		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) currentHolder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, paramBookID)
	if !ok {
		return
	}

	entry, found, err := h.engine.CurrentHolder(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)

		return
	}

	response := currentHolderResponse{CheckedOut: found}
	if found {
		checkOut := toTransactionResponse(entry)
		response.CheckOut = &checkOut
	}

	h.writeJSON(w, http.StatusOK, response)
}
