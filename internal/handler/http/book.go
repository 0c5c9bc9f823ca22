package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
)

const namesQueryParam = "names"

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createBook").Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.BookService.CreateBook(r.Context(), book)
	if err != nil {
		writeError(w, r, "*Handler.createBook", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

// findBooks serves GET /book?names=a,b.
func (h *Handler) findBooks(w http.ResponseWriter, r *http.Request) {
	names := r.URL.Query().Get(namesQueryParam)

	books, err := h.services.BookService.FindBooksByTitles(r.Context(), names)
	if err != nil {
		writeError(w, r, "*Handler.findBooks", err)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.ListBooksWithOwner(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listBooks", err)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}
