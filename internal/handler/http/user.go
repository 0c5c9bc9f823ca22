package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}

	// the user is stored at this point; a token failure only drops the header
	if h.services.TokenService != nil && h.services.TokenService.Enabled() {
		token, err := h.services.TokenService.CreateToken(ctx, created)
		if err != nil {
			log.Err(err).Str("func", "*Handler.createUser").Str("id", created.ID).Msg("creation of token failed")
		} else {
			w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
		}
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateUser").Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), id, user)
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.services.UserService.DeleteUser(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
