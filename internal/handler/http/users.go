package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserEnvelope{Status: statusSuccess, User: models.NewUserResponse(user)}, http.StatusOK)
}

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.NameUpdateRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.UpdateName(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserEnvelope{Status: statusSuccess, User: models.NewUserResponse(user)}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.PasswordUpdateRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.UpdatePassword(r.Context(), userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: statusSuccess, Message: "password updated"}, http.StatusOK)
}

func (h *Handler) searchEmails(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := models.SearchByEmailRequest{Query: r.URL.Query().Get("q")}
	if err = h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	emails, err := h.services.AuthService.SearchEmails(r.Context(), userID, req.Query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if emails == nil {
		emails = []string{}
	}

	utils.WriteJSON(w, models.EmailListResponse{Status: statusSuccess, Emails: emails}, http.StatusOK)
}
