package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
)

func (h *Handler) listSent(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := h.pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sent, err := h.services.ListingService.ListSent(r.Context(), userID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SentFilesResponse{Status: statusSuccess, Files: sent.Files, Results: sent.Results}, http.StatusOK)
}

func (h *Handler) listReceived(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := h.pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	received, err := h.services.ListingService.ListReceived(r.Context(), userID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ReceivedFilesResponse{Status: statusSuccess, Files: received.Files, Results: received.Results}, http.StatusOK)
}
