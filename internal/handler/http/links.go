package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
)

func (h *Handler) revokeLink(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	linkID, err := pathUUID(r, "linkID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ShareLinkService.Revoke(r.Context(), linkID, ownerID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: statusSuccess, Message: "link revoked"}, http.StatusOK)
}
