package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// decodeAndValidate reads a JSON body into dst and checks its tags.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return h.validator.Validate(r.Context(), dst)
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, ErrNoUserInContext
	}
	return userID, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidID, name)
	}
	return id, nil
}

// pageFromQuery reads ?page= and ?limit=, applying the listing defaults
// when they are absent.
func (h *Handler) pageFromQuery(r *http.Request) (models.Page, error) {
	query := models.PageQuery{Page: 1, Limit: models.DefaultPageLimit}

	for name, dst := range map[string]*int{"page": &query.Page, "limit": &query.Limit} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.Page{}, fmt.Errorf("%w: %s", ErrInvalidQuery, name)
		}
		*dst = v
	}

	if err := h.validator.Validate(r.Context(), query); err != nil {
		return models.Page{}, err
	}
	return models.Page{Number: query.Page, Limit: query.Limit}, nil
}

// writeFile sends decrypted content as an attachment.
func writeFile(w http.ResponseWriter, file models.DecryptedFile) {
	w.Header().Set("Content-Type", file.FileType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	w.Write(file.Content)
}
