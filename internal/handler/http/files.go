// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
)

// multipartMemory is how much of a form is kept in memory before spilling
// to temporary files.
const multipartMemory = 8 << 20

// upload stores a file and, unless the form says share=false, creates its
// first share link in the same request.
//
// Form fields: file (required), recipient_email, password,
// expiration_date (RFC 3339), share, retain.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// room for the form fields around the file
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartMemory)
	if err = r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, r, uploadError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	part, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, ErrMissingFile)
		return
	}
	defer part.Close()

	content, err := io.ReadAll(io.LimitReader(part, h.maxUploadSize+1))
	if err != nil {
		writeError(w, r, uploadError(err))
		return
	}
	if int64(len(content)) > h.maxUploadSize {
		writeError(w, r, ErrUploadTooLarge)
		return
	}

	upload := models.UploadRequest{
		OwnerID:  ownerID,
		Filename: header.Filename,
		FileType: header.Header.Get("Content-Type"),
		Content:  content,
		Retain:   formBool(r, "retain", false),
	}

	if !formBool(r, "share", true) {
		// nothing will reference the file, keep it from the reaper
		upload.Retain = true
		file, err := h.services.FileService.Store(r.Context(), upload)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, models.UploadResponse{Status: statusSuccess, File: models.NewFileResponse(file)}, http.StatusCreated)
		return
	}

	share, err := h.shareFromForm(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	file, link, err := h.services.ShareLinkService.UploadAndShare(r.Context(), upload, models.CreateLinkRequest{
		OwnerID:        ownerID,
		RecipientEmail: share.RecipientEmail,
		Password:       share.Password,
		ExpiresAt:      share.ExpirationDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	linkResponse := models.NewShareLinkResponse(link)
	utils.WriteJSON(w, models.UploadResponse{
		Status: statusSuccess,
		File:   models.NewFileResponse(file),
		Link:   &linkResponse,
	}, http.StatusCreated)
}

func (h *Handler) shareFromForm(r *http.Request) (models.ShareRequest, error) {
	share := models.ShareRequest{
		RecipientEmail: r.FormValue("recipient_email"),
		Password:       r.FormValue("password"),
	}

	if raw := r.FormValue("expiration_date"); raw != "" {
		expiresAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.ShareRequest{}, ErrInvalidExpiration
		}
		share.ExpirationDate = &expiresAt
	}

	if err := h.validator.Validate(r.Context(), share); err != nil {
		return models.ShareRequest{}, err
	}
	return share, nil
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return ErrUploadTooLarge
	}
	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}

func formBool(r *http.Request, name string, def bool) bool {
	v, err := strconv.ParseBool(r.FormValue(name))
	if err != nil {
		return def
	}
	return v
}

func (h *Handler) createLink(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	fileID, err := pathUUID(r, "fileID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ShareRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	link, err := h.services.ShareLinkService.CreateLink(r.Context(), models.CreateLinkRequest{
		FileID:         fileID,
		OwnerID:        ownerID,
		RecipientEmail: req.RecipientEmail,
		Password:       req.Password,
		ExpiresAt:      req.ExpirationDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ShareResponse{Status: statusSuccess, Link: models.NewShareLinkResponse(link)}, http.StatusCreated)
}

// download returns a file to its owner.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	fileID, err := pathUUID(r, "fileID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	file, err := h.services.FileService.Download(r.Context(), fileID, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeFile(w, file)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	fileID, err := pathUUID(r, "fileID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FileService.Delete(r.Context(), fileID, ownerID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: statusSuccess, Message: "file deleted"}, http.StatusOK)
}

// retrieve redeems a share link. It needs no account: the token and the
// link password are the credentials.
func (h *Handler) retrieve(w http.ResponseWriter, r *http.Request) {
	var req models.RetrieveFileRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	file, err := h.services.ShareLinkService.AuthorizeAndFetch(r.Context(), models.RetrieveRequest{
		Token:    req.SharedID,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeFile(w, file)
}
