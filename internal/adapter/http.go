package adapter

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// Returns an error if cfg.BaseURL is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout, cfg.RetryCount)
	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token())
}

// Register POSTs to /api/auth/register and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterUserRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	return h.keepToken(resp, "register")
}

// Login POSTs to /api/auth/login and keeps the bearer token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginUserRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	return h.keepToken(resp, "login")
}

func (h *httpServerAdapter) keepToken(resp *resty.Response, op string) (string, error) {
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%s parse bearer token: %w", op, err)
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.UserResponse, error) {
	var envelope models.UserEnvelope

	resp, err := h.authedRequest(ctx).
		SetResult(&envelope).
		Get("/api/users/me")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return envelope.User, nil
}

// Upload sends file as multipart/form-data to /api/files/upload.
func (h *httpServerAdapter) Upload(ctx context.Context, file UploadFile) (models.UploadResponse, error) {
	var result models.UploadResponse

	form := map[string]string{
		"share":  strconv.FormatBool(file.Share),
		"retain": strconv.FormatBool(file.Retain),
	}
	if file.Share {
		if file.Link.RecipientEmail != "" {
			form["recipient_email"] = file.Link.RecipientEmail
		}
		if file.Link.Password != "" {
			form["password"] = file.Link.Password
		}
		if file.Link.ExpirationDate != nil {
			form["expiration_date"] = file.Link.ExpirationDate.UTC().Format(time.RFC3339)
		}
	}

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", file.Filename, bytes.NewReader(file.Content)).
		SetFormData(form).
		SetResult(&result).
		Post("/api/files/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) CreateLink(ctx context.Context, fileID uuid.UUID, req models.ShareRequest) (models.ShareLinkResponse, error) {
	var result models.ShareResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("fileID", fileID.String()).
		SetBody(req).
		SetResult(&result).
		Post("/api/files/{fileID}/links")
	if err != nil {
		return models.ShareLinkResponse{}, fmt.Errorf("create link request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareLinkResponse{}, err
	}

	return result.Link, nil
}

func (h *httpServerAdapter) Retrieve(ctx context.Context, req models.RetrieveFileRequest) (RetrievedFile, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/files/retrieve")
	if err != nil {
		return RetrievedFile{}, fmt.Errorf("retrieve request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return RetrievedFile{}, err
	}

	return retrievedFile(resp), nil
}

func (h *httpServerAdapter) Download(ctx context.Context, fileID uuid.UUID) (RetrievedFile, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("fileID", fileID.String()).
		Get("/api/files/{fileID}")
	if err != nil {
		return RetrievedFile{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return RetrievedFile{}, err
	}

	return retrievedFile(resp), nil
}

// retrievedFile reads the attachment name from Content-Disposition.
func retrievedFile(resp *resty.Response) RetrievedFile {
	file := RetrievedFile{
		FileType: resp.Header().Get("Content-Type"),
		Content:  resp.Body(),
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		file.Filename = params["filename"]
	}
	return file
}

func (h *httpServerAdapter) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("fileID", fileID.String()).
		Delete("/api/files/{fileID}")
	if err != nil {
		return fmt.Errorf("delete file request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RevokeLink(ctx context.Context, linkID uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("linkID", linkID.String()).
		Delete("/api/links/{linkID}")
	if err != nil {
		return fmt.Errorf("revoke link request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListSent(ctx context.Context, page models.Page) (models.SentFilesResponse, error) {
	var result models.SentFilesResponse
	if err := h.list(ctx, "/api/files/sent", page, &result); err != nil {
		return models.SentFilesResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) ListReceived(ctx context.Context, page models.Page) (models.ReceivedFilesResponse, error) {
	var result models.ReceivedFilesResponse
	if err := h.list(ctx, "/api/files/received", page, &result); err != nil {
		return models.ReceivedFilesResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) list(ctx context.Context, path string, page models.Page, result any) error {
	req := h.authedRequest(ctx).SetResult(result)
	if page.Number > 0 {
		req.SetQueryParam("page", strconv.Itoa(page.Number))
	}
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("list request %s: %w", path, err)
	}
	return mapHTTPError(resp)
}
