package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// authResponse is the body returned by register and login.
type authResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter].
// The address may omit the scheme, http is assumed then.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

// authenticate posts the credentials and keeps the issued token. The token is
// read from the Authorization header and, failing that, from the body.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var result authResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		token = result.Token
	}
	if token == "" {
		return models.User{}, ErrNoToken
	}
	h.SetToken(token)

	h.logger.Debug().Str("user_id", result.UserID).Msg("authenticated")
	return models.User{UserID: result.UserID, Email: result.Email, DisplayName: user.DisplayName}, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) UpdateNumber(ctx context.Context, update models.NumberUpdate) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&profile).
		Put("/api/profile/numbers")
	if err != nil {
		return models.Profile{}, fmt.Errorf("update number request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var documents []models.Document

	resp, err := h.authedRequest(ctx).
		SetResult(&documents).
		Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return documents, nil
}

// UploadDocument sends a multipart form with the name and category fields and
// the optional file part.
func (h *httpServerAdapter) UploadDocument(ctx context.Context, name, category string, file *models.DocumentFile) (models.Document, error) {
	var document models.Document

	req := h.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"name":     name,
			"category": category,
		}).
		SetResult(&document)
	if file != nil {
		req.SetMultipartField("file", file.FileName, file.ContentType, file.Content)
	}

	resp, err := req.Post("/api/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("upload document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	h.logger.Debug().Str("document_id", document.ID).Bool("has_file", file != nil).Msg("document uploaded")
	return document, nil
}

// DownloadDocument streams the file instead of buffering it in the response.
func (h *httpServerAdapter) DownloadDocument(ctx context.Context, documentID string, w io.Writer) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetDoNotParseResponse(true).
		SetPathParam("documentID", documentID).
		Get("/api/documents/{documentID}/file")
	if err != nil {
		return 0, fmt.Errorf("download document request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		raw, _ := io.ReadAll(body)
		return 0, statusError(resp.StatusCode(), raw)
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("copy document file: %w", err)
	}
	return n, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.authedRequest(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
