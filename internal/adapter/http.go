// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-resty/resty/v2"
)

const (
	profilePath   = "/profile"
	projectsPath  = "/projects"
	resourcesPath = "/resources"
	messagesPath  = "/messages"
	loginPath     = "/auth/login"
	versionPath   = "/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	// baseHost is the host[:port] the bearer token may be sent to.
	baseHost string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL comes from adapterCfg.HTTPAddress; a missing scheme defaults
// to http. Every request is bounded by adapterCfg.RequestTimeout.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseHost: base.Host,
		logger:   logger,
	}, nil
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

// Login POSTs the credentials to /auth/login and stores the bearer token
// returned in the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, login, password string) error {
	const op = "login"

	resp, err := h.send(ctx, op, http.MethodPost, loginPath, func(r *resty.Request) error {
		return setPayload(r, models.LoginRequest{Login: login, Password: password}, nil)
	})
	if err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return &DecodeError{Op: op, Err: err}
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.send(ctx, "get version", http.MethodGet, versionPath, nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// GetProfile returns nil, nil when the service answers with a JSON null or
// an empty body.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (*models.Profile, error) {
	const op = "get profile"

	resp, err := h.send(ctx, op, http.MethodGet, profilePath, nil)
	if err != nil {
		return nil, err
	}

	return decodeOptional[models.Profile](op, resp.Body())
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	const op = "update profile"

	resp, err := h.send(ctx, op, http.MethodPut, profilePath, func(r *resty.Request) error {
		return setPayload(r, profile, nil)
	})
	if err != nil {
		return models.Profile{}, err
	}

	return decodeOne[models.Profile](op, resp.Body())
}

func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	const op = "list projects"

	resp, err := h.send(ctx, op, http.MethodGet, projectsPath, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[models.Project](op, resp.Body(), h.logger), nil
}

func (h *httpServerAdapter) CreateProject(ctx context.Context, draft models.ProjectDraft) (models.Project, error) {
	const op = "create project"

	resp, err := h.send(ctx, op, http.MethodPost, projectsPath, func(r *resty.Request) error {
		return setPayload(r, draft, nil)
	})
	if err != nil {
		return models.Project{}, err
	}

	return decodeOne[models.Project](op, resp.Body())
}

func (h *httpServerAdapter) UpdateProject(ctx context.Context, id string, draft models.ProjectDraft) (models.Project, error) {
	const op = "update project"

	resp, err := h.send(ctx, op, http.MethodPut, itemPath(projectsPath, id), func(r *resty.Request) error {
		return setPayload(r, draft, nil)
	})
	if err != nil {
		return models.Project{}, err
	}

	return decodeOne[models.Project](op, resp.Body())
}

func (h *httpServerAdapter) DeleteProject(ctx context.Context, id string) error {
	_, err := h.send(ctx, "delete project", http.MethodDelete, itemPath(projectsPath, id), nil)
	return err
}

func (h *httpServerAdapter) ListResources(ctx context.Context) ([]models.Resource, error) {
	const op = "list resources"

	resp, err := h.send(ctx, op, http.MethodGet, resourcesPath, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[models.Resource](op, resp.Body(), h.logger), nil
}

func (h *httpServerAdapter) CreateResource(ctx context.Context, draft models.ResourceDraft) (models.Resource, error) {
	const op = "create resource"

	resp, err := h.send(ctx, op, http.MethodPost, resourcesPath, func(r *resty.Request) error {
		return setPayload(r, draft, draft.Attachment)
	})
	if err != nil {
		return models.Resource{}, err
	}

	return decodeOne[models.Resource](op, resp.Body())
}

func (h *httpServerAdapter) UpdateResource(ctx context.Context, id string, draft models.ResourceDraft) (models.Resource, error) {
	const op = "update resource"

	resp, err := h.send(ctx, op, http.MethodPut, itemPath(resourcesPath, id), func(r *resty.Request) error {
		return setPayload(r, draft, draft.Attachment)
	})
	if err != nil {
		return models.Resource{}, err
	}

	return decodeOne[models.Resource](op, resp.Body())
}

func (h *httpServerAdapter) DeleteResource(ctx context.Context, id string) error {
	_, err := h.send(ctx, "delete resource", http.MethodDelete, itemPath(resourcesPath, id), nil)
	return err
}

// DownloadFile accepts either an absolute URL or a path relative to the
// service base URL. The token is only sent to the service host.
func (h *httpServerAdapter) DownloadFile(ctx context.Context, fileURL string) ([]byte, error) {
	if strings.TrimSpace(fileURL) == "" {
		return nil, &ResponseError{Op: "download file", StatusCode: http.StatusNotFound, Message: "empty file url"}
	}

	resp, err := h.send(ctx, "download file", http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) SendMessage(ctx context.Context, req models.ContactRequest) (models.Message, error) {
	const op = "send message"

	resp, err := h.send(ctx, op, http.MethodPost, messagesPath, func(r *resty.Request) error {
		return setPayload(r, req, nil)
	})
	if err != nil {
		return models.Message{}, err
	}

	return decodeOne[models.Message](op, resp.Body())
}

func (h *httpServerAdapter) ListMessages(ctx context.Context) ([]models.Message, error) {
	const op = "list messages"

	resp, err := h.send(ctx, op, http.MethodGet, messagesPath, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[models.Message](op, resp.Body(), h.logger), nil
}

func (h *httpServerAdapter) MarkMessageRead(ctx context.Context, id string) (models.Message, error) {
	const op = "mark message read"

	resp, err := h.send(ctx, op, http.MethodPut, itemPath(messagesPath, id)+"/read", nil)
	if err != nil {
		return models.Message{}, err
	}

	return decodeOne[models.Message](op, resp.Body())
}

func (h *httpServerAdapter) DeleteMessage(ctx context.Context, id string) error {
	_, err := h.send(ctx, "delete message", http.MethodDelete, itemPath(messagesPath, id), nil)
	return err
}

// send executes one request. prepare, when non-nil, sets the body.
func (h *httpServerAdapter) send(ctx context.Context, op, method, path string, prepare func(*resty.Request) error) (*resty.Response, error) {
	req := h.authedRequest(ctx, path)
	if prepare != nil {
		if err := prepare(req); err != nil {
			return nil, fmt.Errorf("%s: build request: %w", op, err)
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.send").Str("op", op).Msg("request failed")
		return nil, &TransportError{Op: op, Err: err}
	}

	if err = mapHTTPError(op, resp); err != nil {
		h.logger.Warn().Err(err).Str("func", "httpServerAdapter.send").Str("op", op).Int("status", resp.StatusCode()).Msg("service rejected request")
		return nil, err
	}

	return resp, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, path string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" && h.isServiceURL(path) {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// isServiceURL reports whether path resolves against the service base URL.
// Relative paths always do.
func (h *httpServerAdapter) isServiceURL(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	if !u.IsAbs() && u.Host == "" {
		return true
	}
	return strings.EqualFold(u.Host, h.baseHost)
}

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}
