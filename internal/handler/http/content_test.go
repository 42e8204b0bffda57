// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── profile ──

func TestGetProfile_NotSavedYet(t *testing.T) {
	services := newTestServices()
	services.ProfileService = &mockProfileService{
		getFn: func(ctx context.Context) (*models.Profile, error) { return nil, nil },
	}

	rec := doRequest(t, newTestRouter(services), http.MethodGet, "/profile", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestSaveProfile(t *testing.T) {
	var got models.Profile
	services := newTestServices()
	services.ProfileService = &mockProfileService{
		saveFn: func(ctx context.Context, p models.Profile) (models.Profile, error) {
			got = p
			return p, nil
		},
	}

	body := `{"fullName":"Ann","role":"Engineer","skills":["Go","SQL"]}`
	rec := doRequest(t, newTestRouter(services), http.MethodPut, "/profile", strings.NewReader(body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ann", got.FullName)
	assert.Equal(t, models.CommaList{"Go", "SQL"}, got.Skills)
}

func TestSaveProfile_InvalidJSON(t *testing.T) {
	rec := doRequest(t, newTestRouter(newTestServices()), http.MethodPut, "/profile", strings.NewReader("{"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", decodeErrorMessage(t, rec))
}

// ── projects ──

func TestListProjects(t *testing.T) {
	services := newTestServices()
	services.ProjectService = &mockProjectService{
		listFn: func(ctx context.Context) ([]models.Project, error) {
			return []models.Project{{ID: "p1", ProjectDraft: models.ProjectDraft{Title: "Cache"}}}, nil
		},
	}

	rec := doRequest(t, newTestRouter(services), http.MethodGet, "/projects", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var projects []models.Project
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Cache", projects[0].Title)
}

func TestListProjects_StoreFailure(t *testing.T) {
	services := newTestServices()
	services.ProjectService = &mockProjectService{
		listFn: func(ctx context.Context) ([]models.Project, error) {
			return nil, fmt.Errorf("%w: connection reset", store.ErrExecutingQuery)
		},
	}

	rec := doRequest(t, newTestRouter(services), http.MethodGet, "/projects", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeErrorMessage(t, rec))
}

func TestCreateProject(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{
			name:       "empty title",
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTitle),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "title is required",
		},
		{
			name:       "duplicate id",
			serviceErr: store.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantMsg:    http.StatusText(http.StatusConflict),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.ProjectService = &mockProjectService{
				createFn: func(ctx context.Context, d models.ProjectDraft) (models.Project, error) {
					if tt.serviceErr != nil {
						return models.Project{}, tt.serviceErr
					}
					return models.Project{ID: "p1", ProjectDraft: d}, nil
				},
			}

			rec := doRequest(t, newTestRouter(services), http.MethodPost, "/projects",
				jsonBody(t, models.ProjectDraft{Title: "Cache"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeErrorMessage(t, rec))
				return
			}
			var created models.Project
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
			assert.Equal(t, "p1", created.ID)
		})
	}
}

func TestUpdateProject_PassesPathID(t *testing.T) {
	var gotID string
	services := newTestServices()
	services.ProjectService = &mockProjectService{
		updateFn: func(ctx context.Context, id string, d models.ProjectDraft) (models.Project, error) {
			gotID = id
			return models.Project{ID: id, ProjectDraft: d}, nil
		},
	}

	rec := doRequest(t, newTestRouter(services), http.MethodPut, "/projects/p7",
		jsonBody(t, models.ProjectDraft{Title: "New"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p7", gotID)
}

func TestDeleteProject(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "unknown id", err: store.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.ProjectService = &mockProjectService{
				deleteFn: func(ctx context.Context, id string) error { return tt.err },
			}

			rec := doRequest(t, newTestRouter(services), http.MethodDelete, "/projects/p1", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ── resources ──

func multipartBody(t *testing.T, fields map[string]string, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile(attachmentField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestCreateResource_Multipart(t *testing.T) {
	var got models.ResourceDraft
	services := newTestServices()
	services.ResourceService = &mockResourceService{
		createFn: func(ctx context.Context, d models.ResourceDraft) (models.Resource, error) {
			got = d
			return models.Resource{ID: "r1", ResourceDraft: d, FileURL: "/files/abc.pdf"}, nil
		},
	}

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Patterns",
		"category":    "coding",
		"description": "notes",
	}, "patterns.pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodPost, "/resources", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestRouter(services).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Patterns", got.Title)
	assert.Equal(t, models.CategoryCoding, got.Category)
	assert.Equal(t, "notes", got.Description)
	require.NotNil(t, got.Attachment)
	assert.Equal(t, "patterns.pdf", got.Attachment.Name)
	assert.Equal(t, []byte("%PDF-1.4"), got.Attachment.Content)
}

func TestCreateResource_MultipartWithoutFile(t *testing.T) {
	var got models.ResourceDraft
	services := newTestServices()
	services.ResourceService = &mockResourceService{
		createFn: func(ctx context.Context, d models.ResourceDraft) (models.Resource, error) {
			got = d
			return models.Resource{ID: "r1", ResourceDraft: d}, nil
		},
	}

	body, contentType := multipartBody(t, map[string]string{"title": "Link only", "category": "cloud"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/resources", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	newTestRouter(services).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, got.Attachment)
}

func TestCreateResource_UploadTooLarge(t *testing.T) {
	h := newTestHandler()
	h.options.MaxUploadSize = 16

	body, contentType := multipartBody(t, map[string]string{"title": "Big"}, "big.pdf", bytes.Repeat([]byte("x"), 2<<20))
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/resources", body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	_, ok := h.readResourceDraft(rec, req, "test")

	assert.False(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "attachment is too large", decodeErrorMessage(t, rec))
}

func TestCreateResource_JSON(t *testing.T) {
	services := newTestServices()
	services.ResourceService = &mockResourceService{
		createFn: func(ctx context.Context, d models.ResourceDraft) (models.Resource, error) {
			return models.Resource{ID: "r2", ResourceDraft: d}, nil
		},
	}

	rec := doRequest(t, newTestRouter(services), http.MethodPost, "/resources",
		jsonBody(t, models.ResourceDraft{Title: "Guide", Category: models.CategoryBackend}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Resource
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "r2", created.ID)
	assert.Equal(t, models.CategoryBackend, created.Category)
}

func TestUpdateResource_InvalidCategory(t *testing.T) {
	services := newTestServices()
	services.ResourceService = &mockResourceService{
		updateFn: func(ctx context.Context, id string, d models.ResourceDraft) (models.Resource, error) {
			return models.Resource{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidCategory)
		},
	}

	rec := doRequest(t, newTestRouter(services), http.MethodPut, "/resources/r1",
		jsonBody(t, models.ResourceDraft{Title: "Guide", Category: "poetry"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid category", decodeErrorMessage(t, rec))
}

func TestDeleteResource(t *testing.T) {
	var gotID string
	services := newTestServices()
	services.ResourceService = &mockResourceService{
		deleteFn: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}

	rec := doRequest(t, newTestRouter(services), http.MethodDelete, "/resources/r9", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "r9", gotID)
}

func TestGetFile(t *testing.T) {
	services := newTestServices()
	services.ResourceService = &mockResourceService{
		openFileFn: func(ctx context.Context, name string) (store.Attachment, error) {
			if name != "abc.pdf" {
				return store.Attachment{}, store.ErrNotFound
			}
			return memAttachment(name, "%PDF-1.4 body"), nil
		},
	}
	router := newTestRouter(services)

	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/files/abc.pdf", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, "%PDF-1.4 body", rec.Body.String())
	})

	t.Run("range", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/files/abc.pdf", nil)
		req.Header.Set("Range", "bytes=0-3")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusPartialContent, rec.Code)
		assert.Equal(t, "%PDF", rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/files/other.pdf", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ── messages ──

func TestCreateMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "accepted", wantStatus: http.StatusCreated},
		{
			name:       "bad email",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid email address",
		},
		{
			name:       "empty message",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyMessage),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "message must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AuthService = &mockAuthService{enabled: true}
			services.MessageService = &mockMessageService{
				createFn: func(ctx context.Context, req models.ContactRequest) (models.Message, error) {
					if tt.err != nil {
						return models.Message{}, tt.err
					}
					return models.Message{ID: "m1", Email: req.Email, Message: req.Message}, nil
				},
			}

			rec := doRequest(t, newTestRouter(services), http.MethodPost, "/messages",
				jsonBody(t, models.ContactRequest{Email: "a@b.test", Message: "hi"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeErrorMessage(t, rec))
			}
		})
	}
}

func TestListMessages_AuthDisabled(t *testing.T) {
	services := newTestServices()
	services.MessageService = &mockMessageService{
		listFn: func(ctx context.Context) ([]models.Message, error) {
			return []models.Message{{ID: "m1"}, {ID: "m2", Read: true}}, nil
		},
	}

	rec := doRequest(t, newTestRouter(services), http.MethodGet, "/messages", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var messages []models.Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&messages))
	assert.Len(t, messages, 2)
}

func TestMarkMessageRead(t *testing.T) {
	services := newTestServices()
	services.MessageService = &mockMessageService{
		markReadFn: func(ctx context.Context, id string) (models.Message, error) {
			if id == "gone" {
				return models.Message{}, store.ErrNotFound
			}
			return models.Message{ID: id, Read: true}, nil
		},
	}
	router := newTestRouter(services)

	rec := doRequest(t, router, http.MethodPut, "/messages/m1/read", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var message models.Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&message))
	assert.True(t, message.Read)

	rec = doRequest(t, router, http.MethodPut, "/messages/gone/read", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMessage_Failure(t *testing.T) {
	services := newTestServices()
	services.MessageService = &mockMessageService{
		deleteFn: func(ctx context.Context, id string) error { return errors.New("disk full") },
	}

	rec := doRequest(t, newTestRouter(services), http.MethodDelete, "/messages/m1", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
