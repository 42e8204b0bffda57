// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

// ── Profile ──

func TestProfileRepository_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"full_name", "role", "about", "current_focus", "skills", "linkedin", "github", "email"}).
		AddRow("Rasul", "Backend Engineer", "About me", "Go, Distributed systems", "Go,SQL, Kubernetes", "https://linkedin.test", "https://github.test", "me@site.test")
	mock.ExpectQuery("SELECT full_name, role, about, current_focus, skills, linkedin, github, email FROM profile WHERE id = \\$1").
		WithArgs(profileRowID).
		WillReturnRows(rows)

	profile, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil {
		t.Fatal("expected profile, got nil")
	}
	if profile.FullName != "Rasul" {
		t.Errorf("expected full name Rasul, got %q", profile.FullName)
	}
	if got := profile.Skills.String(); got != "Go, SQL, Kubernetes" {
		t.Errorf("unexpected skills %q", got)
	}
	if len(profile.CurrentFocus) != 2 {
		t.Errorf("expected 2 focus items, got %d", len(profile.CurrentFocus))
	}
	expectationsMet(t, mock)
}

func TestProfileRepository_Get_NoRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM profile").WillReturnError(sql.ErrNoRows)

	profile, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile != nil {
		t.Errorf("expected nil profile, got %+v", profile)
	}
}

func TestProfileRepository_Get_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM profile").WillReturnError(errors.New("db down"))

	if _, err := repo.Get(context.Background()); !errors.Is(err, ErrScanningRow) {
		t.Errorf("expected ErrScanningRow, got %v", err)
	}
}

func TestProfileRepository_Save(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, logger.Nop())

	profile := models.Profile{
		FullName: "Rasul",
		Skills:   models.CommaList{"Go", "SQL"},
	}
	mock.ExpectExec("INSERT INTO profile .* ON CONFLICT \\(id\\) DO UPDATE SET").
		WithArgs(profileRowID, "Rasul", "", "", "", "Go, SQL", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestProfileRepository_Save_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProfileRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO profile").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	if err := repo.Save(context.Background(), models.Profile{}); !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got %v", err)
	}
}

// ── Projects ──

func TestProjectRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	rows := sqlmock.NewRows(projectColumns).
		AddRow("01", "Cache", "slow", "redis", "memory", "fast").
		AddRow("02", "Queue", "lost jobs", "kafka", "ops", "durable")
	mock.ExpectQuery("SELECT id, title, problem, decision, tradeoff, outcome FROM projects ORDER BY id").
		WillReturnRows(rows)

	projects, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].ID != "01" || projects[1].Title != "Queue" {
		t.Errorf("unexpected projects %+v", projects)
	}
	expectationsMet(t, mock)
}

func TestProjectRepository_List_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM projects").WillReturnRows(sqlmock.NewRows(projectColumns))

	projects, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if projects == nil || len(projects) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", projects)
	}
}

func TestProjectRepository_List_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM projects").WillReturnError(errors.New("boom"))

	if _, err := repo.List(context.Background()); !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestProjectRepository_Get_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM projects WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	project := models.Project{ID: "01", ProjectDraft: models.ProjectDraft{Title: "Cache"}}
	mock.ExpectExec("INSERT INTO projects \\(id,title,problem,decision,tradeoff,outcome\\)").
		WithArgs("01", "Cache", "", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), project); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestProjectRepository_Create_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO projects").WillReturnError(pgError(pgerrcode.UniqueViolation))

	if err := repo.Create(context.Background(), models.Project{ID: "01"}); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestProjectRepository_Update(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	project := models.Project{ID: "01", ProjectDraft: models.ProjectDraft{Title: "New"}}
	mock.ExpectExec("UPDATE projects SET title = \\$1, problem = \\$2, decision = \\$3, tradeoff = \\$4, outcome = \\$5, updated_at = NOW\\(\\) WHERE id = \\$6").
		WithArgs("New", "", "", "", "", "01").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), project); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestProjectRepository_Update_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), models.Project{ID: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProjectRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM projects WHERE id = \\$1").
		WithArgs("01").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

// ── Resources ──

func TestResourceRepository_ListAndGet(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewResourceRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, title, category, description, file_url FROM resources ORDER BY id").
		WillReturnRows(sqlmock.NewRows(resourceColumns).
			AddRow("01", "Go book", "coding", "desc", "/files/a.pdf").
			AddRow("02", "Notes", "cloud", "", ""))
	mock.ExpectQuery("SELECT .* FROM resources WHERE id = \\$1").
		WithArgs("01").
		WillReturnRows(sqlmock.NewRows(resourceColumns).AddRow("01", "Go book", "coding", "desc", "/files/a.pdf"))

	resources, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}
	if !resources[0].HasFile() || resources[1].HasFile() {
		t.Errorf("unexpected file flags %+v", resources)
	}
	if resources[1].Category != models.CategoryCloud {
		t.Errorf("expected cloud category, got %q", resources[1].Category)
	}

	resource, err := repo.Get(context.Background(), "01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resource.FileURL != "/files/a.pdf" {
		t.Errorf("unexpected file url %q", resource.FileURL)
	}
	expectationsMet(t, mock)
}

func TestResourceRepository_CreateUpdateDelete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewResourceRepository(db, logger.Nop())

	resource := models.Resource{
		ID:            "01",
		ResourceDraft: models.ResourceDraft{Title: "Go", Category: models.CategoryCoding},
		FileURL:       "/files/go.pdf",
	}

	mock.ExpectExec("INSERT INTO resources").
		WithArgs("01", "Go", "coding", "", "/files/go.pdf").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE resources SET title = \\$1, category = \\$2, description = \\$3, file_url = \\$4").
		WithArgs("Go", "coding", "", "/files/go.pdf", "01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM resources").
		WithArgs("01").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	if err := repo.Create(ctx, resource); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Update(ctx, resource); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.Delete(ctx, "01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

// ── Messages ──

func TestMessageRepository(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db, logger.Nop())
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("SELECT id, email, message, created_at, is_read FROM messages ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "message", "created_at", "is_read"}).
			AddRow("02", "b@site.test", "second", now, false).
			AddRow("01", "a@site.test", "first", now.Add(-time.Hour), true))
	mock.ExpectExec("INSERT INTO messages").
		WithArgs("03", "c@site.test", "hi", now, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, email, message, created_at, is_read FROM messages WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("UPDATE messages SET is_read = \\$1 WHERE id = \\$2").
		WithArgs(true, "02").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM messages WHERE id = \\$1").
		WithArgs("01").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	messages, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 2 || messages[0].ID != "02" || !messages[1].Read {
		t.Errorf("unexpected messages %+v", messages)
	}

	if err = repo.Create(ctx, models.Message{ID: "03", Email: "c@site.test", Message: "hi", Timestamp: now}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err = repo.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err = repo.MarkRead(ctx, "02"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err = repo.Delete(ctx, "01"); !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got %v", err)
	}
	expectationsMet(t, mock)
}

// ── Error classification ──

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.SyntaxError, NonRetryable},
		{"XX000", NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ClassifyPgError(&pgconn.PgError{Code: tt.code}); got != tt.want {
				t.Errorf("code %s: expected %v, got %v", tt.code, tt.want, got)
			}
		})
	}
}

func TestPostgresErrorClassifier_NonPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()
	if got := c.Classify(nil); got != NonRetryable {
		t.Errorf("nil error: expected NonRetryable, got %v", got)
	}
	if got := c.Classify(errors.New("plain")); got != NonRetryable {
		t.Errorf("plain error: expected NonRetryable, got %v", got)
	}
	if got := (&DB{}).classify(pgError(pgerrcode.ConnectionFailure)); got != NonRetryable {
		t.Errorf("no classifier: expected NonRetryable, got %v", got)
	}
}
