package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linguahub_backend/internals/constants"
	"linguahub_backend/internals/features/students/model"
	studentRoute "linguahub_backend/internals/features/students/route"
	tokenService "linguahub_backend/internals/features/tokens/service"
)

// fakeStudentRepo is an in-memory substitute for the students store.
type fakeStudentRepo struct {
	mu        sync.Mutex
	students  map[uuid.UUID]*model.StudentModel
	mutations int
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uuid.UUID]*model.StudentModel)}
}

func (f *fakeStudentRepo) seed(email, role string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.students[id] = &model.StudentModel{ID: id, Email: email, Role: role}
	return id
}

func (f *fakeStudentRepo) FindAll(context.Context) ([]model.StudentModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.StudentModel, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStudentRepo) FindByEmail(_ context.Context, email string) (*model.StudentModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) Insert(_ context.Context, s *model.StudentModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = uuid.New()
	f.students[s.ID] = s
	f.mutations++
	return nil
}

func (f *fakeStudentRepo) UpdateRole(_ context.Context, id uuid.UUID, role string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[id]
	if !ok {
		return 0, nil
	}
	s.Role = role
	f.mutations++
	return 1, nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[id]; !ok {
		return 0, nil
	}
	delete(f.students, id)
	f.mutations++
	return 1, nil
}

func (f *fakeStudentRepo) RoleByEmail(ctx context.Context, email string) (string, error) {
	s, err := f.FindByEmail(ctx, email)
	if err != nil || s == nil {
		return "", err
	}
	return s.EffectiveRole(), nil
}

func (f *fakeStudentRepo) mutationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mutations
}

func newStudentApp(repo *fakeStudentRepo, tokens *tokenService.TokenService) *fiber.App {
	app := fiber.New()
	studentRoute.StudentRoutes(app, repo, tokens)
	return app
}

func bearerFor(t *testing.T, tokens *tokenService.TokenService, email string) string {
	t.Helper()
	raw, err := tokens.Issue(email)
	require.NoError(t, err)
	return "Bearer " + raw
}

func TestCreateStudentIdempotent(t *testing.T) {
	repo := newFakeStudentRepo()
	tokens := tokenService.NewTokenService("test-secret")
	app := newStudentApp(repo, tokens)

	body := []byte(`{"email":"a@x.com","name":"Ada"}`)

	req := httptest.NewRequest("POST", "/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var ack map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.NotEmpty(t, ack["insertedId"])

	// repeat POST with the same email: no-op reporting "already exists"
	req = httptest.NewRequest("POST", "/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var msg map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "user already exists", msg["message"])
	assert.Equal(t, 1, repo.mutationCount())
}

func TestListStudentsAdminOnly(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.seed("admin@x.com", constants.RoleAdmin)
	repo.seed("student@x.com", "")
	tokens := tokenService.NewTokenService("test-secret")
	app := newStudentApp(repo, tokens)

	// no token
	resp, err := app.Test(httptest.NewRequest("GET", "/students", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// plain student
	req := httptest.NewRequest("GET", "/students", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "student@x.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// admin
	req = httptest.NewRequest("GET", "/students", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "admin@x.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var students []model.StudentModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&students))
	assert.Len(t, students, 2)
}

func TestAdminWhoamiFlow(t *testing.T) {
	repo := newFakeStudentRepo()
	id := repo.seed("a@x.com", "")
	repo.seed("admin@x.com", constants.RoleAdmin)
	tokens := tokenService.NewTokenService("test-secret")
	app := newStudentApp(repo, tokens)

	ownBearer := bearerFor(t, tokens, "a@x.com")

	// not an admin yet
	req := httptest.NewRequest("GET", "/students/admin/a@x.com", nil)
	req.Header.Set("Authorization", ownBearer)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var check map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&check))
	assert.False(t, check["admin"])

	// promote, then re-check
	req = httptest.NewRequest("PATCH", "/students/admin/"+id.String(), nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "admin@x.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/students/admin/a@x.com", nil)
	req.Header.Set("Authorization", ownBearer)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&check))
	assert.True(t, check["admin"])
}

func TestWhoamiOwnerMismatchShortCircuits(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.seed("a@x.com", "")
	repo.seed("b@x.com", constants.RoleAdmin)
	tokens := tokenService.NewTokenService("test-secret")
	app := newStudentApp(repo, tokens)

	before := repo.mutationCount()

	req := httptest.NewRequest("GET", "/students/admin/b@x.com", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "a@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, before, repo.mutationCount())
}

func TestPromotionRequiresAdmin(t *testing.T) {
	repo := newFakeStudentRepo()
	id := repo.seed("a@x.com", "")
	repo.seed("student@x.com", "")
	tokens := tokenService.NewTokenService("test-secret")
	app := newStudentApp(repo, tokens)

	req := httptest.NewRequest("PATCH", "/students/instructor/"+id.String(), nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "student@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, repo.mutationCount())
}

func TestDeleteStudentMalformedID(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.seed("admin@x.com", constants.RoleAdmin)
	tokens := tokenService.NewTokenService("test-secret")
	app := newStudentApp(repo, tokens)

	req := httptest.NewRequest("DELETE", "/students/not-a-uuid", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "admin@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
