package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tutor-match/internal/delivery/http/middleware"
	"tutor-match/internal/domain/user"
	"tutor-match/internal/pkg/jwt"
	ucauth "tutor-match/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type authUCMock struct {
	registerErr error
	loginUser   user.User
	loginToken  string
	loginErr    error
}

func (m authUCMock) Register(_ context.Context, in ucauth.RegisterInput) (user.User, error) {
	if m.registerErr != nil {
		return user.User{}, m.registerErr
	}
	return user.User{ID: uuid.New(), Email: in.Email}, nil
}

func (m authUCMock) Login(context.Context, ucauth.LoginInput) (user.User, string, error) {
	if m.loginErr != nil {
		return user.User{}, "", m.loginErr
	}
	return m.loginUser, m.loginToken, nil
}

type tutorUCMock struct {
	tutors []user.User
	err    error

	gotSkill string
	called   bool
}

func (m *tutorUCMock) FindTutors(_ context.Context, skill string) ([]user.User, error) {
	m.called = true
	m.gotSkill = skill
	return m.tutors, m.err
}

type scoreUCMock struct {
	err      error
	gotEmail string
	gotDelta int
}

func (m *scoreUCMock) AdjustScore(_ context.Context, email string, delta int) error {
	m.gotEmail = email
	m.gotDelta = delta
	return m.err
}

func newTestApp(t *testing.T, auth authUCMock, tutor *tutorUCMock, score *scoreUCMock, jwtSvc jwt.Service) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	NewAuthHandler(auth).RegisterRoutes(app)
	if tutor != nil {
		NewTutorHandler(tutor).RegisterRoutes(app)
	}
	if score != nil {
		scored := app.Group("", middleware.NewAuthMiddleware(jwtSvc).Middleware())
		NewScoreHandler(score).RegisterRoutes(scored)
	}

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, header map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("invalid JSON body %q: %v", raw, err)
		}
	}
	return resp, decoded
}

func TestRegister_Created(t *testing.T) {
	app := newTestApp(t, authUCMock{}, nil, nil, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/register", map[string]any{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
		"skills": []string{"python"}, "role": "tutor",
	}, nil)

	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if body["message"] != "User registered successfully" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := newTestApp(t, authUCMock{registerErr: ucauth.ErrEmailAlreadyRegistered}, nil, nil, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/register", map[string]any{
		"email": "ada@example.com", "password": "secret1",
	}, nil)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "Email already exists" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	app := newTestApp(t, authUCMock{registerErr: ucauth.ErrInvalidInput}, nil, nil, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/register", map[string]any{
		"email": "bad", "password": "secret1", "role": "admin",
	}, nil)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "Invalid input" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_ReturnsTokenAndSanitizedUser(t *testing.T) {
	id := uuid.New()
	app := newTestApp(t, authUCMock{
		loginUser: user.User{
			ID: id, Name: "Ada", Email: "ada@example.com",
			PasswordHash: "$2a$10$secret", Skills: []string{"python"},
			Score: 10, Role: user.RoleTutor,
		},
		loginToken: "tok-123",
	}, nil, nil, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/login", map[string]any{
		"email": "ada@example.com", "password": "secret1",
	}, nil)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["token"] != "tok-123" {
		t.Fatalf("missing token: %v", body)
	}
	usr, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("missing user object: %v", body)
	}
	if usr["email"] != "ada@example.com" || usr["id"] != id.String() {
		t.Fatalf("unexpected user: %v", usr)
	}
	for k := range usr {
		if strings.Contains(strings.ToLower(k), "password") {
			t.Fatalf("password material leaked in login response: %v", usr)
		}
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	app := newTestApp(t, authUCMock{loginErr: ucauth.ErrUserNotFound}, nil, nil, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/login", map[string]any{
		"email": "ghost@example.com", "password": "secret1",
	}, nil)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "User not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := newTestApp(t, authUCMock{loginErr: ucauth.ErrInvalidCredentials}, nil, nil, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/login", map[string]any{
		"email": "ada@example.com", "password": "wrong",
	}, nil)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "Invalid credentials" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestListTutors_OrderAndShape(t *testing.T) {
	tutor := &tutorUCMock{tutors: []user.User{
		{ID: uuid.New(), Email: "a@x.co", Role: user.RoleTutor, Score: 30, Skills: []string{"python"}},
		{ID: uuid.New(), Email: "b@x.co", Role: user.RoleTutor, Score: 20, Skills: []string{"python"}},
		{ID: uuid.New(), Email: "c@x.co", Role: user.RoleTutor, Score: 10, Skills: []string{"python"}},
	}}
	app := newTestApp(t, authUCMock{}, tutor, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/tutors?skill=python", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if tutor.gotSkill != "python" {
		t.Fatalf("skill not forwarded: %q", tutor.gotSkill)
	}

	var list []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 tutors, got %d", len(list))
	}
	if list[0]["score"].(float64) != 30 || list[1]["score"].(float64) != 20 || list[2]["score"].(float64) != 10 {
		t.Fatalf("wrong order: %v", list)
	}
	for _, u := range list {
		for k := range u {
			if strings.Contains(strings.ToLower(k), "password") {
				t.Fatalf("password material leaked: %v", u)
			}
		}
	}
}

func TestListTutors_MissingSkillParam(t *testing.T) {
	tutor := &tutorUCMock{tutors: []user.User{}}
	app := newTestApp(t, authUCMock{}, tutor, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/tutors", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !tutor.called || tutor.gotSkill != "" {
		t.Fatalf("expected empty-skill lookup, got called=%v skill=%q", tutor.called, tutor.gotSkill)
	}

	var list []any
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestUpdateScore_RequiresToken(t *testing.T) {
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	score := &scoreUCMock{}
	app := newTestApp(t, authUCMock{}, nil, score, jwtSvc)

	resp, body := doJSON(t, app, http.MethodPost, "/update-score", map[string]any{
		"email": "a@b.co", "score": 5,
	}, nil)

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body["error"] != "Unauthorized" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUpdateScore_WithToken(t *testing.T) {
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	token, err := jwtSvc.Generate(uuid.New(), "caller@b.co")
	if err != nil {
		t.Fatal(err)
	}

	score := &scoreUCMock{}
	app := newTestApp(t, authUCMock{}, nil, score, jwtSvc)

	resp, body := doJSON(t, app, http.MethodPost, "/update-score", map[string]any{
		"email": "a@b.co", "score": -5,
	}, map[string]string{"Authorization": "Bearer " + token})

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["message"] != "Score updated" {
		t.Fatalf("unexpected body: %v", body)
	}
	if score.gotEmail != "a@b.co" || score.gotDelta != -5 {
		t.Fatalf("delta not forwarded: email=%q delta=%d", score.gotEmail, score.gotDelta)
	}
}

func TestTutors_StoreFailureIsExplicit500(t *testing.T) {
	tutor := &tutorUCMock{err: context.DeadlineExceeded}
	app := newTestApp(t, authUCMock{}, tutor, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/tutors?skill=go", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail must not leak: %v", body)
	}
}
