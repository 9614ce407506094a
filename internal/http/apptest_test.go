package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/oseasjs/nest-crud-jwt/internal/http/handlers"
	"github.com/oseasjs/nest-crud-jwt/internal/repos"
	"github.com/oseasjs/nest-crud-jwt/internal/services"
)

// newTestApp wires the real routes against an in-memory database,
// mirroring cmd/catalog without the rate limiters.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	tokenSvc := services.NewTokenService("test-secret", time.Hour)
	authSvc := services.NewAuthService(userRepo, tokenSvc)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, authSvc)
	app.Post("/auth/signup", deps.AuthHandler.SignUp)
	app.Post("/auth/signin", deps.AuthHandler.SignIn)

	products := app.Group("/products", handlers.RequireUser(authSvc))
	products.Get("/", deps.ProductHandler.List)
	products.Post("/", deps.ProductHandler.Create)
	products.Get("/:id", deps.ProductHandler.Get)
	products.Delete("/:id", deps.ProductHandler.Delete)
	products.Patch("/:id", deps.ProductHandler.UpdateStatus)

	return app
}

func jsonReq(method, target, body, token string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

// signupAndSignin registers a user and returns a valid access token.
func signupAndSignin(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := do(t, app, jsonReq("POST", "/auth/signup", `{"username":"`+username+`","password":"`+password+`"}`, ""))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: status %d", username, resp.StatusCode)
	}
	resp = do(t, app, jsonReq("POST", "/auth/signin", `{"username":"`+username+`","password":"`+password+`"}`, ""))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signin %s: status %d", username, resp.StatusCode)
	}
	var body struct {
		AccessToken string `json:"accessToken"`
	}
	decode(t, resp, &body)
	if body.AccessToken == "" {
		t.Fatal("empty accessToken")
	}
	return body.AccessToken
}
