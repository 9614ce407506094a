package handlers_test

import (
	"net/http"
	"testing"
)

func TestSignUpAndDuplicateConflicts(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, jsonReq("POST", "/auth/signup", `{"username":"alice","password":"Secret1!pass"}`, ""))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}

	// same username again, any password
	resp = do(t, app, jsonReq("POST", "/auth/signup", `{"username":"alice","password":"AnotherPass1!"}`, ""))
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("want 409 for duplicate username, got %d", resp.StatusCode)
	}
}

func TestSignUpValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"al","password":"Secret1!pass"}`},
		{"weak password", `{"username":"alice","password":"password"}`},
		{"malformed body", `{"username":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, app, jsonReq("POST", "/auth/signup", tc.body, ""))
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("want 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestSignInWrongPasswordUnauthorized(t *testing.T) {
	app := newTestApp(t)
	signupAndSignin(t, app, "alice", "Secret1!pass")

	resp := do(t, app, jsonReq("POST", "/auth/signin", `{"username":"alice","password":"wrongpass"}`, ""))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 for wrong password, got %d", resp.StatusCode)
	}

	// unknown user is indistinguishable from wrong password
	resp = do(t, app, jsonReq("POST", "/auth/signin", `{"username":"mallory","password":"Secret1!pass"}`, ""))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 for unknown user, got %d", resp.StatusCode)
	}
}

func TestProductsRequireBearerToken(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, jsonReq("GET", "/products", "", ""))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 without token, got %d", resp.StatusCode)
	}

	req := jsonReq("GET", "/products", "", "")
	req.Header.Set("Authorization", "Token abc")
	resp = do(t, app, req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 for non-bearer scheme, got %d", resp.StatusCode)
	}

	resp = do(t, app, jsonReq("GET", "/products", "", "not-a-jwt"))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401 for invalid token, got %d", resp.StatusCode)
	}
}
