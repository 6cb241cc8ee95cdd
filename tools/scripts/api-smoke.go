// Command api-smoke is a CI-friendly smoke test for the Spirits Forest API.
//
// It validates, against a running server:
//   - register -> 201 + Location
//   - login -> deterministic bearer token
//   - authenticated profile fetch
//   - score/savegame patch
//   - level list + random level
//   - account delete -> token invalidated
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type tokenResp struct {
	AuthToken string `json:"authToken"`
}

type userResp struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
	Savegame string `json:"savegame"`
}

func main() {
	var (
		baseURL  = flag.String("url", "http://127.0.0.1:8080", "Server base URL")
		username = flag.String("user", fmt.Sprintf("smoke-%d", time.Now().UnixNano()), "Username to register")
		pass     = flag.String("pass", "Sm0keTest!pass", "Password to register with")
		timeout  = flag.Duration("timeout", 7*time.Second, "Per-step timeout")
		verbose  = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	c := &smokeClient{
		base:    *baseURL,
		http:    &http.Client{Timeout: *timeout},
		verbose: *verbose,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 6*(*timeout))
	defer cancel()

	creds := map[string]string{"username": *username, "pass": *pass}

	// Register.
	var created userResp
	status, err := c.call(ctx, http.MethodPost, "/api/users", "", creds, &created)
	if err != nil {
		fatalf("register: %v", err)
	}
	if status != http.StatusCreated {
		fatalf("register: status %d, want 201", status)
	}
	c.logf("registered %s (id=%d)", created.Username, created.ID)

	// Login twice: the token must be identical both times.
	var first, second tokenResp
	if _, err := c.call(ctx, http.MethodPost, "/api/auth/login", "", creds, &first); err != nil {
		fatalf("login: %v", err)
	}
	if _, err := c.call(ctx, http.MethodPost, "/api/auth/login", "", creds, &second); err != nil {
		fatalf("login: %v", err)
	}
	if first.AuthToken == "" || first.AuthToken != second.AuthToken {
		fatalf("login: tokens differ or empty")
	}
	token := first.AuthToken
	c.logf("login ok, token stable")

	// Profile fetch.
	var me userResp
	if status, err = c.call(ctx, http.MethodGet, "/api/users", token, nil, &me); err != nil || status != http.StatusOK {
		fatalf("get user: status %d err %v", status, err)
	}

	// Patch score and savegame.
	var patched tokenResp
	patch := map[string]any{"score": 42, "savegame": "glade-2"}
	if status, err = c.call(ctx, http.MethodPatch, "/api/users", token, patch, &patched); err != nil || status != http.StatusOK {
		fatalf("patch: status %d err %v", status, err)
	}
	if status, err = c.call(ctx, http.MethodGet, "/api/users", patched.AuthToken, nil, &me); err != nil || status != http.StatusOK {
		fatalf("get after patch: status %d err %v", status, err)
	}
	if me.Score != 42 || me.Savegame != "glade-2" {
		fatalf("patch not applied: %+v", me)
	}
	c.logf("patch ok")

	// Levels.
	var all []json.RawMessage
	if status, err = c.call(ctx, http.MethodGet, "/api/levels", token, nil, &all); err != nil || status != http.StatusOK {
		fatalf("levels: status %d err %v", status, err)
	}
	status, err = c.call(ctx, http.MethodGet, "/api/levels/random", token, nil, nil)
	if err != nil {
		fatalf("random level: %v", err)
	}
	if status != http.StatusOK && status != http.StatusNotFound {
		fatalf("random level: status %d", status)
	}
	c.logf("levels ok (%d listed)", len(all))

	// Delete, then the token must stop working.
	if status, err = c.call(ctx, http.MethodDelete, "/api/users", token, nil, nil); err != nil || status != http.StatusNoContent {
		fatalf("delete: status %d err %v", status, err)
	}
	if status, err = c.call(ctx, http.MethodGet, "/api/users", token, nil, nil); err != nil || status != http.StatusUnauthorized {
		fatalf("token survived delete: status %d err %v", status, err)
	}

	fmt.Println("api-smoke: OK")
}

type smokeClient struct {
	base    string
	http    *http.Client
	verbose bool
}

func (c *smokeClient) call(ctx context.Context, method, path, token string, body, out any) (int, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, err
	}
	c.logf("%s %s -> %d %s", method, path, resp.StatusCode, bytes.TrimSpace(data))

	if out != nil && resp.StatusCode < 300 && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

func (c *smokeClient) logf(format string, args ...any) {
	if c.verbose {
		fmt.Printf(format+"\n", args...)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "api-smoke: "+format+"\n", args...)
	os.Exit(1)
}
