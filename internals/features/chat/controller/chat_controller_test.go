package controller

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

	"github.com/gofiber/fiber/v2"
)

func chatApp(upstream string) *fiber.App {
	ctrl := &ChatController{
		HTTP:     &http.Client{Timeout: 5 * time.Second},
		Endpoint: upstream,
		APIKey:   "test-key",
		Model:    "test-model",
	}
	app := fiber.New()
	app.Post("/api/chat", ctrl.Chat)
	return app
}

func chatPost(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestChat_StreamsUpstreamBodyUnmodified(t *testing.T) {
	var upstreamBody upstreamRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&upstreamBody)
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Hel\"}}]}\n\n")
		_, _ = io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n")
		_, _ = io.WriteString(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	app := chatApp(srv.URL)
	resp := chatPost(t, app, chatRequest{Messages: []chatMessage{{Role: "user", Content: "When is Krishh Live?"}}})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	got := string(body)
	if !strings.Contains(got, `"content":"Hel"`) || !strings.Contains(got, "data: [DONE]") {
		t.Errorf("stream not passed through: %q", got)
	}

	// the relay prepends the fixed system prompt and keeps the user turn
	if len(upstreamBody.Messages) != 2 {
		t.Fatalf("upstream got %d messages, want 2", len(upstreamBody.Messages))
	}
	if upstreamBody.Messages[0].Role != "system" || !strings.Contains(upstreamBody.Messages[0].Content, "Utsav") {
		t.Errorf("system prompt missing: %+v", upstreamBody.Messages[0])
	}
	if !upstreamBody.Stream {
		t.Error("upstream request must ask for a stream")
	}
}

// TestChat_StreamOutlivesHandlerContext mounts the same request-scoped
// timeout middleware main.go installs, whose context is canceled the
// moment the handler returns. The stream writer runs after that, so a
// slow upstream must still be drained to the [DONE] sentinel.
func TestChat_StreamOutlivesHandlerContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Hel\"}}]}\n\n")
		if fl, ok := w.(http.Flusher); ok {
			fl.Flush()
		}
		time.Sleep(150 * time.Millisecond)
		_, _ = io.WriteString(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})
	ctrl := &ChatController{
		HTTP:     &http.Client{Timeout: 5 * time.Second},
		Endpoint: srv.URL,
		APIKey:   "test-key",
		Model:    "test-model",
	}
	app.Post("/api/chat", ctrl.Chat)

	resp := chatPost(t, app, chatRequest{Messages: []chatMessage{{Role: "user", Content: "hi"}}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	got := string(body)
	if !strings.Contains(got, `"content":"Hel"`) {
		t.Errorf("first chunk missing from stream: %q", got)
	}
	if !strings.Contains(got, "data: [DONE]") {
		t.Errorf("stream cut off before the [DONE] sentinel: %q", got)
	}
}

func TestChat_UpstreamStatusMapping(t *testing.T) {
	tests := []struct {
		upstream int
		want     int
	}{
		{http.StatusTooManyRequests, http.StatusTooManyRequests},
		{http.StatusPaymentRequired, http.StatusPaymentRequired},
		{http.StatusBadGateway, http.StatusInternalServerError},
		{http.StatusUnauthorized, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tt.upstream)
		}))
		app := chatApp(srv.URL)
		resp := chatPost(t, app, chatRequest{Messages: []chatMessage{{Role: "user", Content: "hi"}}})
		if resp.StatusCode != tt.want {
			t.Errorf("upstream %d: status = %d, want %d", tt.upstream, resp.StatusCode, tt.want)
		}
		srv.Close()
	}
}

func TestChat_EmptyConversationRejected(t *testing.T) {
	app := chatApp("http://127.0.0.1:0")
	resp := chatPost(t, app, chatRequest{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestChat_MissingKeyDisablesRelay(t *testing.T) {
	app := fiber.New()
	ctrl := &ChatController{HTTP: http.DefaultClient, Endpoint: "http://127.0.0.1:0", Model: "m"}
	app.Post("/api/chat", ctrl.Chat)

	resp := chatPost(t, app, chatRequest{Messages: []chatMessage{{Role: "user", Content: "hi"}}})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
