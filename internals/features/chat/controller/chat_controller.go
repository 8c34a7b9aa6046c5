package controller

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"utsav_backend/internals/configs"
	helper "utsav_backend/internals/helpers"
)

// systemPrompt is the fixed FAQ context prepended to every
// conversation before it reaches the model.
const systemPrompt = `You are Utsav Buddy, the helpful assistant for Utsav '26, the annual cultural fest (20-22 February 2026).
Key facts:
- Delegate passes: Platinum ₹900 (all events + concert front zone), Gold ₹500 (all events), Silver ₹250 (one day).
- A delegate pass is required to register for paid events.
- Concerts: Krishh Live on Day 2, Funkie Fridays Night on Day 3. Couple tickets admit two people.
- Payment is by UPI; upload the payment screenshot with the form. Confirmation email follows after verification.
- Registration reference IDs look like REG-XXXX-XXXX; keep them safe.
- For anything you are not sure about, direct people to registrations@utsavfest.in.
Answer briefly and warmly. Do not invent prices or schedules.`

// Upper bound on one relayed conversation turn, matching the server's
// write timeout in main.go.
const upstreamTimeout = 120 * time.Second

type ChatController struct {
	HTTP     *http.Client
	Endpoint string
	APIKey   string
	Model    string
}

func NewChatController() *ChatController {
	return &ChatController{
		HTTP:     &http.Client{Timeout: 120 * time.Second},
		Endpoint: configs.LLMGatewayURL,
		APIKey:   configs.LLMGatewayKey,
		Model:    configs.LLMModel,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

type upstreamRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// POST /api/chat
// Streams the upstream SSE body back unmodified, [DONE] sentinel
// included. Nothing is persisted.
func (ctrl *ChatController) Chat(c *fiber.Ctx) error {
	if ctrl.APIKey == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Chat is not configured")
	}

	var body chatRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if len(body.Messages) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No messages")
	}

	messages := make([]chatMessage, 0, len(body.Messages)+1)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, body.Messages...)

	payload, err := json.Marshal(upstreamRequest{
		Model:    ctrl.Model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build request")
	}

	// The handler returns before fasthttp runs the stream writer, and
	// the per-request context from main.go is canceled on return. The
	// upstream call gets its own context, released by the writer.
	ctx, cancel := context.WithTimeout(context.Background(), upstreamTimeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ctrl.Endpoint, bytes.NewReader(payload))
	if err != nil {
		cancel()
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ctrl.APIKey)

	resp, err := ctrl.HTTP.Do(req)
	if err != nil {
		cancel()
		log.Printf("[CHAT] upstream unreachable: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Chat is temporarily unavailable")
	}

	if resp.StatusCode != http.StatusOK {
		defer cancel()
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		log.Printf("[CHAT] upstream %d: %s", resp.StatusCode, snippet)

		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return helper.Error(c, fiber.StatusTooManyRequests, "Too many requests, slow down a little")
		case http.StatusPaymentRequired:
			return helper.Error(c, fiber.StatusPaymentRequired, "Chat quota exhausted")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Chat is temporarily unavailable")
		}
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		defer resp.Body.Close()
		buf := make([]byte, 4096)
		for {
			n, rerr := resp.Body.Read(buf)
			if n > 0 {
				if _, werr := w.Write(buf[:n]); werr != nil {
					return
				}
				if ferr := w.Flush(); ferr != nil {
					return
				}
			}
			if rerr != nil {
				if rerr != io.EOF {
					log.Printf("[CHAT] stream read: %v", rerr)
				}
				return
			}
		}
	}))
	return nil
}
