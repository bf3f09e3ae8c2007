// Package telegram pushes staff alerts (inventory discrepancies, large
// sales) to a chat via the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Sender delivers one text message to the configured staff chat.
type Sender struct {
	log    zerolog.Logger
	chatID string
	apiURL string
	client *http.Client
}

// NewSender builds a sender for one bot token and chat.
func NewSender(log zerolog.Logger, botToken, chatID string) *Sender {
	return &Sender{
		log:    log,
		chatID: chatID,
		apiURL: "https://api.telegram.org/bot" + botToken,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the text through the Bot API sendMessage method.
func (s *Sender) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]any{
		"chat_id": s.chatID,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/sendMessage", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	s.log.Debug().Str("chat_id", s.chatID).Msg("telegram message sent")
	return nil
}

// NoOpSender is used when no bot token is configured: messages are logged
// and dropped.
type NoOpSender struct {
	log zerolog.Logger
}

// NewNoOpSender builds the no-op sender.
func NewNoOpSender(log zerolog.Logger) *NoOpSender {
	return &NoOpSender{log: log}
}

// Send only logs a preview of the message.
func (s *NoOpSender) Send(_ context.Context, text string) error {
	s.log.Debug().Str("text_preview", truncate(text, 50)).Msg("telegram disabled, message dropped")
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
