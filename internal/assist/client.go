// Package assist implements the smart-update client: it wraps the current
// trip and a free-text user prompt into a model request and turns the raw
// text reply into a validated trip replacement. Every failure mode —
// transport, provider, extraction, parsing, validation — collapses to a nil
// result; the client never raises to its caller.
package assist

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// Provider generates free-form text for a prompt. Implementations wrap a
// hosted model API and may retry internally; the client above them makes no
// retry decisions.
type Provider interface {
	// Generate sends the prompt and returns the model's raw text output,
	// which is expected (not guaranteed) to contain a JSON object.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider in log lines.
	Name() string
}

// Update is a successful smart-update result: the assistant's conversational
// reply plus the merged, validated replacement details for the store.
type Update struct {
	ChatResponse string
	Details      domain.TripDetails
}

// updatePayload is the JSON object the model is instructed to return. The
// itinerary the model echoes back is ignored: the store regenerates all
// derived fields from the details on replacement.
type updatePayload struct {
	ChatResponse string   `json:"chat_response"`
	Destination  string   `json:"destination"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Type         string   `json:"type"`
	Vibe         []string `json:"vibe"`
	Stops        []string `json:"stops"`
	Intent       string   `json:"intent"`
}

// Client is the AI update client.
type Client struct {
	provider Provider
	log      *slog.Logger
}

// NewClient constructs a Client on top of the given provider.
func NewClient(provider Provider, log *slog.Logger) *Client {
	return &Client{provider: provider, log: log}
}

// FetchSmartUpdate sends the current trip and prompt to the model and
// returns the candidate replacement, or nil on any failure. The caller
// decides what nil means to the user; typically "keep current state and
// show a conversational error".
func (c *Client) FetchSmartUpdate(ctx context.Context, current *domain.Trip, prompt string) *Update {
	raw, err := c.provider.Generate(ctx, BuildPrompt(current, prompt))
	if err != nil {
		c.log.Warn("smart update failed", "provider", c.provider.Name(), "error", err)
		return nil
	}

	jsonStr, ok := ExtractJSON(raw)
	if !ok {
		c.log.Warn("smart update reply contained no JSON object", "provider", c.provider.Name())
		return nil
	}

	var payload updatePayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		c.log.Warn("smart update reply is not valid JSON", "provider", c.provider.Name(), "error", err)
		return nil
	}

	details, err := MergeDetails(current, payload)
	if err != nil {
		c.log.Warn("smart update payload failed validation", "provider", c.provider.Name(), "error", err)
		return nil
	}

	return &Update{ChatResponse: payload.ChatResponse, Details: details}
}

// MergeDetails overlays the model payload onto the current trip, field by
// field: empty payload fields keep the current value. This is the explicit
// merge step between the model's "complete object" contract and the store's
// full-replace operation, and the place where the external payload's shape
// is checked before it can touch state.
func MergeDetails(current *domain.Trip, payload updatePayload) (domain.TripDetails, error) {
	details := current.Details()

	if s := strings.TrimSpace(payload.Destination); s != "" {
		details.Destination = s
	}
	if s := strings.TrimSpace(payload.StartDate); s != "" {
		details.StartDate = s
	}
	if s := strings.TrimSpace(payload.EndDate); s != "" {
		details.EndDate = s
	}
	if s := strings.TrimSpace(payload.Type); s != "" {
		details.Type = strings.ToLower(s)
	}
	if len(payload.Vibe) > 0 {
		details.Vibe = payload.Vibe
	}
	if len(payload.Stops) > 0 {
		details.Stops = payload.Stops
	}
	if s := strings.TrimSpace(payload.Intent); s != "" {
		details.Intent = s
	}

	if err := validatePayloadDetails(details); err != nil {
		return domain.TripDetails{}, err
	}
	return details, nil
}

// validatePayloadDetails rejects merged details the store would refuse or
// that would build a nonsense trip. Mirrors the store's replacement
// preconditions so a bad payload is caught at the trust boundary.
func validatePayloadDetails(details domain.TripDetails) error {
	if strings.TrimSpace(details.Destination) == "" {
		return errMissingField("destination")
	}
	if !validDate(details.StartDate) {
		return errMissingField("startDate")
	}
	if !validDate(details.EndDate) {
		return errMissingField("endDate")
	}
	return nil
}
