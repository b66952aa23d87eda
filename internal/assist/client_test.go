package assist

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// mockProvider is a test double for Provider. Set only the fields your test
// needs.
type mockProvider struct {
	generate func(ctx context.Context, prompt string) (string, error)
}

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return m.generate(ctx, prompt)
}
func (m *mockProvider) Name() string { return "mock" }

var _ Provider = (*mockProvider)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func currentTrip() *domain.Trip {
	return &domain.Trip{
		Destination: "Tokyo, Japan",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-17",
		Type:        domain.TypeLeisure,
		Vibe:        []string{"Foodie"},
		Intent:      "eat well",
	}
}

// ---- ExtractJSON -----------------------------------------------------------

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			raw:  `{"chat_response":"hi"}`,
			want: `{"chat_response":"hi"}`,
			ok:   true,
		},
		{
			name: "markdown fenced",
			raw:  "```json\n{\"chat_response\":\"hi\"}\n```",
			want: `{"chat_response":"hi"}`,
			ok:   true,
		},
		{
			name: "prose around the object",
			raw:  `Sure! Here is your update: {"a":1} hope that helps`,
			want: `{"a":1}`,
			ok:   true,
		},
		{
			name: "no object",
			raw:  "I could not produce an update, sorry.",
			ok:   false,
		},
		{
			name: "reversed braces",
			raw:  "} nothing {",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// ---- BuildPrompt -----------------------------------------------------------

func TestBuildPrompt_IncludesTripAndInput(t *testing.T) {
	prompt := BuildPrompt(currentTrip(), "add a day in Kyoto")

	assert.Contains(t, prompt, `"Tokyo, Japan"`)
	assert.Contains(t, prompt, `"add a day in Kyoto"`)
	assert.Contains(t, prompt, "chat_response")
}

func TestBuildPrompt_NoTrip(t *testing.T) {
	prompt := BuildPrompt(nil, "plan me a trip")
	assert.Contains(t, prompt, `"destination":"Unknown"`)
}

// ---- MergeDetails ----------------------------------------------------------

func TestMergeDetails_EmptyFieldsKeepCurrent(t *testing.T) {
	payload := updatePayload{
		ChatResponse: "Sounds good!",
		Destination:  "Kyoto, Japan",
	}

	details, err := MergeDetails(currentTrip(), payload)
	require.NoError(t, err)

	assert.Equal(t, "Kyoto, Japan", details.Destination)
	assert.Equal(t, "2026-03-10", details.StartDate, "unset payload field keeps current value")
	assert.Equal(t, "2026-03-17", details.EndDate)
	assert.Equal(t, []string{"Foodie"}, details.Vibe)
	assert.Equal(t, "eat well", details.Intent)
}

func TestMergeDetails_NormalizesType(t *testing.T) {
	details, err := MergeDetails(currentTrip(), updatePayload{Type: "Adventure"})
	require.NoError(t, err)
	assert.Equal(t, domain.TypeAdventure, details.Type)
}

func TestMergeDetails_RejectsBadDates(t *testing.T) {
	_, err := MergeDetails(currentTrip(), updatePayload{StartDate: "next tuesday"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startDate")
}

func TestMergeDetails_NoCurrentTripNeedsFullPayload(t *testing.T) {
	_, err := MergeDetails(nil, updatePayload{Destination: "Tokyo"})
	require.Error(t, err, "no current dates and none supplied")

	details, err := MergeDetails(nil, updatePayload{
		Destination: "Tokyo",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", details.Destination)
}

// ---- FetchSmartUpdate ------------------------------------------------------

func TestFetchSmartUpdate_Success(t *testing.T) {
	provider := &mockProvider{
		generate: func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, `"Tokyo, Japan"`, "prompt must carry current trip state")
			return "```json\n" + `{
				"chat_response": "Kyoto added!",
				"destination": "Tokyo, Japan",
				"stops": ["Tokyo", "Kyoto"],
				"startDate": "2026-03-10",
				"endDate": "2026-03-17"
			}` + "\n```", nil
		},
	}
	client := NewClient(provider, discardLogger())

	update := client.FetchSmartUpdate(context.Background(), currentTrip(), "add Kyoto")
	require.NotNil(t, update)
	assert.Equal(t, "Kyoto added!", update.ChatResponse)
	assert.Equal(t, []string{"Tokyo", "Kyoto"}, update.Details.Stops)
	assert.Equal(t, domain.TypeLeisure, update.Details.Type, "unmentioned fields survive")
}

func TestFetchSmartUpdate_NilOnFailures(t *testing.T) {
	tests := []struct {
		name     string
		generate func(ctx context.Context, prompt string) (string, error)
	}{
		{
			name: "provider error",
			generate: func(context.Context, string) (string, error) {
				return "", errors.New("all models failed")
			},
		},
		{
			name: "no JSON in reply",
			generate: func(context.Context, string) (string, error) {
				return "Happy to help! Where would you like to go?", nil
			},
		},
		{
			name: "malformed JSON",
			generate: func(context.Context, string) (string, error) {
				return `{"chat_response": oops}`, nil
			},
		},
		{
			name: "payload fails validation",
			generate: func(context.Context, string) (string, error) {
				return `{"chat_response":"hi","destination":"","startDate":"soon"}`, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(&mockProvider{generate: tt.generate}, discardLogger())
			update := client.FetchSmartUpdate(context.Background(), nil, "hello")
			assert.Nil(t, update)
		})
	}
}
