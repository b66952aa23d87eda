package assist

import (
	"encoding/json"
	"fmt"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// promptTemplate instructs the model to behave conversationally, update
// incrementally, never delete unasked, and answer with one bare JSON object.
const promptTemplate = `You are a smart, friendly travel assistant.
Your goal is to have a NATURAL conversation with the user to help them plan a trip.

Current Trip State: %s
User Input: %q

BEHAVIOR GUIDELINES:
- Be Conversational: if the user says "Hi" or asks a general question, just chat. You do not need to force a trip update.
- Incremental Updates: if the user gives one piece of info (e.g. "I want to go to Tokyo"), update JUST that field ('destination'). Do not invent dates or budgets unless asked.
- Zero Destructive Actions: never delete existing data unless explicitly asked to "remove" or "clear" it.

MANDATORY OUTPUT FORMAT:
You must return a VALID JSON object with this EXACT structure (no markdown):
{
  "chat_response": "Your friendly text response to the user here.",
  "destination": "Current or updated destination string",
  "startDate": "YYYY-MM-DD (keep existing if not changed)",
  "endDate": "YYYY-MM-DD (keep existing if not changed)",
  "type": "Trip type (leisure, business or adventure)",
  "vibe": ["Array", "of", "Strings"],
  "stops": ["Array", "of", "Cities"],
  "intent": "Summary of the user's goal so far"
}`

// emptyTripContext stands in for the trip JSON when no trip exists yet, so
// the model still sees the expected shape.
const emptyTripContext = `{"destination":"Unknown","type":"Any","itinerary":[],"checklist":[]}`

// BuildPrompt renders the system prompt around the current trip and the
// user's free-text request.
func BuildPrompt(current *domain.Trip, userPrompt string) string {
	tripJSON := emptyTripContext
	if current != nil {
		if b, err := json.Marshal(current); err == nil {
			tripJSON = string(b)
		}
	}
	return fmt.Sprintf(promptTemplate, tripJSON, userPrompt)
}
