// File: servicebuddy/models/chat.go
package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message    string `json:"message"`              // user's message (voice→text or typed)
	Mode       string `json:"mode"`                 // "basic" or "advanced"
	UserAPIKey string `json:"userApiKey,omitempty"` // optional per-user Gemini key
	SessionID  string `json:"sessionId,omitempty"`  // anonymous session identifier
}

const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"
)

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Intent     *Category       `json:"intent"` // nil when nothing matched
	Response   string          `json:"response"`
	Services   []ServiceRecord `json:"services"`
	Confidence float64         `json:"confidence"`
	Mode       string          `json:"mode"`
	AIEnhanced bool            `json:"aiEnhanced"`
	UsageInfo  *UsageInfo      `json:"usageInfo,omitempty"`
}

// UsageInfo reports the session's daily AI quota position.
type UsageInfo struct {
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}
