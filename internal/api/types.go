package api

import "time"

// Visibility controls who can see a voice.
type Visibility string

const (
	// VisibilityPublic makes a voice discoverable by all accounts.
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate restricts a voice to the owning account.
	VisibilityPrivate Visibility = "private"
	// VisibilityUnlisted hides a voice from listings but keeps it usable by ID.
	VisibilityUnlisted Visibility = "unlisted"
)

// Voice represents a voice from the API.
type Voice struct {
	ID         string            `json:"voice_id"`
	Name       string            `json:"name"`
	Visibility Visibility        `json:"visibility"`
	Category   string            `json:"category,omitempty"`
	Language   string            `json:"language,omitempty"`
	PreviewURL string            `json:"preview_url,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`
	Settings   *VoiceSettings    `json:"settings,omitempty"`
	CreatedAt  time.Time         `json:"created_at,omitzero"`
}

// VoiceSettings tune how a voice renders speech.
type VoiceSettings struct {
	Stability  float64 `json:"stability"`
	Similarity float64 `json:"similarity"`
	Speed      float64 `json:"speed,omitempty"`
}

// ListVoicesParams filters and pages the voice listing. Zero values are
// omitted from the query string.
type ListVoicesParams struct {
	Limit      int
	Offset     int
	Visibility Visibility
}

// listVoicesResponse is the GET /voices response envelope.
type listVoicesResponse struct {
	Voices []Voice `json:"voices"`
	Total  int     `json:"total"`
}

// UpdateVoiceParams carries the mutable voice fields. Nil pointers are
// omitted from the request body so the server leaves those fields untouched.
type UpdateVoiceParams struct {
	Name       *string     `json:"name,omitempty"`
	Visibility *Visibility `json:"visibility,omitempty"`
}

// SpeechParams describes one synthesis request.
type SpeechParams struct {
	Text         string
	VoiceID      string
	ModelID      string
	OutputFormat string
	Language     string
	Settings     *VoiceSettings
}

// speechRequestBody is the POST /text-to-speech/{voice} body.
type speechRequestBody struct {
	Text     string         `json:"text"`
	ModelID  string         `json:"model_id,omitempty"`
	Language string         `json:"language_code,omitempty"`
	Settings *VoiceSettings `json:"voice_settings,omitempty"`
}

// CloneFile is one audio sample in a voice cloning upload.
type CloneFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// CloneVoiceParams describes a voice cloning upload.
type CloneVoiceParams struct {
	Name        string
	Description string
	Labels      map[string]string
	Files       []CloneFile
}
