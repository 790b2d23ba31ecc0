package ws

// Event types emitted over the realtime channel.
const (
	EventNewRequest         = "newRequest"
	EventUpdateRequest      = "updateRequest"
	EventNewNGORegistration = "newNGORegistration"
)

// AudienceAdmin restricts delivery to admin observers; an empty audience
// means every connected client.
const AudienceAdmin = "admin"

type Message struct {
	Type     string      `json:"type"`
	Audience string      `json:"audience,omitempty"`
	Data     interface{} `json:"data"`
}
