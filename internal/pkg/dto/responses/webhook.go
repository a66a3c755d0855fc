package responses

// WebhookOutcome tells the bridge what happened with a message. Reply is empty
// when the message was ignored (wrong group, no mention, duplicate).
type WebhookOutcome struct {
	Processed bool   `json:"processed"`
	Booked    bool   `json:"booked"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Reply     string `json:"reply,omitempty"`
}
