package requests

type WhatsAppMessage struct {
	To      string `json:"to"`
	Message string `json:"message"`
}
