package requests

// IncomingWhatsAppMessage is the payload the WhatsApp bridge posts for every
// message created in a chat the session can see. FromMe messages are filtered
// by the bridge.
type IncomingWhatsAppMessage struct {
	MessageID  string `json:"message_id" validate:"required"`
	From       string `json:"from" validate:"required"`
	SenderName string `json:"sender_name"`
	GroupName  string `json:"group_name"`
	Body       string `json:"body" validate:"required,min=3,max=200"`
}
