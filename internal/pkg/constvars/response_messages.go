package constvars

// User-facing replies travel back over WhatsApp and stay in Spanish, matching
// the audience of the laundry group. Admin API messages are English like the
// rest of the service surface.
const (
	ReplyReservationConfirmedFormat = "✅ ¡Reserva confirmada!\n\n%s\n\n¡Nos vemos en la lavandería!"

	ReplyNotRecognizedFormat = "🤔 No entendí ese formato.\n\n" +
		"Usa alguno de estos:\n\n" +
		"• %[1]s lunes 3pm\n" +
		"• %[1]s mañana 15:00\n" +
		"• %[1]s 22 3pm\n" +
		"• %[1]s nov 22 3pm\n" +
		"• %[1]s 2025-11-22 15:00"

	ReplyOutOfOperationalHours = "⏰ Horario fuera de operación (9:00 AM - 8:00 PM)"

	ReplySlotOccupied           = "⏰ Ese horario está ocupado.\n\nIntenta con otra hora o fecha."
	ReplySlotOccupiedNextFormat = "⏰ Ese horario está ocupado.\n\nPróximo disponible: %s"

	ReplyStoreError   = "❌ Error al guardar. Intenta de nuevo."
	ReplyGenericError = "❌ Algo salió mal. Intenta de nuevo."

	ReplyCancellationSuccessFormat = "✅ Reserva cancelada.\n\n📅 %s\n\nLamentamos que no puedas venir."
	ReplyCancellationNotFound      = "❌ No encontramos esa reserva.\n\nPor favor, verifica la fecha y hora."

	ReplyNoReservations        = "📭 No tienes reservas programadas.\n\n¿Quieres hacer una nueva?"
	ReplyReservationsHeader    = "📋 *Tus reservas:*\n"
	ReplyReservationItemFormat = "%d. %s a las %s"

	ReplyHelpFormat = "📋 *Cómo usar este bot:*\n\n" +
		"Escribe el día y hora en que quieres lavar:\n" +
		"• \"%[1]s mañana a las 5pm\"\n" +
		"• \"%[1]s lunes 15:00\"\n" +
		"• \"%[1]s nov 22 3pm\"\n\n" +
		"El bot verificará disponibilidad y confirmará tu reserva."
)

const (
	ResponseUnknown = "unknown"

	GetScheduleSuccessMessage       = "get day schedule successfully"
	GetReservationsSuccessMessage   = "get reservations successfully"
	CancelReservationSuccessMessage = "reservation cancelled successfully"
	WebhookAcknowledgedMessage      = "message processed"
	WebhookDuplicateMessage         = "duplicate message ignored"
	WebhookIgnoredMessage           = "message ignored"
)
