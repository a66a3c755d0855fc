package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"lavanderia-service/internal/app/config"
	"lavanderia-service/internal/app/models"
	"lavanderia-service/internal/app/services/shared/ratelimiter"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/dto/requests"
	"lavanderia-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReservationRepository struct {
	byDate   map[string][]models.Reservation
	inserted []models.Reservation
	upcoming []models.Reservation
	findErr  error
	insertEr error
	deleted  int64
}

func (f *fakeReservationRepository) FindByDateKey(ctx context.Context, dateKey string) ([]models.Reservation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byDate[dateKey], nil
}

func (f *fakeReservationRepository) Insert(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if f.insertEr != nil {
		return nil, f.insertEr
	}
	f.inserted = append(f.inserted, *reservation)
	return reservation, nil
}

func (f *fakeReservationRepository) DeleteByDateTimePhone(ctx context.Context, dateKey, timeOfDay, phone string) (int64, error) {
	return f.deleted, nil
}

func (f *fakeReservationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeReservationRepository) FindUpcomingByPhone(ctx context.Context, phone, fromDateKey string) ([]models.Reservation, error) {
	return f.upcoming, nil
}

type fakeRedisRepository struct {
	setNXResult bool
	counters    map[string]int
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error { return nil }
func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *fakeRedisRepository) Increment(ctx context.Context, key string) error     { return nil }
func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	if f.counters == nil {
		f.counters = make(map[string]int)
	}
	f.counters[key]++
	return f.counters[key], nil
}
func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return f.setNXResult, nil
}

type sentMessage struct {
	To      string
	Message string
}

type fakeWhatsAppService struct {
	sent []sentMessage
}

func (f *fakeWhatsAppService) SendMessage(ctx context.Context, message *requests.WhatsAppMessage) error {
	f.sent = append(f.sent, sentMessage{To: message.To, Message: message.Message})
	return nil
}

func newTestUsecase(repo *fakeReservationRepository, redis *fakeRedisRepository, wa *fakeWhatsAppService) *bookingUsecase {
	logger := zap.NewNop()
	return &bookingUsecase{
		ReservationRepository: repo,
		RedisRepository:       redis,
		WhatsAppService:       wa,
		ResourceLimiter:       ratelimiter.NewResourceLimiter(redis, logger),
		InternalConfig: &config.InternalConfig{
			App: config.App{
				MentionToken:                    "@lavanderia",
				AllowedGroupName:                "vecinos",
				MaxRequests:                     10,
				WebhookDedupWindowTimeInMinutes: 30,
			},
		},
		Log: logger,
		Now: func() time.Time {
			return time.Date(2025, time.November, 25, 10, 30, 0, 0, time.Local)
		},
	}
}

func incomingMessage(body string) *requests.IncomingWhatsAppMessage {
	return &requests.IncomingWhatsAppMessage{
		MessageID:  "msg-001",
		From:       "5512345678@c.us",
		SenderName: "Ana",
		GroupName:  "Vecinos Edificio 4",
		Body:       body,
	}
}

func TestProcessMessageBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("successful booking stores and confirms", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia mañana 15:00"))
		assert.NoError(t, err)
		assert.True(t, outcome.Processed)
		assert.True(t, outcome.Booked)

		assert.Len(t, repo.inserted, 1)
		assert.Equal(t, "2025-11-26", repo.inserted[0].DateKey)
		assert.Equal(t, "15:00", repo.inserted[0].Time)
		assert.Equal(t, "Ana", repo.inserted[0].UserName)
		assert.Equal(t, "525512345678", repo.inserted[0].UserPhone)

		assert.Len(t, wa.sent, 1)
		assert.Equal(t, "525512345678", wa.sent[0].To)
		assert.Contains(t, wa.sent[0].Message, "¡Reserva confirmada!")
		assert.Contains(t, wa.sent[0].Message, "26 de noviembre de 2025, 15:00")
	})

	t.Run("missing sender name falls back to default", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, &fakeWhatsAppService{})

		message := incomingMessage("@lavanderia mañana 15:00")
		message.SenderName = "  "

		_, err := uc.ProcessMessage(ctx, message)
		assert.NoError(t, err)
		assert.Equal(t, constvars.DefaultUserName, repo.inserted[0].UserName)
	})

	t.Run("message without mention is ignored silently", func(t *testing.T) {
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(&fakeReservationRepository{}, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("mañana 15:00"))
		assert.NoError(t, err)
		assert.False(t, outcome.Processed)
		assert.Empty(t, wa.sent)
	})

	t.Run("message from another group is ignored silently", func(t *testing.T) {
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(&fakeReservationRepository{}, &fakeRedisRepository{setNXResult: true}, wa)

		message := incomingMessage("@lavanderia mañana 15:00")
		message.GroupName = "Familia"

		outcome, err := uc.ProcessMessage(ctx, message)
		assert.NoError(t, err)
		assert.False(t, outcome.Processed)
		assert.Empty(t, wa.sent)
	})

	t.Run("duplicate delivery is acknowledged without reprocessing", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: false}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia mañana 15:00"))
		assert.NoError(t, err)
		assert.True(t, outcome.Duplicate)
		assert.Empty(t, repo.inserted)
		assert.Empty(t, wa.sent)
	})

	t.Run("unrecognized format lists the accepted examples", func(t *testing.T) {
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(&fakeReservationRepository{}, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia quiero lavar pronto"))
		assert.NoError(t, err)
		assert.True(t, outcome.Processed)
		assert.False(t, outcome.Booked)
		assert.Len(t, wa.sent, 1)
		assert.Contains(t, wa.sent[0].Message, "No entendí ese formato")
		assert.Contains(t, wa.sent[0].Message, "@lavanderia lunes 3pm")
	})

	t.Run("out of operational hours is rejected", func(t *testing.T) {
		repo := &fakeReservationRepository{}
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia mañana 8am"))
		assert.NoError(t, err)
		assert.True(t, outcome.Processed)
		assert.False(t, outcome.Booked)
		assert.Empty(t, repo.inserted)
		assert.Equal(t, constvars.ReplyOutOfOperationalHours, wa.sent[0].Message)
	})

	t.Run("occupied slot reports the next available time", func(t *testing.T) {
		repo := &fakeReservationRepository{
			byDate: map[string][]models.Reservation{
				"2025-11-26": {{DateKey: "2025-11-26", Time: "15:00"}},
			},
		}
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia mañana 15:30"))
		assert.NoError(t, err)
		assert.False(t, outcome.Booked)
		assert.Contains(t, wa.sent[0].Message, "Próximo disponible: 16:00")
	})

	t.Run("store failure replies with the retry message", func(t *testing.T) {
		repo := &fakeReservationRepository{findErr: errors.New("mongo down")}
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia mañana 15:00"))
		assert.NoError(t, err)
		assert.False(t, outcome.Booked)
		assert.Equal(t, constvars.ReplyStoreError, wa.sent[0].Message)
	})

	t.Run("help command replies with usage", func(t *testing.T) {
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(&fakeReservationRepository{}, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia ayuda"))
		assert.NoError(t, err)
		assert.True(t, outcome.Processed)
		assert.False(t, outcome.Booked)
		assert.Contains(t, wa.sent[0].Message, "Cómo usar este bot")
	})

	t.Run("list command replies with upcoming reservations", func(t *testing.T) {
		repo := &fakeReservationRepository{
			upcoming: []models.Reservation{
				{DateKey: "2025-11-26", Time: "15:00"},
				{DateKey: "2025-11-28", Time: "10:00"},
			},
		}
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia mis reservas"))
		assert.NoError(t, err)
		assert.True(t, outcome.Processed)
		assert.Contains(t, wa.sent[0].Message, "Tus reservas")
		assert.Contains(t, wa.sent[0].Message, "1. 26/11/2025 a las 15:00")
		assert.Contains(t, wa.sent[0].Message, "2. 28/11/2025 a las 10:00")
	})

	t.Run("list command with no reservations suggests booking", func(t *testing.T) {
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(&fakeReservationRepository{}, &fakeRedisRepository{setNXResult: true}, wa)

		_, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia reservas"))
		assert.NoError(t, err)
		assert.Equal(t, constvars.ReplyNoReservations, wa.sent[0].Message)
	})

	t.Run("cancel command removes the matching reservation", func(t *testing.T) {
		repo := &fakeReservationRepository{deleted: 1}
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, wa)

		outcome, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia cancelar mañana 15:00"))
		assert.NoError(t, err)
		assert.True(t, outcome.Processed)
		assert.Contains(t, wa.sent[0].Message, "Reserva cancelada")
		assert.Contains(t, wa.sent[0].Message, "26 de noviembre de 2025, 15:00")
	})

	t.Run("cancel command for a missing reservation says not found", func(t *testing.T) {
		repo := &fakeReservationRepository{deleted: 0}
		wa := &fakeWhatsAppService{}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, wa)

		_, err := uc.ProcessMessage(ctx, incomingMessage("@lavanderia cancelar mañana 15:00"))
		assert.NoError(t, err)
		assert.Equal(t, constvars.ReplyCancellationNotFound, wa.sent[0].Message)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("existing reservation is deleted", func(t *testing.T) {
		repo := &fakeReservationRepository{deleted: 1}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, &fakeWhatsAppService{})

		err := uc.CancelReservation(ctx, &requests.CancelReservation{
			Date:  "2025-11-26",
			Time:  "15:00",
			Phone: "5512345678",
		})
		assert.NoError(t, err)
	})

	t.Run("missing reservation yields not found", func(t *testing.T) {
		repo := &fakeReservationRepository{deleted: 0}
		uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, &fakeWhatsAppService{})

		err := uc.CancelReservation(ctx, &requests.CancelReservation{
			Date:  "2025-11-26",
			Time:  "15:00",
			Phone: "5512345678",
		})
		assert.Error(t, err)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestListReservationsByDate(t *testing.T) {
	repo := &fakeReservationRepository{
		byDate: map[string][]models.Reservation{
			"2025-11-26": {
				{DateKey: "2025-11-26", Time: "15:00", UserName: "Ana", UserPhone: "525512345678"},
			},
		},
	}
	uc := newTestUsecase(repo, &fakeRedisRepository{setNXResult: true}, &fakeWhatsAppService{})

	reservations, err := uc.ListReservationsByDate(context.Background(), "2025-11-26")
	assert.NoError(t, err)
	assert.Len(t, reservations, 1)
	assert.Equal(t, "15:00", reservations[0].Time)
	assert.Equal(t, "Ana", reservations[0].UserName)
}
