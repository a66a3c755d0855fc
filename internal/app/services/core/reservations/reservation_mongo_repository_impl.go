package reservations

import (
	"context"
	"time"

	"lavanderia-service/internal/app/contracts"
	"lavanderia-service/internal/app/models"
	"lavanderia-service/internal/pkg/constvars"
	"lavanderia-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReservationMongoRepository struct {
	Collection *mongo.Collection
}

func NewReservationMongoRepository(db *mongo.Client, dbName string) contracts.ReservationRepository {
	return &ReservationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReservations),
	}
}

func (r *ReservationMongoRepository) FindByDateKey(ctx context.Context, dateKey string) ([]models.Reservation, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"dateKey": dateKey})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reservations, nil
}

func (r *ReservationMongoRepository) Insert(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	// _id is stored as a hex string so rows decode back into the model as-is.
	if reservation.ID == "" {
		reservation.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.Collection.InsertOne(ctx, reservation); err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return reservation, nil
}

func (r *ReservationMongoRepository) DeleteByDateTimePhone(ctx context.Context, dateKey, timeOfDay, phone string) (int64, error) {
	filter := bson.M{
		"dateKey":   dateKey,
		"time":      timeOfDay,
		"userPhone": phone,
	}
	result, err := r.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *ReservationMongoRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *ReservationMongoRepository) FindUpcomingByPhone(ctx context.Context, phone, fromDateKey string) ([]models.Reservation, error) {
	filter := bson.M{
		"userPhone": phone,
		"dateKey":   bson.M{"$gte": fromDateKey},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "dateKey", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reservations, nil
}
