package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"ragtask/config"
	"ragtask/database"
	"ragtask/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository backed by MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a repository bound to the bookings collection.
func NewMongoBookingRepo() *MongoBookingRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("bookings")
	return &MongoBookingRepo{coll: coll}
}

// CreateBooking inserts a new booking document and returns its ID.
// Assigns the ID and CreatedAt if the caller left them zero.
func (repo *MongoBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	_, err := repo.coll.InsertOne(ctxWithTimeout, booking)
	if err != nil {
		return "", fmt.Errorf("error creating booking: %w", err)
	}
	return booking.ID, nil
}

// GetBookingByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// GetBookingsBySession lists bookings created within a session, newest first.
func (repo *MongoBookingRepo) GetBookingsBySession(ctx context.Context, sessionID string) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for session %s: %w", sessionID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
