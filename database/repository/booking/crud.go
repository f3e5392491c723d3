// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medistay/models"
)

// validate enforces the record invariants before the document reaches the
// collection. The unique index on clientBookingId stays the final arbiter
// for conflicts; everything else is checked here.
func validate(b *models.Booking) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
	b.Phone = strings.TrimSpace(b.Phone)

	switch {
	case b.Name == "":
		return &ValidationError{Field: "name", Reason: "is required"}
	case b.Email == "":
		return &ValidationError{Field: "email", Reason: "is required"}
	case b.Phone == "":
		return &ValidationError{Field: "phone", Reason: "is required"}
	case b.PackageID == "":
		return &ValidationError{Field: "packageId", Reason: "is required"}
	case !b.CheckOut.After(b.CheckIn):
		return &ValidationError{Field: "checkOut", Reason: "must be after checkIn"}
	case b.Guests < 1 || b.Guests > 4:
		return &ValidationError{Field: "guests", Reason: "must be between 1 and 4"}
	case b.Nights < 1:
		return &ValidationError{Field: "nights", Reason: "must be at least 1"}
	case b.PackageTotal < 0 || b.AddOnsTotal < 0 || b.MedicalServicesTotal < 0 || b.Total < 0 || b.Deposit < 0:
		return &ValidationError{Field: "totals", Reason: "must be non-negative"}
	case !models.ValidStatus(b.Status):
		return &ValidationError{Field: "status", Reason: "is not a known status"}
	case b.SyncSource != models.SourceClientSide && b.SyncSource != models.SourceServerSide:
		return &ValidationError{Field: "syncSource", Reason: "is not a known source"}
	}
	return nil
}

func (r *mongoBookingRepo) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rec := *b
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Status == "" {
		rec.Status = models.StatusPending
	}
	if rec.SyncSource == "" {
		rec.SyncSource = models.SourceServerSide
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := validate(&rec); err != nil {
		return nil, err
	}

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &ConflictError{ClientBookingID: rec.ClientBookingID}
		}
		return nil, err
	}
	return &rec, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if !models.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Reason: "is not a known status"}
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertManyUnordered issues a single unordered bulk insert and reports
// partial success. Records are validated up front; invalid ones surface as
// failures with their batch index without blocking the rest.
func (r *mongoBookingRepo) InsertManyUnordered(ctx context.Context, records []models.Booking) (*BulkResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	result := &BulkResult{}
	docs := make([]interface{}, 0, len(records))
	docIdx := make([]int, 0, len(records)) // maps insert position back to batch index

	now := time.Now().UTC()
	for i := range records {
		rec := records[i]
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
		if err := validate(&rec); err != nil {
			result.Failures = append(result.Failures, BulkFailure{Index: i, Message: err.Error()})
			continue
		}
		docs = append(docs, rec)
		docIdx = append(docIdx, i)
	}
	if len(docs) == 0 {
		return result, nil
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if res != nil {
		result.Inserted = len(res.InsertedIDs)
	}
	if err != nil {
		bwe, ok := err.(mongo.BulkWriteException)
		if !ok {
			return nil, err
		}
		for _, we := range bwe.WriteErrors {
			result.Failures = append(result.Failures, BulkFailure{
				Index:    docIdx[we.Index],
				Conflict: we.Code == 11000,
				Message:  we.Message,
			})
		}
		// Unordered inserts keep going past per-document errors; the
		// successful remainder is already reflected in InsertedIDs.
	}
	return result, nil
}
