// File: database/repository/booking/aggregates.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medistay/models"
)

func (r *mongoBookingRepo) countByField(ctx context.Context, field string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(results))
	for _, res := range results {
		counts[res.ID] = res.Count
	}
	return counts, nil
}

func (r *mongoBookingRepo) CountBySyncSource(ctx context.Context) (map[string]int64, error) {
	return r.countByField(ctx, "syncSource")
}

func (r *mongoBookingRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countByField(ctx, "status")
}

// RevenueBySyncSource sums and averages booking totals per sync source.
func (r *mongoBookingRepo) RevenueBySyncSource(ctx context.Context) ([]models.RevenueBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":     "$syncSource",
			"count":   bson.M{"$sum": 1},
			"total":   bson.M{"$sum": "$total"},
			"average": bson.M{"$avg": "$total"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []models.RevenueBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// RemoveDuplicateClientIDs deletes all but the oldest record per duplicated
// clientBookingId. Explicit cleanup operation; nothing else hard-deletes
// reconciled records.
func (r *mongoBookingRepo) RemoveDuplicateClientIDs(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"clientBookingId": bson.M{"$exists": true, "$ne": ""},
		}}},
		{{Key: "$sort", Value: bson.M{"createdAt": 1}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$clientBookingId",
			"ids":   bson.M{"$push": "$id"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		IDs []string `bson:"ids"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return 0, err
	}

	var stale []string
	for _, g := range groups {
		if len(g.IDs) > 1 {
			stale = append(stale, g.IDs[1:]...) // keep the oldest
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"id": bson.M{"$in": stale}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
