// File: database/repository/catalog/crud.go
package catalogRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"medistay/models"
)

func (r *mongoPackageRepo) GetAll(ctx context.Context) ([]models.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *mongoPackageRepo) GetByID(ctx context.Context, id string) (*models.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pkg models.Package
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// SeedIfEmpty inserts the given packages when the collection holds none.
// Returns the number inserted (zero when already seeded).
func (r *mongoPackageRepo) SeedIfEmpty(ctx context.Context, packages []models.Package) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(packages))
	for i, p := range packages {
		docs[i] = p
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
