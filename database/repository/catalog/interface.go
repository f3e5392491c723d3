// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"medistay/config"
	"medistay/database"
	"medistay/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PackageRepository is the read-mostly packages collection backing the
// price catalog.
type PackageRepository interface {
	GetAll(ctx context.Context) ([]models.Package, error)
	GetByID(ctx context.Context, id string) (*models.Package, error)
	SeedIfEmpty(ctx context.Context, packages []models.Package) (int, error)
}

type mongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageRepo constructs a MongoDB-backed PackageRepository.
func NewMongoPackageRepo() PackageRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoPackageRepo{
		coll: db.Collection("packages"),
	}
}
