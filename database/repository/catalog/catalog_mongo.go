package catalog

import (
	"context"
	"fmt"
	"time"

	"tripatlas/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dbName             = "tripatlas"
	plansCollection    = "plans"
	citiesCollection   = "cities"
	accomsCollection   = "accommodation_types"
	addOnsCollection   = "add_ons"
	startupLoadTimeout = 15 * time.Second
)

// MongoCatalogRepo loads the catalog from MongoDB once at construction and
// serves it from memory afterwards. The catalog is read-only for the life of
// the process; empty collections are seeded from the embedded tables so a
// fresh deployment works out of the box.
type MongoCatalogRepo struct {
	memory *MemoryCatalogRepo
}

// NewMongoCatalogRepo seeds empty collections, loads the full catalog and
// returns a repository serving the loaded snapshot.
func NewMongoCatalogRepo(client *mongo.Client) (*MongoCatalogRepo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupLoadTimeout)
	defer cancel()

	db := client.Database(dbName)

	plans, err := loadOrSeed(ctx, db.Collection(plansCollection), SeedPlans())
	if err != nil {
		return nil, fmt.Errorf("failed to load plan catalog: %w", err)
	}
	cities, err := loadOrSeed(ctx, db.Collection(citiesCollection), SeedCities())
	if err != nil {
		return nil, fmt.Errorf("failed to load city registry: %w", err)
	}
	accoms, err := loadOrSeed(ctx, db.Collection(accomsCollection), SeedAccommodationTypes())
	if err != nil {
		return nil, fmt.Errorf("failed to load accommodation types: %w", err)
	}
	addOns, err := loadOrSeed(ctx, db.Collection(addOnsCollection), SeedAddOns())
	if err != nil {
		return nil, fmt.Errorf("failed to load add-ons: %w", err)
	}

	repo := &MongoCatalogRepo{
		memory: NewMemoryCatalogRepoWith(plans, cities, accoms, addOns),
	}
	return repo, nil
}

// loadOrSeed reads every document of coll; when the collection is empty it
// inserts the embedded seed first. Catalog order is the seed/insertion order.
func loadOrSeed[T any](ctx context.Context, coll *mongo.Collection, seed []T) ([]T, error) {
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count failed for %s: %w", coll.Name(), err)
	}
	if count == 0 {
		docs := make([]interface{}, len(seed))
		for i, s := range seed {
			docs[i] = s
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return nil, fmt.Errorf("seeding %s failed: %w", coll.Name(), err)
		}
		return seed, nil
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"$natural": 1}))
	if err != nil {
		return nil, fmt.Errorf("find failed for %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode failed for %s: %w", coll.Name(), err)
	}
	return out, nil
}

func (r *MongoCatalogRepo) Plans(ctx context.Context) ([]models.PlanTemplate, error) {
	return r.memory.Plans(ctx)
}

func (r *MongoCatalogRepo) PlanByID(ctx context.Context, id string) (*models.PlanTemplate, error) {
	return r.memory.PlanByID(ctx, id)
}

func (r *MongoCatalogRepo) Cities(ctx context.Context) ([]models.City, error) {
	return r.memory.Cities(ctx)
}

func (r *MongoCatalogRepo) CityByID(ctx context.Context, id int) (*models.City, error) {
	return r.memory.CityByID(ctx, id)
}

func (r *MongoCatalogRepo) AccommodationTypes(ctx context.Context) ([]models.AccommodationType, error) {
	return r.memory.AccommodationTypes(ctx)
}

func (r *MongoCatalogRepo) AddOns(ctx context.Context) ([]models.AddOn, error) {
	return r.memory.AddOns(ctx)
}
