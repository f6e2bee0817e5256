package catalog

import (
	"context"

	"tripatlas/models"
)

// MemoryCatalogRepo serves the catalog from in-process tables. Used directly
// in tests and as the serving layer behind the Mongo repository.
type MemoryCatalogRepo struct {
	plans  []models.PlanTemplate
	cities []models.City
	accoms []models.AccommodationType
	addOns []models.AddOn
}

// NewMemoryCatalogRepo returns a repository over the embedded seed catalog.
func NewMemoryCatalogRepo() *MemoryCatalogRepo {
	return NewMemoryCatalogRepoWith(SeedPlans(), SeedCities(), SeedAccommodationTypes(), SeedAddOns())
}

// NewMemoryCatalogRepoWith returns a repository over the given tables.
func NewMemoryCatalogRepoWith(
	plans []models.PlanTemplate,
	cities []models.City,
	accoms []models.AccommodationType,
	addOns []models.AddOn,
) *MemoryCatalogRepo {
	return &MemoryCatalogRepo{plans: plans, cities: cities, accoms: accoms, addOns: addOns}
}

func (r *MemoryCatalogRepo) Plans(ctx context.Context) ([]models.PlanTemplate, error) {
	out := make([]models.PlanTemplate, len(r.plans))
	for i, p := range r.plans {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *MemoryCatalogRepo) PlanByID(ctx context.Context, id string) (*models.PlanTemplate, error) {
	for _, p := range r.plans {
		if p.ID == id {
			clone := p.Clone()
			return &clone, nil
		}
	}
	return nil, ErrPlanNotFound
}

func (r *MemoryCatalogRepo) Cities(ctx context.Context) ([]models.City, error) {
	return append([]models.City(nil), r.cities...), nil
}

func (r *MemoryCatalogRepo) CityByID(ctx context.Context, id int) (*models.City, error) {
	for _, c := range r.cities {
		if c.ID == id {
			city := c
			return &city, nil
		}
	}
	return nil, nil
}

func (r *MemoryCatalogRepo) AccommodationTypes(ctx context.Context) ([]models.AccommodationType, error) {
	return append([]models.AccommodationType(nil), r.accoms...), nil
}

func (r *MemoryCatalogRepo) AddOns(ctx context.Context) ([]models.AddOn, error) {
	return append([]models.AddOn(nil), r.addOns...), nil
}
