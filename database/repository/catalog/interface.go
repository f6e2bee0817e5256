package catalog

import (
	"context"
	"errors"

	"tripatlas/models"
)

// ErrPlanNotFound is returned when a plan id does not resolve.
var ErrPlanNotFound = errors.New("plan not found in catalog")

// Repository exposes the process-wide, read-only catalog: plan templates in
// catalog order plus the static registries the engine consumes. All returned
// values are copies; callers may mutate them freely.
type Repository interface {
	Plans(ctx context.Context) ([]models.PlanTemplate, error)
	PlanByID(ctx context.Context, id string) (*models.PlanTemplate, error)
	Cities(ctx context.Context) ([]models.City, error)
	CityByID(ctx context.Context, id int) (*models.City, error)
	AccommodationTypes(ctx context.Context) ([]models.AccommodationType, error)
	AddOns(ctx context.Context) ([]models.AddOn, error)
}
