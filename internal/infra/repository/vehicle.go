package repository

import (
	"context"
	"strings"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VehicleQueries interface {
	ListVehiclesByHints(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVehiclesByHintsParams) ([]sqlc.Vehicles, error)
	GetVehicleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
}

// VehicleRepository is the catalog collaborator backed by Postgres.
type VehicleRepository struct {
	queries VehicleQueries
	db      sqlc.DBTX
}

func NewVehicleRepository(queries VehicleQueries, db sqlc.DBTX) *VehicleRepository {
	return &VehicleRepository{
		queries: queries,
		db:      db,
	}
}

// FetchVehicles applies the hints server-side. Hints are sent in the engine's
// comparison form and matched as substrings of the whitespace-collapsed
// column, so the result is a superset of the final view.
func (r *VehicleRepository) FetchVehicles(ctx context.Context, hints vehicle.Hints) ([]*vehicle.Vehicle, error) {
	rows, err := r.queries.ListVehiclesByHints(ctx, r.db, sqlc.ListVehiclesByHintsParams{
		Brand:    pgconv.NonEmptyToPgtype(likeOperand(vehicle.NormalizeText(hints.Brand))),
		Type:     pgconv.NonEmptyToPgtype(likeOperand(vehicle.NormalizeText(hints.Type))),
		Location: pgconv.NonEmptyToPgtype(likeOperand(hints.LocationKey())),
		MinPrice: pgconv.Float64PtrToNumeric(hints.MinPrice),
		MaxPrice: pgconv.Float64PtrToNumeric(hints.MaxPrice),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}

	out := make([]*vehicle.Vehicle, 0, len(rows))
	for _, row := range rows {
		v, err := toVehicle(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert vehicle row", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row, err := r.queries.GetVehicleByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get vehicle by id", err)
	}
	v, err := toVehicle(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert vehicle row", err)
	}
	return v, nil
}

func toVehicle(row sqlc.Vehicles) (*vehicle.Vehicle, error) {
	rate, err := pgconv.Float64PtrFromNumeric(row.DailyRate)
	if err != nil {
		return nil, err
	}
	rating, err := pgconv.Float64PtrFromNumeric(row.Rating)
	if err != nil {
		return nil, err
	}
	discount, err := pgconv.Float64PtrFromNumeric(row.Discount)
	if err != nil {
		return nil, err
	}

	return vehicle.New(vehicle.Attributes{
		ID:        row.ID,
		Code:      row.Code,
		Brand:     row.Brand,
		Model:     row.Model,
		Year:      int(row.Year),
		Type:      row.Type,
		DailyRate: rate,
		Seats:     pgconv.IntPtrFromPgtype(row.Seats),
		Luggage:   pgconv.IntPtrFromPgtype(row.Luggage),
		Gear:      row.Gear,
		Fuel:      pgconv.StringPtrFromPgtype(row.Fuel),
		Electric:  row.Electric,
		Locations: row.Locations,
		Available: row.Available,
		Featured:  pgconv.BoolPtrFromPgtype(row.Featured),
		Rating:    rating,
		Discount:  discount,
	}), nil
}

// likeOperand escapes the LIKE escape character. Wildcards are left alone
// since they only widen the match.
func likeOperand(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}
