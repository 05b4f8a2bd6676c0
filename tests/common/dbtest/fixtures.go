//go:build unit || e2e

package dbtest

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/catalog.yaml
var catalogYAML []byte

type LocationFixture struct {
	Name      string   `yaml:"name"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
}

type VehicleFixture struct {
	ID        uuid.UUID `yaml:"id"`
	Code      string    `yaml:"code"`
	Brand     string    `yaml:"brand"`
	Model     string    `yaml:"model"`
	Year      int       `yaml:"year"`
	Type      string    `yaml:"type"`
	DailyRate *float64  `yaml:"daily_rate"`
	Seats     *int      `yaml:"seats"`
	Luggage   *int      `yaml:"luggage"`
	Gear      string    `yaml:"gear"`
	Fuel      *string   `yaml:"fuel"`
	Electric  bool      `yaml:"electric"`
	Locations []string  `yaml:"locations"`
	Available bool      `yaml:"available"`
	Featured  *bool     `yaml:"featured"`
	Rating    *float64  `yaml:"rating"`
	Discount  *float64  `yaml:"discount"`
}

type ReviewFixture struct {
	Vehicle string `yaml:"vehicle"`
	Author  string `yaml:"author"`
	Text    string `yaml:"text"`
	Stars   int    `yaml:"stars"`
	Date    string `yaml:"date"`
}

type CatalogFixture struct {
	Locations []LocationFixture `yaml:"locations"`
	Vehicles  []VehicleFixture  `yaml:"vehicles"`
	Reviews   []ReviewFixture   `yaml:"reviews"`
}

// Catalog returns the reference catalog seeded before every test.
func Catalog() (CatalogFixture, error) {
	var f CatalogFixture
	if err := yaml.Unmarshal(catalogYAML, &f); err != nil {
		return CatalogFixture{}, fmt.Errorf("failed to parse catalog fixture: %w", err)
	}
	return f, nil
}

// MustCatalog is Catalog for test bodies.
func MustCatalog(t *testing.T) CatalogFixture {
	t.Helper()
	f, err := Catalog()
	require.NoError(t, err)
	return f
}

// VehicleByCode looks up a seeded vehicle.
func (f CatalogFixture) VehicleByCode(code string) (VehicleFixture, bool) {
	for _, v := range f.Vehicles {
		if v.Code == code {
			return v, true
		}
	}
	return VehicleFixture{}, false
}

// inserts the fixture catalog
func SeedReferenceData(pool *pgxpool.Pool) error {
	f, err := Catalog()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, l := range f.Locations {
		_, err := pool.Exec(ctx,
			"INSERT INTO locations (name, latitude, longitude) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
			l.Name, l.Latitude, l.Longitude)
		if err != nil {
			return fmt.Errorf("failed to seed location %s: %w", l.Name, err)
		}
	}

	for _, v := range f.Vehicles {
		if err := insertVehicle(ctx, pool, v); err != nil {
			return err
		}
	}

	for _, r := range f.Reviews {
		_, err := pool.Exec(ctx, `
			INSERT INTO reviews (vehicle_id, author_name, body, stars, review_date)
			SELECT id, $2, $3, $4, $5::date FROM vehicles WHERE code = $1`,
			r.Vehicle, r.Author, r.Text, r.Stars, r.Date)
		if err != nil {
			return fmt.Errorf("failed to seed review for %s: %w", r.Vehicle, err)
		}
	}

	return nil
}

func insertVehicle(ctx context.Context, db DBLike, v VehicleFixture) error {
	locations := v.Locations
	if locations == nil {
		locations = []string{}
	}
	_, err := db.Exec(ctx, `
		INSERT INTO vehicles (id, code, brand, model, year, type, daily_rate, seats, luggage,
		                      gear, fuel, electric, locations, available, featured, rating, discount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (code) DO NOTHING`,
		v.ID, v.Code, v.Brand, v.Model, v.Year, v.Type, v.DailyRate, v.Seats, v.Luggage,
		v.Gear, v.Fuel, v.Electric, locations, v.Available, v.Featured, v.Rating, v.Discount)
	if err != nil {
		return fmt.Errorf("failed to seed vehicle %s: %w", v.Code, err)
	}
	return nil
}

// CreateTestVehicle inserts v outside the reference catalog.
func CreateTestVehicle(t *testing.T, db DBLike, v VehicleFixture) uuid.UUID {
	t.Helper()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	require.NoError(t, insertVehicle(context.Background(), db, v))
	return v.ID
}

// ReviewsOf returns the seeded reviews of one vehicle code.
func (f CatalogFixture) ReviewsOf(code string) []ReviewFixture {
	var out []ReviewFixture
	for _, r := range f.Reviews {
		if r.Vehicle == code {
			out = append(out, r)
		}
	}
	return out
}

func SetVehicleAvailable(t *testing.T, db DBLike, id uuid.UUID, available bool) {
	t.Helper()
	tag, err := db.Exec(context.Background(), "UPDATE vehicles SET available = $2 WHERE id = $1", id, available)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected())
}

func CreateTestBooking(t *testing.T, db DBLike, vehicleID, userID uuid.UUID, pickup, dropoff time.Time, total float64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (draft_id, vehicle_id, user_id, pickup_location, dropoff_location,
		                      pickup_at, dropoff_at, total, status)
		VALUES ($1, $2, $3, 'Bremen', 'Hamburg', $4, $5, $6, 'confirmed')
		RETURNING id`,
		uuid.New(), vehicleID, userID, pickup, dropoff, total).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
