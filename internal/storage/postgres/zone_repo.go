package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Antonio-Sitoe/safe-zone-mobile/internal/domain"
	"github.com/Antonio-Sitoe/safe-zone-mobile/pkg/e"
)

// ZoneRepo is the authoritative zone store. It satisfies sync.ZoneRepository.
type ZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *ZoneRepo {
	return &ZoneRepo{pool: pool, logger: logger}
}

const zoneColumns = `
		id,
		slug,
		date,
		hour,
		description,
		type,
		reports,
		ST_X(geo_point::geometry) AS lng,
		ST_Y(geo_point::geometry) AS lat,
		good_lighting,
		police_presence,
		public_transport,
		insufficient_lighting,
		lack_of_policing,
		abandoned_houses,
		created_by,
		created_at,
		updated_at`

func (r *ZoneRepo) List(ctx context.Context, filter *domain.ZoneType) ([]domain.Zone, error) {
	const op = "postgres.Zone.List"

	query := `SELECT` + zoneColumns + ` FROM zones`
	args := []any{}
	if filter != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*filter))
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var zones []domain.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return zones, nil
}

func (r *ZoneRepo) Create(ctx context.Context, req domain.CreateZoneRequest, createdBy string) (domain.Zone, error) {
	const op = "postgres.Zone.Create"

	id := uuid.New()
	now := time.Now().UTC()

	const query = `
		INSERT INTO zones (
			id, slug, date, hour, description, type, reports, geo_point,
			good_lighting, police_presence, public_transport,
			insufficient_lighting, lack_of_policing, abandoned_houses,
			created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			ST_SetSRID(ST_MakePoint($8, $9), 4326),
			$10, $11, $12, $13, $14, $15, $16, $17, $17)
	`

	_, err := r.pool.Exec(ctx, query,
		id,
		req.Slug,
		req.Date,
		req.Hour,
		req.Description,
		string(req.Type),
		req.Reports,
		req.Coordinate.Longitude,
		req.Coordinate.Latitude,
		req.FeatureDetails.GoodLighting,
		req.FeatureDetails.PolicePresence,
		req.FeatureDetails.PublicTransport,
		req.FeatureDetails.InsufficientLighting,
		req.FeatureDetails.LackOfPolicing,
		req.FeatureDetails.AbandonedHouses,
		createdBy,
		now,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return domain.Zone{}, e.WrapError(ctx, op, err)
	}

	return domain.Zone{
		ID:             id.String(),
		Slug:           req.Slug,
		Date:           req.Date,
		Hour:           req.Hour,
		Description:    req.Description,
		Type:           req.Type,
		Reports:        req.Reports,
		Coordinate:     req.Coordinate,
		FeatureDetails: req.FeatureDetails,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (r *ZoneRepo) Get(ctx context.Context, id string) (domain.Zone, error) {
	const op = "postgres.Zone.Get"

	zoneID, err := uuid.Parse(id)
	if err != nil {
		return domain.Zone{}, e.Wrap(op, e.ErrNotFound)
	}

	query := `SELECT` + zoneColumns + ` FROM zones WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, zoneID)
	z, err := scanZone(row)
	if err != nil {
		return domain.Zone{}, e.WrapError(ctx, op, err)
	}
	return z, nil
}

func (r *ZoneRepo) Update(ctx context.Context, id string, req domain.UpdateZoneRequest) (domain.Zone, error) {
	const op = "postgres.Zone.Update"

	z, err := r.Get(ctx, id)
	if err != nil {
		return domain.Zone{}, err
	}

	if req.Description != nil {
		z.Description = *req.Description
	}
	if req.Type != nil {
		z.Type = *req.Type
	}
	if req.Date != nil {
		z.Date = *req.Date
	}
	if req.Hour != nil {
		z.Hour = *req.Hour
	}
	if req.Coordinate != nil {
		z.Coordinate = *req.Coordinate
	}
	z.UpdatedAt = time.Now().UTC()

	const query = `
		UPDATE zones
		SET slug = $2,
			date = $3,
			hour = $4,
			description = $5,
			type = $6,
			reports = $7,
			geo_point = ST_SetSRID(ST_MakePoint($8, $9), 4326),
			updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		z.ID,
		z.Slug,
		z.Date,
		z.Hour,
		z.Description,
		string(z.Type),
		z.Reports,
		z.Coordinate.Longitude,
		z.Coordinate.Latitude,
		z.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return domain.Zone{}, e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Zone{}, e.Wrap(op, e.ErrNotFound)
	}

	return z, nil
}

func (r *ZoneRepo) Delete(ctx context.Context, id string) error {
	const op = "postgres.Zone.Delete"

	zoneID, err := uuid.Parse(id)
	if err != nil {
		return e.Wrap(op, e.ErrNotFound)
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM zones WHERE id = $1`, zoneID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}

func scanZone(row pgx.Row) (domain.Zone, error) {
	var (
		z      domain.Zone
		id     uuid.UUID
		ztype  string
		lng    float64
		lat    float64
		fd     domain.FeatureDetails
		author string
	)
	err := row.Scan(
		&id,
		&z.Slug,
		&z.Date,
		&z.Hour,
		&z.Description,
		&ztype,
		&z.Reports,
		&lng,
		&lat,
		&fd.GoodLighting,
		&fd.PolicePresence,
		&fd.PublicTransport,
		&fd.InsufficientLighting,
		&fd.LackOfPolicing,
		&fd.AbandonedHouses,
		&author,
		&z.CreatedAt,
		&z.UpdatedAt,
	)
	if err != nil {
		return domain.Zone{}, err
	}

	z.ID = id.String()
	z.Type = domain.ZoneType(ztype)
	z.Coordinate = domain.Coordinate{Longitude: lng, Latitude: lat}
	z.FeatureDetails = fd
	z.CreatedBy = author
	return z, nil
}
