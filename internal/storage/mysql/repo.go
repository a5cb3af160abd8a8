package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"hotel_pricing/internal/domain"
)

func valTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return p.Format("2006-01-02")
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel, role domain.Role, position int) error {
	_, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		string(role),
		position,
		h.Name,
		h.Address,
		string(h.Category),
		h.StarRating,
		h.AverageDailyRate,
		h.OccupancyRate,
		h.ReviewScore,
		h.DistanceMeters,
		valTime(h.LastUpdated),
	)
	return err
}

// DeleteExcept drops rows left behind by earlier catalogs. A single DELETE
// keeps readers from seeing a half-pruned table.
func (r *Repo) DeleteExcept(ctx context.Context, keep []string) (int, error) {
	if len(keep) == 0 {
		return 0, errors.New("delete except: empty keep list would clear the catalog")
	}
	args := make([]any, len(keep))
	for i, id := range keep {
		args[i] = id
	}
	q := deleteExceptSQL + "(" + strings.TrimSuffix(strings.Repeat("?,", len(keep)), ",") + ")"
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (r *Repo) GetTarget(ctx context.Context) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getTargetSQL))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) ListCompetitors(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listCompetitorsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHotel(s scanner) (domain.Hotel, error) {
	var h domain.Hotel
	var category string
	var lastUpdated sql.NullTime
	if err := s.Scan(
		&h.ID,
		&h.Name,
		&h.Address,
		&category,
		&h.StarRating,
		&h.AverageDailyRate,
		&h.OccupancyRate,
		&h.ReviewScore,
		&h.DistanceMeters,
		&lastUpdated, // needs parseTime=true in the DSN
	); err != nil {
		return domain.Hotel{}, err
	}
	h.Category = domain.Category(category)
	if lastUpdated.Valid {
		t := lastUpdated.Time
		h.LastUpdated = &t
	}
	return h, nil
}
