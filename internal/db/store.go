// exposes a Store interface over the holidays table
package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/model"
)

type Store interface {
	// ListHolidays returns holidays in insertion order, which is display order.
	ListHolidays(ctx context.Context) ([]model.HolidayRecord, error)
	// ReplaceHolidays swaps the whole table for recs in one transaction.
	ReplaceHolidays(ctx context.Context, recs []model.HolidayRecord) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) ListHolidays(ctx context.Context) ([]model.HolidayRecord, error) {
	var out []model.HolidayRecord
	const q = `
	SELECT id, name, start_date, date_range, type
	  FROM holidays
	 ORDER BY position, id;`
	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		log.Error().Err(err).Msg("ListHolidays failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) ReplaceHolidays(ctx context.Context, recs []model.HolidayRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM holidays;`); err != nil {
		log.Error().Err(err).Msg("ReplaceHolidays clear failed")
		return err
	}

	const q = `
	INSERT INTO holidays (position, name, start_date, date_range, type)
	VALUES ($1, $2, $3, $4, $5);`
	for i, rec := range recs {
		if _, err := tx.ExecContext(ctx, q, i, rec.Name, rec.StartDate, rec.DateRange, rec.Type); err != nil {
			log.Error().Err(err).Str("holiday", rec.Name).Msg("ReplaceHolidays insert failed")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	log.Info().Int("count", len(recs)).Msg("holidays replaced")
	return nil
}
