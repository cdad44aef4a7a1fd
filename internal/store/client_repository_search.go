package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/reco-chat/internal/logger"
)

type recentSearchRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecentSearchRepository returns the SQLite-backed [RecentSearchRepository].
func NewRecentSearchRepository(db *DB, logger *logger.Logger) RecentSearchRepository {
	return &recentSearchRepository{
		DB:     db,
		logger: logger,
	}
}

// AddSearch upserts query and trims the table in one transaction.
func (r *recentSearchRepository) AddSearch(ctx context.Context, query string, at time.Time, keep int) error {
	log := r.logger

	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	upsert, upsertArgs, err := buildUpsertSearchQuery(query, at.UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	trim, trimArgs, err := buildTrimSearchesQuery(keep)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "recentSearchRepository.AddSearch").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, upsert, upsertArgs...); err != nil {
		log.Err(err).Str("func", "recentSearchRepository.AddSearch").Msg("failed to upsert recent search")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, trim, trimArgs...); err != nil {
		log.Err(err).Str("func", "recentSearchRepository.AddSearch").Msg("failed to trim recent searches")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *recentSearchRepository) ListSearches(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	query, args, err := buildSelectSearchesQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "recentSearchRepository.ListSearches").
			Msg("failed to query recent searches")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	searches := make([]string, 0, limit)
	for rows.Next() {
		var q string
		if err = rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		searches = append(searches, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return searches, nil
}
