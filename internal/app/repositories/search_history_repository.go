package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/rbvitales/yearbook-api/internal/pkg/logger"
)

// SearchHistoryRepository handles the append-only search history table.
// Rows are only ever inserted and read, never updated.
type SearchHistoryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSearchHistoryRepository creates a new SearchHistoryRepository
func NewSearchHistoryRepository(db *pgxpool.Pool) *SearchHistoryRepository {
	return &SearchHistoryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create appends one search history row
func (r *SearchHistoryRepository) Create(ctx context.Context, history *models.SearchHistory) error {
	sql, args, err := r.sb.Insert("search_history").
		Columns("account_id", "search_query", "search_type").
		Values(history.AccountID, history.SearchQuery, history.SearchType).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create search history SQL")
		return fmt.Errorf("failed to build create search history query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&history.ID, &history.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", history.AccountID).Msg("Error executing create search history query")
		return fmt.Errorf("error creating search history: %w", err)
	}

	return nil
}

// Recent returns the most recent searches for an account, newest first.
// Returns an empty slice when the account has no history.
func (r *SearchHistoryRepository) Recent(ctx context.Context, accountID int64, limit int) ([]models.SearchHistory, error) {
	sql, args, err := r.sb.Select("id", "account_id", "search_query", "search_type", "created_at").
		From("search_history").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent searches query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent searches: %w", err)
	}
	defer rows.Close()

	history := make([]models.SearchHistory, 0, limit)
	for rows.Next() {
		var entry models.SearchHistory
		if err := rows.Scan(&entry.ID, &entry.AccountID, &entry.SearchQuery, &entry.SearchType, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search history row: %w", err)
		}
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search history rows: %w", err)
	}

	return history, nil
}

// CountAll returns the total number of recorded searches
func (r *SearchHistoryRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM search_history`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting search history: %w", err)
	}
	return count, nil
}
