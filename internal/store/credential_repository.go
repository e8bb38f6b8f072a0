package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoskresensky/sealnote/internal/logger"
)

type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs the SQLite-backed implementation of
// [CredentialRepository].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (c *credentialRepository) Get(ctx context.Context) (string, error) {
	query, args, err := buildGetCredentialQuery()
	if err != nil {
		return "", fmt.Errorf("build get credential query: %w", err)
	}

	var apiKey string
	row := c.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&apiKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrCredentialNotFound
		}
		c.logger.Err(err).
			Str("func", "credentialRepository.Get").
			Msg("failed to scan credential row")
		return "", fmt.Errorf("failed to read credential: %w", err)
	}

	return apiKey, nil
}

func (c *credentialRepository) Set(ctx context.Context, value string) error {
	query, args, err := buildSetCredentialQuery(value)
	if err != nil {
		return fmt.Errorf("build set credential query: %w", err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).
			Str("func", "credentialRepository.Set").
			Msg("failed to execute credential upsert")
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

func (c *credentialRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearCredentialQuery()
	if err != nil {
		return fmt.Errorf("build clear credential query: %w", err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).
			Str("func", "credentialRepository.Clear").
			Msg("failed to execute credential delete")
		return fmt.Errorf("failed to clear credential: %w", err)
	}

	return nil
}
