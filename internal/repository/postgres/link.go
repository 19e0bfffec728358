package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"
	"linkvault/internal/domain/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const linkColumns = "id, user_id, folder_id, title, url, created_at, updated_at"

// PostgresLinkRepository implements LinkRepository
type PostgresLinkRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(config *RepositoryConfig) repositories.LinkRepository {
	return &PostgresLinkRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new link
func (r *PostgresLinkRepository) Create(ctx context.Context, link *models.Link) error {
	if !isValidID(link.FolderID) {
		return fmt.Errorf("folder %s: %w", link.FolderID, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, folder_id, title, url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, r.tables.Links)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		link.UserID,
		link.FolderID,
		link.Title,
		link.URL,
	).Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("folder %s: %w", link.FolderID, domain.ErrNotFound)
		}
		return fmt.Errorf("create link: %w", err)
	}

	return nil
}

// GetByID retrieves a link owned by userID
func (r *PostgresLinkRepository) GetByID(ctx context.Context, id, userID string) (*models.Link, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("link %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, linkColumns, r.tables.Links)

	executor := GetExecutor(ctx, r.pool)
	link, err := scanLink(executor.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("link %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get link: %w", err)
	}

	return link, nil
}

// List retrieves links matching the filter, newest first
func (r *PostgresLinkRepository) List(ctx context.Context, filter models.LinkFilter) ([]models.Link, error) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{filter.UserID}

	if filter.FolderID != "" {
		if !isValidID(filter.FolderID) {
			return []models.Link{}, nil
		}
		args = append(args, filter.FolderID)
		conditions = append(conditions, fmt.Sprintf("folder_id = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY created_at DESC
	`, linkColumns, r.tables.Links, strings.Join(conditions, " AND "))

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	links := []models.Link{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, *link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate links: %w", err)
	}

	return links, nil
}

// Update updates a link's title and url
func (r *PostgresLinkRepository) Update(ctx context.Context, link *models.Link) error {
	if !isValidID(link.ID) {
		return fmt.Errorf("link %s: %w", link.ID, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, url = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING updated_at
	`, r.tables.Links)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		link.Title,
		link.URL,
		link.ID,
		link.UserID,
	).Scan(&link.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("link %s: %w", link.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update link: %w", err)
	}

	return nil
}

// Delete deletes a link and returns the deleted record
func (r *PostgresLinkRepository) Delete(ctx context.Context, id, userID string) (*models.Link, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("link %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, r.tables.Links, linkColumns)

	executor := GetExecutor(ctx, r.pool)
	link, err := scanLink(executor.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("link %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("delete link: %w", err)
	}

	return link, nil
}

// DeleteByFolder deletes all links of a user in one folder
func (r *PostgresLinkRepository) DeleteByFolder(ctx context.Context, folderID, userID string) (int64, error) {
	if !isValidID(folderID) {
		return 0, nil
	}

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE folder_id = $1 AND user_id = $2
	`, r.tables.Links)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, folderID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete folder links: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanLink(row pgx.Row) (*models.Link, error) {
	var link models.Link
	err := row.Scan(
		&link.ID,
		&link.UserID,
		&link.FolderID,
		&link.Title,
		&link.URL,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}
