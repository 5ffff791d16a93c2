package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antarin/antarin/internal/shared"
)

const userColumns = "id, username, password_hash, role, full_name, email, phone, status, created_at, updated_at"

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetByID returns a user by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	var user User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.FullName, &user.Email, &user.Phone, &user.Status,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns users ordered by creation time descending, optionally
// filtered by role.
func (r *Repository) List(ctx context.Context, roleFilter string) ([]User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users`, userColumns)
	args := []any{}
	if roleFilter != "" {
		query += ` WHERE role = $1`
		args = append(args, roleFilter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.ID, &user.Username, &user.PasswordHash, &user.Role,
			&user.FullName, &user.Email, &user.Phone, &user.Status,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies the supplied fields in a single UPDATE statement,
// refreshing updated_at. Returns shared.ErrNotFound when no row matches.
func (r *Repository) Update(ctx context.Context, id int64, changes Changes) error {
	sets := []string{}
	args := []any{}

	appendSet := func(column, value string) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if changes.FullName != "" {
		appendSet("full_name", changes.FullName)
	}
	if changes.Email != "" {
		appendSet("email", changes.Email)
	}
	if changes.Phone != "" {
		appendSet("phone", changes.Phone)
	}
	if changes.PasswordHash != "" {
		appendSet("password_hash", changes.PasswordHash)
	}
	if len(sets) == 0 {
		return shared.ErrNoChanges
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ RepositoryPort = (*Repository)(nil)
