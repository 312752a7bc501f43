package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password, creation_date, active`

// UserRepository handles persistence for users.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(s scanner) (*model.User, error) {
	var u model.User
	var creationDate *time.Time
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &creationDate, &u.Active); err != nil {
		return nil, err
	}
	u.CreationDate = dateVal(creationDate)
	return &u, nil
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// FindAll returns all users ordered by id.
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
}

// FindByID returns a single user or ErrNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByEmail returns the user with the given email or ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// FindByActiveTrue returns all active users.
func (r *UserRepository) FindByActiveTrue(ctx context.Context) ([]model.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users WHERE active ORDER BY id`)
}

// Save inserts the user when its id is zero, assigning the generated
// identity, and updates the existing row otherwise.
func (r *UserRepository) Save(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID == 0 {
		err := r.db.QueryRow(ctx,
			`INSERT INTO users (name, email, password, creation_date, active)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			u.Name, u.Email, u.Password, dateArg(u.CreationDate), u.Active,
		).Scan(&u.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("insert user: %w", ErrDuplicate)
			}
			return nil, fmt.Errorf("insert user: %w", err)
		}
		return u, nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, password = $3, creation_date = $4, active = $5
		 WHERE id = $6`,
		u.Name, u.Email, u.Password, dateArg(u.CreationDate), u.Active, u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update user: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// DeleteByID removes a user.
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ExistsByID reports whether a user with the given id exists.
func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}
