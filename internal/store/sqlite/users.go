package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-loan-service/internal/models"
	"library-loan-service/internal/store"
)

const (
	sqlInsertUser = `
		INSERT INTO loan_users (id, name, email)
		VALUES (?, ?, ?)`

	sqlGetUser = `
		SELECT id, name, email
		FROM   loan_users
		WHERE  id = ?
		LIMIT  1`

	sqlGetUserByEmail = `
		SELECT id, name, email
		FROM   loan_users
		WHERE  email = ?
		LIMIT  1`

	sqlUpdateUser = `
		UPDATE loan_users
		SET    name = ?, email = ?
		WHERE  id = ?`

	sqlDeleteUser = `
		DELETE FROM loan_users WHERE id = ?`

	sqlListUsers = `
		SELECT id, name, email
		FROM   loan_users`
)

// InsertUser zapisuje nowego czytelnika pod świeżo nadanym identyfikatorem
func (s *Store) InsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	record := *user
	record.ID = uuid.NewString()

	if _, err := s.db.ExecContext(ctx, sqlInsertUser,
		record.ID, record.Name, record.Email); err != nil {
		return nil, fmt.Errorf("błąd zapisywania czytelnika: %w", err)
	}
	return &record, nil
}

// GetUser pobiera czytelnika po ID
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, sqlGetUser, id))
}

// GetUserByEmail pobiera czytelnika po adresie email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(s.db.QueryRowContext(ctx, sqlGetUserByEmail, email))
}

// UpdateUser nadpisuje istniejącego czytelnika
func (s *Store) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := s.db.ExecContext(ctx, sqlUpdateUser, user.Name, user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("błąd aktualizacji czytelnika: %w", err)
	}
	if err := requireRowAffected(res); err != nil {
		return nil, err
	}

	record := *user
	return &record, nil
}

// DeleteUser usuwa czytelnika z bazy
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteUser, id)
	if err != nil {
		return fmt.Errorf("błąd usuwania czytelnika: %w", err)
	}
	return requireRowAffected(res)
}

// ListUsers zwraca wszystkich czytelników
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, sqlListUsers)
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania czytelników: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("błąd odczytu wiersza czytelnika: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// scanUser to jedyne miejsce mapujące kolumny czytelnika na model
func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu wiersza czytelnika: %w", err)
	}
	return user, nil
}
