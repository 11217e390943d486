package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"library-loan-service/internal/models"
	"library-loan-service/internal/store"
)

// UserService zarządza ewidencją czytelników: walidacja pól
// i unikalność adresu email.
type UserService struct {
	users store.UserStore
}

// NewUserService tworzy usługę ewidencji nad podanym magazynem
func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// FindAll zwraca wszystkich zarejestrowanych czytelników
func (s *UserService) FindAll(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}

// FindByID pobiera czytelnika po ID
func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("błąd pobierania czytelnika: %w", err)
	}
	return user, nil
}

// Save waliduje dane i rejestruje nowego czytelnika.
// Email musi być unikalny wśród istniejących czytelników;
// poza niepustością format adresu nie jest weryfikowany.
func (s *UserService) Save(ctx context.Context, name, email string) (*models.User, error) {
	if err := validateUserData(name, email); err != nil {
		return nil, err
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("błąd wyszukiwania po emailu: %w", err)
	}
	if existing != nil {
		return nil, newError(KindUserAlreadyExists, "User already exists with same email")
	}

	user := &models.User{
		Name:  name,
		Email: email,
	}
	return s.users.InsertUser(ctx, user)
}

// Update nadpisuje imię i email istniejącego czytelnika.
// Konflikt emaila zgłaszany jest tylko gdy adres należy do INNEGO czytelnika.
func (s *UserService) Update(ctx context.Context, id, name, email string) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateUserData(name, email); err != nil {
		return nil, err
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("błąd wyszukiwania po emailu: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, newError(KindUserAlreadyExists, "User already exists with the same email")
	}

	user.Name = name
	user.Email = email

	return s.users.UpdateUser(ctx, user)
}

// Delete trwale usuwa czytelnika z ewidencji
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.DeleteUser(ctx, id)
}

// validateUserData sprawdza pola czytelnika: imię i email
// nie mogą być puste ani składać się z samych białych znaków.
func validateUserData(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return newError(KindInvalidData, "Name cannot be null, blank or empty")
	}
	if strings.TrimSpace(email) == "" {
		return newError(KindInvalidData, "Email cannot be null, blank or empty")
	}
	return nil
}
