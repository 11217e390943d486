package firestore

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"library-loan-service/internal/models"
	"library-loan-service/internal/store"
)

// InsertUser zapisuje nowego czytelnika; identyfikator nadaje Firestore
func (s *Store) InsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	docRef := s.client.Collection(UsersCollection).NewDoc()

	record := *user
	record.ID = docRef.ID

	if _, err := docRef.Set(ctx, &record); err != nil {
		return nil, fmt.Errorf("błąd zapisywania czytelnika: %w", err)
	}
	return &record, nil
}

// GetUser pobiera czytelnika po ID
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	doc, err := s.client.Collection(UsersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("błąd pobierania czytelnika: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("błąd parsowania danych czytelnika: %w", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByEmail pobiera czytelnika po adresie email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := s.client.Collection(UsersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("błąd wyszukiwania czytelnika: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("błąd parsowania danych czytelnika: %w", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser nadpisuje istniejącego czytelnika
func (s *Store) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if _, err := s.GetUser(ctx, user.ID); err != nil {
		return nil, err
	}

	if _, err := s.client.Collection(UsersCollection).Doc(user.ID).Set(ctx, user); err != nil {
		return nil, fmt.Errorf("błąd aktualizacji czytelnika: %w", err)
	}

	record := *user
	return &record, nil
}

// DeleteUser usuwa czytelnika z kolekcji
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	if _, err := s.client.Collection(UsersCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("błąd usuwania czytelnika: %w", err)
	}
	return nil
}

// ListUsers pobiera wszystkich czytelników z kolekcji
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User

	iter := s.client.Collection(UsersCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("błąd iteracji po czytelnikach: %w", err)
		}

		var user models.User
		if err := doc.DataTo(&user); err != nil {
			return nil, fmt.Errorf("błąd parsowania czytelnika: %w", err)
		}
		user.ID = doc.Ref.ID
		users = append(users, &user)
	}

	return users, nil
}
