// Package memory to magazyn rekordów trzymany w pamięci procesu.
// Służy jako podwójnik w testach oraz jako silnik "memory" do pracy
// bez bazy danych. Nie gwarantuje trwałości między uruchomieniami.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"library-loan-service/internal/models"
	"library-loan-service/internal/store"
)

// Store przechowuje rekordy w mapach chronionych wspólnym mutexem.
// Każda operacja działa na kopiach, żeby wywołujący nie modyfikował
// stanu magazynu przez współdzielony wskaźnik.
type Store struct {
	mu    sync.RWMutex
	books map[string]models.Book
	users map[string]models.User
	loans map[string]models.Loan
}

// New tworzy pusty magazyn w pamięci
func New() *Store {
	return &Store{
		books: make(map[string]models.Book),
		users: make(map[string]models.User),
		loans: make(map[string]models.Loan),
	}
}

var _ store.Store = (*Store)(nil)

// InsertBook zapisuje nową książkę pod świeżo nadanym ID
func (s *Store) InsertBook(_ context.Context, book *models.Book) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *book
	record.ID = uuid.NewString()
	s.books[record.ID] = record

	out := record
	return &out, nil
}

// GetBook pobiera książkę po ID
func (s *Store) GetBook(_ context.Context, id string) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.books[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := record
	return &out, nil
}

// GetBookByISBN pobiera książkę po numerze ISBN
func (s *Store) GetBookByISBN(_ context.Context, isbn string) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.books {
		if record.ISBN == isbn {
			out := record
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

// UpdateBook nadpisuje istniejącą książkę
func (s *Store) UpdateBook(_ context.Context, book *models.Book) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.ID]; !ok {
		return nil, store.ErrNotFound
	}
	s.books[book.ID] = *book

	out := *book
	return &out, nil
}

// DeleteBook usuwa książkę z magazynu
func (s *Store) DeleteBook(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.books, id)
	return nil
}

// ListBooks zwraca wszystkie książki
func (s *Store) ListBooks(_ context.Context) ([]*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*models.Book, 0, len(s.books))
	for _, record := range s.books {
		out := record
		books = append(books, &out)
	}
	return books, nil
}

// InsertUser zapisuje nowego czytelnika pod świeżo nadanym ID
func (s *Store) InsertUser(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *user
	record.ID = uuid.NewString()
	s.users[record.ID] = record

	out := record
	return &out, nil
}

// GetUser pobiera czytelnika po ID
func (s *Store) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := record
	return &out, nil
}

// GetUserByEmail pobiera czytelnika po adresie email
func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.users {
		if record.Email == email {
			out := record
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

// UpdateUser nadpisuje istniejącego czytelnika
func (s *Store) UpdateUser(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return nil, store.ErrNotFound
	}
	s.users[user.ID] = *user

	out := *user
	return &out, nil
}

// DeleteUser usuwa czytelnika z magazynu
func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// ListUsers zwraca wszystkich czytelników
func (s *Store) ListUsers(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for _, record := range s.users {
		out := record
		users = append(users, &out)
	}
	return users, nil
}

// InsertLoan zapisuje nowe wypożyczenie pod świeżo nadanym ID
func (s *Store) InsertLoan(_ context.Context, loan *models.Loan) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *loan
	record.ID = uuid.NewString()
	s.loans[record.ID] = record

	out := record
	return &out, nil
}

// GetLoan pobiera wypożyczenie po ID
func (s *Store) GetLoan(_ context.Context, id string) (*models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.loans[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := record
	return &out, nil
}

// UpdateLoan nadpisuje istniejące wypożyczenie
func (s *Store) UpdateLoan(_ context.Context, loan *models.Loan) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loans[loan.ID]; !ok {
		return nil, store.ErrNotFound
	}
	s.loans[loan.ID] = *loan

	out := *loan
	return &out, nil
}

// DeleteLoan usuwa wypożyczenie z magazynu
func (s *Store) DeleteLoan(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loans[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.loans, id)
	return nil
}

// ListLoans zwraca wszystkie wypożyczenia, również zamknięte
func (s *Store) ListLoans(_ context.Context) ([]*models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loans := make([]*models.Loan, 0, len(s.loans))
	for _, record := range s.loans {
		out := record
		loans = append(loans, &out)
	}
	return loans, nil
}
