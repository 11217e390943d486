// Package store definiuje kontrakt trwałego magazynu rekordów.
// Warstwa usług zna wyłącznie te interfejsy - konkretny silnik
// (Firestore, SQLite, pamięć) wybierany jest przy starcie aplikacji.
package store

import (
	"context"
	"errors"

	"library-loan-service/internal/models"
)

// ErrNotFound zwracany jest gdy rekord o podanym kluczu nie istnieje
var ErrNotFound = errors.New("store: rekord nie istnieje")

// BookStore obsługuje trwały zapis książek
type BookStore interface {
	// InsertBook zapisuje nową książkę i nadaje jej identyfikator
	InsertBook(ctx context.Context, book *models.Book) (*models.Book, error)
	// GetBook pobiera książkę po ID; ErrNotFound gdy brak
	GetBook(ctx context.Context, id string) (*models.Book, error)
	// GetBookByISBN pobiera książkę po numerze ISBN; ErrNotFound gdy brak
	GetBookByISBN(ctx context.Context, isbn string) (*models.Book, error)
	// UpdateBook nadpisuje istniejącą książkę
	UpdateBook(ctx context.Context, book *models.Book) (*models.Book, error)
	// DeleteBook trwale usuwa książkę
	DeleteBook(ctx context.Context, id string) error
	// ListBooks zwraca wszystkie książki, bez gwarancji kolejności
	ListBooks(ctx context.Context) ([]*models.Book, error)
}

// UserStore obsługuje trwały zapis czytelników
type UserStore interface {
	InsertUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	// GetUserByEmail pobiera czytelnika po adresie email; ErrNotFound gdy brak
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// LoanStore obsługuje trwały zapis wypożyczeń.
// Wypożyczenia nie mają pola unikalnego poza ID. Zamknięcie wypożyczenia
// to UpdateLoan z ustawioną flagą Finalized - DeleteLoan istnieje jako część
// generycznego kontraktu CRUD, ale warstwa usług z niego nie korzysta.
type LoanStore interface {
	InsertLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error)
	GetLoan(ctx context.Context, id string) (*models.Loan, error)
	UpdateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error)
	DeleteLoan(ctx context.Context, id string) error
	ListLoans(ctx context.Context) ([]*models.Loan, error)
}

// Store łączy wszystkie trzy magazyny w jeden kontrakt silnika
type Store interface {
	BookStore
	UserStore
	LoanStore
}
