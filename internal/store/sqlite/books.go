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
	sqlInsertBook = `
		INSERT INTO loan_books (id, isbn, title, author, quantity)
		VALUES (?, ?, ?, ?, ?)`

	sqlGetBook = `
		SELECT id, isbn, title, author, quantity
		FROM   loan_books
		WHERE  id = ?
		LIMIT  1`

	sqlGetBookByISBN = `
		SELECT id, isbn, title, author, quantity
		FROM   loan_books
		WHERE  isbn = ?
		LIMIT  1`

	sqlUpdateBook = `
		UPDATE loan_books
		SET    isbn = ?, title = ?, author = ?, quantity = ?
		WHERE  id = ?`

	sqlDeleteBook = `
		DELETE FROM loan_books WHERE id = ?`

	sqlListBooks = `
		SELECT id, isbn, title, author, quantity
		FROM   loan_books`
)

// InsertBook zapisuje nową książkę pod świeżo nadanym identyfikatorem
func (s *Store) InsertBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	record := *book
	record.ID = uuid.NewString()

	if _, err := s.db.ExecContext(ctx, sqlInsertBook,
		record.ID, record.ISBN, record.Title, record.Author, record.Quantity); err != nil {
		return nil, fmt.Errorf("błąd zapisywania książki: %w", err)
	}
	return &record, nil
}

// GetBook pobiera książkę po ID
func (s *Store) GetBook(ctx context.Context, id string) (*models.Book, error) {
	return scanBook(s.db.QueryRowContext(ctx, sqlGetBook, id))
}

// GetBookByISBN pobiera książkę po numerze ISBN
func (s *Store) GetBookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	return scanBook(s.db.QueryRowContext(ctx, sqlGetBookByISBN, isbn))
}

// UpdateBook nadpisuje istniejącą książkę
func (s *Store) UpdateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	res, err := s.db.ExecContext(ctx, sqlUpdateBook,
		book.ISBN, book.Title, book.Author, book.Quantity, book.ID)
	if err != nil {
		return nil, fmt.Errorf("błąd aktualizacji książki: %w", err)
	}
	if err := requireRowAffected(res); err != nil {
		return nil, err
	}

	record := *book
	return &record, nil
}

// DeleteBook usuwa książkę z bazy
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteBook, id)
	if err != nil {
		return fmt.Errorf("błąd usuwania książki: %w", err)
	}
	return requireRowAffected(res)
}

// ListBooks zwraca wszystkie książki
func (s *Store) ListBooks(ctx context.Context) ([]*models.Book, error) {
	rows, err := s.db.QueryContext(ctx, sqlListBooks)
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania książek: %w", err)
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		book := &models.Book{}
		if err := rows.Scan(&book.ID, &book.ISBN, &book.Title, &book.Author, &book.Quantity); err != nil {
			return nil, fmt.Errorf("błąd odczytu wiersza książki: %w", err)
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// scanBook to jedyne miejsce mapujące kolumny książki na model
func scanBook(row *sql.Row) (*models.Book, error) {
	book := &models.Book{}
	err := row.Scan(&book.ID, &book.ISBN, &book.Title, &book.Author, &book.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu wiersza książki: %w", err)
	}
	return book, nil
}

// requireRowAffected tłumaczy brak trafionego wiersza na ErrNotFound
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
