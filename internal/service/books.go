package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"library-loan-service/internal/models"
	"library-loan-service/internal/store"
)

// BookService zarządza katalogiem książek: walidacja pól,
// unikalność ISBN i pełny cykl życia rekordu.
type BookService struct {
	books store.BookStore
}

// NewBookService tworzy usługę katalogu nad podanym magazynem
func NewBookService(books store.BookStore) *BookService {
	return &BookService{books: books}
}

// FindAll zwraca wszystkie książki z katalogu
func (s *BookService) FindAll(ctx context.Context) ([]*models.Book, error) {
	return s.books.ListBooks(ctx)
}

// FindByID pobiera książkę po ID
func (s *BookService) FindByID(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.books.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindBookNotFound, "Book not found.")
		}
		return nil, fmt.Errorf("błąd pobierania książki: %w", err)
	}
	return book, nil
}

// Save waliduje dane i dodaje nową książkę do katalogu.
// ISBN musi być unikalny wśród istniejących książek.
func (s *BookService) Save(ctx context.Context, isbn, title, author string, quantity int) (*models.Book, error) {
	if err := validateBookData(isbn, title, author, quantity); err != nil {
		return nil, err
	}

	existing, err := s.books.GetBookByISBN(ctx, isbn)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("błąd wyszukiwania po ISBN: %w", err)
	}
	if existing != nil {
		return nil, newError(KindBookAlreadyExists, "Book already exists")
	}

	book := &models.Book{
		ISBN:     isbn,
		Title:    title,
		Author:   author,
		Quantity: quantity,
	}
	return s.books.InsertBook(ctx, book)
}

// Update nadpisuje wszystkie modyfikowalne pola istniejącej książki.
// Konflikt ISBN zgłaszany jest tylko gdy numer należy do INNEJ książki -
// aktualizacja z własnym dotychczasowym ISBN jest dozwolona.
func (s *BookService) Update(ctx context.Context, id, isbn, title, author string, quantity int) (*models.Book, error) {
	book, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateBookData(isbn, title, author, quantity); err != nil {
		return nil, err
	}

	existing, err := s.books.GetBookByISBN(ctx, isbn)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("błąd wyszukiwania po ISBN: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, newError(KindBookAlreadyExists, "Book already exists with the same ISBN")
	}

	book.ISBN = isbn
	book.Title = title
	book.Author = author
	book.Quantity = quantity

	return s.books.UpdateBook(ctx, book)
}

// Delete trwale usuwa książkę z katalogu
func (s *BookService) Delete(ctx context.Context, id string) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return s.books.DeleteBook(ctx, id)
}

// validateBookData sprawdza pola książki: ISBN, tytuł i autor nie mogą
// być puste ani składać się z samych białych znaków, a liczba egzemplarzy
// musi być dodatnia.
func validateBookData(isbn, title, author string, quantity int) error {
	if strings.TrimSpace(isbn) == "" {
		return newError(KindInvalidData, "ISBN cannot be null, blank or empty")
	}
	if strings.TrimSpace(title) == "" {
		return newError(KindInvalidData, "Title cannot be null, blank or empty")
	}
	if strings.TrimSpace(author) == "" {
		return newError(KindInvalidData, "Author cannot be null, blank or empty")
	}
	if quantity <= 0 {
		return newError(KindInvalidData, "Quantity must be greater than 0")
	}
	return nil
}
