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

// InsertBook zapisuje nową książkę; identyfikator nadaje Firestore
func (s *Store) InsertBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	docRef := s.client.Collection(BooksCollection).NewDoc()

	record := *book
	record.ID = docRef.ID

	if _, err := docRef.Set(ctx, &record); err != nil {
		return nil, fmt.Errorf("błąd zapisywania książki: %w", err)
	}
	return &record, nil
}

// GetBook pobiera książkę po ID
func (s *Store) GetBook(ctx context.Context, id string) (*models.Book, error) {
	doc, err := s.client.Collection(BooksCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("błąd pobierania książki: %w", err)
	}

	var book models.Book
	if err := doc.DataTo(&book); err != nil {
		return nil, fmt.Errorf("błąd parsowania danych książki: %w", err)
	}
	book.ID = doc.Ref.ID
	return &book, nil
}

// GetBookByISBN pobiera książkę po numerze ISBN
func (s *Store) GetBookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	iter := s.client.Collection(BooksCollection).Where("isbn", "==", isbn).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("błąd wyszukiwania książki: %w", err)
	}

	var book models.Book
	if err := doc.DataTo(&book); err != nil {
		return nil, fmt.Errorf("błąd parsowania danych książki: %w", err)
	}
	book.ID = doc.Ref.ID
	return &book, nil
}

// UpdateBook nadpisuje istniejącą książkę
func (s *Store) UpdateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	if _, err := s.GetBook(ctx, book.ID); err != nil {
		return nil, err
	}

	if _, err := s.client.Collection(BooksCollection).Doc(book.ID).Set(ctx, book); err != nil {
		return nil, fmt.Errorf("błąd aktualizacji książki: %w", err)
	}

	record := *book
	return &record, nil
}

// DeleteBook usuwa książkę z kolekcji
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	if _, err := s.GetBook(ctx, id); err != nil {
		return err
	}

	if _, err := s.client.Collection(BooksCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("błąd usuwania książki: %w", err)
	}
	return nil
}

// ListBooks pobiera wszystkie książki z kolekcji
func (s *Store) ListBooks(ctx context.Context) ([]*models.Book, error) {
	var books []*models.Book

	iter := s.client.Collection(BooksCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("błąd iteracji po książkach: %w", err)
		}

		var book models.Book
		if err := doc.DataTo(&book); err != nil {
			return nil, fmt.Errorf("błąd parsowania książki: %w", err)
		}
		book.ID = doc.Ref.ID
		books = append(books, &book)
	}

	return books, nil
}
