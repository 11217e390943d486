package service

import (
	"context"
	"errors"
	"fmt"

	"library-loan-service/internal/models"
	"library-loan-service/internal/store"
)

// LoanService to serce systemu: reguły biznesowe wypożyczeń.
// Maszyna stanów pojedynczego wypożyczenia jest dwustanowa:
// otwarte (Finalized=false) -> zamknięte (Finalized=true).
// Stan zamknięty jest końcowy - żadna operacja go nie cofa.
type LoanService struct {
	loans store.LoanStore
	users store.UserStore
	books store.BookStore
}

// NewLoanService tworzy usługę wypożyczeń nad podanymi magazynami
func NewLoanService(loans store.LoanStore, users store.UserStore, books store.BookStore) *LoanService {
	return &LoanService{loans: loans, users: users, books: books}
}

// FindAll zwraca wszystkie wypożyczenia, łącznie z zamkniętymi
func (s *LoanService) FindAll(ctx context.Context) ([]*models.Loan, error) {
	return s.loans.ListLoans(ctx)
}

// FindByID pobiera wypożyczenie po ID
func (s *LoanService) FindByID(ctx context.Context, id string) (*models.Loan, error) {
	loan, err := s.loans.GetLoan(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindLoanNotFound, "Loan not found")
		}
		return nil, fmt.Errorf("błąd pobierania wypożyczenia: %w", err)
	}
	return loan, nil
}

// Save tworzy nowe, otwarte wypożyczenie.
//
// Kolejność sprawdzeń jest częścią kontraktu i nie może ulec zmianie:
// najpierw istnienie czytelnika, potem istnienie książki, potem
// dostępność egzemplarzy, na końcu spójność dat. Wywołujący polegają
// na tym, który błąd pojawi się pierwszy przy złożonym złym wejściu.
func (s *LoanService) Save(ctx context.Context, userID, bookID string, startDate, endDate models.Date) (*models.Loan, error) {
	if _, err := s.lookupUser(ctx, userID); err != nil {
		return nil, err
	}

	book, err := s.lookupBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if !book.IsAvailable() {
		return nil, newError(KindNoBookAvailable, "No book available")
	}

	if !startDate.Before(endDate) {
		return nil, newError(KindInconsistentDates, "Start date must be before end date")
	}

	loan := &models.Loan{
		UserID:    userID,
		BookID:    bookID,
		StartDate: startDate,
		EndDate:   endDate,
		Finalized: false,
	}
	return s.loans.InsertLoan(ctx, loan)
}

// Update nadpisuje czytelnika, książkę i daty istniejącego wypożyczenia.
// ID oraz flaga Finalized pozostają nietknięte. W przeciwieństwie do Save
// dostępność egzemplarzy NIE jest tu ponownie sprawdzana - ta asymetria
// odwzorowuje zachowanie referencyjne.
func (s *LoanService) Update(ctx context.Context, id, userID, bookID string, startDate, endDate models.Date) (*models.Loan, error) {
	loan, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.lookupUser(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.lookupBook(ctx, bookID); err != nil {
		return nil, err
	}

	if !startDate.Before(endDate) {
		return nil, newError(KindInconsistentDates, "Start date must be before end date")
	}

	loan.UserID = userID
	loan.BookID = bookID
	loan.StartDate = startDate
	loan.EndDate = endDate

	return s.loans.UpdateLoan(ctx, loan)
}

// Delete zamyka wypożyczenie: ustawia Finalized=true i zapisuje rekord.
// Rekord NIE jest fizycznie usuwany, a Quantity książki pozostaje bez zmian.
// Ponowne zamknięcie już zamkniętego wypożyczenia kończy się powodzeniem.
func (s *LoanService) Delete(ctx context.Context, id string) error {
	loan, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	loan.Finalized = true
	if _, err := s.loans.UpdateLoan(ctx, loan); err != nil {
		return fmt.Errorf("błąd zamykania wypożyczenia: %w", err)
	}
	return nil
}

func (s *LoanService) lookupUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("błąd pobierania czytelnika: %w", err)
	}
	return user, nil
}

func (s *LoanService) lookupBook(ctx context.Context, bookID string) (*models.Book, error) {
	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindBookNotFound, "Book not found")
		}
		return nil, fmt.Errorf("błąd pobierania książki: %w", err)
	}
	return book, nil
}
