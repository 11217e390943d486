package firestore

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"library-loan-service/internal/models"
	"library-loan-service/internal/store"
)

// loanDoc to reprezentacja wypożyczenia w dokumencie Firestore.
// Daty kalendarzowe trzymane są jako znaczniki czasu (północ UTC),
// bo Firestore nie ma typu daty bez godziny.
type loanDoc struct {
	ID        string    `firestore:"id"`
	UserID    string    `firestore:"user_id"`
	BookID    string    `firestore:"book_id"`
	StartDate time.Time `firestore:"start_date"`
	EndDate   time.Time `firestore:"end_date"`
	Finalized bool      `firestore:"finalized"`
}

func toLoanDoc(loan *models.Loan) *loanDoc {
	return &loanDoc{
		ID:        loan.ID,
		UserID:    loan.UserID,
		BookID:    loan.BookID,
		StartDate: loan.StartDate.Time(),
		EndDate:   loan.EndDate.Time(),
		Finalized: loan.Finalized,
	}
}

func (d *loanDoc) toModel() *models.Loan {
	return &models.Loan{
		ID:        d.ID,
		UserID:    d.UserID,
		BookID:    d.BookID,
		StartDate: models.DateOf(d.StartDate),
		EndDate:   models.DateOf(d.EndDate),
		Finalized: d.Finalized,
	}
}

// InsertLoan zapisuje nowe wypożyczenie; identyfikator nadaje Firestore
func (s *Store) InsertLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	docRef := s.client.Collection(LoansCollection).NewDoc()

	record := toLoanDoc(loan)
	record.ID = docRef.ID

	if _, err := docRef.Set(ctx, record); err != nil {
		return nil, fmt.Errorf("błąd zapisywania wypożyczenia: %w", err)
	}
	return record.toModel(), nil
}

// GetLoan pobiera wypożyczenie po ID
func (s *Store) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	doc, err := s.client.Collection(LoansCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("błąd pobierania wypożyczenia: %w", err)
	}

	var record loanDoc
	if err := doc.DataTo(&record); err != nil {
		return nil, fmt.Errorf("błąd parsowania danych wypożyczenia: %w", err)
	}
	record.ID = doc.Ref.ID
	return record.toModel(), nil
}

// UpdateLoan nadpisuje istniejące wypożyczenie
func (s *Store) UpdateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	if _, err := s.GetLoan(ctx, loan.ID); err != nil {
		return nil, err
	}

	record := toLoanDoc(loan)
	if _, err := s.client.Collection(LoansCollection).Doc(loan.ID).Set(ctx, record); err != nil {
		return nil, fmt.Errorf("błąd aktualizacji wypożyczenia: %w", err)
	}
	return record.toModel(), nil
}

// DeleteLoan usuwa dokument wypożyczenia z kolekcji
func (s *Store) DeleteLoan(ctx context.Context, id string) error {
	if _, err := s.GetLoan(ctx, id); err != nil {
		return err
	}

	if _, err := s.client.Collection(LoansCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("błąd usuwania wypożyczenia: %w", err)
	}
	return nil
}

// ListLoans pobiera wszystkie wypożyczenia z kolekcji
func (s *Store) ListLoans(ctx context.Context) ([]*models.Loan, error) {
	var loans []*models.Loan

	iter := s.client.Collection(LoansCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("błąd iteracji po wypożyczeniach: %w", err)
		}

		var record loanDoc
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("błąd parsowania wypożyczenia: %w", err)
		}
		record.ID = doc.Ref.ID
		loans = append(loans, record.toModel())
	}

	return loans, nil
}
