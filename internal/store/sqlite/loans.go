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
	sqlInsertLoan = `
		INSERT INTO loans (id, user_id, book_id, start_date, end_date, finalized)
		VALUES (?, ?, ?, ?, ?, ?)`

	sqlGetLoan = `
		SELECT id, user_id, book_id, start_date, end_date, finalized
		FROM   loans
		WHERE  id = ?
		LIMIT  1`

	sqlUpdateLoan = `
		UPDATE loans
		SET    user_id = ?, book_id = ?, start_date = ?, end_date = ?, finalized = ?
		WHERE  id = ?`

	sqlDeleteLoan = `
		DELETE FROM loans WHERE id = ?`

	sqlListLoans = `
		SELECT id, user_id, book_id, start_date, end_date, finalized
		FROM   loans`
)

// InsertLoan zapisuje nowe wypożyczenie pod świeżo nadanym identyfikatorem.
// Daty kalendarzowe trzymane są jako tekst "RRRR-MM-DD".
func (s *Store) InsertLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	record := *loan
	record.ID = uuid.NewString()

	if _, err := s.db.ExecContext(ctx, sqlInsertLoan,
		record.ID, record.UserID, record.BookID,
		record.StartDate.String(), record.EndDate.String(), record.Finalized); err != nil {
		return nil, fmt.Errorf("błąd zapisywania wypożyczenia: %w", err)
	}
	return &record, nil
}

// GetLoan pobiera wypożyczenie po ID
func (s *Store) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	return scanLoan(s.db.QueryRowContext(ctx, sqlGetLoan, id))
}

// UpdateLoan nadpisuje istniejące wypożyczenie
func (s *Store) UpdateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	res, err := s.db.ExecContext(ctx, sqlUpdateLoan,
		loan.UserID, loan.BookID,
		loan.StartDate.String(), loan.EndDate.String(), loan.Finalized, loan.ID)
	if err != nil {
		return nil, fmt.Errorf("błąd aktualizacji wypożyczenia: %w", err)
	}
	if err := requireRowAffected(res); err != nil {
		return nil, err
	}

	record := *loan
	return &record, nil
}

// DeleteLoan usuwa wiersz wypożyczenia z bazy
func (s *Store) DeleteLoan(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteLoan, id)
	if err != nil {
		return fmt.Errorf("błąd usuwania wypożyczenia: %w", err)
	}
	return requireRowAffected(res)
}

// ListLoans zwraca wszystkie wypożyczenia, również zamknięte
func (s *Store) ListLoans(ctx context.Context) ([]*models.Loan, error) {
	rows, err := s.db.QueryContext(ctx, sqlListLoans)
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania wypożyczeń: %w", err)
	}
	defer rows.Close()

	var loans []*models.Loan
	for rows.Next() {
		loan, err := scanLoanColumns(rows.Scan)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

// scanLoan czyta pojedynczy wiersz wypożyczenia
func scanLoan(row *sql.Row) (*models.Loan, error) {
	loan, err := scanLoanColumns(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return loan, err
}

// scanLoanColumns mapuje kolumny wypożyczenia na model i parsuje daty
func scanLoanColumns(scan func(dest ...any) error) (*models.Loan, error) {
	loan := &models.Loan{}
	var startDate, endDate string

	if err := scan(&loan.ID, &loan.UserID, &loan.BookID, &startDate, &endDate, &loan.Finalized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("błąd odczytu wiersza wypożyczenia: %w", err)
	}

	var err error
	if loan.StartDate, err = models.ParseDate(startDate); err != nil {
		return nil, fmt.Errorf("błąd parsowania daty rozpoczęcia: %w", err)
	}
	if loan.EndDate, err = models.ParseDate(endDate); err != nil {
		return nil, fmt.Errorf("błąd parsowania daty zakończenia: %w", err)
	}
	return loan, nil
}
