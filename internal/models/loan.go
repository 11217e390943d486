package models

// Loan reprezentuje wypożyczenie książki przez czytelnika.
// Przechowuje identyfikatory rekordów, nie całe rekordy - pełne dane
// rozwiązywane są na żądanie przez warstwę usług. Silniki magazynu
// mapują daty kalendarzowe na własne reprezentacje, stąd brak tagów
// firestore na tym typie.
type Loan struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	BookID    string `json:"book_id"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Finalized bool   `json:"finalized"`
}

// IsOpen sprawdza czy wypożyczenie jest nadal otwarte
func (l *Loan) IsOpen() bool {
	return !l.Finalized
}
