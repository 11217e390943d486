package service

import "errors"

// Kind klasyfikuje błąd biznesowy. Warstwa prezentacji mapuje
// poszczególne rodzaje na kody statusu HTTP - tutaj nie ma żadnej
// wiedzy o transporcie.
type Kind string

const (
	KindInvalidData       Kind = "invalid_data"
	KindBookAlreadyExists Kind = "book_already_exists"
	KindUserAlreadyExists Kind = "user_already_exists"
	KindBookNotFound      Kind = "book_not_found"
	KindUserNotFound      Kind = "user_not_found"
	KindLoanNotFound      Kind = "loan_not_found"
	KindNoBookAvailable   Kind = "no_book_available"
	KindInconsistentDates Kind = "inconsistent_dates"
)

// Error to błąd biznesowy z przypisanym rodzajem. Powstaje w miejscu
// wykrycia naruszenia reguły i wędruje do wywołującego bez modyfikacji.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf zwraca rodzaj błędu biznesowego albo pusty Kind,
// jeśli błąd nie pochodzi z warstwy usług (np. awaria magazynu).
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return ""
}

// IsKind sprawdza czy błąd ma podany rodzaj
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
