package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-loan-service/internal/models"
	"library-loan-service/internal/service"
	"library-loan-service/internal/store/memory"
)

// loanFixture spina trzy usługi nad wspólnym magazynem w pamięci
// i przygotowuje jedną książkę oraz jednego czytelnika.
type loanFixture struct {
	store *memory.Store
	books *service.BookService
	users *service.UserService
	loans *service.LoanService
	book  *models.Book
	user  *models.User
}

func newLoanFixture(t *testing.T) *loanFixture {
	t.Helper()
	ctx := context.Background()

	st := memory.New()
	f := &loanFixture{
		store: st,
		books: service.NewBookService(st),
		users: service.NewUserService(st),
		loans: service.NewLoanService(st, st, st),
	}

	var err error
	f.book, err = f.books.Save(ctx, "123", "T", "A", 1)
	require.NoError(t, err)

	f.user, err = f.users.Save(ctx, "J", "j@x.com")
	require.NoError(t, err)

	return f
}

func date(year int, month time.Month, day int) models.Date {
	return models.NewDate(year, month, day)
}

func TestLoanService_Save(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	loan, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)

	assert.NotEmpty(t, loan.ID)
	assert.Equal(t, f.user.ID, loan.UserID)
	assert.Equal(t, f.book.ID, loan.BookID)
	assert.Equal(t, date(2024, 5, 2), loan.StartDate)
	assert.Equal(t, date(2024, 5, 7), loan.EndDate)
	assert.True(t, loan.IsOpen())

	found, err := f.loans.FindByID(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, loan, found)
}

func TestLoanService_Save_DoesNotTouchQuantity(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	_, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)

	// Quantity to ręcznie zarządzana wartość katalogowa -
	// utworzenie wypożyczenia jej nie zmniejsza
	book, err := f.books.FindByID(ctx, f.book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, book.Quantity)
}

func TestLoanService_Save_UserNotFound(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	_, err := f.loans.Save(ctx, "brak-czytelnika", f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.Error(t, err)
	assert.Equal(t, service.KindUserNotFound, service.KindOf(err))
}

func TestLoanService_Save_BookNotFound(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	_, err := f.loans.Save(ctx, f.user.ID, "brak-ksiazki", date(2024, 5, 2), date(2024, 5, 7))
	require.Error(t, err)
	assert.Equal(t, service.KindBookNotFound, service.KindOf(err))
}

func TestLoanService_Save_CheckOrder(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	// Czytelnik sprawdzany jest przed książką: gdy brakuje obu,
	// zawsze wygrywa UserNotFound
	_, err := f.loans.Save(ctx, "brak-czytelnika", "brak-ksiazki", date(2024, 5, 2), date(2024, 5, 7))
	require.Error(t, err)
	assert.Equal(t, service.KindUserNotFound, service.KindOf(err))

	// Dostępność sprawdzana jest przed datami: zła data i zero
	// egzemplarzy dają NoBookAvailable
	setQuantity(t, f, 0)
	_, err = f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 7), date(2024, 5, 2))
	require.Error(t, err)
	assert.Equal(t, service.KindNoBookAvailable, service.KindOf(err))
}

func TestLoanService_Save_NoBookAvailable(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	setQuantity(t, f, 0)

	_, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.Error(t, err)
	assert.Equal(t, service.KindNoBookAvailable, service.KindOf(err))
}

func TestLoanService_Save_InconsistentDates(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	// Data końca przed datą początku
	_, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 1))
	require.Error(t, err)
	assert.Equal(t, service.KindInconsistentDates, service.KindOf(err))

	// Daty równe też są niespójne - wymagana jest ścisła kolejność
	_, err = f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 2))
	require.Error(t, err)
	assert.Equal(t, service.KindInconsistentDates, service.KindOf(err))
}

func TestLoanService_Update(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	loan, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)

	otherUser, err := f.users.Save(ctx, "K", "k@x.com")
	require.NoError(t, err)

	updated, err := f.loans.Update(ctx, loan.ID, otherUser.ID, f.book.ID, date(2024, 6, 1), date(2024, 6, 15))
	require.NoError(t, err)
	assert.Equal(t, loan.ID, updated.ID)
	assert.Equal(t, otherUser.ID, updated.UserID)
	assert.Equal(t, date(2024, 6, 1), updated.StartDate)
	assert.Equal(t, date(2024, 6, 15), updated.EndDate)
	assert.False(t, updated.Finalized)
}

func TestLoanService_Update_LoanNotFound(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	_, err := f.loans.Update(ctx, "brak-wypozyczenia", f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.Error(t, err)
	assert.Equal(t, service.KindLoanNotFound, service.KindOf(err))
}

func TestLoanService_Update_SkipsAvailabilityCheck(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	loan, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)

	// Po wyzerowaniu egzemplarzy aktualizacja nadal przechodzi -
	// dostępność sprawdza wyłącznie Save
	setQuantity(t, f, 0)

	_, err = f.loans.Update(ctx, loan.ID, f.user.ID, f.book.ID, date(2024, 5, 3), date(2024, 5, 8))
	require.NoError(t, err)
}

func TestLoanService_Update_InconsistentDates(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	loan, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)

	_, err = f.loans.Update(ctx, loan.ID, f.user.ID, f.book.ID, date(2024, 5, 7), date(2024, 5, 2))
	require.Error(t, err)
	assert.Equal(t, service.KindInconsistentDates, service.KindOf(err))
}

func TestLoanService_Update_KeepsFinalizedFlag(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	loan, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)
	require.NoError(t, f.loans.Delete(ctx, loan.ID))

	// Aktualizacja zamkniętego wypożyczenia nie otwiera go z powrotem
	updated, err := f.loans.Update(ctx, loan.ID, f.user.ID, f.book.ID, date(2024, 5, 3), date(2024, 5, 8))
	require.NoError(t, err)
	assert.True(t, updated.Finalized)
}

func TestLoanService_Delete_SoftClose(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	loan, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)

	require.NoError(t, f.loans.Delete(ctx, loan.ID))

	// Rekord pozostaje w bazie, tylko z ustawioną flagą
	closed, err := f.loans.FindByID(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, closed.Finalized)
	assert.False(t, closed.IsOpen())

	// Quantity książki bez zmian - zamknięcie nie "oddaje" egzemplarza
	book, err := f.books.FindByID(ctx, f.book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, book.Quantity)
}

func TestLoanService_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	loan, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)

	require.NoError(t, f.loans.Delete(ctx, loan.ID))
	// Ponowne zamknięcie zamkniętego wypożyczenia kończy się powodzeniem
	require.NoError(t, f.loans.Delete(ctx, loan.ID))

	closed, err := f.loans.FindByID(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, closed.Finalized)
}

func TestLoanService_Delete_NotFound(t *testing.T) {
	f := newLoanFixture(t)

	err := f.loans.Delete(context.Background(), "brak-wypozyczenia")
	require.Error(t, err)
	assert.Equal(t, service.KindLoanNotFound, service.KindOf(err))
}

func TestLoanService_FindAll_IncludesClosed(t *testing.T) {
	ctx := context.Background()
	f := newLoanFixture(t)

	open, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 5, 2), date(2024, 5, 7))
	require.NoError(t, err)

	closed, err := f.loans.Save(ctx, f.user.ID, f.book.ID, date(2024, 4, 1), date(2024, 4, 10))
	require.NoError(t, err)
	require.NoError(t, f.loans.Delete(ctx, closed.ID))

	all, err := f.loans.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := make(map[string]bool, 2)
	for _, l := range all {
		byID[l.ID] = l.Finalized
	}
	assert.False(t, byID[open.ID])
	assert.True(t, byID[closed.ID])
}

// setQuantity zmienia liczbę egzemplarzy bezpośrednio w magazynie,
// z pominięciem walidacji usługi (która nie dopuszcza zera)
func setQuantity(t *testing.T, f *loanFixture, quantity int) {
	t.Helper()

	book, err := f.store.GetBook(context.Background(), f.book.ID)
	require.NoError(t, err)

	book.Quantity = quantity
	_, err = f.store.UpdateBook(context.Background(), book)
	require.NoError(t, err)
}
