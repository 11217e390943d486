package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-loan-service/internal/handlers"
	"library-loan-service/internal/models"
	"library-loan-service/internal/service"
	"library-loan-service/internal/store/memory"
)

// newTestServer stawia pełne API nad magazynem w pamięci
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := memory.New()
	router := handlers.NewRouter(
		service.NewBookService(st),
		service.NewUserService(st),
		service.NewLoanService(st, st, st),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func createBook(t *testing.T, srv *httptest.Server, isbn string, quantity int) models.Book {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/books",
		`{"isbn":"`+isbn+`","title":"T","author":"A","quantity":`+strconv.Itoa(quantity)+`}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var book models.Book
	require.NoError(t, json.Unmarshal(body, &book))
	return book
}

func createUser(t *testing.T, srv *httptest.Server, email string) models.User {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/users",
		`{"name":"J","email":"`+email+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var user models.User
	require.NoError(t, json.Unmarshal(body, &user))
	return user
}

func TestAPI_Books(t *testing.T) {
	srv := newTestServer(t)

	book := createBook(t, srv, "123", 1)
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "123", book.ISBN)

	// Duplikat ISBN -> 409
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/books",
		`{"isbn":"123","title":"Inna","author":"B","quantity":2}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "Book already exists")

	// Nieprawidłowe dane -> 400
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/books",
		`{"isbn":"","title":"T","author":"A","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Zepsute ciało żądania -> 400
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/books", `{nie-json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Pobranie po ID
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/books/"+book.ID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Book
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, book, fetched)

	// Nieistniejące ID -> 404
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/books/brak", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Aktualizacja
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/api/books/"+book.ID,
		`{"isbn":"123","title":"T2","author":"A","quantity":3}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, "T2", fetched.Title)

	// Usunięcie
	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/api/books/"+book.ID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Book successfully deleted")

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/books/"+book.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Users_Conflict(t *testing.T) {
	srv := newTestServer(t)

	createUser(t, srv, "j@x.com")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/users",
		`{"name":"K","email":"j@x.com"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "User already exists")
}

func TestAPI_Loans_Lifecycle(t *testing.T) {
	srv := newTestServer(t)

	book := createBook(t, srv, "123", 1)
	user := createUser(t, srv, "j@x.com")

	// Utworzenie wypożyczenia
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/loans",
		`{"user_id":"`+user.ID+`","book_id":"`+book.ID+`","start_date":"2024-05-02","end_date":"2024-05-07"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var loan models.Loan
	require.NoError(t, json.Unmarshal(body, &loan))
	assert.False(t, loan.Finalized)
	assert.Equal(t, "2024-05-02", loan.StartDate.String())

	// Niespójne daty -> 400
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/loans",
		`{"user_id":"`+user.ID+`","book_id":"`+book.ID+`","start_date":"2024-05-02","end_date":"2024-05-01"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "Start date must be before end date")

	// Nieistniejący czytelnik -> 400 z komunikatem o czytelniku,
	// nawet gdy książka też nie istnieje
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/loans",
		`{"user_id":"brak","book_id":"brak","start_date":"2024-05-02","end_date":"2024-05-07"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "User not found")

	// Zamknięcie wypożyczenia - rekord zostaje z flagą finalized
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/loans/"+loan.ID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/loans/"+loan.ID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var closed models.Loan
	require.NoError(t, json.Unmarshal(body, &closed))
	assert.True(t, closed.Finalized)

	// Lista zawiera też zamknięte wypożyczenia
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/loans", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loans []models.Loan
	require.NoError(t, json.Unmarshal(body, &loans))
	assert.Len(t, loans, 1)
}

func TestAPI_Loans_UpdateClosedLoanKeepsFlag(t *testing.T) {
	srv := newTestServer(t)

	book := createBook(t, srv, "123", 1)
	user := createUser(t, srv, "j@x.com")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/loans",
		`{"user_id":"`+user.ID+`","book_id":"`+book.ID+`","start_date":"2024-05-02","end_date":"2024-05-07"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var loan models.Loan
	require.NoError(t, json.Unmarshal(body, &loan))

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/loans/"+loan.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/api/loans/"+loan.ID,
		`{"user_id":"`+user.ID+`","book_id":"`+book.ID+`","start_date":"2024-05-03","end_date":"2024-05-08"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Loan
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.True(t, updated.Finalized)
	assert.Equal(t, "2024-05-03", updated.StartDate.String())
}

func TestAPI_Loans_UpdateMissingLoan(t *testing.T) {
	srv := newTestServer(t)

	book := createBook(t, srv, "123", 1)
	user := createUser(t, srv, "j@x.com")

	// Pierwotne API mapuje brak wypożyczenia przy aktualizacji na 400
	resp, body := doJSON(t, http.MethodPut, srv.URL+"/api/loans/brak",
		`{"user_id":"`+user.ID+`","book_id":"`+book.ID+`","start_date":"2024-05-02","end_date":"2024-05-07"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "Loan not found")
}

func TestAPI_UnknownPath(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/nieznana-sciezka", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "Path not found.")
}
