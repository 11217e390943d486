package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"library-loan-service/internal/service"
)

// NewRouter buduje router API nad podanymi usługami
func NewRouter(books *service.BookService, users *service.UserService, loans *service.LoanService) chi.Router {
	r := chi.NewRouter()

	// Middleware do logowania i odzyskiwania po panice
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	booksHandler := NewBooksHandler(books)
	usersHandler := NewUsersHandler(users)
	loansHandler := NewLoansHandler(loans)

	r.Route("/api/books", func(r chi.Router) {
		r.Get("/", booksHandler.ListBooks)
		r.Post("/", booksHandler.CreateBook)
		r.Get("/{id}", booksHandler.GetBook)
		r.Put("/{id}", booksHandler.UpdateBook)
		r.Delete("/{id}", booksHandler.DeleteBook)
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", usersHandler.ListUsers)
		r.Post("/", usersHandler.CreateUser)
		r.Get("/{id}", usersHandler.GetUser)
		r.Put("/{id}", usersHandler.UpdateUser)
		r.Delete("/{id}", usersHandler.DeleteUser)
	})

	r.Route("/api/loans", func(r chi.Router) {
		r.Get("/", loansHandler.ListLoans)
		r.Post("/", loansHandler.CreateLoan)
		r.Get("/{id}", loansHandler.GetLoan)
		r.Put("/{id}", loansHandler.UpdateLoan)
		r.Delete("/{id}", loansHandler.DeleteLoan)
	})

	// Nieznane ścieżki dostają jednolitą odpowiedź JSON
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusNotFound, "Path not found.")
	})

	return r
}
