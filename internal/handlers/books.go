package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"library-loan-service/internal/service"
)

// BooksHandler obsługuje żądania HTTP dotyczące katalogu książek
type BooksHandler struct {
	books *service.BookService
}

// NewBooksHandler tworzy nowy handler katalogu
func NewBooksHandler(books *service.BookService) *BooksHandler {
	return &BooksHandler{books: books}
}

// bookRequest to ciało żądania tworzenia/aktualizacji książki
type bookRequest struct {
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Quantity int    `json:"quantity"`
}

// ListBooks zwraca wszystkie książki (GET /api/books)
func (h *BooksHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.FindAll(r.Context())
	if err != nil {
		respondInternalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, books)
}

// GetBook zwraca książkę po ID (GET /api/books/{id})
func (h *BooksHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.books.FindByID(r.Context(), id)
	if err != nil {
		if service.IsKind(err, service.KindBookNotFound) {
			respondMessage(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, book)
}

// CreateBook dodaje nową książkę (POST /api/books)
func (h *BooksHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	book, err := h.books.Save(r.Context(), req.ISBN, req.Title, req.Author, req.Quantity)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindInvalidData:
			respondMessage(w, http.StatusBadRequest, err.Error())
		case service.KindBookAlreadyExists:
			respondMessage(w, http.StatusConflict, err.Error())
		default:
			respondInternalError(w, err)
		}
		return
	}
	respondJSON(w, http.StatusCreated, book)
}

// UpdateBook aktualizuje istniejącą książkę (PUT /api/books/{id})
func (h *BooksHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	book, err := h.books.Update(r.Context(), id, req.ISBN, req.Title, req.Author, req.Quantity)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindBookNotFound:
			respondMessage(w, http.StatusNotFound, err.Error())
		case service.KindInvalidData:
			respondMessage(w, http.StatusBadRequest, err.Error())
		case service.KindBookAlreadyExists:
			respondMessage(w, http.StatusConflict, err.Error())
		default:
			respondInternalError(w, err)
		}
		return
	}
	respondJSON(w, http.StatusOK, book)
}

// DeleteBook usuwa książkę (DELETE /api/books/{id})
func (h *BooksHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.books.Delete(r.Context(), id); err != nil {
		if service.IsKind(err, service.KindBookNotFound) {
			respondMessage(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Book successfully deleted")
}
