package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"library-loan-service/internal/models"
	"library-loan-service/internal/service"
)

// LoansHandler obsługuje żądania HTTP dotyczące wypożyczeń
type LoansHandler struct {
	loans *service.LoanService
}

// NewLoansHandler tworzy nowy handler wypożyczeń
func NewLoansHandler(loans *service.LoanService) *LoansHandler {
	return &LoansHandler{loans: loans}
}

// loanRequest to ciało żądania tworzenia/aktualizacji wypożyczenia.
// Daty podawane są w formacie "RRRR-MM-DD".
type loanRequest struct {
	UserID    string      `json:"user_id"`
	BookID    string      `json:"book_id"`
	StartDate models.Date `json:"start_date"`
	EndDate   models.Date `json:"end_date"`
}

// ListLoans zwraca wszystkie wypożyczenia, również zamknięte (GET /api/loans)
func (h *LoansHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loans.FindAll(r.Context())
	if err != nil {
		respondInternalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loans)
}

// GetLoan zwraca wypożyczenie po ID (GET /api/loans/{id})
func (h *LoansHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	loan, err := h.loans.FindByID(r.Context(), id)
	if err != nil {
		if service.IsKind(err, service.KindLoanNotFound) {
			respondMessage(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

// CreateLoan otwiera nowe wypożyczenie (POST /api/loans).
// Wszystkie naruszenia reguł biznesowych mapowane są na 400,
// tak jak w pierwotnym API.
func (h *LoansHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if err := decodeBody(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.loans.Save(r.Context(), req.UserID, req.BookID, req.StartDate, req.EndDate)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindUserNotFound, service.KindBookNotFound,
			service.KindNoBookAvailable, service.KindInconsistentDates:
			respondMessage(w, http.StatusBadRequest, err.Error())
		default:
			respondInternalError(w, err)
		}
		return
	}
	respondJSON(w, http.StatusCreated, loan)
}

// UpdateLoan aktualizuje istniejące wypożyczenie (PUT /api/loans/{id})
func (h *LoansHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req loanRequest
	if err := decodeBody(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.loans.Update(r.Context(), id, req.UserID, req.BookID, req.StartDate, req.EndDate)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindLoanNotFound, service.KindUserNotFound,
			service.KindBookNotFound, service.KindInconsistentDates:
			respondMessage(w, http.StatusBadRequest, err.Error())
		default:
			respondInternalError(w, err)
		}
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

// DeleteLoan zamyka wypożyczenie (DELETE /api/loans/{id}).
// Rekord pozostaje w bazie z flagą finalized=true.
func (h *LoansHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.loans.Delete(r.Context(), id); err != nil {
		if service.IsKind(err, service.KindLoanNotFound) {
			respondMessage(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Loan successfully deleted")
}
