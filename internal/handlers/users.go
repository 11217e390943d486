package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"library-loan-service/internal/service"
)

// UsersHandler obsługuje żądania HTTP dotyczące ewidencji czytelników
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler tworzy nowy handler ewidencji
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// userRequest to ciało żądania tworzenia/aktualizacji czytelnika
type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListUsers zwraca wszystkich czytelników (GET /api/users)
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		respondInternalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUser zwraca czytelnika po ID (GET /api/users/{id})
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		if service.IsKind(err, service.KindUserNotFound) {
			respondMessage(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// CreateUser rejestruje nowego czytelnika (POST /api/users)
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Save(r.Context(), req.Name, req.Email)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindInvalidData:
			respondMessage(w, http.StatusBadRequest, err.Error())
		case service.KindUserAlreadyExists:
			respondMessage(w, http.StatusConflict, err.Error())
		default:
			respondInternalError(w, err)
		}
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// UpdateUser aktualizuje dane czytelnika (PUT /api/users/{id})
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Update(r.Context(), id, req.Name, req.Email)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindUserNotFound:
			respondMessage(w, http.StatusNotFound, err.Error())
		case service.KindInvalidData:
			respondMessage(w, http.StatusBadRequest, err.Error())
		case service.KindUserAlreadyExists:
			respondMessage(w, http.StatusConflict, err.Error())
		default:
			respondInternalError(w, err)
		}
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// DeleteUser usuwa czytelnika (DELETE /api/users/{id})
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.users.Delete(r.Context(), id); err != nil {
		if service.IsKind(err, service.KindUserNotFound) {
			respondMessage(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "User successfully deleted.")
}
