package handlers

import (
	"fmt"
	"log"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MessageResponse to ciało odpowiedzi niosące komunikat o wyniku żądania
type MessageResponse struct {
	Message string `json:"message"`
}

// respondJSON serializuje ładunek i wysyła go z podanym kodem statusu
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Błąd serializacji odpowiedzi: %v", err)
	}
}

// respondMessage wysyła odpowiedź z samym komunikatem
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}

// respondInternalError loguje awarię (np. magazynu) i zwraca 500 bez
// ujawniania szczegółów technicznych na zewnątrz
func respondInternalError(w http.ResponseWriter, err error) {
	log.Printf("Błąd wewnętrzny: %v", err)
	respondMessage(w, http.StatusInternalServerError, "Internal server error")
}

// decodeBody parsuje ciało żądania do podanej struktury
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("nieprawidłowe ciało żądania: %w", err)
	}
	return nil
}
