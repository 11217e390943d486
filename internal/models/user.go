package models

// User reprezentuje czytelnika zarejestrowanego w bibliotece
type User struct {
	ID    string `json:"id" firestore:"id"`
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`
}
