// Package firestore to silnik magazynu rekordów oparty o Cloud Firestore.
// Układ odwzorowuje kolekcje: loan_books, loan_users oraz loans.
package firestore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"library-loan-service/internal/store"
)

const (
	// BooksCollection to nazwa kolekcji książek w Firestore
	BooksCollection = "loan_books"
	// UsersCollection to nazwa kolekcji czytelników w Firestore
	UsersCollection = "loan_users"
	// LoansCollection to nazwa kolekcji wypożyczeń w Firestore
	LoansCollection = "loans"
)

// Store implementuje magazyn rekordów na kliencie Firestore
type Store struct {
	app    *firebase.App
	client *firestore.Client
}

var _ store.Store = (*Store)(nil)

// New inicjalizuje klienta Firebase i otwiera połączenie z Firestore.
// Dane uwierzytelniające pobierane są z FIREBASE_CREDENTIALS_PATH (plik,
// rozwój lokalny) albo z FIREBASE_CREDENTIALS_JSON (wartość, produkcja).
func New(ctx context.Context) (*Store, error) {
	var opts []option.ClientOption

	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credentialsPath != "" {
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("plik credentials nie istnieje: %s", credentialsPath)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	} else {
		credentialsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		if credentialsJSON == "" {
			return nil, fmt.Errorf("brak zmiennej środowiskowej FIREBASE_CREDENTIALS_PATH lub FIREBASE_CREDENTIALS_JSON")
		}
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	var config *firebase.Config
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		config = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("błąd inicjalizacji Firebase App: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("błąd inicjalizacji Firestore: %w", err)
	}

	return &Store{app: app, client: client}, nil
}

// Close zamyka połączenie z Firestore
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
