package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"library-loan-service/internal/handlers"
	"library-loan-service/internal/service"
	"library-loan-service/internal/store"
	"library-loan-service/internal/store/firestore"
	"library-loan-service/internal/store/memory"
	"library-loan-service/internal/store/sqlite"
)

func main() {
	// Wczytaj zmienne środowiskowe z pliku .env
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	// Pobierz port z zmiennych środowiskowych lub użyj domyślnego
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Wybór silnika magazynu rekordów
	recordStore, closeStore, err := openStore()
	if err != nil {
		log.Fatalf("Nie można zainicjalizować magazynu rekordów: %v", err)
	}
	defer closeStore()

	// Konstrukcja usług - jawnie, bez globalnego stanu
	bookService := service.NewBookService(recordStore)
	userService := service.NewUserService(recordStore)
	loanService := service.NewLoanService(recordStore, recordStore, recordStore)

	router := handlers.NewRouter(bookService, userService, loanService)

	// Start serwera
	log.Printf("Serwer uruchomiony na porcie %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}

// openStore inicjalizuje silnik wskazany w STORE_DRIVER.
// Domyślnie SQLite - działa bez zewnętrznej infrastruktury.
func openStore() (store.Store, func(), error) {
	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "library.db"
		}
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Magazyn SQLite otwarty: %s", path)
		return s, func() { s.Close() }, nil

	case "firestore":
		s, err := firestore.New(context.Background())
		if err != nil {
			return nil, nil, err
		}
		log.Println("Magazyn Firestore zainicjalizowany pomyślnie")
		return s, func() { s.Close() }, nil

	case "memory":
		log.Println("UWAGA: magazyn w pamięci - dane znikną po zatrzymaniu procesu")
		return memory.New(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("nieznany silnik magazynu: %q", driver)
	}
}
