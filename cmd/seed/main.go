// Wypełnia magazyn przykładowymi książkami i czytelnikami.
// Zapis idzie przez warstwę usług, więc obowiązują te same reguły
// walidacji i unikalności co w API - ponowne uruchomienie na pełnej
// bazie zgłosi konflikty zamiast dublować rekordy.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"library-loan-service/internal/service"
	"library-loan-service/internal/store/sqlite"
)

type seedBook struct {
	isbn     string
	title    string
	author   string
	quantity int
}

type seedUser struct {
	name  string
	email string
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "library.db"
	}

	recordStore, err := sqlite.Open(path)
	if err != nil {
		log.Fatalf("Błąd otwierania magazynu: %v", err)
	}
	defer recordStore.Close()

	ctx := context.Background()
	bookService := service.NewBookService(recordStore)
	userService := service.NewUserService(recordStore)

	log.Println("Dodawanie przykładowych książek do bazy danych...")

	books := []seedBook{
		{"978-83-8032-464-8", "Wiedźmin: Ostatnie życzenie", "Andrzej Sapkowski", 3},
		{"978-83-240-1455-5", "Zbrodnia i kara", "Fiodor Dostojewski", 2},
		{"978-83-7686-320-4", "Sapiens: Od zwierząt do bogów", "Yuval Noah Harari", 4},
		{"978-83-7885-585-8", "Rok 1984", "George Orwell", 2},
		{"978-83-280-3509-1", "Diuna", "Frank Herbert", 1},
	}

	for _, b := range books {
		book, err := bookService.Save(ctx, b.isbn, b.title, b.author, b.quantity)
		if err != nil {
			log.Printf("Pominięto książkę %q: %v", b.title, err)
			continue
		}
		log.Printf("Dodano książkę: %s (%s)", book.Title, book.ID)
	}

	log.Println("Dodawanie przykładowych czytelników...")

	users := []seedUser{
		{"Jan Kowalski", "jan.kowalski@example.com"},
		{"Anna Nowak", "anna.nowak@example.com"},
	}

	for _, u := range users {
		user, err := userService.Save(ctx, u.name, u.email)
		if err != nil {
			log.Printf("Pominięto czytelnika %q: %v", u.name, err)
			continue
		}
		log.Printf("Dodano czytelnika: %s (%s)", user.Name, user.ID)
	}

	log.Println("Gotowe")
}
