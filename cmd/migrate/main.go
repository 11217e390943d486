// Narzędzie do ręcznego zarządzania schematem bazy SQLite.
// Serwer sam aplikuje zaległe migracje przy starcie; ta binarka służy
// do wycofywania zmian i diagnostyki wersji schematu.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "library.db"
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "internal/store/sqlite/migrations"
	}

	m, err := migrate.New("file://"+migrationsPath, "sqlite3://"+path)
	if err != nil {
		log.Fatalf("Błąd inicjalizacji migracji: %v", err)
	}
	defer m.Close()

	switch command := args[0]; command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Błąd aplikowania migracji: %v", err)
		}
		log.Println("Migracje zaaplikowane")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				log.Fatalf("Nieprawidłowa liczba kroków: %q", args[1])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Błąd wycofywania migracji: %v", err)
		}
		log.Printf("Wycofano %d migracji", steps)

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatalf("Błąd odczytu wersji: %v", err)
		}
		fmt.Printf("wersja: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			log.Fatal("force: wymagany argument z numerem wersji")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("Nieprawidłowy numer wersji: %q", args[1])
		}
		if err := m.Force(v); err != nil {
			log.Fatalf("Błąd wymuszania wersji: %v", err)
		}
		log.Printf("Wymuszono wersję %d", v)

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Użycie: migrate <komenda> [argumenty]

Komendy:
  up           Zaaplikuj wszystkie zaległe migracje
  down [N]     Wycofaj N migracji (domyślnie: 1)
  version      Pokaż bieżącą wersję schematu
  force <V>    Ustaw wersję schematu bez uruchamiania migracji`)
}
