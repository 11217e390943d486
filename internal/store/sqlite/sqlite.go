// Package sqlite to silnik magazynu rekordów oparty o wbudowaną bazę SQLite.
// Serwer i testy działają z nim bez żadnej zewnętrznej infrastruktury.
// Cały SQL jest jawny i trzymany w stałych przy operacjach, a schemat
// wersjonowany migracjami osadzonymi w binarce.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"library-loan-service/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store implementuje magazyn rekordów na pojedynczym pliku SQLite
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open otwiera (lub tworzy) bazę pod podaną ścieżką i doprowadza
// schemat do najnowszej wersji. Ścieżka ":memory:" daje bazę ulotną,
// używaną w testach.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("błąd otwierania bazy SQLite: %w", err)
	}

	// SQLite obsługuje jedno połączenie zapisujące naraz
	db.SetMaxOpenConns(1)

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close zamyka połączenie z bazą
func (s *Store) Close() error {
	return s.db.Close()
}

// migrateUp aplikuje wszystkie zaległe migracje z osadzonego katalogu
func migrateUp(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("błąd wczytywania migracji: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("błąd inicjalizacji sterownika migracji: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("błąd inicjalizacji migracji: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("błąd aplikowania migracji: %w", err)
	}
	return nil
}
