// Command linkstore is a MySQL-backed short-link issuer. Every link is
// keyed by a UUID stored in its canonical form, while the user-facing
// short code is the beautiful GUID rendering of the same identifier, so
// codes stay URL-safe and free of look-alike characters.
//
// Usage:
//
//	linkstore -dsn "user:pass@tcp(127.0.0.1:3306)/bguid" https://example.com/a https://example.com/b
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/idtext/bguid"
)

const schema = `CREATE TABLE IF NOT EXISTS links (
	id CHAR(36) NOT NULL PRIMARY KEY,
	code VARCHAR(31) NOT NULL UNIQUE,
	target TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// LinkStore persists short links in MySQL.
type LinkStore struct {
	db *sql.DB
}

// OpenLinkStore connects to MySQL and makes sure the links table exists.
func OpenLinkStore(dsn string) (*LinkStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create links table: %w", err)
	}
	return &LinkStore{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *LinkStore) Close() error {
	return s.db.Close()
}

// Shorten mints a new identifier for target and returns its short code.
func (s *LinkStore) Shorten(target string) (string, error) {
	id, err := bguid.NewRandom()
	if err != nil {
		return "", err
	}
	code := id.Beautiful()
	if _, err := s.db.Exec(
		"INSERT INTO links (id, code, target) VALUES (?, ?, ?)",
		id, code, target,
	); err != nil {
		return "", fmt.Errorf("insert link: %w", err)
	}
	return code, nil
}

// Resolve returns the target URL for a short code. The code is run through
// the codec first, so malformed input fails before touching the database
// and lookups work for either text form of the identifier.
func (s *LinkStore) Resolve(code string) (string, error) {
	id, err := bguid.ParseBeautiful(code)
	if err != nil {
		return "", err
	}
	var target string
	if err := s.db.QueryRow(
		"SELECT target FROM links WHERE id = ?", id,
	).Scan(&target); err != nil {
		return "", fmt.Errorf("resolve %s: %w", code, err)
	}
	return target, nil
}

func main() {
	dsn := flag.String("dsn", "root:root@tcp(127.0.0.1:3306)/bguid", "MySQL data source name")
	flag.Parse()

	targets := flag.Args()
	if len(targets) == 0 {
		targets = []string{"https://example.com/docs", "https://example.com/pricing"}
	}

	store, err := OpenLinkStore(*dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	codes := make([]string, 0, len(targets))
	for _, target := range targets {
		code, err := store.Shorten(target)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("shortened %s -> %s", target, code)
		codes = append(codes, code)
	}

	for _, code := range codes {
		target, err := store.Resolve(code)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("resolved %s -> %s", code, target)
	}
}
