package database

import (
	"testing"

	"github.com/scholarstream/api/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "scholar", DBPass: "s3cret",
		DBHost: "db.internal", DBPort: "3306", DBName: "scholarstream",
	}
	want := "scholar:s3cret@tcp(db.internal:3306)/scholarstream?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := dsn(cfg); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}

func TestDSNOmitsEmptyPassword(t *testing.T) {
	cfg := config.Config{
		DBUser: "root",
		DBHost: "localhost", DBPort: "3306", DBName: "scholarstream",
	}
	want := "root@tcp(localhost:3306)/scholarstream?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := dsn(cfg); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}
