// Package postgres implements the market-data providers against a Postgres
// snapshot of instrument quotes and settlement-calendar holidays.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Config holds the database connection settings.
type Config struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Name     string        `yaml:"name"`
	User     string        `yaml:"user"`
	Password string        `yaml:"password"`
	SSLMode  string        `yaml:"ssl_mode"`
	Timeout  time.Duration `yaml:"timeout"`
}

// ConnString assembles a libpq key/value connection string.
func (c Config) ConnString() string {
	ssl := c.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	port := c.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, port, c.Name, c.User, c.Password, ssl)
}

// Store serves batched quote and holiday fetches. Every call runs under a
// bounded timeout; curve construction itself is deterministic and CPU-bound,
// so the database round trip is the only thing worth guarding.
type Store struct {
	db      *sql.DB
	timeout time.Duration
	log     *logrus.Logger
}

// Open connects and pings the database.
func Open(cfg Config, log *logrus.Logger) (*Store, error) {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db, timeout: timeout, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Quotes fetches last levels for the tickers in one query. Tickers without a
// row are simply absent from the result; the quote registry treats that as a
// soft failure and keeps the stale level.
func (s *Store) Quotes(ctx context.Context, tickers []string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT ticker, px_last FROM quotes WHERE ticker = ANY($1)`,
		pq.Array(tickers))
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64, len(tickers))
	for rows.Next() {
		var ticker string
		var level float64
		if err := rows.Scan(&ticker, &level); err != nil {
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		out[ticker] = level
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read quote rows: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"requested": len(tickers),
		"returned":  len(out),
	}).Debug("fetched quotes")
	return out, nil
}

// Holidays fetches the holiday dates for a settlement-calendar code.
func (s *Store) Holidays(ctx context.Context, calendarCode string) ([]time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT holiday_date FROM holidays WHERE calendar_code = $1 ORDER BY holiday_date`,
		calendarCode)
	if err != nil {
		return nil, fmt.Errorf("query holidays for %s: %w", calendarCode, err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan holiday row: %w", err)
		}
		out = append(out, time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read holiday rows: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"calendar": calendarCode,
		"holidays": len(out),
	}).Debug("fetched holiday calendar")
	return out, nil
}
