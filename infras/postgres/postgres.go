package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"bistro/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  Connect("read", DSN(pg.Read, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
		Write: Connect("write", DSN(pg.Write, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Ping checks both pools; the health endpoint reports the first failure.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Read == nil || c.Write == nil {
		return errors.New("database connection not established")
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

// DSN renders a lib/pq connection URL for node. Reservation times are timestamptz, so the
// session time zone only affects how the server prints them; it defaults to UTC.
func DSN(node config.PostgresNode, prefix string) string {
	timezone := node.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	query := url.Values{}
	query.Set("sslmode", node.SSLMode)
	query.Set("timezone", timezone)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     "/" + prefix + node.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Connect retries until the database answers or maxRetry attempts are spent.
func Connect(name, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().Str("name", name).Str("dsn", redact(dsn)).Logger()

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	logger.Fatal().Int("attempts", maxRetry).Msg("Giving up connecting to database")

	return nil
}

func redact(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return "invalid dsn"
	}

	return parsed.Redacted()
}
