package database

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/frahmantamala/smart-records/internal"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var errGatewayClosed = errors.New("gateway is closed")

// Gateway is the sole owner of the database connection. Every statement the
// record models and the auth service run goes through RunQuery, RunInsert or
// RunUpdate with all dynamic values bound as parameters; nothing above this
// layer builds SQL out of user data.
type Gateway struct {
	cfg    internal.DatabaseConfig
	logger *slog.Logger

	mu     sync.Mutex
	db     *sqlx.DB
	closed bool
}

func NewGateway(cfg internal.DatabaseConfig, logger *slog.Logger) *Gateway {
	return &Gateway{
		cfg:    cfg,
		logger: logger,
	}
}

// NewGatewayWithDB wraps an already-open connection. Used by tests and by
// callers that manage the connection lifecycle themselves.
func NewGatewayWithDB(db *sqlx.DB, logger *slog.Logger) *Gateway {
	return &Gateway{
		db:     db,
		logger: logger,
	}
}

// Connect returns the existing connection or establishes one. The gateway
// never reopens after Close; a closed gateway stays closed.
func (g *Gateway) Connect() (*sqlx.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connectLocked()
}

func (g *Gateway) connectLocked() (*sqlx.DB, error) {
	if g.closed {
		return nil, internal.NewConnectionError("database connection already released", errGatewayClosed)
	}
	if g.db != nil {
		return g.db, nil
	}

	db, err := sqlx.Connect("mysql", g.cfg.DSN())
	if err != nil {
		return nil, internal.NewConnectionError("failed to connect to MySQL", err)
	}

	db.SetMaxOpenConns(g.cfg.MaxOpenConns)
	db.SetMaxIdleConns(g.cfg.MaxIdleConns)
	db.SetConnMaxLifetime(g.cfg.ConnMaxLifetime)

	g.logger.Info("database connection established",
		"host", g.cfg.Host, "port", g.cfg.Port, "database", g.cfg.Name)

	g.db = db
	return g.db, nil
}

// RunQuery executes a read statement and returns every row as a
// field-name-to-value mapping, in result order. An empty result set returns
// an empty slice, never nil.
func (g *Gateway) RunQuery(query string, args ...any) ([]Row, error) {
	db, err := g.Connect()
	if err != nil {
		return nil, err
	}

	rows, err := db.Queryx(query, args...)
	if err != nil {
		return nil, internal.NewQueryError("query failed", err)
	}
	defer rows.Close()

	results := make([]Row, 0)
	for rows.Next() {
		row := make(Row)
		if err := rows.MapScan(row); err != nil {
			return nil, internal.NewQueryError("failed to scan row", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, internal.NewQueryError("row iteration failed", err)
	}

	return results, nil
}

// RunUpdate executes a write statement and returns the affected row count.
// Autocommit: each call is its own atomic unit, there are no multi-statement
// transactions in this design.
func (g *Gateway) RunUpdate(query string, args ...any) (int64, error) {
	db, err := g.Connect()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, internal.NewQueryError("update failed", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, internal.NewQueryError("failed to read affected rows", err)
	}
	return affected, nil
}

// RunInsert executes an insert and returns the id generated for that
// statement. The id is read from the statement's own result, so concurrent
// inserts through the shared gateway never observe each other's ids.
func (g *Gateway) RunInsert(query string, args ...any) (int64, error) {
	db, err := g.Connect()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, internal.NewQueryError("insert failed", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, internal.NewQueryError("failed to read generated id", err)
	}
	return id, nil
}

// Ping verifies the connection is still reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	db, err := g.Connect()
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return internal.NewConnectionError("database unreachable", err)
	}
	return nil
}

// Migrate applies the embedded migrations: creates the three tables if
// absent. Safe to run repeatedly.
func (g *Gateway) Migrate(ctx context.Context) error {
	db, err := g.Connect()
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("mysql"); err != nil {
		return internal.NewInternalError("failed to set migration dialect", err)
	}
	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return internal.NewQueryError("schema migration failed", err)
	}
	return nil
}

// InitializeSchema is idempotent: it applies the embedded migrations and
// populates seed data into empty tables so a first run is usable without
// manual setup. Non-empty tables are never touched.
func (g *Gateway) InitializeSchema(ctx context.Context) error {
	if err := g.Migrate(ctx); err != nil {
		return err
	}
	return g.seed()
}

// Close releases the connection exactly once. The gateway is unusable
// afterwards.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	g.closed = true

	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	if err != nil {
		return internal.NewConnectionError("failed to close database connection", err)
	}
	g.logger.Info("database connection released")
	return nil
}
