package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"levelup-api/internal/util"
)

type Store struct {
	db     *sqlx.DB
	logger *zap.Logger

	// Decided once at startup: whether product reads may embed the
	// categorias relation.
	categoriaJoin bool
}

// NewStore connects to the database and probes schema capabilities.
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, logger: util.GetLogger()}
	s.probeCategoriaJoin()
	return s, nil
}

// probeCategoriaJoin checks whether the productos→categorias relation is
// queryable. When it is not, product reads skip the embedded category.
func (s *Store) probeCategoriaJoin() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var one int
	err := s.db.GetContext(ctx, &one,
		"SELECT 1 FROM productos p LEFT JOIN categorias c ON c.id = p.categoria_id LIMIT 1")
	if err != nil && !isNoRows(err) {
		s.logger.Warn("categorias relation unavailable, product reads will omit the join",
			zap.Error(err))
		s.categoriaJoin = false
		return
	}
	s.categoriaJoin = true
}

// SupportsCategoriaJoin reports whether product reads embed the category.
func (s *Store) SupportsCategoriaJoin() bool {
	return s.categoriaJoin
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies connectivity, for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// buildUpdate renders a partial UPDATE statement for the supplied columns.
// Column order is made deterministic so the statement is testable. Returns
// empty query when no columns are set.
func buildUpdate(table string, columns map[string]interface{}, id int64) (string, []interface{}) {
	if len(columns) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, 0, len(names))
	args := make([]interface{}, 0, len(names)+1)
	for i, name := range names {
		sets = append(sets, fmt.Sprintf("%s = $%d", name, i+1))
		args = append(args, columns[name])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(sets, ", "), len(names)+1)
	return query, args
}
