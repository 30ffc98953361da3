package dataset

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/pkg/errcodes"
)

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`) //nolint:gochecknoglobals

// PostgresSource читает датасет из таблицы с колонками
// location, total_sqft, bath, bhk, price.
type PostgresSource struct {
	db    *sqlx.DB
	table string
}

func NewPostgresSource(db *sqlx.DB, table string) (*PostgresSource, error) {
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("dataset.NewPostgresSource: invalid table name %q", table)
	}

	return &PostgresSource{db: db, table: table}, nil
}

func (s *PostgresSource) String() string {
	return "postgres:" + s.table
}

func (s *PostgresSource) ReadLocations(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT location FROM %s WHERE location IS NOT NULL ORDER BY location`, s.table)

	var locations []string
	if err := s.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnavailable, "failed to read locations")
	}

	return locations, nil
}

func (s *PostgresSource) ReadListings(ctx context.Context) ([]entity.Listing, error) {
	query := fmt.Sprintf(`SELECT location, total_sqft, bath, bhk, price FROM %s`, s.table)

	var rows []listingSchema
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnavailable, "failed to read listings")
	}

	listings := make([]entity.Listing, 0, len(rows))
	for i := range rows {
		listings = append(listings, rows[i].toDomain())
	}

	return listings, nil
}
