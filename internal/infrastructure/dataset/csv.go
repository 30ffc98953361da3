package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/pkg/errcodes"
)

const (
	columnLocation = "location"
	columnSqft     = "total_sqft"
	columnBath     = "bath"
	columnBHK      = "bhk"
	columnPrice    = "price"
)

// CSVSource читает очищенный датасет (Cleaned_data.csv) с заголовком.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) String() string {
	return "csv:" + s.Path
}

// ReadLocations возвращает колонку location как есть, без дедупликации.
func (s *CSVSource) ReadLocations(ctx context.Context) ([]string, error) {
	var locations []string

	err := s.scan(ctx, []string{columnLocation}, func(row []string) error {
		locations = append(locations, row[0])
		return nil
	})
	if err != nil {
		return nil, err
	}

	return locations, nil
}

// ReadListings читает обучающую выборку. Строка с нечисловым значением
// признака считается ошибкой: датасет должен быть уже очищен.
func (s *CSVSource) ReadListings(ctx context.Context) ([]entity.Listing, error) {
	var listings []entity.Listing

	line := 1

	err := s.scan(ctx, []string{columnLocation, columnSqft, columnBath, columnBHK, columnPrice}, func(row []string) error {
		line++

		listing, err := parseListing(row)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		listings = append(listings, listing)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return listings, nil
}

func (s *CSVSource) scan(ctx context.Context, columns []string, fn func(row []string) error) error {
	fh, err := os.Open(s.Path)
	if err != nil {
		return domain.WrapError(err, errcodes.DatasetUnavailable, "dataset file is not readable")
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewError(errcodes.DatasetUnavailable, "dataset file is empty")
		}

		return domain.WrapError(err, errcodes.DatasetUnavailable, "dataset header is malformed")
	}

	idx, err := columnIndexes(header, columns)
	if err != nil {
		return err
	}

	row := make([]string, len(columns))

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dataset.scan: %w", err)
		}

		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return domain.WrapError(err, errcodes.DatasetUnavailable, "dataset row is malformed")
		}

		for i, j := range idx {
			row[i] = record[j]
		}

		if err := fn(row); err != nil {
			return domain.WrapError(err, errcodes.DatasetUnavailable, "dataset row is malformed")
		}
	}
}

func columnIndexes(header, columns []string) ([]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	idx := make([]int, len(columns))

	for i, column := range columns {
		j, ok := positions[column]
		if !ok {
			return nil, domain.NewError(errcodes.DatasetUnavailable, fmt.Sprintf("dataset has no %q column", column))
		}

		idx[i] = j
	}

	return idx, nil
}

func parseListing(row []string) (entity.Listing, error) {
	sqft, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return entity.Listing{}, fmt.Errorf("%s: %w", columnSqft, err)
	}

	bath, err := parseCount(row[2])
	if err != nil {
		return entity.Listing{}, fmt.Errorf("%s: %w", columnBath, err)
	}

	bhk, err := parseCount(row[3])
	if err != nil {
		return entity.Listing{}, fmt.Errorf("%s: %w", columnBHK, err)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
	if err != nil {
		return entity.Listing{}, fmt.Errorf("%s: %w", columnPrice, err)
	}

	return entity.Listing{
		Location:        strings.TrimSpace(row[0]),
		TotalSquareFeet: sqft,
		Bathrooms:       bath,
		Bedrooms:        bhk,
		Price:           price,
	}, nil
}

// parseCount принимает и "2", и "2.0": pandas пишет целые колонки с NaN как float.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	if f != float64(int(f)) {
		return 0, fmt.Errorf("not a whole number: %s", s)
	}

	return int(f), nil
}
