package catalog

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"

	"house_price/pkg/contextx"
	"house_price/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Source отдаёт сырые значения колонки location (с повторами, в любом порядке).
type Source interface {
	ReadLocations(ctx context.Context) ([]string, error)
	String() string
}

// LocationCatalog — отсортированный список уникальных районов. После
// создания не меняется, безопасен для конкурентного чтения.
type LocationCatalog struct {
	locations []string
}

// New нормализует список: обрезает пробелы, выкидывает пустые и дубликаты,
// сортирует по возрастанию.
func New(raw []string) *LocationCatalog {
	locations := lo.Uniq(lo.Compact(lo.Map(raw, func(item string, _ int) string {
		return strings.TrimSpace(item)
	})))
	slices.Sort(locations)

	return &LocationCatalog{locations: slices.Clip(locations)}
}

// Load читает каталог из источника. Если источник недоступен или данные
// битые, возвращается пустой каталог: сервис должен подняться и без него.
func Load(ctx context.Context, source Source) *LocationCatalog {
	raw, err := source.ReadLocations(ctx)
	if err != nil {
		logger(ctx).Warn(
			"location catalog unavailable, serving empty list",
			slog.String(logx.FieldDatasetSource, source.String()),
			logx.Error(err),
		)

		return New(nil)
	}

	c := New(raw)

	logger(ctx).Info(
		"location catalog loaded",
		slog.String(logx.FieldDatasetSource, source.String()),
		slog.Int(logx.FieldLocations, c.Len()),
	)

	return c
}

// Locations возвращает копию списка.
func (c *LocationCatalog) Locations() []string {
	return slices.Clone(c.locations)
}

func (c *LocationCatalog) Len() int {
	return len(c.locations)
}
