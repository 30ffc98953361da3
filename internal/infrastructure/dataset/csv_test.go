package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/internal/infrastructure/dataset"
	"house_price/pkg/errcodes"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Cleaned_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCSVSourceReadLocations(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		content string
		want    []string
		code    string
	}{
		{
			name: "Pandas export with index column",
			content: ",location,total_sqft,bath,price,bhk\n" +
				"0,Electronic City Phase II,1056.0,2.0,39.07,2\n" +
				"1,Chikka Tirupathi,2600.0,5.0,120.0,4\n" +
				"2,Electronic City Phase II,1440.0,2.0,62.0,3\n",
			want: []string{"Electronic City Phase II", "Chikka Tirupathi", "Electronic City Phase II"},
		},
		{
			name:    "Quoted location with comma",
			content: "location,total_sqft\n\"Koramangala, 5th Block\",1200\n",
			want:    []string{"Koramangala, 5th Block"},
		},
		{
			name:    "Header only",
			content: "location,total_sqft,bath,price,bhk\n",
			want:    nil,
		},
		{
			name:    "Empty file",
			content: "",
			code:    errcodes.DatasetUnavailable.String(),
		},
		{
			name:    "No location column",
			content: "area,total_sqft\nWhitefield,1200\n",
			code:    errcodes.DatasetUnavailable.String(),
		},
		{
			name:    "Ragged rows",
			content: "location,total_sqft\nWhitefield,1200\nHebbal\n",
			code:    errcodes.DatasetUnavailable.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			locations, err := dataset.NewCSVSource(writeFile(t, tc.content)).ReadLocations(ctx)

			if tc.code != "" {
				rq.Error(err)
				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(tc.code, code.String())

				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, locations)
		})
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	rq := require.New(t)

	_, err := dataset.NewCSVSource(filepath.Join(t.TempDir(), "absent.csv")).ReadLocations(context.Background())

	rq.True(domain.HasCode(err, errcodes.DatasetUnavailable))
}

func TestCSVSourceReadListings(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	path := writeFile(t, ",location,total_sqft,bath,price,bhk\n"+
		"0,Electronic City Phase II,1056.0,2.0,39.07,2\n"+
		"1, Whitefield ,1200,2,68.5,2\n")

	listings, err := dataset.NewCSVSource(path).ReadListings(ctx)
	rq.NoError(err)
	rq.Equal([]entity.Listing{
		{Location: "Electronic City Phase II", TotalSquareFeet: 1056, Bathrooms: 2, Bedrooms: 2, Price: 39.07},
		{Location: "Whitefield", TotalSquareFeet: 1200, Bathrooms: 2, Bedrooms: 2, Price: 68.5},
	}, listings)

	path = writeFile(t, "location,total_sqft,bath,price,bhk\nWhitefield,1200,2.5,68.5,2\n")

	_, err = dataset.NewCSVSource(path).ReadListings(ctx)
	rq.True(domain.HasCode(err, errcodes.DatasetUnavailable))
	rq.ErrorContains(err, "line 2")
}
