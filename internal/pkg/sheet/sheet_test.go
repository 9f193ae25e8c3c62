package sheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/sheet"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
)

// workbook builds an xlsx file from literal rows.
func workbook(t *testing.T, rows ...[]string) []byte {
	t.Helper()

	file := xlsx.NewFile()
	sh, err := file.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, values := range rows {
		row := sh.AddRow()
		for _, v := range values {
			row.AddCell().SetString(v)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func TestWriteRead_RoundTrip(t *testing.T) {
	listings := helpers.CreateTestProperties(4)

	data, err := sheet.Bytes(listings)
	require.NoError(t, err)

	got, rowErrs, err := sheet.Read(data)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, got, len(listings))

	for i, p := range got {
		want := listings[i]
		assert.Equal(t, want.Title, p.Title)
		assert.Equal(t, want.City, p.City)
		assert.Equal(t, want.Type, p.Type)
		assert.Equal(t, want.Price, p.Price)
		assert.Equal(t, want.Area, p.Area)
		assert.Equal(t, want.Bedrooms, p.Bedrooms)
		assert.Equal(t, want.Amenities, p.Amenities)
		assert.Equal(t, want.Featured, p.Featured)
		assert.Equal(t, want.Status, p.Status)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name        string
		data        func(*testing.T) []byte
		wantErr     error
		wantAnyErr  bool
		wantRows    int
		wantRowErrs []int
		check       func(*testing.T, []domain.Property)
	}{
		{
			name: "header_only",
			data: func(t *testing.T) []byte {
				b, err := sheet.Bytes(nil)
				require.NoError(t, err)
				return b
			},
			wantErr: sheet.ErrNoRows,
		},
		{
			name:       "not_a_workbook",
			data:       func(*testing.T) []byte { return []byte("title,price\n") },
			wantAnyErr: true,
		},
		{
			name: "missing_title_column",
			data: func(t *testing.T) []byte {
				return workbook(t, []string{"Name", "Price"}, []string{"Villa", "100"})
			},
			wantAnyErr: true,
		},
		{
			name: "columns_matched_by_name_in_any_order",
			data: func(t *testing.T) []byte {
				return workbook(t,
					[]string{"price", "Amenities", "TITLE", "Bedrooms"},
					[]string{"₹1,25,00,000", "Gym; Parking", "Sea View Flat", "3"},
				)
			},
			wantRows: 1,
			check: func(t *testing.T, ps []domain.Property) {
				assert.Equal(t, "Sea View Flat", ps[0].Title)
				assert.Equal(t, int64(12500000), ps[0].Price)
				assert.Equal(t, 3, ps[0].Bedrooms)
				assert.Equal(t, []string{"Gym", "Parking"}, ps[0].Amenities)
			},
		},
		{
			name: "bad_rows_reported_blank_rows_skipped",
			data: func(t *testing.T) []byte {
				return workbook(t,
					[]string{"Title", "Price", "Featured"},
					[]string{"Good", "5000000", "yes"},
					[]string{"", "", ""},
					[]string{"Fraction", "12.5", ""},
					[]string{"Fine", "7500000.0", "TRUE"},
					[]string{"No price", "", ""},
				)
			},
			wantRows:    1,
			wantRowErrs: []int{2, 4, 6},
			check: func(t *testing.T, ps []domain.Property) {
				assert.Equal(t, "Fine", ps[0].Title)
				assert.Equal(t, int64(7500000), ps[0].Price)
				assert.True(t, ps[0].Featured)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rowErrs, err := sheet.Read(tt.data(t))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				return
			case tt.wantAnyErr:
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantRows)

			var rows []int
			for _, re := range rowErrs {
				rows = append(rows, re.Row)
			}
			assert.Equal(t, tt.wantRowErrs, rows)

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}
