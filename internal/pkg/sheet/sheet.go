// internal/pkg/sheet/sheet.go
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// ContentType is the MIME type of the workbooks produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Listings"

// Columns understood by Read. Write emits them first, followed by the
// read-only statistics columns.
var Columns = []string{
	"Title", "Description", "Location", "City", "Type", "Price",
	"Area", "Bedrooms", "Bathrooms", "Image", "Amenities", "Featured", "Status",
}

var statColumns = []string{"Price (Lakh)", "Likes", "Interests", "Visits", "Views", "Posted"}

var lakh = decimal.NewFromInt(100000)

// ErrNoRows is returned when a workbook has a header but no listings.
var ErrNoRows = errors.New("spreadsheet has no listing rows")

// Write renders listings as an xlsx workbook.
func Write(w io.Writer, listings []domain.Property) error {
	file := xlsx.NewFile()
	sh, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	header := sh.AddRow()
	for _, name := range append(append([]string{}, Columns...), statColumns...) {
		c := header.AddCell()
		c.SetString(name)
		style := c.GetStyle()
		style.Font.Bold = true
		style.Fill.PatternType = "solid"
		style.Fill.FgColor = "CCCCCC"
	}

	for _, p := range listings {
		row := sh.AddRow()
		row.AddCell().SetString(p.Title)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(p.Location)
		row.AddCell().SetString(p.City)
		row.AddCell().SetString(string(p.Type))
		row.AddCell().SetInt64(p.Price)
		row.AddCell().SetInt(p.Area)
		row.AddCell().SetInt(p.Bedrooms)
		row.AddCell().SetInt(p.Bathrooms)
		row.AddCell().SetString(p.Image)
		row.AddCell().SetString(strings.Join(p.Amenities, ", "))
		row.AddCell().SetString(strconv.FormatBool(p.Featured))
		row.AddCell().SetString(string(p.Status))

		row.AddCell().SetString(decimal.NewFromInt(p.Price).Div(lakh).StringFixed(2))
		row.AddCell().SetInt(p.LikesCount)
		row.AddCell().SetInt(p.InterestsCount)
		row.AddCell().SetInt(p.VisitsCount)
		row.AddCell().SetInt(p.ViewsCount)
		row.AddCell().SetString(p.PostedDate.Format("2006-01-02"))
	}

	for i := range len(Columns) + len(statColumns) {
		sh.SetColWidth(i+1, i+1, 18)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Bytes is Write into memory.
func Bytes(listings []domain.Property) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, listings); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RowError reports a spreadsheet row that could not be converted.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

// Read parses the first sheet of an xlsx workbook. Columns are matched by
// header name, so a workbook produced by Write can be read back. Rows that
// cannot be converted are returned as RowErrors; blank rows are skipped.
func Read(data []byte) ([]domain.Property, []RowError, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, nil, ErrNoRows
	}

	var (
		index   map[string]int
		out     []domain.Property
		rowErrs []RowError
		rowNum  int
	)

	err = file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		rowNum++
		if index == nil {
			index = headerIndex(r)
			if _, ok := index["title"]; !ok {
				return fmt.Errorf("header row must contain a Title column")
			}
			return nil
		}

		get := func(col string) string {
			i, ok := index[strings.ToLower(col)]
			if !ok {
				return ""
			}
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			return strings.TrimSpace(c.String())
		}

		if get("Title") == "" && get("Price") == "" {
			return nil
		}

		p, err := parseRow(get)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Err: err})
			return nil
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(out) == 0 && len(rowErrs) == 0 {
		return nil, nil, ErrNoRows
	}
	return out, rowErrs, nil
}

func headerIndex(r *xlsx.Row) map[string]int {
	index := make(map[string]int)
	_ = r.ForEachCell(func(c *xlsx.Cell) error {
		col, _ := c.GetCoordinates()
		if name := strings.ToLower(strings.TrimSpace(c.String())); name != "" {
			index[name] = col
		}
		return nil
	})
	return index
}

func parseRow(get func(string) string) (domain.Property, error) {
	p := domain.Property{
		Title:       get("Title"),
		Description: get("Description"),
		Location:    get("Location"),
		City:        get("City"),
		Type:        domain.PropertyType(get("Type")),
		Image:       get("Image"),
		Status:      domain.PropertyStatus(get("Status")),
	}

	price, err := parseAmount(get("Price"))
	if err != nil {
		return p, fmt.Errorf("price: %w", err)
	}
	p.Price = price

	for col, dst := range map[string]*int{"Area": &p.Area, "Bedrooms": &p.Bedrooms, "Bathrooms": &p.Bathrooms} {
		v := get(col)
		if v == "" {
			continue
		}
		n, err := parseAmount(v)
		if err != nil {
			return p, fmt.Errorf("%s: %w", strings.ToLower(col), err)
		}
		*dst = int(n)
	}

	if v := get("Featured"); v != "" {
		b, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return p, fmt.Errorf("featured: %q is not true or false", v)
		}
		p.Featured = b
	}

	for _, a := range strings.FieldsFunc(get("Amenities"), func(r rune) bool { return r == ',' || r == ';' }) {
		if a = strings.TrimSpace(a); a != "" {
			p.Amenities = append(p.Amenities, a)
		}
	}
	return p, nil
}

// parseAmount accepts whole numbers written with grouping commas or a rupee
// sign, and spreadsheet floats such as "12500000.0".
func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "₹"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("value is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("%q must be a whole number", s)
	}
	return d.IntPart(), nil
}
