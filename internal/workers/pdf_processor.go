// internal/workers/pdf_processor.go
package workers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/ledongthuc/pdf"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// amenityPatterns maps the amenity recorded on a listing to the phrases a
// brochure uses for it.
var amenityPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Swimming Pool", regexp.MustCompile(`(?i)\bswimming\s+pool|\bpool\b`)},
	{"Gym", regexp.MustCompile(`(?i)\bgym(nasium)?\b|fitness\s+cent(er|re)`)},
	{"Parking", regexp.MustCompile(`(?i)\b(car\s+)?parking\b|\bgarage\b`)},
	{"Power Backup", regexp.MustCompile(`(?i)power\s+back-?up|\bgenerator\b`)},
	{"Security", regexp.MustCompile(`(?i)24\s*[x/]\s*7\s+security|\bsecurity\b|\bcctv\b`)},
	{"Lift", regexp.MustCompile(`(?i)\blifts?\b|\belevators?\b`)},
	{"Clubhouse", regexp.MustCompile(`(?i)club\s*house`)},
	{"Garden", regexp.MustCompile(`(?i)\bgardens?\b|landscaped`)},
	{"Play Area", regexp.MustCompile(`(?i)(children'?s?|kids'?)\s+play|play\s+area`)},
	{"Balcony", regexp.MustCompile(`(?i)\bbalcon(y|ies)\b`)},
	{"Modular Kitchen", regexp.MustCompile(`(?i)modular\s+kitchen`)},
	{"Wi-Fi", regexp.MustCompile(`(?i)\bwi-?fi\b`)},
	{"Rainwater Harvesting", regexp.MustCompile(`(?i)rain\s*water\s+harvesting`)},
	{"Jogging Track", regexp.MustCompile(`(?i)jogging\s+track`)},
	{"Sea View", regexp.MustCompile(`(?i)sea[\s-]+(view|facing)`)},
}

// BrochureProcessor extracts amenities from listing brochures
type BrochureProcessor struct {
	listings ports.ListingService
	storage  ports.ObjectStorage
	logger   *slog.Logger
}

// NewBrochureProcessor creates a new brochure processor
func NewBrochureProcessor(listings ports.ListingService, storage ports.ObjectStorage, logger *slog.Logger) *BrochureProcessor {
	return &BrochureProcessor{
		listings: listings,
		storage:  storage,
		logger:   logger.With(slog.String("processor", "pdf")),
	}
}

// ProcessBrochure handles TypeBrochureExtract
func (p *BrochureProcessor) ProcessBrochure(ctx context.Context, t *asynq.Task) error {
	var payload BrochurePayload
	if err := decode(t, &payload); err != nil {
		return err
	}

	id, err := uuid.Parse(payload.PropertyID)
	if err != nil {
		return fmt.Errorf("invalid property id %q: %w", payload.PropertyID, asynq.SkipRetry)
	}

	data, err := p.storage.Download(ctx, payload.ObjectKey)
	if err != nil {
		return fmt.Errorf("failed to download brochure: %w", skipIfNotFound(err))
	}

	text, err := p.extractText(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to read brochure: %v: %w", err, asynq.SkipRetry)
	}

	amenities := ExtractAmenities(text)
	p.logger.InfoContext(ctx, "extracted amenities from brochure",
		slog.String("property_id", id.String()),
		slog.Any("amenities", amenities))

	if len(amenities) == 0 {
		return nil
	}

	if err := p.listings.EnrichFromBrochure(ctx, id, amenities); err != nil {
		return fmt.Errorf("failed to enrich listing: %w", skipIfNotFound(err))
	}
	return nil
}

func (p *BrochureProcessor) extractText(ctx context.Context, data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var text strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to extract text from page",
				slog.Int("page", pageNum),
				slog.String("error", err.Error()))
			continue
		}
		text.WriteString(content)
		text.WriteByte('\n')
	}
	return text.String(), nil
}

// ExtractAmenities returns the known amenities mentioned in text, in a
// stable order and without duplicates.
func ExtractAmenities(text string) []string {
	var found []string
	for _, a := range amenityPatterns {
		if a.re.MatchString(text) {
			found = append(found, a.name)
		}
	}
	return found
}
