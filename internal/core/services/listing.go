// internal/core/services/listing.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// Invalidator drops cached catalog reads after a listing write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ListingService manages a seller's own listings
type ListingService struct {
	repo    ports.PropertyRepository
	users   ports.UserRepository
	storage ports.ObjectStorage
	catalog Invalidator
	logger  *slog.Logger
}

var _ ports.ListingService = (*ListingService)(nil)

func NewListingService(
	repo ports.PropertyRepository,
	users ports.UserRepository,
	storage ports.ObjectStorage,
	catalog Invalidator,
	logger *slog.Logger,
) *ListingService {
	return &ListingService{
		repo:    repo,
		users:   users,
		storage: storage,
		catalog: catalog,
		logger:  logger.With(slog.String("service", "listing")),
	}
}

// Create stores a new listing owned by seller.
func (s *ListingService) Create(ctx context.Context, seller domain.SessionUser, p *domain.Property) error {
	stampSeller(p, seller, s.sellerPhone(ctx, seller))
	p.ID = uuid.Nil
	p.Verified = false
	p.Available = true
	p.LikesCount, p.InterestsCount, p.VisitsCount, p.ViewsCount = 0, 0, 0, 0

	if err := p.Validate(); err != nil {
		return err
	}
	p.PrepareForStorage()

	if err := s.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	s.logger.InfoContext(ctx, "listing created",
		slog.String("property_id", p.ID.String()),
		slog.String("seller_id", seller.ID.String()))
	s.invalidate(ctx)
	return nil
}

// Update applies a partial update to a listing the seller owns.
func (s *ListingService) Update(ctx context.Context, seller domain.SessionUser, id uuid.UUID, u domain.PropertyUpdate) (*domain.Property, error) {
	p, err := s.owned(ctx, seller, id)
	if err != nil {
		return nil, err
	}

	if err := p.ApplyUpdate(u); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	s.invalidate(ctx)
	return p, nil
}

// Delete removes a listing; its interests, visits and likes go with it.
func (s *ListingService) Delete(ctx context.Context, seller domain.SessionUser, id uuid.UUID) error {
	if _, err := s.owned(ctx, seller, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	s.logger.InfoContext(ctx, "listing deleted", slog.String("property_id", id.String()))
	s.invalidate(ctx)
	return nil
}

func (s *ListingService) ListMine(ctx context.Context, seller domain.SessionUser) ([]domain.Property, error) {
	list, err := s.repo.ListBySeller(ctx, seller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller properties: %w", err)
	}
	return list, nil
}

// UploadImage stores a photo and appends its URL to the listing. The first
// photo also becomes the cover image. The object extension always follows the
// sniffed content type, never the client's filename.
func (s *ListingService) UploadImage(ctx context.Context, seller domain.SessionUser, id uuid.UUID, _, contentType string, body io.Reader) (*domain.Property, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported image type %q", domain.ErrInvalidInput, contentType)
	}

	p, err := s.owned(ctx, seller, id)
	if err != nil {
		return nil, err
	}

	key := path.Join("properties", id.String(), "images", uuid.NewString()+ext)

	url, err := s.storage.Upload(ctx, key, body, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	p.Images = append(p.Images, url)
	if p.Image == "" {
		p.Image = url
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.WarnContext(ctx, "failed to remove orphaned image",
				slog.String("key", key),
				slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("failed to attach image: %w", err)
	}

	s.invalidate(ctx)
	return p, nil
}

// UploadBrochure stores a listing's PDF brochure and returns its object key
// for the extraction worker.
func (s *ListingService) UploadBrochure(ctx context.Context, seller domain.SessionUser, id uuid.UUID, body io.Reader) (string, error) {
	if _, err := s.owned(ctx, seller, id); err != nil {
		return "", err
	}

	key := path.Join("properties", id.String(), "brochure-"+uuid.NewString()+".pdf")
	if _, err := s.storage.Upload(ctx, key, body, "application/pdf"); err != nil {
		return "", fmt.Errorf("failed to store brochure: %w", err)
	}
	return key, nil
}

// Import creates listings in bulk. Invalid rows are reported and skipped;
// valid rows are saved in one batch.
func (s *ListingService) Import(ctx context.Context, seller domain.SessionUser, ps []domain.Property) (*ports.ImportResult, error) {
	result := &ports.ImportResult{}
	valid := make([]domain.Property, 0, len(ps))
	phone := s.sellerPhone(ctx, seller)

	for i := range ps {
		p := ps[i]
		stampSeller(&p, seller, phone)
		p.ID = uuid.Nil
		p.Verified = false
		p.Available = true
		if err := p.Validate(); err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		p.PrepareForStorage()
		valid = append(valid, p)
	}

	if len(valid) > 0 {
		if err := s.repo.SaveBatch(ctx, valid); err != nil {
			return nil, fmt.Errorf("failed to import listings: %w", err)
		}
		s.invalidate(ctx)
	}
	result.Imported = len(valid)

	s.logger.InfoContext(ctx, "listings imported",
		slog.String("seller_id", seller.ID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("rejected", result.Rejected))

	return result, nil
}

// EnrichFromBrochure merges amenities extracted from a brochure into the
// listing, skipping ones it already has.
func (s *ListingService) EnrichFromBrochure(ctx context.Context, id uuid.UUID, amenities []string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load listing: %w", err)
	}

	merged := MergeAmenities(p.Amenities, amenities)
	if len(merged) == len(p.Amenities) {
		return nil
	}

	p.Amenities = merged
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update amenities: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

// MergeAmenities appends the entries of extra not already in base, ignoring
// case and surrounding space.
func MergeAmenities(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, a := range append(append([]string{}, base...), extra...) {
		a = strings.TrimSpace(a)
		k := strings.ToLower(a)
		if a == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, a)
	}
	return out
}

func (s *ListingService) owned(ctx context.Context, seller domain.SessionUser, id uuid.UUID) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if !p.OwnedBy(seller.ID) {
		return nil, fmt.Errorf("%w: listing belongs to another seller", domain.ErrForbidden)
	}
	return p, nil
}

func stampSeller(p *domain.Property, seller domain.SessionUser, phone string) {
	id := seller.ID
	p.SellerID = &id
	p.SellerName = seller.Name
	p.SellerEmail = seller.Email
	p.SellerPhone = phone
}

// sellerPhone is best effort; listings without a phone are still valid.
func (s *ListingService) sellerPhone(ctx context.Context, seller domain.SessionUser) string {
	u, err := s.users.FindByID(ctx, seller.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to load seller contact", slog.String("error", err.Error()))
		}
		return ""
	}
	return u.Phone
}

func (s *ListingService) invalidate(ctx context.Context) {
	if err := s.catalog.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate catalog", slog.String("error", err.Error()))
	}
}
