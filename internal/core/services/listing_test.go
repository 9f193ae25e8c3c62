package services_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/services"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
	"github.com/amitabhanmolpain/realestate-be/test/mocks"
)

type listingMocks struct {
	repo    *mocks.MockPropertyRepository
	users   *mocks.MockUserRepository
	storage *mocks.MockObjectStorage
	catalog *mocks.MockCatalogService
}

func newListing(t *testing.T) (*services.ListingService, listingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := listingMocks{
		repo:    mocks.NewMockPropertyRepository(ctrl),
		users:   mocks.NewMockUserRepository(ctrl),
		storage: mocks.NewMockObjectStorage(ctrl),
		catalog: mocks.NewMockCatalogService(ctrl),
	}
	return services.NewListingService(m.repo, m.users, m.storage, m.catalog, helpers.TestLogger()), m
}

func ownedBy(seller domain.SessionUser) func(*domain.Property) {
	return func(p *domain.Property) {
		id := seller.ID
		p.SellerID = &id
	}
}

func TestListingService_Create(t *testing.T) {
	seller := helpers.SessionUser("seller")

	tests := []struct {
		name          string
		property      *domain.Property
		setupMocks    func(m listingMocks)
		errorIs       error
		errorContains string
		check         func(t *testing.T, p *domain.Property)
	}{
		{
			name: "stamps_seller_and_resets_counters",
			property: helpers.CreateTestProperty(func(p *domain.Property) {
				p.LikesCount = 99
				p.Verified = true
				p.Available = false
			}),
			setupMocks: func(m listingMocks) {
				m.users.EXPECT().FindByID(gomock.Any(), seller.ID).Return(&domain.User{Phone: "12345"}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.catalog.EXPECT().Invalidate(gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, p *domain.Property) {
				require.NotNil(t, p.SellerID)
				assert.Equal(t, seller.ID, *p.SellerID)
				assert.Equal(t, seller.Name, p.SellerName)
				assert.Equal(t, "12345", p.SellerPhone)
				assert.Zero(t, p.LikesCount)
				assert.False(t, p.Verified)
				assert.True(t, p.Available)
				assert.NotEqual(t, uuid.Nil, p.ID)
			},
		},
		{
			name:     "missing_phone_is_not_fatal",
			property: helpers.CreateTestProperty(),
			setupMocks: func(m listingMocks) {
				m.users.EXPECT().FindByID(gomock.Any(), seller.ID).Return(nil, domain.ErrNotFound)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.catalog.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))
			},
			check: func(t *testing.T, p *domain.Property) {
				assert.Empty(t, p.SellerPhone)
			},
		},
		{
			name: "validation_fails_for_missing_title",
			property: helpers.CreateTestProperty(func(p *domain.Property) {
				p.Title = "  "
			}),
			setupMocks: func(m listingMocks) {
				m.users.EXPECT().FindByID(gomock.Any(), seller.ID).Return(&domain.User{}, nil)
			},
			errorIs:       domain.ErrInvalidInput,
			errorContains: "title is required",
		},
		{
			name: "validation_fails_for_zero_price",
			property: helpers.CreateTestProperty(func(p *domain.Property) {
				p.Price = 0
			}),
			setupMocks: func(m listingMocks) {
				m.users.EXPECT().FindByID(gomock.Any(), seller.ID).Return(&domain.User{}, nil)
			},
			errorIs:       domain.ErrInvalidInput,
			errorContains: "price must be positive",
		},
		{
			name:     "repository_save_error",
			property: helpers.CreateTestProperty(),
			setupMocks: func(m listingMocks) {
				m.users.EXPECT().FindByID(gomock.Any(), seller.ID).Return(&domain.User{}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			errorContains: "failed to create listing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newListing(t)
			tt.setupMocks(m)

			err := svc.Create(context.Background(), seller, tt.property)

			if tt.errorIs != nil || tt.errorContains != "" {
				require.Error(t, err)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, tt.property)
		})
	}
}

func TestListingService_Update(t *testing.T) {
	seller := helpers.SessionUser("seller")
	other := helpers.SessionUser("other")
	newPrice := int64(9900000)
	badPrice := int64(-1)

	tests := []struct {
		name       string
		actor      domain.SessionUser
		update     domain.PropertyUpdate
		setupMocks func(m listingMocks, p *domain.Property)
		errorIs    error
	}{
		{
			name:   "owner_updates_price",
			actor:  seller,
			update: domain.PropertyUpdate{Price: &newPrice},
			setupMocks: func(m listingMocks, p *domain.Property) {
				m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, got *domain.Property) error {
						assert.Equal(t, newPrice, got.Price)
						return nil
					})
				m.catalog.EXPECT().Invalidate(gomock.Any()).Return(nil)
			},
		},
		{
			name:   "other_seller_forbidden",
			actor:  other,
			update: domain.PropertyUpdate{Price: &newPrice},
			setupMocks: func(m listingMocks, p *domain.Property) {
				m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
			},
			errorIs: domain.ErrForbidden,
		},
		{
			name:   "invalid_update_rejected",
			actor:  seller,
			update: domain.PropertyUpdate{Price: &badPrice},
			setupMocks: func(m listingMocks, p *domain.Property) {
				m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
			},
			errorIs: domain.ErrInvalidInput,
		},
		{
			name:   "missing_listing",
			actor:  seller,
			update: domain.PropertyUpdate{Price: &newPrice},
			setupMocks: func(m listingMocks, p *domain.Property) {
				m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(nil, domain.ErrNotFound)
			},
			errorIs: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newListing(t)
			p := helpers.CreateTestProperty(ownedBy(seller))
			tt.setupMocks(m, p)

			got, err := svc.Update(context.Background(), tt.actor, p.ID, tt.update)
			if tt.errorIs != nil {
				assert.ErrorIs(t, err, tt.errorIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, newPrice, got.Price)
		})
	}
}

func TestListingService_Delete(t *testing.T) {
	seller := helpers.SessionUser("seller")
	svc, m := newListing(t)
	p := helpers.CreateTestProperty(ownedBy(seller))

	m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
	m.repo.EXPECT().Delete(gomock.Any(), p.ID).Return(nil)
	m.catalog.EXPECT().Invalidate(gomock.Any()).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), seller, p.ID))
}

func TestListingService_UploadImage(t *testing.T) {
	seller := helpers.SessionUser("seller")

	t.Run("first_image_becomes_cover", func(t *testing.T) {
		svc, m := newListing(t)
		p := helpers.CreateTestProperty(ownedBy(seller), func(p *domain.Property) {
			p.Image = ""
			p.Images = nil
		})

		m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
			func(_ context.Context, key string, _ any, _ string) (string, error) {
				assert.True(t, strings.HasPrefix(key, "properties/"+p.ID.String()+"/images/"))
				assert.True(t, strings.HasSuffix(key, ".png"))
				return "https://cdn.example.com/" + key, nil
			})
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.catalog.EXPECT().Invalidate(gomock.Any()).Return(nil)

		got, err := svc.UploadImage(context.Background(), seller, p.ID, "front.png", "image/png", bytes.NewReader([]byte("png")))
		require.NoError(t, err)
		require.Len(t, got.Images, 1)
		assert.Equal(t, got.Images[0], got.Image)
	})

	t.Run("extension_follows_content_type", func(t *testing.T) {
		svc, m := newListing(t)
		p := helpers.CreateTestProperty(ownedBy(seller))

		var stored string
		m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
			func(_ context.Context, key string, _ any, _ string) (string, error) {
				stored = key
				return "https://cdn.example.com/" + key, nil
			})
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.catalog.EXPECT().Invalidate(gomock.Any()).Return(nil)

		body := []byte("\x89PNG\r\n\x1a\n<script>alert(1)</script>")
		_, err := svc.UploadImage(context.Background(), seller, p.ID, "evil.html", "image/png", bytes.NewReader(body))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stored, ".png"))
		assert.NotContains(t, stored, ".html")
	})

	t.Run("unsupported_type_rejected", func(t *testing.T) {
		svc, _ := newListing(t)
		_, err := svc.UploadImage(context.Background(), seller, uuid.New(), "doc.pdf", "application/pdf", bytes.NewReader(nil))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("orphan_removed_when_update_fails", func(t *testing.T) {
		svc, m := newListing(t)
		p := helpers.CreateTestProperty(ownedBy(seller))

		m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg").Return("https://cdn.example.com/x.jpg", nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		m.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.UploadImage(context.Background(), seller, p.ID, "x.jpg", "image/jpeg", bytes.NewReader([]byte("jpg")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to attach image")
	})
}

func TestListingService_UploadBrochure(t *testing.T) {
	seller := helpers.SessionUser("seller")

	t.Run("stores_pdf_under_listing", func(t *testing.T) {
		svc, m := newListing(t)
		p := helpers.CreateTestProperty(ownedBy(seller))

		m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").Return("url", nil)

		key, err := svc.UploadBrochure(context.Background(), seller, p.ID, bytes.NewReader([]byte("%PDF")))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "properties/"+p.ID.String()+"/brochure-"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
	})

	t.Run("other_sellers_listing_forbidden", func(t *testing.T) {
		svc, m := newListing(t)
		p := helpers.CreateTestProperty(ownedBy(helpers.SessionUser("other")))

		m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)

		_, err := svc.UploadBrochure(context.Background(), seller, p.ID, bytes.NewReader(nil))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestListingService_Import(t *testing.T) {
	seller := helpers.SessionUser("seller")
	svc, m := newListing(t)

	rows := helpers.CreateTestProperties(4)
	rows[1].Title = ""
	rows[3].Area = 0

	m.users.EXPECT().FindByID(gomock.Any(), seller.ID).Return(&domain.User{Phone: "555"}, nil)
	m.repo.EXPECT().SaveBatch(gomock.Any(), gomock.Len(2)).DoAndReturn(
		func(_ context.Context, ps []domain.Property) error {
			for _, p := range ps {
				assert.True(t, p.OwnedBy(seller.ID))
				assert.Equal(t, "555", p.SellerPhone)
			}
			return nil
		})
	m.catalog.EXPECT().Invalidate(gomock.Any()).Return(nil)

	res, err := svc.Import(context.Background(), seller, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Rejected)
	require.Len(t, res.Errors, 2)
	assert.True(t, strings.HasPrefix(res.Errors[0], "row 2:"))
	assert.True(t, strings.HasPrefix(res.Errors[1], "row 4:"))
}

func TestListingService_EnrichFromBrochure(t *testing.T) {
	svc, m := newListing(t)
	p := helpers.CreateTestProperty()

	m.repo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, got *domain.Property) error {
			assert.Equal(t, []string{"Parking", "Gym", "Swimming Pool"}, got.Amenities)
			return nil
		})
	m.catalog.EXPECT().Invalidate(gomock.Any()).Return(nil)

	require.NoError(t, svc.EnrichFromBrochure(context.Background(), p.ID, []string{"gym", "Swimming Pool"}))
}

func TestMergeAmenities(t *testing.T) {
	tests := []struct {
		name  string
		base  []string
		extra []string
		want  []string
	}{
		{name: "empty", want: []string{}},
		{name: "dedupes_case_insensitively", base: []string{"Gym"}, extra: []string{" gym ", "Lift"}, want: []string{"Gym", "Lift"}},
		{name: "drops_blanks", base: []string{"", "Parking"}, extra: []string{" "}, want: []string{"Parking"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.MergeAmenities(tt.base, tt.extra))
		})
	}
}
