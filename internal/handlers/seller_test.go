package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/handlers"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/schema"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
	"github.com/amitabhanmolpain/realestate-be/test/mocks"
)

type sellerMocks struct {
	listings   *mocks.MockListingService
	engagement *mocks.MockEngagementService
	tasks      *mocks.MockTaskQueue
}

func newSellerHandler(t *testing.T) (*handlers.SellerHandler, sellerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := sellerMocks{
		listings:   mocks.NewMockListingService(ctrl),
		engagement: mocks.NewMockEngagementService(ctrl),
		tasks:      mocks.NewMockTaskQueue(ctrl),
	}
	h := handlers.NewSellerHandler(m.listings, m.engagement, m.tasks, schema.MustNew(),
		handlers.SellerLimits{}, helpers.TestLogger())
	return h, m
}

func multipartBody(t *testing.T, field, filename string, content []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

const validListingJSON = `{
	"title": "Garden Villa",
	"description": "Four bedroom villa with a private garden",
	"location": "Koregaon Park, Pune",
	"city": "Pune",
	"property_type": "Villa",
	"price": 32500000,
	"area": 2800,
	"bedrooms": 4,
	"bathrooms": 4,
	"image": "https://images.example.com/villa.jpg",
	"amenities": ["Garden", "Parking"]
}`

func TestSellerHandler_CreateProperty(t *testing.T) {
	seller := helpers.SessionUser("seller")

	tests := []struct {
		name           string
		body           string
		setupMocks     func(sellerMocks)
		expectedStatus int
	}{
		{
			name: "valid_listing",
			body: validListingJSON,
			setupMocks: func(m sellerMocks) {
				m.listings.EXPECT().
					Create(gomock.Any(), seller, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ domain.SessionUser, p *domain.Property) error {
						assert.Equal(t, "Garden Villa", p.Title)
						assert.Equal(t, domain.TypeVilla, p.Type)
						assert.Equal(t, int64(32500000), p.Price)
						p.ID = uuid.New()
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "schema_violation",
			body:           `{"title":"Only a title"}`,
			setupMocks:     func(sellerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown_property_type",
			body:           strings.Replace(validListingJSON, `"Villa"`, `"Castle"`, 1),
			setupMocks:     func(sellerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service_rejects",
			body: validListingJSON,
			setupMocks: func(m sellerMocks) {
				m.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newSellerHandler(t)
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/seller/properties", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreateProperty(rec, asUser(req, seller))

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestSellerHandler_UpdateAndDelete(t *testing.T) {
	seller := helpers.SessionUser("seller")
	id := uuid.New()

	t.Run("partial_update", func(t *testing.T) {
		h, m := newSellerHandler(t)
		m.listings.EXPECT().
			Update(gomock.Any(), seller, id, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ domain.SessionUser, _ uuid.UUID, u domain.PropertyUpdate) (*domain.Property, error) {
				require.NotNil(t, u.Price)
				assert.Equal(t, int64(9900000), *u.Price)
				assert.Nil(t, u.Title)
				return helpers.CreateTestProperty(), nil
			})

		req := httptest.NewRequest(http.MethodPut, "/api/v1/seller/properties/"+id.String(), strings.NewReader(`{"price":9900000}`))
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()

		h.UpdateProperty(rec, asUser(req, seller))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete_not_owner", func(t *testing.T) {
		h, m := newSellerHandler(t)
		m.listings.EXPECT().Delete(gomock.Any(), seller, id).Return(domain.ErrForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/seller/properties/"+id.String(), nil)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()

		h.DeleteProperty(rec, asUser(req, seller))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSellerHandler_UploadImage(t *testing.T) {
	seller := helpers.SessionUser("seller")
	id := uuid.New()
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

	h, m := newSellerHandler(t)
	m.listings.EXPECT().
		UploadImage(gomock.Any(), seller, id, "front.png", "image/png", gomock.Any()).
		Return(helpers.CreateTestProperty(), nil)

	body, contentType := multipartBody(t, "image", "front.png", png)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/seller/properties/"+id.String()+"/images", body)
	req.Header.Set("Content-Type", contentType)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.UploadImage(rec, asUser(req, seller))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSellerHandler_UploadBrochure(t *testing.T) {
	seller := helpers.SessionUser("seller")
	id := uuid.New()

	t.Run("queues_extraction", func(t *testing.T) {
		h, m := newSellerHandler(t)
		key := "properties/" + id.String() + "/brochure-x.pdf"
		gomock.InOrder(
			m.listings.EXPECT().UploadBrochure(gomock.Any(), seller, id, gomock.Any()).Return(key, nil),
			m.tasks.EXPECT().ExtractBrochure(gomock.Any(), id.String(), key).Return(nil),
		)

		body, contentType := multipartBody(t, "brochure", "brochure.pdf", []byte("%PDF-1.4\n%fake"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/seller/properties/"+id.String()+"/brochure", body)
		req.Header.Set("Content-Type", contentType)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()

		h.UploadBrochure(rec, asUser(req, seller))

		assert.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	})

	t.Run("rejects_non_pdf", func(t *testing.T) {
		h, _ := newSellerHandler(t)

		body, contentType := multipartBody(t, "brochure", "brochure.pdf", []byte("plain text pretending"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/seller/properties/"+id.String()+"/brochure", body)
		req.Header.Set("Content-Type", contentType)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()

		h.UploadBrochure(rec, asUser(req, seller))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSellerHandler_InterestsAndVisits(t *testing.T) {
	seller := helpers.SessionUser("seller")

	t.Run("filters_interests_by_status", func(t *testing.T) {
		h, m := newSellerHandler(t)
		m.engagement.EXPECT().
			SellerInterests(gomock.Any(), seller, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ domain.SessionUser, status *domain.InterestStatus) ([]domain.Interest, error) {
				require.NotNil(t, status)
				assert.Equal(t, domain.InterestNew, *status)
				return []domain.Interest{}, nil
			})

		rec := httptest.NewRecorder()
		h.Interests(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/seller/interests?status=New", nil), seller))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown_visit_status", func(t *testing.T) {
		h, _ := newSellerHandler(t)

		rec := httptest.NewRecorder()
		h.Visits(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/seller/visits?status=Maybe", nil), seller))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update_visit_status", func(t *testing.T) {
		h, m := newSellerHandler(t)
		id := uuid.New()
		m.engagement.EXPECT().
			UpdateVisitStatus(gomock.Any(), seller, id, domain.VisitConfirmed).
			Return(&domain.Visit{ID: id, Status: domain.VisitConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/seller/visits/"+id.String(), strings.NewReader(`{"status":"Confirmed"}`))
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()

		h.UpdateVisit(rec, asUser(req, seller))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Confirmed", decodeBody(t, rec)["status"])
	})

	t.Run("update_interest_of_other_seller", func(t *testing.T) {
		h, m := newSellerHandler(t)
		id := uuid.New()
		m.engagement.EXPECT().
			UpdateInterestStatus(gomock.Any(), seller, id, domain.InterestContacted).
			Return(nil, domain.ErrForbidden)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/seller/interests/"+id.String(), strings.NewReader(`{"status":"Contacted"}`))
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()

		h.UpdateInterest(rec, asUser(req, seller))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDashboardHandler(t *testing.T) {
	seller := helpers.SessionUser("seller")
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)
	svc.EXPECT().Stats(gomock.Any(), seller).Return(&domain.SellerStats{TotalProperties: 3}, nil)
	svc.EXPECT().RecentActivity(gomock.Any(), seller, 5).Return([]domain.Activity{}, nil)

	h := handlers.NewDashboardHandler(svc, helpers.TestLogger())

	rec := httptest.NewRecorder()
	h.GetDashboard(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/seller/dashboard", nil), seller))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetActivity(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/seller/activity?limit=5", nil), seller))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "activities")
}
