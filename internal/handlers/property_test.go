package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/handlers"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
	"github.com/amitabhanmolpain/realestate-be/test/mocks"
)

func TestPropertyHandler_Browse(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
		errorContains  string
	}{
		{
			name:  "passes_filters_through",
			query: "?q=sea&city=Mumbai&type=Villa&bedrooms=0&min_price=0&max_price=9000000&sort=price-low&page=2&per_page=6",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					Browse(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p ports.BrowseParams) (*ports.BrowseResult, error) {
						assert.Equal(t, "sea", p.Query)
						require.NotNil(t, p.Filters.City)
						assert.Equal(t, "Mumbai", *p.Filters.City)
						require.NotNil(t, p.Filters.Type)
						assert.Equal(t, "Villa", *p.Filters.Type)
						require.NotNil(t, p.Filters.Bedrooms)
						assert.Equal(t, 0, *p.Filters.Bedrooms)
						require.NotNil(t, p.Filters.PriceRange.Min)
						assert.Equal(t, int64(0), *p.Filters.PriceRange.Min)
						require.NotNil(t, p.Filters.PriceRange.Max)
						assert.Equal(t, int64(9000000), *p.Filters.PriceRange.Max)
						assert.Equal(t, 2, p.Page)
						assert.Equal(t, 6, p.PerPage)
						return &ports.BrowseResult{Items: []domain.Property{}}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "absent_filters_place_no_constraint",
			query: "",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					Browse(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p ports.BrowseParams) (*ports.BrowseResult, error) {
						assert.Nil(t, p.Filters.City)
						assert.Nil(t, p.Filters.Bedrooms)
						assert.Nil(t, p.Filters.PriceRange.Min)
						return &ports.BrowseResult{}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown_sort",
			query:          "?sort=cheapest",
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_price",
			query:          "?min_price=abc",
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero_page",
			query:          "?page=0",
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown_property_type",
			query:          "?type=Castle",
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			errorContains:  "unknown property type",
		},
		{
			name:           "both_prices_malformed_reports_min_first",
			query:          "?max_price=x&min_price=y",
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			errorContains:  "min_price",
		},
		{
			name:           "both_paging_values_malformed_reports_page_first",
			query:          "?per_page=0&page=0",
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			errorContains:  "page must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := mocks.NewMockCatalogService(ctrl)
			tt.setupMocks(catalog)

			h := handlers.NewPropertyHandler(catalog, helpers.TestLogger())
			req := httptest.NewRequest(http.MethodGet, "/api/v1/properties"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Browse(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.errorContains != "" {
				msg, _ := decodeBody(t, rec)["error"].(string)
				assert.Contains(t, msg, tt.errorContains)
				assert.NotContains(t, msg, "max_price")
				assert.NotContains(t, msg, "per_page")
			}
		})
	}
}

func TestPropertyHandler_Get(t *testing.T) {
	p := helpers.CreateTestProperty()

	tests := []struct {
		name           string
		id             string
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
	}{
		{
			name: "found",
			id:   p.ID.String(),
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().Get(gomock.Any(), p.ID).Return(p, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_uuid_format",
			id:             "not-a-uuid",
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not_found",
			id:   uuid.NewString(),
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := mocks.NewMockCatalogService(ctrl)
			tt.setupMocks(catalog)

			h := handlers.NewPropertyHandler(catalog, helpers.TestLogger())
			req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()

			h.Get(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, p.Title, decodeBody(t, rec)["title"])
			}
		})
	}
}

func TestPropertyHandler_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogService(ctrl)
	id := uuid.New()
	catalog.EXPECT().RecordView(gomock.Any(), id).Return(nil)

	h := handlers.NewPropertyHandler(catalog, helpers.TestLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/"+id.String()+"/view", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.View(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPropertyHandler_Featured(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogService(ctrl)
	catalog.EXPECT().Featured(gomock.Any(), 3).Return(helpers.CreateTestProperties(3), nil)

	h := handlers.NewPropertyHandler(catalog, helpers.TestLogger())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/featured?limit=3", nil)
	rec := httptest.NewRecorder()

	h.Featured(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["properties"], 3)
}

func TestPropertyHandler_EMI(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		wantLoan       string
	}{
		{name: "default_terms_from_price", query: "?price=10000000", expectedStatus: http.StatusOK, wantLoan: "8000000"},
		{name: "custom_down_payment", query: "?price=10000000&down_payment=50", expectedStatus: http.StatusOK, wantLoan: "5000000"},
		{name: "explicit_principal", query: "?principal=2500000&rate=9&tenure=15", expectedStatus: http.StatusOK, wantLoan: "2500000"},
		{name: "down_payment_too_small", query: "?price=10000000&down_payment=5", expectedStatus: http.StatusBadRequest},
		{name: "rate_out_of_range", query: "?principal=2500000&rate=20", expectedStatus: http.StatusBadRequest},
		{name: "tenure_out_of_range", query: "?principal=2500000&tenure=40", expectedStatus: http.StatusBadRequest},
		{name: "no_amount", query: "?rate=9", expectedStatus: http.StatusBadRequest},
		{name: "malformed_rate", query: "?principal=100&rate=abc", expectedStatus: http.StatusBadRequest},
		{name: "nan_principal", query: "?principal=NaN", expectedStatus: http.StatusBadRequest},
		{name: "infinite_principal", query: "?principal=Inf", expectedStatus: http.StatusBadRequest},
		{name: "nan_rate", query: "?principal=2500000&rate=NaN", expectedStatus: http.StatusBadRequest},
		{name: "nan_down_payment", query: "?price=10000000&down_payment=NaN", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := handlers.NewPropertyHandler(mocks.NewMockCatalogService(ctrl), helpers.TestLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/emi"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.EMI(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.wantLoan != "" {
				body := decodeBody(t, rec)
				assert.Equal(t, tt.wantLoan, body["loan_amount"])
				assert.NotEmpty(t, body["emi"])
			}
		})
	}
}
