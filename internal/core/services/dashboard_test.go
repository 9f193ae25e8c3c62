package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/core/services"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
	"github.com/amitabhanmolpain/realestate-be/test/mocks"
)

type dashboardMocks struct {
	properties *mocks.MockPropertyRepository
	interests  *mocks.MockInterestRepository
	visits     *mocks.MockVisitRepository
}

func newDashboard(t *testing.T) (*services.DashboardService, dashboardMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		properties: mocks.NewMockPropertyRepository(ctrl),
		interests:  mocks.NewMockInterestRepository(ctrl),
		visits:     mocks.NewMockVisitRepository(ctrl),
	}
	cache, _ := helpers.SetupTestCache(t)
	return services.NewDashboardService(m.properties, m.interests, m.visits, cache, helpers.TestLogger()), m
}

func TestDashboardService_Stats(t *testing.T) {
	svc, m := newDashboard(t)
	seller := helpers.SessionUser("seller")

	m.properties.EXPECT().SellerTotals(gomock.Any(), seller.ID).
		Return(&ports.PropertyTotals{Total: 5, Active: 3, Likes: 40, Views: 900}, nil).Times(1)
	m.interests.EXPECT().CountBySeller(gomock.Any(), seller.ID).
		Return(map[domain.InterestStatus]int{domain.InterestNew: 2, domain.InterestClosed: 4}, nil).Times(1)
	m.visits.EXPECT().CountBySeller(gomock.Any(), seller.ID).
		Return(map[domain.VisitStatus]int{domain.VisitPending: 1, domain.VisitConfirmed: 2, domain.VisitCompleted: 3}, nil).Times(1)

	want := domain.SellerStats{
		TotalProperties:  5,
		ActiveProperties: 3,
		TotalLikes:       40,
		TotalViews:       900,
		TotalInterests:   6,
		NewInterests:     2,
		TotalVisits:      6,
		PendingVisits:    1,
		ConfirmedVisits:  2,
	}

	// second call is served from cache
	for i := 0; i < 2; i++ {
		got, err := svc.Stats(context.Background(), seller)
		require.NoError(t, err)
		assert.Equal(t, want, *got)
	}
}

func TestDashboardService_Stats_Error(t *testing.T) {
	svc, m := newDashboard(t)
	seller := helpers.SessionUser("seller")

	m.properties.EXPECT().SellerTotals(gomock.Any(), seller.ID).Return(nil, errors.New("timeout"))

	_, err := svc.Stats(context.Background(), seller)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestDashboardService_RecentActivity(t *testing.T) {
	seller := helpers.SessionUser("seller")
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	interests := []domain.Interest{
		{ID: uuid.New(), UserName: "i-old", CreatedAt: base},
		{ID: uuid.New(), UserName: "i-new", CreatedAt: base.Add(3 * time.Hour)},
	}
	visits := []domain.Visit{
		{ID: uuid.New(), VisitorName: "v-mid", CreatedAt: base.Add(time.Hour), VisitDate: base.AddDate(0, 0, 2), VisitTime: "11:00"},
		{ID: uuid.New(), VisitorName: "v-newest", CreatedAt: base.Add(5 * time.Hour), VisitDate: base.AddDate(0, 0, 3)},
	}

	tests := []struct {
		name      string
		limit     int
		wantLimit int
		want      []string
	}{
		{name: "merged_newest_first", limit: 0, wantLimit: services.DefaultActivityLimit, want: []string{"v-newest", "i-new", "v-mid", "i-old"}},
		{name: "truncated_to_limit", limit: 2, wantLimit: 2, want: []string{"v-newest", "i-new"}},
		{name: "limit_capped", limit: 500, wantLimit: 50, want: []string{"v-newest", "i-new", "v-mid", "i-old"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDashboard(t)
			m.interests.EXPECT().ListBySeller(gomock.Any(), seller.ID, nil, tt.wantLimit).Return(interests, nil)
			m.visits.EXPECT().ListBySeller(gomock.Any(), seller.ID, nil, 0).Return(visits, nil)

			got, err := svc.RecentActivity(context.Background(), seller, tt.limit)
			require.NoError(t, err)

			names := make([]string, len(got))
			for i, a := range got {
				names[i] = a.UserName
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
