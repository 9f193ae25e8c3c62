package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

func TestVisit_Validate(t *testing.T) {
	tests := []struct {
		name      string
		visit     domain.Visit
		wantError bool
	}{
		{
			name:  "defaults_to_pending",
			visit: domain.Visit{VisitDate: time.Now().AddDate(0, 0, 2), VisitTime: "10:30"},
		},
		{
			name:      "missing_date",
			visit:     domain.Visit{VisitTime: "10:30"},
			wantError: true,
		},
		{
			name:      "missing_time",
			visit:     domain.Visit{VisitDate: time.Now()},
			wantError: true,
		},
		{
			name:      "unknown_status",
			visit:     domain.Visit{VisitDate: time.Now(), VisitTime: "09:00", Status: "Rescheduled"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.visit.Validate()
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.VisitPending, tt.visit.Status)
		})
	}
}

func TestVisitStatus_Open(t *testing.T) {
	assert.True(t, domain.VisitPending.Open())
	assert.True(t, domain.VisitConfirmed.Open())
	assert.False(t, domain.VisitCompleted.Open())
	assert.False(t, domain.VisitCancelled.Open())
}

func TestInterest_Validate(t *testing.T) {
	i := domain.Interest{}
	assert.NoError(t, i.Validate())
	assert.Equal(t, domain.InterestGeneral, i.Type)
	assert.Equal(t, domain.InterestNew, i.Status)

	bad := domain.Interest{Type: "Urgent"}
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidInput)

	closed := domain.Interest{Type: domain.InterestSerious, Status: "Archived"}
	assert.ErrorIs(t, closed.Validate(), domain.ErrInvalidInput)
}
