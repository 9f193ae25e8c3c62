package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/schema"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
	"github.com/amitabhanmolpain/realestate-be/test/mocks"
)

func TestSeeder_DefaultData(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	properties := mocks.NewMockPropertyRepository(ctrl)

	existing := helpers.CreateTestUser(t, "arjun@example.com")
	users.EXPECT().FindByEmail(gomock.Any(), "arjun@example.com").Return(existing, nil)
	users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound).Times(2)
	users.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var saved []domain.Property
	properties.EXPECT().SaveBatch(gomock.Any(), gomock.Len(8)).
		DoAndReturn(func(_ context.Context, ps []domain.Property) error {
			saved = ps
			return nil
		})

	s := NewSeeder(users, properties, schema.MustNew(), helpers.TestLogger())
	res, err := s.Seed(context.Background(), defaultData)
	require.NoError(t, err)

	assert.Equal(t, &Result{UsersCreated: 2, UsersExisting: 1, PropertiesAdded: 8}, res)

	for _, p := range saved {
		require.NotNil(t, p.SellerID)
		assert.NotEmpty(t, p.SellerEmail)
		assert.True(t, p.Available)
		assert.Equal(t, domain.PropertyActive, p.Status)
		if p.SellerEmail == "arjun@example.com" {
			assert.Equal(t, existing.ID, *p.SellerID)
		}
	}
}

func TestSeeder_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		setupMocks func(*mocks.MockUserRepository)
		errContain string
	}{
		{
			name:       "schema_violation",
			data:       `{"users": []}`,
			setupMocks: func(*mocks.MockUserRepository) {},
			errContain: "invalid seed data",
		},
		{
			name: "unknown_seller",
			data: `{"users": [], "properties": [{
				"seller_email": "ghost@example.com", "title": "Flat", "description": "Nice",
				"location": "Andheri", "city": "Mumbai", "property_type": "Apartment",
				"price": 100, "area": 500, "image": "x.jpg"}]}`,
			setupMocks: func(*mocks.MockUserRepository) {},
			errContain: "ghost@example.com",
		},
		{
			name: "lookup_failure",
			data: `{"users": [{"name": "A", "email": "a@example.com", "password": "secret1"}], "properties": []}`,
			setupMocks: func(users *mocks.MockUserRepository) {
				users.EXPECT().FindByEmail(gomock.Any(), "a@example.com").Return(nil, errors.New("db down"))
			},
			errContain: "failed to look up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mocks.NewMockUserRepository(ctrl)
			tt.setupMocks(users)

			s := NewSeeder(users, mocks.NewMockPropertyRepository(ctrl), schema.MustNew(), helpers.TestLogger())
			_, err := s.Seed(context.Background(), []byte(tt.data))
			assert.ErrorContains(t, err, tt.errContain)
		})
	}
}
