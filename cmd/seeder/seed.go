// cmd/seeder/seed.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/schema"
)

type seedUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type seedProperty struct {
	domain.Property
	SellerEmail string `json:"seller_email"`
}

type seedFile struct {
	Users      []seedUser     `json:"users"`
	Properties []seedProperty `json:"properties"`
}

// Result counts what a seeding run created
type Result struct {
	UsersCreated    int
	UsersExisting   int
	PropertiesAdded int
}

// Seeder loads demo accounts and listings
type Seeder struct {
	users      ports.UserRepository
	properties ports.PropertyRepository
	validator  *schema.Validator
	logger     *slog.Logger
}

func NewSeeder(users ports.UserRepository, properties ports.PropertyRepository, validator *schema.Validator, logger *slog.Logger) *Seeder {
	return &Seeder{
		users:      users,
		properties: properties,
		validator:  validator,
		logger:     logger.With(slog.String("component", "seeder")),
	}
}

// Seed validates data against the seed schema, creates the accounts that do
// not exist yet and saves every listing under its seller in one batch.
func (s *Seeder) Seed(ctx context.Context, data []byte) (*Result, error) {
	if err := s.validator.Validate(schema.Seed, data); err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}

	var file seedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	res := &Result{}
	sellers := make(map[string]*domain.User, len(file.Users))

	for _, su := range file.Users {
		u, created, err := s.ensureUser(ctx, su)
		if err != nil {
			return nil, err
		}
		if created {
			res.UsersCreated++
		} else {
			res.UsersExisting++
		}
		sellers[u.Email] = u
	}

	listings := make([]domain.Property, 0, len(file.Properties))
	for i, sp := range file.Properties {
		seller, ok := sellers[domain.NormalizeEmail(sp.SellerEmail)]
		if !ok {
			return nil, fmt.Errorf("property %d: seller %s is not in the seed users", i, sp.SellerEmail)
		}

		p := sp.Property
		id := seller.ID
		p.SellerID = &id
		p.SellerName = seller.Name
		p.SellerEmail = seller.Email
		p.SellerPhone = seller.Phone
		p.Available = p.Status == "" || p.Status == domain.PropertyActive
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("property %d: %w", i, err)
		}
		p.PrepareForStorage()
		listings = append(listings, p)
	}

	if err := s.properties.SaveBatch(ctx, listings); err != nil {
		return nil, fmt.Errorf("failed to save listings: %w", err)
	}
	res.PropertiesAdded = len(listings)

	s.logger.InfoContext(ctx, "seed data loaded",
		slog.Int("users_created", res.UsersCreated),
		slog.Int("users_existing", res.UsersExisting),
		slog.Int("properties", res.PropertiesAdded))
	return res, nil
}

func (s *Seeder) ensureUser(ctx context.Context, su seedUser) (*domain.User, bool, error) {
	existing, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(su.Email))
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, false, fmt.Errorf("failed to look up %s: %w", su.Email, err)
	}

	u, err := domain.NewUser(su.Name, su.Email, su.Password)
	if err != nil {
		return nil, false, err
	}
	u.Phone = su.Phone
	if err := s.users.Save(ctx, u); err != nil {
		return nil, false, fmt.Errorf("failed to save %s: %w", su.Email, err)
	}
	return u, true, nil
}
