// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

var (
	benchCities    = []string{"Mumbai", "Pune", "Bangalore", "Delhi", "Hyderabad", "Chennai"}
	benchLocations = []string{"Andheri West", "Whitefield", "Koregaon Park", "Greater Kailash", "Gachibowli", "Adyar"}
	benchTypes     = []domain.PropertyType{
		domain.TypeApartment, domain.TypeVilla, domain.TypeHouse,
		domain.TypePenthouse, domain.TypeStudio, domain.TypePlot,
	}
	benchAmenities = []string{"Gym", "Swimming Pool", "Parking", "Security", "Lift", "Clubhouse", "Garden"}
)

// generateCatalog builds n available listings with a fixed seed so runs are
// comparable.
func generateCatalog(n int) []domain.Property {
	r := rand.New(rand.NewSource(42))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	list := make([]domain.Property, n)
	for i := range list {
		city := benchCities[r.Intn(len(benchCities))]
		bedrooms := 1 + r.Intn(5)
		list[i] = domain.Property{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("%d BHK %s %d", bedrooms, benchTypes[i%len(benchTypes)], i),
			Description: "Well ventilated home close to schools and the metro",
			Location:    benchLocations[r.Intn(len(benchLocations))] + ", " + city,
			City:        city,
			Type:        benchTypes[r.Intn(len(benchTypes))],
			Price:       int64(2500000 + r.Intn(60000000)),
			Area:        400 + r.Intn(3000),
			Bedrooms:    bedrooms,
			Bathrooms:   1 + r.Intn(bedrooms),
			Image:       fmt.Sprintf("https://images.example.com/p/%d.jpg", i),
			Amenities:   benchAmenities[:1+r.Intn(len(benchAmenities))],
			Featured:    r.Intn(10) == 0,
			Available:   true,
			Status:      domain.PropertyActive,
			PostedDate:  base.Add(-time.Duration(r.Intn(365*24)) * time.Hour),
		}
	}
	return list
}

// brochureText simulates the text of a multi-page brochure.
func brochureText(pages int) string {
	paragraphs := []string{
		"Experience luxury living with a rooftop swimming pool and a fully equipped gymnasium.",
		"Every tower has high speed elevators, 24x7 security with CCTV and power back-up.",
		"Landscaped gardens, a jogging track and a kids play area surround the clubhouse.",
		"Apartments feature a modular kitchen and balconies with sea facing views.",
		"Covered car parking for two vehicles per unit. Rainwater harvesting across the site.",
	}

	var b strings.Builder
	for p := 0; p < pages; p++ {
		for _, para := range paragraphs {
			b.WriteString(para)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
