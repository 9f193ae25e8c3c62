package benchmarks

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"

	redis_a "github.com/amitabhanmolpain/realestate-be/internal/adapters/redis_adapter"
	"github.com/amitabhanmolpain/realestate-be/internal/core/catalog"
	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/core/services"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/sheet"
	"github.com/amitabhanmolpain/realestate-be/internal/workers"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
	"github.com/amitabhanmolpain/realestate-be/test/mocks"
)

func ptr[T any](v T) *T { return &v }

func BenchmarkCatalogView(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		list := generateCatalog(size)

		b.Run("Search/"+strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = catalog.Search(list, "whitefield")
			}
		})

		b.Run("Filter/"+strconv.Itoa(size), func(b *testing.B) {
			filters := domain.FilterSet{
				PriceRange: domain.PriceRange{Min: ptr(int64(5000000)), Max: ptr(int64(20000000))},
				City:       ptr("Mumbai"),
			}
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = catalog.Filter(list, filters)
			}
		})

		b.Run("Sort/"+strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = catalog.Sort(list, domain.SortPriceLow)
			}
		})

		b.Run("Apply/"+strconv.Itoa(size), func(b *testing.B) {
			v := catalog.NewView()
			v.SetQuery("bhk")
			v.SetFilters(domain.FilterSet{Bedrooms: ptr(3)})
			v.SetSort(domain.SortNewest)

			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = v.Apply(list)
			}
		})
	}
}

func BenchmarkCatalogService_Browse(b *testing.B) {
	mr, err := miniredis.Run()
	if err != nil {
		b.Fatal(err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctrl := gomock.NewController(b)
	repo := mocks.NewMockPropertyRepository(ctrl)
	repo.EXPECT().ListAvailable(gomock.Any()).Return(generateCatalog(2000), nil).AnyTimes()

	cache := redis_a.NewCache(client, 0, helpers.TestLogger())
	svc := services.NewCatalogService(repo, cache, services.CatalogOptions{}, helpers.TestLogger())
	ctx := context.Background()

	params := ports.BrowseParams{
		Query:   "mumbai",
		Filters: domain.FilterSet{Bedrooms: ptr(2)},
		Sort:    domain.SortPriceHigh,
		Page:    1,
		PerPage: 12,
	}

	b.Run("Warm", func(b *testing.B) {
		if _, err := svc.Browse(ctx, params); err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = svc.Browse(ctx, params)
		}
	})

	b.Run("Cold", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = svc.Invalidate(ctx)
			_, _ = svc.Browse(ctx, params)
		}
	})
}

func BenchmarkSpreadsheet(b *testing.B) {
	list := generateCatalog(500)
	data, err := sheet.Bytes(list)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Write", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = sheet.Bytes(list)
		}
	})

	b.Run("Read", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _, _ = sheet.Read(data)
		}
	})
}

func BenchmarkExtractAmenities(b *testing.B) {
	text := brochureText(20)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = workers.ExtractAmenities(text)
	}
}

func BenchmarkCalculateEMI(b *testing.B) {
	in := domain.DefaultLoan(12500000)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = domain.CalculateEMI(in)
	}
}
