package service_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/admin-dashboard/internal/mocks"
	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/repository"
	"github.com/admin-dashboard/internal/service"
	"github.com/rs/zerolog"
)

func benchUsers(b *testing.B, n int) repository.UserRepository {
	b.Helper()
	ctx := context.Background()
	repo := repository.NewUserRepo(ctx, mocks.NewMockStore(), "listUsers", zerolog.Nop())
	forms := make([]models.UserForm, n)
	for i := range forms {
		forms[i] = models.UserForm{
			FirstName: fmt.Sprintf("User%04d", i),
			LastName:  "Tester",
			Email:     fmt.Sprintf("user%04d@test.com", i),
			Phone:     "2052055555",
			Role:      models.RoleEmployee,
		}
	}
	if _, err := repo.BatchInsert(ctx, forms, "1 Jan, 2024"); err != nil {
		b.Fatalf("BatchInsert failed: %v", err)
	}
	return repo
}

// BenchmarkSearch measures one search over 1000 users
func BenchmarkSearch(b *testing.B) {
	repo := benchUsers(b, 1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		repo.Search("user0999")
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkExportCSV measures exporting 1000 users as csv
func BenchmarkExportCSV(b *testing.B) {
	repo := benchUsers(b, 1000)
	ads := repository.NewAdRepo(context.Background(), mocks.NewMockStore(), "listAds", zerolog.Nop())
	export := service.NewExportService(repo, ads, zerolog.Nop())

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := export.Export(context.Background(), io.Discard, service.ResourceUsers, service.FormatCSV); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkImportCSV measures validating and inserting 1000 csv rows
func BenchmarkImportCSV(b *testing.B) {
	var buf bytes.Buffer
	buf.WriteString("firstName,lastName,email,phone,role\n")
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&buf, "User%04d,Tester,user%04d@test.com,2052055555,Employee\n", i, i)
	}
	input := buf.String()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ctx := context.Background()
		store := mocks.NewMockStore()
		users := repository.NewUserRepo(ctx, store, "listUsers", zerolog.Nop())
		ads := repository.NewAdRepo(ctx, store, "listAds", zerolog.Nop())
		imp := service.NewImportService(users, ads, nil, zerolog.Nop())
		b.StartTimer()

		result, err := imp.Import(ctx, strings.NewReader(input), service.ResourceUsers, service.FormatCSV)
		if err != nil || result.Successful != 1000 {
			b.Fatalf("import failed: %v %+v", err, result)
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}
