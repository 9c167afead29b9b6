package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/repository"
	"github.com/rs/zerolog"
)

// Resources that can be exported and imported
const (
	ResourceUsers = "users"
	ResourceAds   = "ads"
)

// File formats
const (
	FormatNDJSON = "ndjson"
	FormatJSON   = "json"
	FormatCSV    = "csv"
)

var (
	ErrUnknownResource   = errors.New("unknown resource")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

var (
	userCSVHeader = []string{"id", "firstName", "lastName", "email", "phone", "role", "roleId", "date"}
	adCSVHeader   = []string{"id", "network", "link", "email", "phone", "status"}
)

// ExportService writes the stored lists to files
type ExportService struct {
	users repository.UserRepository
	ads   repository.AdRepository
	log   zerolog.Logger
}

// NewExportService creates a new ExportService
func NewExportService(users repository.UserRepository, ads repository.AdRepository, log zerolog.Logger) *ExportService {
	return &ExportService{
		users: users,
		ads:   ads,
		log:   log.With().Str("service", "export").Logger(),
	}
}

// Export writes every record of resource to w in format and returns how many were written
func (s *ExportService) Export(ctx context.Context, w io.Writer, resource, format string) (int, error) {
	s.log.Info().Str("resource", resource).Str("format", format).Msg("Starting export")

	var (
		count int
		err   error
	)
	switch resource {
	case ResourceUsers:
		users := s.users.All()
		count = len(users)
		err = writeRecords(ctx, w, format, users, userCSVHeader, userRow)
	case ResourceAds:
		ads := s.ads.All()
		count = len(ads)
		err = writeRecords(ctx, w, format, ads, adCSVHeader, adRow)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	if err != nil {
		return 0, err
	}

	s.log.Info().Str("resource", resource).Int("count", count).Msg("Export completed")
	return count, nil
}

func writeRecords[T any](ctx context.Context, w io.Writer, format string, records []T, header []string, row func(T) []string) error {
	switch format {
	case FormatNDJSON:
		enc := json.NewEncoder(w)
		for i, r := range records {
			if i%100 == 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if records == nil {
			records = []T{}
		}
		return enc.Encode(records)

	case FormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write(header); err != nil {
			return err
		}
		for _, r := range records {
			if err := writer.Write(row(r)); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func userRow(u models.User) []string {
	return []string{strconv.Itoa(u.ID), u.FirstName, u.LastName, u.Email, u.Phone, u.Role, u.RoleID, u.Date}
}

func adRow(ad models.Ad) []string {
	return []string{strconv.Itoa(ad.ID), ad.Network, ad.Link, ad.Email, ad.Phone, ad.Status}
}
