package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/admin-dashboard/internal/models"
	"github.com/admin-dashboard/internal/repository"
	"github.com/admin-dashboard/internal/validation"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// LineError is one rejected field of an imported record
type LineError struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult summarizes an import
type ImportResult struct {
	Resource   string        `json:"resource"`
	Total      int           `json:"total"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Errors     []LineError   `json:"errors,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// ImportService appends records read from a file to the stored lists. Every
// record goes through the same validation as the dashboard forms; rejected
// records are reported per line and the rest are inserted in one write.
type ImportService struct {
	users repository.UserRepository
	ads   repository.AdRepository
	clock clock.Clock
	log   zerolog.Logger
}

// NewImportService creates a new ImportService
func NewImportService(users repository.UserRepository, ads repository.AdRepository, c clock.Clock, log zerolog.Logger) *ImportService {
	if c == nil {
		c = clock.New()
	}
	return &ImportService{
		users: users,
		ads:   ads,
		clock: c,
		log:   log.With().Str("service", "import").Logger(),
	}
}

// Import reads resource records from r in format (csv, ndjson or json)
func (s *ImportService) Import(ctx context.Context, r io.Reader, resource, format string) (*ImportResult, error) {
	start := s.clock.Now()
	result := &ImportResult{Resource: resource}

	s.log.Info().Str("resource", resource).Str("format", format).Msg("Starting import")

	var err error
	switch resource {
	case ResourceUsers:
		err = s.importUsers(ctx, r, format, result)
	case ResourceAds:
		err = s.importAds(ctx, r, format, result)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	result.Duration = s.clock.Since(start)

	if err != nil {
		s.log.Error().Err(err).Str("resource", resource).Msg("Import failed")
		return result, err
	}

	s.log.Info().
		Str("resource", resource).
		Int("total", result.Total).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Int64("duration_ms", result.Duration.Milliseconds()).
		Msg("Import completed")
	return result, nil
}

func (s *ImportService) importUsers(ctx context.Context, r io.Reader, format string, result *ImportResult) error {
	var forms []models.UserForm
	accept := func(line int, form models.UserForm) {
		form = trimUserForm(form)
		result.Total++
		if errs := validation.ValidateUserForm(form); !errs.Valid() {
			result.reject(line, errs)
			return
		}
		forms = append(forms, form)
	}

	var err error
	switch format {
	case FormatCSV:
		err = readCSV(ctx, r, func(line int, get func(string) string) {
			accept(line, models.UserForm{
				FirstName: get("firstName"),
				LastName:  get("lastName"),
				Email:     get("email"),
				Phone:     get("phone"),
				Role:      get("role"),
			})
		})
	case FormatNDJSON:
		err = readNDJSON(ctx, r, result, func(line int, u models.User) {
			accept(line, models.FormFromUser(u))
		})
	case FormatJSON:
		err = readJSONArray(ctx, r, result, func(line int, u models.User) {
			accept(line, models.FormFromUser(u))
		})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return err
	}

	inserted, err := s.users.BatchInsert(ctx, forms, s.clock.Now().Format(models.DateLayout))
	result.Successful = len(inserted)
	return err
}

func (s *ImportService) importAds(ctx context.Context, r io.Reader, format string, result *ImportResult) error {
	var ads []models.Ad
	accept := func(line int, ad models.Ad) {
		ad = trimAd(ad)
		result.Total++
		if errs := validation.ValidateAdsForm(ad); !errs.Valid() {
			result.reject(line, errs)
			return
		}
		ads = append(ads, ad)
	}

	var err error
	switch format {
	case FormatCSV:
		err = readCSV(ctx, r, func(line int, get func(string) string) {
			accept(line, models.Ad{
				Network: get("network"),
				Link:    get("link"),
				Email:   get("email"),
				Phone:   get("phone"),
				Status:  get("status"),
			})
		})
	case FormatNDJSON:
		err = readNDJSON(ctx, r, result, accept)
	case FormatJSON:
		err = readJSONArray(ctx, r, result, accept)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return err
	}

	inserted, err := s.ads.BatchInsert(ctx, ads)
	result.Successful = len(inserted)
	return err
}

func (r *ImportResult) reject(line int, errs validation.FieldErrors) {
	r.Failed++
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		r.Errors = append(r.Errors, LineError{Line: line, Field: f, Message: errs[f]})
	}
}

// readCSV calls row for every record after the header. get looks a column up by
// header name, case-insensitively.
func readCSV(ctx context.Context, r io.Reader, row func(line int, get func(string) string)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to read header: %w", err)
	}
	headerMap := make(map[string]int, len(header))
	for i, h := range header {
		headerMap[strings.ToLower(strings.TrimSpace(h))] = i
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if line%1000 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}

		row(line, func(field string) string {
			if idx, ok := headerMap[strings.ToLower(field)]; ok && idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
			return ""
		})
	}
}

// readNDJSON decodes one T per non-blank line. Malformed lines are counted as
// failed records.
func readNDJSON[T any](ctx context.Context, r io.Reader, result *ImportResult, row func(line int, v T)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if line%1000 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}

		var v T
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			result.Total++
			result.Failed++
			result.Errors = append(result.Errors, LineError{
				Line:    line,
				Field:   "json",
				Message: fmt.Sprintf("invalid JSON: %v", err),
			})
			continue
		}
		row(line, v)
	}
	return scanner.Err()
}

// readJSONArray decodes a JSON array of T, the layout written by a json export
// and kept in the store. line is the 1-based position of the element.
func readJSONArray[T any](ctx context.Context, r io.Reader, result *ImportResult, row func(line int, v T)) error {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read JSON array: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("failed to read JSON array: expected '[', got %v", tok)
	}

	line := 0
	for dec.More() {
		line++
		if line%1000 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("element %d: %w", line, err)
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			result.Total++
			result.Failed++
			result.Errors = append(result.Errors, LineError{
				Line:    line,
				Field:   "json",
				Message: fmt.Sprintf("invalid JSON: %v", err),
			})
			continue
		}
		row(line, v)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read JSON array: %w", err)
	}
	return nil
}
