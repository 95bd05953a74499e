package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonboulle/clockwork"
	"github.com/parisxmas/foreverfamily/internal/db"
	apperrors "github.com/parisxmas/foreverfamily/internal/errors"
	"github.com/parisxmas/foreverfamily/internal/models"
	"github.com/parisxmas/foreverfamily/internal/repository"
)

// StepInput is the create payload. Steppers may arrive as a number or a
// string.
type StepInput struct {
	Location      string `json:"location"`
	City          string `json:"city"`
	Area          string `json:"area"`
	Steppers      any    `json:"steppers"`
	Status        string `json:"status"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Purpose       string `json:"purpose"`
	Outcome       string `json:"outcome"`
	CoordinatedBy string `json:"coordinatedBy"`
}

type StepService struct {
	steps *repository.StepRepo
	clock clockwork.Clock
}

func NewStepService(steps *repository.StepRepo, clock clockwork.Clock) *StepService {
	return &StepService{steps: steps, clock: clock}
}

func (s *StepService) List() []db.Record {
	return s.steps.List()
}

func (s *StepService) Create(in StepInput) (db.Record, error) {
	id, _ := stamp(s.clock)
	step := &models.Step{
		ID:            id,
		Location:      in.Location,
		City:          in.City,
		Area:          in.Area,
		Steppers:      parseLeadingInt(in.Steppers),
		Status:        orDefault(in.Status, models.DefaultStepStatus),
		StartTime:     in.StartTime,
		EndTime:       nullable(in.EndTime),
		Purpose:       in.Purpose,
		Outcome:       nullable(in.Outcome),
		CoordinatedBy: orDefault(in.CoordinatedBy, models.DefaultCoordinatedBy),
	}

	rec, err := s.steps.Create(step)
	if err != nil {
		return nil, apperrors.Internal("failed to save step", err)
	}
	// The raw status is logged, so an omitted one shows up empty.
	slog.Info("[STEP] New step added", "location", step.Location, "status", in.Status)
	return rec, nil
}

// Update shallow-merges patch over the step whose id renders as id.
func (s *StepService) Update(id string, patch map[string]any) (db.Record, error) {
	rec, err := s.steps.Merge(id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Step not found.")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to save step", err)
	}
	slog.Info("[STEP] step updated", "id", id, "fields", len(patch))
	return rec, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// parseLeadingInt reads an integer the lenient way form fields need:
// leading whitespace and an optional sign, then as many decimal digits as
// present. Numbers are truncated toward zero. Anything unreadable is 0.
func parseLeadingInt(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return truncate(f)
	case float64:
		return truncate(n)
	case string:
		return parseLeadingDigits(n)
	default:
		return 0
	}
}

func truncate(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

func parseLeadingDigits(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
