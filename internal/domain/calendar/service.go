package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "github.com/yanqian/outfitter/pkg/errors"
	"github.com/yanqian/outfitter/pkg/util"
)

// Service manages the event calendar.
type Service interface {
	List(ctx context.Context, filter Filter) ([]Event, error)
	Today(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, req CreateRequest) (Event, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewService wires up the calendar domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
		logger:   logger.With("component", "calendar.service"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *service) List(ctx context.Context, filter Filter) ([]Event, error) {
	for _, bound := range []string{filter.From, filter.To} {
		if bound == "" {
			continue
		}
		if _, err := time.Parse(util.DateLayout, bound); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "dates must be formatted as YYYY-MM-DD", err)
		}
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCalendarUnavailable, "failed to read calendar", err)
	}

	out := make([]Event, 0, len(events))
	for _, ev := range events {
		// YYYY-MM-DD compares correctly as a string.
		if filter.From != "" && ev.Date < filter.From {
			continue
		}
		if filter.To != "" && ev.Date > filter.To {
			continue
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (s *service) Today(ctx context.Context) ([]Event, error) {
	today := util.Today(s.now)
	return s.List(ctx, Filter{From: today, To: today})
}

func (s *service) Create(ctx context.Context, req CreateRequest) (Event, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Date = strings.TrimSpace(req.Date)
	req.StartTime = strings.TrimSpace(req.StartTime)
	req.Occasion = strings.TrimSpace(req.Occasion)
	req.Notes = strings.TrimSpace(req.Notes)

	if err := s.validate.Struct(req); err != nil {
		return Event{}, apperrors.Wrap(apperrors.CodeInvalidInput, validationMessage(err), err)
	}

	ev := Event{
		ID:        s.newID(),
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		Occasion:  req.Occasion,
		Notes:     req.Notes,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, ev); err != nil {
		return Event{}, apperrors.Wrap(apperrors.CodeCalendarUnavailable, "failed to save event", err)
	}
	s.logger.Info("event created", "id", ev.ID, "date", ev.Date)
	return ev, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "invalid event id", err)
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeCalendarUnavailable, "failed to delete event", err)
	}
	if !ok {
		return apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("event %s not found", id), nil)
	}
	return nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid event"
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "datetime":
		return fmt.Sprintf("%s must match %s", strings.ToLower(fe.Field()), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
	}
}
