package waste

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/rubeenavs/foodwise/domain"
	"github.com/rubeenavs/foodwise/entities"
)

type (
	WasteService interface {
		GetWasteSummary(ctx context.Context, userID string) (domain.WasteSummaryResponse, error)
		GetWeeklyWaste(ctx context.Context, userID string) ([]domain.WeeklyWasteResponse, error)
		StoreWeeklyWaste(ctx context.Context) error
	}

	wasteService struct {
		wasteRepository WasteRepository
	}
)

func NewWasteService(wasteRepository WasteRepository) WasteService {
	return &wasteService{wasteRepository: wasteRepository}
}

func (s *wasteService) GetWasteSummary(ctx context.Context, userID string) (domain.WasteSummaryResponse, error) {
	expired, err := s.wasteRepository.GetExpiredCost(ctx, userID)
	if err != nil {
		return domain.WasteSummaryResponse{}, err
	}

	portion, err := s.wasteRepository.GetPortionWaste(ctx, userID)
	if err != nil {
		return domain.WasteSummaryResponse{}, err
	}

	return domain.WasteSummaryResponse{
		ExpiredWaste: expired,
		PortionWaste: portion,
	}, nil
}

func (s *wasteService) GetWeeklyWaste(ctx context.Context, userID string) ([]domain.WeeklyWasteResponse, error) {
	rows, err := s.wasteRepository.GetWeeklyWaste(ctx, userID, 7)
	if err != nil {
		return nil, err
	}

	response := make([]domain.WeeklyWasteResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, domain.WeeklyWasteResponse{
			WeekStart:    row.WeekStart,
			ExpiredWaste: row.ExpiredWaste,
			PortionWaste: row.PortionWaste,
		})
	}
	return response, nil
}

// StoreWeeklyWaste snapshots every user's waste summary into the weekly table.
// Runs from the Sunday-midnight scheduled job; one user failing does not stop
// the rollup for the rest.
func (s *wasteService) StoreWeeklyWaste(ctx context.Context) error {
	userIDs, err := s.wasteRepository.GetUserIDs(ctx)
	if err != nil {
		return err
	}

	weekStart := startOfWeek(time.Now())
	for _, userID := range userIDs {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			log.Printf("weekly waste: skipping invalid user id %q", userID)
			continue
		}

		summary, err := s.GetWasteSummary(ctx, userID)
		if err != nil {
			log.Printf("weekly waste: failed to summarize user %s: %v", userID, err)
			continue
		}

		row := &entities.WeeklyWaste{
			ID:           uuid.New(),
			UserID:       userUUID,
			WeekStart:    weekStart,
			ExpiredWaste: summary.ExpiredWaste,
			PortionWaste: summary.PortionWaste,
		}
		if err := s.wasteRepository.CreateWeeklyWaste(ctx, row); err != nil {
			log.Printf("weekly waste: failed to store row for user %s: %v", userID, err)
		}
	}

	return nil
}

// startOfWeek returns midnight of the most recent Sunday in t's location.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for t.Weekday() != time.Sunday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}
