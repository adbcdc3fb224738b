package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetWasteSummary = "waste summary retrieved successfully"
	MessageSuccessGetWeeklyWaste  = "weekly waste retrieved successfully"

	MessageFailedGetWasteSummary = "failed to retrieve waste summary"
	MessageFailedGetWeeklyWaste  = "failed to retrieve weekly waste"

	ErrWasteDataUnavailable = errors.New("waste data unavailable")
)

type (
	WasteSummaryResponse struct {
		ExpiredWaste float64 `json:"expired_waste"`
		PortionWaste float64 `json:"portion_waste"`
	}

	WeeklyWasteResponse struct {
		WeekStart    time.Time `json:"week_start"`
		ExpiredWaste float64   `json:"expired_waste"`
		PortionWaste float64   `json:"portion_waste"`
	}
)
