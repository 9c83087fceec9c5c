package services

import (
	"time"

	"github.com/shopspring/decimal"
	"pixsoft/internal/models/db_models"
	"pixsoft/pkg/utils"
)

// Days billed per period unit. Monthly and annual values are fixed
// approximations, not calendar-aware.
var periodDayMultipliers = map[db_models.RentalPeriod]int64{
	db_models.PeriodDaily:   1,
	db_models.PeriodWeekly:  7,
	db_models.PeriodMonthly: 30,
	db_models.PeriodAnnual:  365,
}

// RentalQuote is a computed cost breakdown for a prospective rental. It is
// never persisted.
type RentalQuote struct {
	DurationDays    int64
	DurationUnits   int64
	BaseCost        decimal.Decimal
	MaintenanceCost decimal.Decimal
	TotalCost       decimal.Decimal
}

// ComputeRentalQuote prices a booking of the given plan between start and end
// (end exclusive). Partial periods are truncated, never prorated, but any
// positive duration bills at least one full unit.
func ComputeRentalQuote(
	plan *db_models.RentalPlan,
	start, end time.Time,
	includeMaintenance bool,
) (RentalQuote, error) {

	if !plan.Period.Valid() {
		return RentalQuote{}, utils.ErrInvalidRentalPeriod
	}

	durationDays := int64(end.Sub(start) / (24 * time.Hour))
	if durationDays <= 0 {
		return RentalQuote{}, utils.ErrInvalidDateRange
	}

	multiplier := periodDayMultipliers[plan.Period]

	durationUnits := durationDays / multiplier
	if durationUnits < 1 {
		durationUnits = 1
	}

	units := decimal.NewFromInt(durationUnits)
	baseCost := plan.BasePrice.Mul(units)

	maintenanceCost := decimal.Zero
	if includeMaintenance {
		maintenanceCost = plan.MaintenancePrice.Mul(units)
	}

	return RentalQuote{
		DurationDays:    durationDays,
		DurationUnits:   durationUnits,
		BaseCost:        baseCost,
		MaintenanceCost: maintenanceCost,
		TotalCost:       baseCost.Add(maintenanceCost),
	}, nil
}
