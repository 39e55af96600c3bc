package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"driverledger/models"
	"driverledger/repositories"
)

// NewFuelTypeOption is the select value asking for a new fuel type.
const NewFuelTypeOption = "add_new_fuel"

type RefillInput struct {
	Date            time.Time
	Odometer        int
	PricePerLiter   float64
	Liters          float64
	TotalCost       float64
	FullTank        bool
	FuelTypeID      string
	NewFuelTypeName string
}

// CompleteCosts derives the one missing value among price per liter, liters
// and total cost from the other two. Totals and liters are rounded to two
// decimals, prices to three.
func (in *RefillInput) CompleteCosts() {
	price := decimal.NewFromFloat(in.PricePerLiter)
	liters := decimal.NewFromFloat(in.Liters)
	total := decimal.NewFromFloat(in.TotalCost)

	switch {
	case in.TotalCost <= 0 && in.PricePerLiter > 0 && in.Liters > 0:
		in.TotalCost = price.Mul(liters).Round(2).InexactFloat64()
	case in.Liters <= 0 && in.PricePerLiter > 0 && in.TotalCost > 0:
		in.Liters = total.Div(price).Round(2).InexactFloat64()
	case in.PricePerLiter <= 0 && in.Liters > 0 && in.TotalCost > 0:
		in.PricePerLiter = total.Div(liters).Round(3).InexactFloat64()
	}
}

type RefillService struct {
	db *gorm.DB
}

func NewRefillService(db *gorm.DB) *RefillService {
	return &RefillService{db: db}
}

// Create records a refill and recomputes the economy of the whole history in
// the same transaction.
func (s *RefillService) Create(userID string, in RefillInput) (*models.Refill, error) {
	in.CompleteCosts()
	if in.PricePerLiter <= 0 || in.Liters <= 0 || in.TotalCost <= 0 {
		return nil, ErrInvalidRefill
	}
	in.Date = models.DateOnly(in.Date)

	var refill *models.Refill
	err := s.db.Transaction(func(tx *gorm.DB) error {
		profiles := repositories.NewProfileRepository(tx)
		refills := repositories.NewRefillRepository(tx)

		profile, err := profiles.FindByUser(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileRequired
		}
		if err != nil {
			return err
		}

		fuelTypeID, err := resolveFuelType(repositories.NewCatalogRepository(tx), in)
		if err != nil {
			return err
		}

		lower, upper, err := refills.OdometerBounds(profile.ID, in.Date)
		if err != nil {
			return err
		}
		if (lower != nil && in.Odometer < *lower) || (upper != nil && in.Odometer > *upper) {
			return ErrInvalidOdometer
		}

		refill = &models.Refill{
			ID:            uuid.New().String(),
			UserID:        userID,
			ProfileID:     profile.ID,
			Date:          in.Date,
			Odometer:      in.Odometer,
			Liters:        in.Liters,
			PricePerLiter: in.PricePerLiter,
			TotalCost:     in.TotalCost,
			FullTank:      in.FullTank,
			FuelTypeID:    fuelTypeID,
		}
		if err := refills.Create(refill); err != nil {
			return fmt.Errorf("create refill: %w", err)
		}

		history, err := refills.ListByProfile(profile.ID)
		if err != nil {
			return err
		}
		RecalculateEconomy(profile, history)
		if err := refills.SaveAverages(history); err != nil {
			return fmt.Errorf("save averages: %w", err)
		}
		if err := profiles.UpdateEconomy(profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		for _, r := range history {
			if r.ID == refill.ID {
				refill.ComputedAverage = r.ComputedAverage
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refill, nil
}

func resolveFuelType(catalog *repositories.CatalogRepository, in RefillInput) (*string, error) {
	switch in.FuelTypeID {
	case "":
		return nil, nil
	case NewFuelTypeOption:
		name := strings.TrimSpace(in.NewFuelTypeName)
		if name == "" {
			return nil, ErrFuelTypeRequired
		}
		fuelType, err := catalog.FindOrCreateFuelType(name)
		if err != nil {
			return nil, err
		}
		return &fuelType.ID, nil
	default:
		ok, err := catalog.FuelTypeExists(in.FuelTypeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotFound
		}
		id := in.FuelTypeID
		return &id, nil
	}
}

// History returns the user's profile and refills newest first, each
// annotated with the economy since the previous refill.
func (s *RefillService) History(userID string) (*models.VehicleProfile, []*models.Refill, error) {
	profile, err := repositories.NewProfileRepository(s.db).FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrProfileRequired
	}
	if err != nil {
		return nil, nil, err
	}

	refills, err := repositories.NewRefillRepository(s.db).ListByProfile(profile.ID)
	if err != nil {
		return nil, nil, err
	}
	AnnotateSincePrevious(refills)

	for i, j := 0, len(refills)-1; i < j; i, j = i+1, j-1 {
		refills[i], refills[j] = refills[j], refills[i]
	}
	return profile, refills, nil
}
