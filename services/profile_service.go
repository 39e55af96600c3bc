package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverledger/models"
	"driverledger/repositories"
)

type ProfileInput struct {
	CarModel         string
	Plate            string
	Odometer         int
	AverageEconomy   float64
	RevenueGoal      float64
	GoalPeriod       models.GoalPeriod
	GoalType         models.GoalType
	WorkDaysPerWeek  int
	MinValuePerKm    float64
	TargetValuePerKm float64
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the user's profile, or nil when it was never created.
func (s *ProfileService) Get(userID string) (*models.VehicleProfile, error) {
	profile, err := repositories.NewProfileRepository(s.db).FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return profile, err
}

// InitialSetup reports whether odometer and economy are still editable,
// i.e. no refill has been recorded yet.
func (s *ProfileService) InitialSetup(userID string) (bool, error) {
	has, err := repositories.NewRefillRepository(s.db).HasAny(userID)
	return !has, err
}

// Save creates or updates the profile. Odometer and average economy are
// only taken from the input during the initial setup.
func (s *ProfileService) Save(userID string, in ProfileInput) (*models.VehicleProfile, error) {
	initial, err := s.InitialSetup(userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.VehicleProfile{ID: uuid.New().String(), UserID: userID}
	}

	if !in.GoalPeriod.Valid() {
		in.GoalPeriod = models.GoalMonthly
	}
	if !in.GoalType.Valid() {
		in.GoalType = models.GoalGross
	}
	if in.WorkDaysPerWeek < 0 || in.WorkDaysPerWeek > 7 {
		return nil, fmt.Errorf("work days per week must be between 0 and 7")
	}

	profile.CarModel = in.CarModel
	profile.Plate = in.Plate
	if initial {
		profile.Odometer = max(in.Odometer, 0)
		profile.AverageEconomy = max(in.AverageEconomy, 0)
	}
	profile.RevenueGoal = max(in.RevenueGoal, 0)
	profile.GoalPeriod = in.GoalPeriod
	profile.GoalType = in.GoalType
	profile.WorkDaysPerWeek = in.WorkDaysPerWeek
	profile.MinValuePerKm = in.MinValuePerKm
	profile.TargetValuePerKm = in.TargetValuePerKm

	if err := repositories.NewProfileRepository(s.db).Save(profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// DeleteAccount removes the user and all of its data.
func (s *ProfileService) DeleteAccount(userID string) error {
	return repositories.NewUserRepository(s.db).Delete(userID)
}
