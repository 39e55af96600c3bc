package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverledger/models"
	"driverledger/repositories"
)

type FixedCostInput struct {
	Name      string  `form:"name" binding:"required,max=120"`
	Amount    float64 `form:"amount" binding:"gte=0"`
	DueDay    int     `form:"due_day" binding:"required,min=1,max=31"`
	AlertDays int     `form:"alert_days" binding:"gte=0"`
	Notes     string  `form:"notes"`
}

type FixedCostService struct {
	db *gorm.DB
}

func NewFixedCostService(db *gorm.DB) *FixedCostService {
	return &FixedCostService{db: db}
}

func (s *FixedCostService) repo() *repositories.FixedCostRepository {
	return repositories.NewFixedCostRepository(s.db)
}

func (s *FixedCostService) List(userID string) ([]models.FixedCost, error) {
	return s.repo().ListByUser(userID)
}

func (s *FixedCostService) Create(userID string, in FixedCostInput) (*models.FixedCost, error) {
	cost := &models.FixedCost{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Amount:    in.Amount,
		DueDay:    in.DueDay,
		AlertDays: in.AlertDays,
		Notes:     in.Notes,
	}
	if err := s.repo().Create(cost); err != nil {
		return nil, fmt.Errorf("create fixed cost: %w", err)
	}
	return cost, nil
}

// Get returns the definition when it belongs to the user.
func (s *FixedCostService) Get(userID, id string) (*models.FixedCost, error) {
	cost, err := s.repo().FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if cost.UserID != userID {
		return nil, ErrForbidden
	}
	return cost, nil
}

func (s *FixedCostService) Update(userID, id string, in FixedCostInput) (*models.FixedCost, error) {
	cost, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	cost.Name = in.Name
	cost.Amount = in.Amount
	cost.DueDay = in.DueDay
	cost.AlertDays = in.AlertDays
	cost.Notes = in.Notes
	if err := s.repo().Save(cost); err != nil {
		return nil, fmt.Errorf("update fixed cost: %w", err)
	}
	return cost, nil
}

func (s *FixedCostService) Delete(userID, id string) error {
	cost, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.repo().Delete(cost)
}

// EnsureMonth materialises the month's records for every definition.
func (s *FixedCostService) EnsureMonth(userID string, year int, month time.Month) error {
	_, err := s.repo().EnsureMonth(userID, year, month)
	return err
}

// SetPaid updates the paid flag of a record owned by the user. Paid records
// carry today as the payment date; pending ones carry none.
func (s *FixedCostService) SetPaid(userID, recordID string, paid bool, method string, today time.Time) (*models.FixedCostRecord, error) {
	record, err := s.repo().FindRecord(recordID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrForbidden
	}

	record.Paid = paid
	record.PaymentMethod = method
	record.PaidAt = nil
	if paid {
		d := models.DateOnly(today)
		record.PaidAt = &d
	}
	if err := s.repo().SaveRecordPayment(record); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}
	return record, nil
}

// TogglePaid flips the paid flag of a record owned by the user.
func (s *FixedCostService) TogglePaid(userID, recordID string, today time.Time) (*models.FixedCostRecord, error) {
	record, err := s.repo().FindRecord(recordID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrForbidden
	}
	return s.SetPaid(userID, recordID, !record.Paid, record.PaymentMethod, today)
}
