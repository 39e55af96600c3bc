package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"driverledger/models"
)

type FixedCostRepository struct {
	db *gorm.DB
}

func NewFixedCostRepository(db *gorm.DB) *FixedCostRepository {
	return &FixedCostRepository{db: db}
}

func (r *FixedCostRepository) ListByUser(userID string) ([]models.FixedCost, error) {
	var costs []models.FixedCost
	err := r.db.Where("user_id = ?", userID).Order("name").Find(&costs).Error
	return costs, err
}

func (r *FixedCostRepository) FindByID(id string) (*models.FixedCost, error) {
	var cost models.FixedCost
	if err := r.db.Where("id = ?", id).First(&cost).Error; err != nil {
		return nil, err
	}
	return &cost, nil
}

func (r *FixedCostRepository) Create(cost *models.FixedCost) error {
	return r.db.Create(cost).Error
}

func (r *FixedCostRepository) Save(cost *models.FixedCost) error {
	return r.db.Save(cost).Error
}

// Delete removes the definition together with its monthly records.
func (r *FixedCostRepository) Delete(cost *models.FixedCost) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fixed_cost_id = ?", cost.ID).Delete(&models.FixedCostRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(cost).Error
	})
}

// TotalByUser sums the amounts of every definition of the user.
func (r *FixedCostRepository) TotalByUser(userID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.FixedCost{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Row().Scan(&total)
	return total, err
}

// EnsureMonth creates the month's record for every definition that lacks
// one. It returns how many records were created.
func (r *FixedCostRepository) EnsureMonth(userID string, year int, month time.Month) (int, error) {
	costs, err := r.ListByUser(userID)
	if err != nil {
		return 0, err
	}

	from, to := models.MonthRange(year, month)
	created := 0
	for _, cost := range costs {
		var existing models.FixedCostRecord
		err := r.db.Where("fixed_cost_id = ? AND due_date >= ? AND due_date < ?", cost.ID, from, to).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		record := models.FixedCostRecord{
			ID:          uuid.New().String(),
			UserID:      userID,
			FixedCostID: cost.ID,
			DueDate:     models.ClampDay(year, month, cost.DueDay),
			Amount:      cost.Amount,
		}
		ok, err := r.createRecordIfAbsent(&record)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// createRecordIfAbsent inserts record unless the cost already has one for
// the same due date, which happens when two callers materialise a month at
// once.
func (r *FixedCostRepository) createRecordIfAbsent(record *models.FixedCostRecord) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RecordsForMonth lists the user's records due in the month, earliest first.
func (r *FixedCostRepository) RecordsForMonth(userID string, year int, month time.Month) ([]models.FixedCostRecord, error) {
	from, to := models.MonthRange(year, month)
	var records []models.FixedCostRecord
	err := r.db.Preload("FixedCost").
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, from, to).
		Order("due_date").
		Find(&records).Error
	return records, err
}

func (r *FixedCostRepository) FindRecord(id string) (*models.FixedCostRecord, error) {
	var record models.FixedCostRecord
	if err := r.db.Preload("FixedCost").Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FixedCostRepository) SaveRecordPayment(record *models.FixedCostRecord) error {
	return r.db.Model(record).Updates(map[string]interface{}{
		"paid":           record.Paid,
		"paid_at":        record.PaidAt,
		"payment_method": record.PaymentMethod,
	}).Error
}

// PendingUnreminded returns unpaid records due in [from, to] that have not
// been reminded yet, across all users.
func (r *FixedCostRepository) PendingUnreminded(from, to time.Time) ([]models.FixedCostRecord, error) {
	var records []models.FixedCostRecord
	err := r.db.Preload("FixedCost").
		Where("paid = ? AND reminded_at IS NULL AND due_date >= ? AND due_date <= ?", false, from, to).
		Order("due_date").
		Find(&records).Error
	return records, err
}

func (r *FixedCostRepository) MarkReminded(recordID string, at time.Time) error {
	return r.db.Model(&models.FixedCostRecord{}).Where("id = ?", recordID).Update("reminded_at", at).Error
}
