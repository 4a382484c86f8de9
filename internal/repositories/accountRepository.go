package repositories

import (
	"TradingJournal/internal/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new instance of AccountRepository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create adds a new Account record to the database
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}
	return r.db.WithContext(ctx).Create(account).Error
}

// FindByID retrieves an Account record by its ID
func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	if id == 0 {
		return nil, errors.New("invalid ID")
	}
	var account models.Account
	err := r.db.WithContext(ctx).First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

// FindAll retrieves all Account records
func (r *AccountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.WithContext(ctx).Order("id ASC").Find(&accounts).Error
	return accounts, err
}

// UpdateBalance sets the balance for a specific account
func (r *AccountRepository) UpdateBalance(ctx context.Context, id uint, balance float64) error {
	if id == 0 {
		return errors.New("invalid ID")
	}
	return r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).
		Update("balance", balance).Error
}
