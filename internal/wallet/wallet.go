package wallet

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"gorm.io/gorm"

	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
)

// Service owns the wallet ledger. Balances are computed, never stored, so a
// partially applied mutation can not leave a stale counter behind.
type Service struct {
	db *gorm.DB

	// nil when no Mercado Pago token is configured (demo mode)
	prefClient preference.Client
}

func NewService(db *gorm.DB, mpAccessToken string) (*Service, error) {
	s := &Service{db: db}

	if mpAccessToken != "" {
		cfg, err := mpconfig.New(mpAccessToken)
		if err != nil {
			return nil, fmt.Errorf("mercadopago config: %w", err)
		}
		s.prefClient = preference.NewClient(cfg)
	}

	return s, nil
}

// TopupEnabled reports whether real checkout preferences can be created.
func (s *Service) TopupEnabled() bool {
	return s.prefClient != nil
}

func (s *Service) Balance(ctx context.Context, userID string) (float64, error) {
	var balance float64
	err := s.db.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Select("COALESCE(SUM(CASE WHEN kind = 'credit' THEN amount ELSE -amount END), 0)").
		Where("user_id = ?", userID).
		Scan(&balance).Error
	return balance, err
}

func (s *Service) Transactions(ctx context.Context, userID string) ([]models.WalletTransaction, error) {
	var txs []models.WalletTransaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&txs).Error
	return txs, err
}

func (s *Service) Credit(
	ctx context.Context,
	userID string,
	amount float64,
	reference string,
	note string,
) (*models.WalletTransaction, error) {

	if amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	tx := models.WalletTransaction{
		UserID:    userID,
		Kind:      models.WalletCredit,
		Amount:    amount,
		Reference: reference,
		Note:      note,
	}
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// Debit withdraws from the wallet; the balance check and the insert run in one
// transaction so two concurrent debits can not both pass the check.
func (s *Service) Debit(
	ctx context.Context,
	userID string,
	amount float64,
	reference string,
	note string,
) (*models.WalletTransaction, error) {

	if amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	var created models.WalletTransaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balance float64
		if err := tx.
			Model(&models.WalletTransaction{}).
			Select("COALESCE(SUM(CASE WHEN kind = 'credit' THEN amount ELSE -amount END), 0)").
			Where("user_id = ?", userID).
			Scan(&balance).Error; err != nil {
			return err
		}

		if balance < amount {
			return httperr.ErrBusiness("insufficient_funds")
		}

		created = models.WalletTransaction{
			UserID:    userID,
			Kind:      models.WalletDebit,
			Amount:    amount,
			Reference: reference,
			Note:      note,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// CreateTopupPreference opens a Mercado Pago checkout for a wallet top-up and
// returns the preference id and redirect URL. Callers must check TopupEnabled
// first.
func (s *Service) CreateTopupPreference(
	ctx context.Context,
	userID string,
	amount float64,
) (string, string, error) {

	if amount <= 0 {
		return "", "", httperr.ErrBusiness("invalid_amount")
	}

	resp, err := s.prefClient.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:        "wallet_topup",
				Title:     "Wallet top-up",
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		ExternalReference: userID,
	})
	if err != nil {
		return "", "", fmt.Errorf("create preference: %w", err)
	}

	return resp.ID, resp.InitPoint, nil
}
