package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
	"github.com/dmitrijs2005/deadswitch/internal/server/objectstore"
)

// MessageStore hands out presigned URLs for sealed message blobs.
type MessageStore interface {
	PresignPut(ctx context.Context, owner string) (locator string, url string, err error)
	PresignGet(ctx context.Context, locator string) (string, error)
}

// VaultService keeps balances and the sealed message descriptor. Funds leave
// a vault only through withdrawals before trigger and payouts after.
type VaultService struct {
	base
	store MessageStore
}

func NewVaultService(d Deps, store MessageStore) *VaultService {
	return &VaultService{base: newBase(d, "vault"), store: store}
}

func (s *VaultService) Deposit(ctx context.Context, owner string, amount int64) (int64, error) {
	var balance int64
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		sw, err := s.lockSwitch(ctx, tx, owner)
		if err != nil {
			return err
		}
		if amount <= 0 {
			return common.ErrorInvalidAmount
		}
		if sw.Triggered {
			return common.ErrorTriggered
		}

		repo := s.repomanager.Vaults(tx)
		v, err := repo.Get(ctx, owner)
		if err != nil {
			return err
		}
		if amount > math.MaxInt64-v.Balance {
			return fmt.Errorf("%w: balance would overflow", common.ErrorInvalidAmount)
		}
		balance, err = repo.AddBalance(ctx, owner, amount)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "deposit", "owner", owner, "amount", amount, "balance", balance)
	return balance, nil
}

func (s *VaultService) Withdraw(ctx context.Context, owner string, amount int64) (int64, error) {
	var balance int64
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		sw, err := s.lockSwitch(ctx, tx, owner)
		if err != nil {
			return err
		}
		if sw.Triggered {
			return common.ErrorTriggered
		}
		if amount <= 0 {
			return common.ErrorInvalidAmount
		}

		repo := s.repomanager.Vaults(tx)
		v, err := repo.Get(ctx, owner)
		if err != nil {
			return err
		}
		if amount > v.Balance {
			return common.ErrorInsufficientBalance
		}
		balance, err = repo.AddBalance(ctx, owner, -amount)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "withdraw", "owner", owner, "amount", amount, "balance", balance)
	return balance, nil
}

// GetBalance is 0 for owners without a vault.
func (s *VaultService) GetBalance(ctx context.Context, owner string) (int64, error) {
	v, err := s.repomanager.Vaults(s.db).Get(ctx, owner)
	if errors.Is(err, common.ErrorNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v.Balance, nil
}

// SetMessage records the hash and locator of an encrypted message,
// replacing any earlier one.
func (s *VaultService) SetMessage(ctx context.Context, owner string, msg models.Message) error {
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.lockSwitch(ctx, tx, owner); err != nil {
			return err
		}
		if err := validateMessage(msg); err != nil {
			return err
		}
		return s.repomanager.Vaults(tx).SetMessage(ctx, owner, msg)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "message set", "owner", owner, "hash", msg.Hash)
	return nil
}

func validateMessage(msg models.Message) error {
	if msg.Hash == "" || len(msg.Hash) > models.MaxMessageHashLen {
		return common.ErrorInvalidMessage
	}
	for i := 0; i < len(msg.Hash); i++ {
		if msg.Hash[i] > 0x7f {
			return common.ErrorInvalidMessage
		}
	}
	if msg.Locator == "" || len([]rune(msg.Locator)) > models.MaxMessageLocatorLen {
		return common.ErrorInvalidMessage
	}
	return nil
}

// GetMessage returns common.ErrorNotFound when no message was stored.
func (s *VaultService) GetMessage(ctx context.Context, owner string) (*models.Message, error) {
	v, err := s.repomanager.Vaults(s.db).Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if v.Message == nil {
		return nil, common.ErrorNotFound
	}
	return v.Message, nil
}

// PresignMessageUpload reserves an object key for owner's next message.
func (s *VaultService) PresignMessageUpload(ctx context.Context, owner string) (*models.MessageUpload, error) {
	if _, err := s.repomanager.Switches(s.db).Get(ctx, owner); err != nil {
		return nil, err
	}
	locator, url, err := s.store.PresignPut(ctx, owner)
	if err != nil {
		s.logger.Error(ctx, "presign upload failed", "owner", owner, "error", err)
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}
	return &models.MessageUpload{Locator: locator, URL: url}, nil
}

func (s *VaultService) PresignMessageDownload(ctx context.Context, owner string) (string, error) {
	msg, err := s.GetMessage(ctx, owner)
	if err != nil {
		return "", err
	}
	url, err := s.store.PresignGet(ctx, msg.Locator)
	if errors.Is(err, objectstore.ErrNotObjectLocator) {
		return "", common.ErrorNotFound
	}
	if err != nil {
		s.logger.Error(ctx, "presign download failed", "owner", owner, "error", err)
		return "", fmt.Errorf("error presigning download: %w", err)
	}
	return url, nil
}

// payout moves amount out of owner's vault to recipient and records it.
// It runs inside the caller's transaction.
func (b *base) payout(ctx context.Context, tx dbx.DBTX, p *models.Payout) error {
	if _, err := b.repomanager.Vaults(tx).AddBalance(ctx, p.Owner, -p.Amount); err != nil {
		return fmt.Errorf("error debiting vault: %w", err)
	}
	if err := b.repomanager.Payouts(tx).Create(ctx, p); err != nil {
		return fmt.Errorf("error recording payout: %w", err)
	}
	return nil
}
