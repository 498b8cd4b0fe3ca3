package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

// BeneficiaryService maintains both allocation tables. The fixed list is
// replaced as a whole; the dynamic list is edited entry by entry and keeps
// its count and sum in a header row.
type BeneficiaryService struct {
	base
}

func NewBeneficiaryService(d Deps) *BeneficiaryService {
	return &BeneficiaryService{base: newBase(d, "beneficiaries")}
}

// lockEditable locks the switch and rejects edits once it has triggered.
func (s *BeneficiaryService) lockEditable(ctx context.Context, tx dbx.DBTX, owner string) error {
	sw, err := s.lockSwitch(ctx, tx, owner)
	if err != nil {
		return err
	}
	if sw.Triggered {
		return common.ErrorFrozen
	}
	return nil
}

// SetBeneficiaries replaces the fixed list. The list must hold 1 to 10
// entries whose percentages sum to exactly 100.
func (s *BeneficiaryService) SetBeneficiaries(ctx context.Context, owner string, list []models.Beneficiary) error {
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.lockEditable(ctx, tx, owner); err != nil {
			return err
		}
		if err := validateFixedList(list); err != nil {
			return err
		}
		return s.repomanager.Beneficiaries(tx).Replace(ctx, owner, list)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "beneficiaries set", "owner", owner, "count", len(list))
	return nil
}

func validateFixedList(list []models.Beneficiary) error {
	if len(list) == 0 {
		return common.ErrorInvalidAllocation
	}
	if len(list) > models.MaxFixedBeneficiaries {
		return common.ErrorTooManyBeneficiaries
	}
	for _, b := range list {
		if b.Recipient == "" || b.Percentage < 0 || b.Percentage > models.FullAllocation {
			return common.ErrorInvalidAllocation
		}
	}
	if models.SumPercentages(list) != models.FullAllocation {
		return common.ErrorInvalidAllocation
	}
	return nil
}

// GetBeneficiaries returns common.ErrorNotFound when no fixed list is set.
func (s *BeneficiaryService) GetBeneficiaries(ctx context.Context, owner string) ([]models.Beneficiary, error) {
	list, err := s.repomanager.Beneficiaries(s.db).List(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, common.ErrorNotFound
	}
	return list, nil
}

// AddBeneficiary appends to the dynamic list and returns the new entry's
// index.
func (s *BeneficiaryService) AddBeneficiary(ctx context.Context, owner, recipient string, percentage int) (int, error) {
	var index int
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.lockEditable(ctx, tx, owner); err != nil {
			return err
		}
		if recipient == "" {
			return common.ErrorInvalidInput
		}
		if percentage < 0 || percentage > models.FullAllocation {
			return common.ErrorInvalidPercentage
		}

		repo := s.repomanager.BeneficiariesV2(tx)
		l, err := repo.EnsureList(ctx, owner)
		if err != nil {
			return err
		}
		if l.Count >= models.MaxDynamicBeneficiaries {
			return common.ErrorCapacityReached
		}
		if l.TotalPercentage+percentage > models.FullAllocation {
			return common.ErrorInvalidPercentage
		}

		index = l.Count
		if err := repo.Insert(ctx, owner, index, models.Beneficiary{Recipient: recipient, Percentage: percentage}); err != nil {
			return err
		}
		l.Count++
		l.TotalPercentage += percentage
		return repo.UpdateList(ctx, l)
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debug(ctx, "beneficiary added", "owner", owner, "index", index, "percentage", percentage)
	return index, nil
}

// RemoveBeneficiary deletes the entry at index; later entries move down by
// one so relative order is kept.
func (s *BeneficiaryService) RemoveBeneficiary(ctx context.Context, owner string, index int) error {
	return s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.lockEditable(ctx, tx, owner); err != nil {
			return err
		}

		repo := s.repomanager.BeneficiariesV2(tx)
		l, err := repo.GetList(ctx, owner)
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInvalidIndex
		}
		if err != nil {
			return err
		}
		if index < 0 || index >= l.Count {
			return common.ErrorInvalidIndex
		}

		b, err := repo.Get(ctx, owner, index)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, owner, index); err != nil {
			return err
		}
		l.Count--
		l.TotalPercentage -= b.Percentage
		return repo.UpdateList(ctx, l)
	})
}

func (s *BeneficiaryService) ClearBeneficiaries(ctx context.Context, owner string) error {
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.lockEditable(ctx, tx, owner); err != nil {
			return err
		}
		repo := s.repomanager.BeneficiariesV2(tx)
		l, err := repo.EnsureList(ctx, owner)
		if err != nil {
			return err
		}
		if err := repo.DeleteAll(ctx, owner); err != nil {
			return err
		}
		l.Count = 0
		l.TotalPercentage = 0
		return repo.UpdateList(ctx, l)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "beneficiaries cleared", "owner", owner)
	return nil
}

// list returns the dynamic list header, an empty one when none exists.
func (s *BeneficiaryService) list(ctx context.Context, owner string) (*models.BeneficiaryList, error) {
	l, err := s.repomanager.BeneficiariesV2(s.db).GetList(ctx, owner)
	if errors.Is(err, common.ErrorNotFound) {
		return &models.BeneficiaryList{Owner: owner}, nil
	}
	return l, err
}

// GetBeneficiaryAt returns common.ErrorNotFound for an index outside the list.
func (s *BeneficiaryService) GetBeneficiaryAt(ctx context.Context, owner string, index int) (*models.Beneficiary, error) {
	if index < 0 {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.BeneficiariesV2(s.db).Get(ctx, owner, index)
}

func (s *BeneficiaryService) GetBeneficiaryCount(ctx context.Context, owner string) (int, error) {
	l, err := s.list(ctx, owner)
	if err != nil {
		return 0, err
	}
	return l.Count, nil
}

func (s *BeneficiaryService) GetTotalPercentage(ctx context.Context, owner string) (int, error) {
	l, err := s.list(ctx, owner)
	if err != nil {
		return 0, err
	}
	return l.TotalPercentage, nil
}

func (s *BeneficiaryService) GetRemainingPercentage(ctx context.Context, owner string) (int, error) {
	l, err := s.list(ctx, owner)
	if err != nil {
		return 0, err
	}
	return l.Remaining(), nil
}

func (s *BeneficiaryService) IsConfigurationComplete(ctx context.Context, owner string) (bool, error) {
	l, err := s.list(ctx, owner)
	if err != nil {
		return false, err
	}
	return l.Complete(), nil
}

// GetBeneficiariesPage returns zero-based page of models.BeneficiaryPageSize
// entries. Negative pages and pages past the end are empty.
func (s *BeneficiaryService) GetBeneficiariesPage(ctx context.Context, owner string, page int) (*models.BeneficiaryPage, error) {
	l, err := s.list(ctx, owner)
	if err != nil {
		return nil, err
	}

	offset := page * models.BeneficiaryPageSize
	p := &models.BeneficiaryPage{
		Page:          page,
		TotalCount:    l.Count,
		Beneficiaries: []models.Beneficiary{},
	}
	if page < 0 || offset >= l.Count {
		return p, nil
	}

	entries, err := s.repomanager.BeneficiariesV2(s.db).Range(ctx, owner, offset, models.BeneficiaryPageSize)
	if err != nil {
		return nil, err
	}
	p.Beneficiaries = entries
	p.HasMore = offset+models.BeneficiaryPageSize < l.Count
	return p, nil
}

// resolveAllocation picks the table a trigger pays out by: the fixed list
// when set, the dynamic list otherwise. Either must be non-empty and sum to
// 100.
func (b *base) resolveAllocation(ctx context.Context, tx dbx.DBTX, owner string) ([]models.Beneficiary, error) {
	fixed, err := b.repomanager.Beneficiaries(tx).List(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(fixed) > 0 {
		if models.SumPercentages(fixed) != models.FullAllocation {
			return nil, common.ErrorNoBeneficiaries
		}
		return fixed, nil
	}

	repo := b.repomanager.BeneficiariesV2(tx)
	l, err := repo.GetList(ctx, owner)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorNoBeneficiaries
	}
	if err != nil {
		return nil, err
	}
	if !l.Complete() {
		return nil, common.ErrorNoBeneficiaries
	}
	return repo.Range(ctx, owner, 0, l.Count)
}
