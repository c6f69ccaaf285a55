package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wowcore/realonline/realonline/database/models"
	"github.com/uptrace/bun"
)

type RewardRepository interface {
	// Get returns the ledger row for (account, item). A missing row comes
	// back as a zero-valued row, not an error.
	Get(ctx context.Context, account, item uint32) (*models.Reward, error)
	AddEntitled(ctx context.Context, account, item, amount uint32) error
	AddClaimed(ctx context.Context, account, item, amount uint32) error
	AddStored(ctx context.Context, account, item, amount uint32) error
	// WithdrawStored subtracts amount only while the stored balance still
	// covers it and reports whether the row was updated.
	WithdrawStored(ctx context.Context, account, item, amount uint32) (bool, error)
}

type rewardRepository struct {
	db *bun.DB
}

func NewRewardRepository(db *bun.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) Get(ctx context.Context, account, item uint32) (*models.Reward, error) {
	reward := new(models.Reward)
	err := r.db.NewSelect().
		Model(reward).
		Where("account = ? AND item = ?", account, item).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.Reward{Account: account, Item: item}, nil
		}
		return nil, err
	}
	return reward, nil
}

func (r *rewardRepository) AddEntitled(ctx context.Context, account, item, amount uint32) error {
	return r.upsertAdd(ctx, &models.Reward{
		Account:   account,
		Item:      item,
		Entitled:  amount,
		UpdatedAt: time.Now(),
	}, "entitled")
}

func (r *rewardRepository) AddClaimed(ctx context.Context, account, item, amount uint32) error {
	return r.upsertAdd(ctx, &models.Reward{
		Account:   account,
		Item:      item,
		Claimed:   amount,
		UpdatedAt: time.Now(),
	}, "claimed")
}

func (r *rewardRepository) AddStored(ctx context.Context, account, item, amount uint32) error {
	return r.upsertAdd(ctx, &models.Reward{
		Account:   account,
		Item:      item,
		Stored:    amount,
		UpdatedAt: time.Now(),
	}, "stored")
}

func (r *rewardRepository) upsertAdd(ctx context.Context, row *models.Reward, column string) error {
	_, err := r.db.NewInsert().
		Model(row).
		On("CONFLICT (account, item) DO UPDATE").
		Set(column+" = rw."+column+" + EXCLUDED."+column).
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *rewardRepository) WithdrawStored(ctx context.Context, account, item, amount uint32) (bool, error) {
	result, err := r.db.NewUpdate().
		Model((*models.Reward)(nil)).
		Set("stored = stored - ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("account = ? AND item = ? AND stored >= ?", account, item, amount).
		Exec(ctx)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
