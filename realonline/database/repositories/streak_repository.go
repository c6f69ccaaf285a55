package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wowcore/realonline/realonline/database/models"
	"github.com/uptrace/bun"
)

type StreakRepository interface {
	// Get returns nil without error when the account has no streak row yet.
	Get(ctx context.Context, account uint32) (*models.LoginStreak, error)
	Upsert(ctx context.Context, row *models.LoginStreak) error
}

type streakRepository struct {
	db *bun.DB
}

func NewStreakRepository(db *bun.DB) StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) Get(ctx context.Context, account uint32) (*models.LoginStreak, error) {
	row := new(models.LoginStreak)
	err := r.db.NewSelect().
		Model(row).
		Where("account = ?", account).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (r *streakRepository) Upsert(ctx context.Context, row *models.LoginStreak) error {
	_, err := r.db.NewInsert().
		Model(row).
		On("CONFLICT (account) DO UPDATE").
		Set("last_serial = EXCLUDED.last_serial").
		Set("last_reward_serial = EXCLUDED.last_reward_serial").
		Set("streak_day = EXCLUDED.streak_day").
		Exec(ctx)
	return err
}
