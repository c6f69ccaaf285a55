package repositories

import (
	"context"

	"github.com/wowcore/realonline/realonline/database/models"
	"github.com/uptrace/bun"
)

type MilestoneRepository interface {
	// CountForAccount counts characters on the account that already
	// received this milestone.
	CountForAccount(ctx context.Context, account, milestone uint32) (int, error)
	// Record inserts the (account, guid, milestone) marker and reports
	// whether this was the first grant for the character.
	Record(ctx context.Context, account, guid, milestone uint32) (bool, error)
}

type milestoneRepository struct {
	db *bun.DB
}

func NewMilestoneRepository(db *bun.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) CountForAccount(ctx context.Context, account, milestone uint32) (int, error) {
	return r.db.NewSelect().
		Model((*models.LevelMilestone)(nil)).
		Where("account = ? AND milestone = ?", account, milestone).
		Count(ctx)
}

func (r *milestoneRepository) Record(ctx context.Context, account, guid, milestone uint32) (bool, error) {
	result, err := r.db.NewInsert().
		Model(&models.LevelMilestone{
			Account:   account,
			GUID:      guid,
			Milestone: milestone,
		}).
		On("CONFLICT DO NOTHING").
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
