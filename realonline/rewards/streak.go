package rewards

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"log/slog"

	"github.com/wowcore/realonline/realonline/database/models"
	"github.com/wowcore/realonline/realonline/database/repositories"
	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/scripting"
	"github.com/wowcore/realonline/realonline/utils"
)

// StreakConfig is the login-streak configuration snapshot. Special is keyed
// by the streak day ("7", "14", ...); a special entry naming its own item is
// delivered separately, otherwise its count merges into the base reward.
type StreakConfig struct {
	Enable          bool                  `toml:"enable"`
	BaseItemID      uint32                `toml:"base_item_id"`
	BaseCount       uint32                `toml:"base_count"`
	CycleLength     uint32                `toml:"cycle_length"`
	SpecialDays     []uint32              `toml:"special_days"`
	DayBoundaryHour uint32                `toml:"day_boundary_hour"`
	ResetOnMiss     bool                  `toml:"reset_on_miss"`
	Delivery        string                `toml:"delivery"`
	Announce        bool                  `toml:"announce"`
	Special         map[string]ItemAmount `toml:"special"`
}

func (c StreakConfig) Cycle() uint32 {
	if c.CycleLength < 1 {
		return 1
	}
	return c.CycleLength
}

func (c StreakConfig) SpecialReward(day uint32) ItemAmount {
	return c.Special[strconv.FormatUint(uint64(day), 10)]
}

// DaySerial indexes days so that they roll over at boundaryHour instead of
// midnight UTC. Clamped at zero for times before the epoch boundary.
func DaySerial(now time.Time, boundaryHour uint32) uint32 {
	shifted := now.Unix() - int64(boundaryHour)*3600
	if shifted < 0 {
		shifted = 0
	}
	return uint32(shifted / 86400)
}

// StreakAdvance is the outcome of one login against the persisted state.
type StreakAdvance struct {
	Pay       bool
	StreakDay uint32
}

// AdvanceStreak runs the streak transition for a login on day `today`.
// A nil row is the first-ever login. A same-or-earlier day pays again unless
// the reward was already delivered today; the streak day never moves in that
// branch. Consecutive days increment cyclically, missed days either reset or
// increment depending on resetOnMiss.
func AdvanceStreak(row *models.LoginStreak, today, cycle uint32, resetOnMiss bool) StreakAdvance {
	if row == nil {
		return StreakAdvance{Pay: true, StreakDay: 1}
	}

	delta := int64(today) - int64(row.LastSerial)
	switch {
	case delta <= 0:
		if row.LastRewardSerial == today {
			return StreakAdvance{Pay: false, StreakDay: row.StreakDay}
		}
		return StreakAdvance{Pay: true, StreakDay: row.StreakDay}
	case delta == 1:
		return StreakAdvance{Pay: true, StreakDay: row.StreakDay%cycle + 1}
	default:
		if resetOnMiss {
			return StreakAdvance{Pay: true, StreakDay: 1}
		}
		return StreakAdvance{Pay: true, StreakDay: row.StreakDay%cycle + 1}
	}
}

// Streak rewards consecutive daily logins, with bonus rewards on configured
// special days of the cycle.
type Streak struct {
	cfg     func() StreakConfig
	blocked func() utils.RangeList
	repo    repositories.StreakRepository
	deliver *Deliverer
	loc     *locale.Localizer
	now     func() time.Time
}

func NewStreak(cfg func() StreakConfig, blocked func() utils.RangeList, repo repositories.StreakRepository, deliver *Deliverer, loc *locale.Localizer) *Streak {
	return &Streak{cfg: cfg, blocked: blocked, repo: repo, deliver: deliver, loc: loc, now: time.Now}
}

// OnLogin is the player login hook.
func (s *Streak) OnLogin(ctx context.Context, p scripting.Player) {
	cfg := s.cfg()
	if !cfg.Enable || p == nil {
		return
	}
	if cfg.BaseItemID == 0 || cfg.BaseCount == 0 {
		return
	}

	acc := p.AccountID()
	if blocked := s.blocked(); len(blocked) > 0 && blocked.Contains(acc) {
		return
	}

	today := DaySerial(s.now(), cfg.DayBoundaryHour)

	row, err := s.repo.Get(ctx, acc)
	if err != nil {
		slog.Error("Failed to load login streak",
			slog.String("type", "db"),
			slog.Uint64("account", uint64(acc)),
			slog.Any("error", err),
		)
		row = nil
	}

	adv := AdvanceStreak(row, today, cfg.Cycle(), cfg.ResetOnMiss)
	if !adv.Pay {
		return
	}

	totalCount := cfg.BaseCount
	separateBonus := false
	var special ItemAmount
	specials := utils.SortedUnique(append([]uint32(nil), cfg.SpecialDays...))
	if utils.ContainsSorted(specials, adv.StreakDay) {
		special = cfg.SpecialReward(adv.StreakDay)
		if special.Valid() {
			separateBonus = true
		} else {
			totalCount += special.Count
		}
	}

	// Record the payout day before delivering so a second login today is a
	// no-op even if delivery falls back to an entitlement.
	if err := s.repo.Upsert(ctx, &models.LoginStreak{
		Account:          acc,
		LastSerial:       today,
		LastRewardSerial: today,
		StreakDay:        adv.StreakDay,
	}); err != nil {
		slog.Error("Failed to update login streak",
			slog.String("type", "db"),
			slog.Uint64("account", uint64(acc)),
			slog.Any("error", err),
		)
		return
	}

	if separateBonus {
		_ = s.deliver.Deliver(ctx, p, acc, cfg.BaseItemID, cfg.BaseCount, cfg.Delivery)
		_ = s.deliver.Deliver(ctx, p, acc, special.ItemID, special.Count, cfg.Delivery)
	} else {
		_ = s.deliver.Deliver(ctx, p, acc, cfg.BaseItemID, totalCount, cfg.Delivery)
	}

	if cfg.Announce {
		p.SendSysMessage(s.announceText(cfg, adv.StreakDay, totalCount, special.Count, separateBonus))
	}
}

func (s *Streak) announceText(cfg StreakConfig, day, totalCount, bonusCount uint32, separateBonus bool) string {
	head := s.loc.T(
		fmt.Sprintf("Gratulace! %d. den v řadě z %d. ", day, cfg.Cycle()),
		fmt.Sprintf("Congrats! Day %d in a row out of %d. ", day, cfg.Cycle()),
	)

	switch {
	case separateBonus:
		return head + s.loc.T(
			fmt.Sprintf("Získáváš %d× Mystery Token a navíc %d× Mystery Token.", cfg.BaseCount, bonusCount),
			fmt.Sprintf("You receive %d× Mystery Token and additionally %d× Mystery Token.", cfg.BaseCount, bonusCount),
		)
	case totalCount != cfg.BaseCount:
		return head + s.loc.T(
			fmt.Sprintf("Získáváš %d× Mystery Token (včetně bonusu %d×).", totalCount, totalCount-cfg.BaseCount),
			fmt.Sprintf("You receive %d× Mystery Token (including bonus %d×).", totalCount, totalCount-cfg.BaseCount),
		)
	default:
		return head + s.loc.T(
			fmt.Sprintf("Získáváš %d× Mystery Token.", cfg.BaseCount),
			fmt.Sprintf("You receive %d× Mystery Token.", cfg.BaseCount),
		)
	}
}
