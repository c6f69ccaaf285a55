package rewards

import (
	"context"
	"fmt"
	"strconv"

	"log/slog"

	"github.com/wowcore/realonline/realonline/database/repositories"
	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/scripting"
	"github.com/wowcore/realonline/realonline/utils"
)

// maxGrantsPerAccount caps how many characters on one account may collect
// the same milestone value.
const maxGrantsPerAccount = 10

const maxMilestoneLevel = 80

// MilestoneConfig is the level-reward configuration snapshot. Rewards is
// keyed by the milestone level ("10", "20", ...).
type MilestoneConfig struct {
	Enable     bool                  `toml:"enable"`
	Milestones []uint32              `toml:"milestones"`
	Delivery   string                `toml:"delivery"`
	Announce   bool                  `toml:"announce"`
	Rewards    map[string]ItemAmount `toml:"rewards"`
}

func (c MilestoneConfig) Reward(level uint32) (ItemAmount, bool) {
	ia, ok := c.Rewards[strconv.FormatUint(uint64(level), 10)]
	if !ok || !ia.Valid() {
		return ItemAmount{}, false
	}
	return ia, true
}

// Thresholds returns the milestone levels crossed by a level-up from
// oldLevel to newLevel: multiples of 10 within (oldLevel, newLevel], capped
// at the maximum milestone level and filtered to the enabled set. enabled
// must be sorted ascending.
func Thresholds(oldLevel, newLevel uint32, enabled []uint32) []uint32 {
	if newLevel <= oldLevel {
		return nil
	}

	var out []uint32
	first := ((oldLevel + 1 + 9) / 10) * 10
	for m := first; m <= newLevel && m <= maxMilestoneLevel; m += 10 {
		if utils.ContainsSorted(enabled, m) {
			out = append(out, m)
		}
	}
	return out
}

// Milestones awards configured items when a character crosses level
// milestones, at most once per character and capped per account.
type Milestones struct {
	cfg     func() MilestoneConfig
	blocked func() utils.RangeList
	repo    repositories.MilestoneRepository
	deliver *Deliverer
	loc     *locale.Localizer
}

func NewMilestones(cfg func() MilestoneConfig, blocked func() utils.RangeList, repo repositories.MilestoneRepository, deliver *Deliverer, loc *locale.Localizer) *Milestones {
	return &Milestones{cfg: cfg, blocked: blocked, repo: repo, deliver: deliver, loc: loc}
}

// OnLevelChanged is the player level-change hook. A single jump may cross
// several milestones; each is awarded in the same pass.
func (m *Milestones) OnLevelChanged(ctx context.Context, p scripting.Player, oldLevel uint32) {
	cfg := m.cfg()
	if !cfg.Enable || p == nil {
		return
	}

	newLevel := p.Level()
	if newLevel <= oldLevel {
		return
	}

	acc := p.AccountID()
	if blocked := m.blocked(); len(blocked) > 0 && blocked.Contains(acc) {
		return
	}

	enabled := utils.SortedUnique(append([]uint32(nil), cfg.Milestones...))
	for _, milestone := range Thresholds(oldLevel, newLevel, enabled) {
		reward, ok := cfg.Reward(milestone)
		if !ok {
			continue
		}

		total, err := m.repo.CountForAccount(ctx, acc, milestone)
		if err != nil {
			slog.Error("Failed to count milestone grants",
				slog.String("type", "db"),
				slog.Uint64("account", uint64(acc)),
				slog.Uint64("milestone", uint64(milestone)),
				slog.Any("error", err),
			)
			continue
		}
		if total >= maxGrantsPerAccount {
			continue
		}

		first, err := m.repo.Record(ctx, acc, p.GUID(), milestone)
		if err != nil {
			slog.Error("Failed to record milestone",
				slog.String("type", "db"),
				slog.Uint64("account", uint64(acc)),
				slog.Uint64("milestone", uint64(milestone)),
				slog.Any("error", err),
			)
			continue
		}
		if !first {
			continue
		}

		if err := m.deliver.Deliver(ctx, p, acc, reward.ItemID, reward.Count, cfg.Delivery); err != nil {
			continue
		}

		if cfg.Announce {
			msg := m.loc.T(
				fmt.Sprintf("Gratuluji! Dosáhl jsi %d. levelu a získáváš %dx Mystery Token.", milestone, reward.Count),
				fmt.Sprintf("Grats! You reached level %d and receive %dx Mystery Token.", milestone, reward.Count),
			)
			p.SendSysMessage(msg)
			p.SendAreaTriggerMessage(msg)
		}
	}
}
