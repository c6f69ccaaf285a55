package rewards

import (
	"context"
	"math"
	"strings"
	"time"

	"log/slog"

	"github.com/wowcore/realonline/realonline/database/repositories"
	"github.com/wowcore/realonline/realonline/roster"
	"github.com/wowcore/realonline/realonline/scripting"
	"github.com/wowcore/realonline/realonline/utils"
)

// TickerConfig is the periodic-entitlement configuration snapshot.
type TickerConfig struct {
	Enable        bool   `toml:"enable"`
	ItemID        uint32 `toml:"item_id"`
	IntervalCount uint32 `toml:"interval_count"`
	IntervalUnit  string `toml:"interval_unit"`
	MinLevel      uint32 `toml:"min_level"`
}

// Interval converts the configured count and unit into a duration. A zero
// count means one, unknown units mean minutes, and the total is capped at
// MaxUint32 milliseconds so an oversized count cannot wrap negative.
func (c TickerConfig) Interval() time.Duration {
	count := uint64(c.IntervalCount)
	if count == 0 {
		count = 1
	}

	unitMS := uint64(time.Minute / time.Millisecond)
	switch strings.ToLower(c.IntervalUnit) {
	case "hour", "hours":
		unitMS = uint64(time.Hour / time.Millisecond)
	}

	totalMS := count * unitMS
	if totalMS > math.MaxUint32 {
		totalMS = math.MaxUint32
	}
	return time.Duration(totalMS) * time.Millisecond
}

// RosterConfig is the part of the online-listing configuration the ticker
// shares: GM hiding, minimum level and the account blocklist.
type RosterConfig struct {
	HideGMs             bool   `toml:"hide_gms"`
	MinLevel            uint32 `toml:"min_level"`
	IgnoreAccountRanges string `toml:"ignore_account_ranges"`
}

// Ticker accumulates world-update time and, once the configured interval
// has elapsed, credits one entitlement to every eligible online account.
type Ticker struct {
	cfg      func() TickerConfig
	roster   func() RosterConfig
	sessions scripting.SessionManager
	rewards  repositories.RewardRepository

	elapsed time.Duration
}

func NewTicker(cfg func() TickerConfig, rosterCfg func() RosterConfig, sessions scripting.SessionManager, rewards repositories.RewardRepository) *Ticker {
	return &Ticker{cfg: cfg, roster: rosterCfg, sessions: sessions, rewards: rewards}
}

// OnUpdate is the world-tick hook.
func (t *Ticker) OnUpdate(ctx context.Context, elapsed time.Duration) {
	cfg := t.cfg()
	if !cfg.Enable || cfg.ItemID == 0 {
		return
	}

	t.elapsed += elapsed
	if t.elapsed < cfg.Interval() {
		return
	}
	t.elapsed = 0

	rc := t.roster()
	minLevel := cfg.MinLevel
	if rc.MinLevel > minLevel {
		minLevel = rc.MinLevel
	}

	accounts := roster.OnlineAccounts(t.sessions, roster.Filter{
		HideGMs:  rc.HideGMs,
		MinLevel: minLevel,
		Blocked:  utils.CachedRanges(rc.IgnoreAccountRanges),
	})
	if len(accounts) == 0 {
		return
	}

	for _, acc := range accounts {
		if err := t.rewards.AddEntitled(ctx, acc, cfg.ItemID, 1); err != nil {
			slog.Error("Failed to entitle periodic reward",
				slog.String("type", "db"),
				slog.Uint64("account", uint64(acc)),
				slog.Any("error", err),
			)
		}
	}

	slog.Debug("Periodic reward tick",
		slog.String("type", "sys"),
		slog.Int("accounts", len(accounts)),
		slog.Uint64("item", uint64(cfg.ItemID)),
	)
}
