package realonline

import (
	"github.com/wowcore/realonline/realonline/commands"
	"github.com/wowcore/realonline/realonline/database"
	"github.com/wowcore/realonline/realonline/database/repositories"
	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/rewards"
	"github.com/wowcore/realonline/realonline/scripting"
	"github.com/wowcore/realonline/realonline/utils"
)

func New(cfg Config, version string, commit string) *Modules {
	return &Modules{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// Modules aggregates the gameplay modules and their dependencies. The host
// supplies Sessions; DB and the repositories are wired in SetupRepositories.
type Modules struct {
	Cfg      Config
	Version  string
	Commit   string
	DB       *database.DB
	Sessions scripting.SessionManager

	RewardRepository    repositories.RewardRepository
	MilestoneRepository repositories.MilestoneRepository
	StreakRepository    repositories.StreakRepository
}

func (m *Modules) SetupRepositories() {
	m.RewardRepository = repositories.NewRewardRepository(m.DB.BunDB())
	m.MilestoneRepository = repositories.NewMilestoneRepository(m.DB.BunDB())
	m.StreakRepository = repositories.NewStreakRepository(m.DB.BunDB())
}

func (m *Modules) Localizer() *locale.Localizer {
	return locale.New(locale.Parse(m.Cfg.Online.Locale))
}

func (m *Modules) blockedRanges() utils.RangeList {
	return utils.CachedRanges(m.Cfg.Online.IgnoreAccountRanges)
}

// Register wires every module into the host's dispatch tables: the three
// chat commands, the periodic reward tick, and the login and level hooks.
func (m *Modules) Register(reg *scripting.Registry) {
	deliverer := rewards.NewDeliverer(m.RewardRepository, m.Localizer())

	for _, c := range commands.All(commands.Deps{
		Online:    func() commands.OnlineConfig { return m.Cfg.Online },
		Ticker:    func() rewards.TickerConfig { return m.Cfg.Reward },
		Localizer: m.Localizer,
		Sessions:  m.Sessions,
		Rewards:   m.RewardRepository,
	}) {
		reg.RegisterCommand(c)
	}

	ticker := rewards.NewTicker(
		func() rewards.TickerConfig { return m.Cfg.Reward },
		func() rewards.RosterConfig { return m.Cfg.RosterConfig() },
		m.Sessions,
		m.RewardRepository,
	)
	reg.RegisterTick(ticker.OnUpdate)

	milestones := rewards.NewMilestones(
		func() rewards.MilestoneConfig { return m.Cfg.Level },
		m.blockedRanges,
		m.MilestoneRepository,
		deliverer,
		m.Localizer(),
	)
	reg.RegisterLevelChanged(milestones.OnLevelChanged)

	streak := rewards.NewStreak(
		func() rewards.StreakConfig { return m.Cfg.Streak },
		m.blockedRanges,
		m.StreakRepository,
		deliverer,
		m.Localizer(),
	)
	reg.RegisterLogin(streak.OnLogin)
}
