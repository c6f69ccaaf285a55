package commands

import (
	"github.com/wowcore/realonline/realonline/database/repositories"
	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/rewards"
	"github.com/wowcore/realonline/realonline/scripting"
)

// Deps is everything the chat commands need from the surrounding modules.
type Deps struct {
	Online    func() OnlineConfig
	Ticker    func() rewards.TickerConfig
	Localizer func() *locale.Localizer
	Sessions  scripting.SessionManager
	Rewards   repositories.RewardRepository
}

// All builds the command set for registration with the host.
func All(d Deps) []scripting.Command {
	return []scripting.Command{
		Online(d.Online, d.Localizer, d.Sessions),
		Reward(d.Ticker, d.Localizer, d.Rewards),
		Token(d.Ticker, d.Localizer, d.Rewards),
	}
}
