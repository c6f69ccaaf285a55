// Package roster enumerates the real players currently online, using either
// of the host's two enumeration surfaces.
package roster

import (
	"sort"

	"github.com/wowcore/realonline/realonline/scripting"
	"github.com/wowcore/realonline/realonline/utils"
)

// Filter narrows the roster. Blocked only applies where noted; the session
// walk keeps blocked accounts visible in the listing, the account walk and
// the reward collection exclude them.
type Filter struct {
	HideGMs  bool
	MinLevel uint32
	Blocked  utils.RangeList
}

func keep(p scripting.Player, f Filter) bool {
	if p == nil || !p.IsInWorld() {
		return false
	}
	if f.HideGMs && p.IsGameMaster() {
		return false
	}
	if f.MinLevel > 0 && p.Level() < f.MinLevel {
		return false
	}
	return true
}

// ViaSessions walks the live network sessions.
func ViaSessions(sm scripting.SessionManager, f Filter) []scripting.Player {
	sessions := sm.Sessions()
	out := make([]scripting.Player, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		if p := s.Player(); keep(p, f) {
			out = append(out, p)
		}
	}
	return out
}

// ViaPlayers walks the world-placed player set and additionally drops
// accounts in the blocked ranges.
func ViaPlayers(sm scripting.SessionManager, f Filter) []scripting.Player {
	players := sm.Players()
	out := make([]scripting.Player, 0, len(players))
	for _, p := range players {
		if !keep(p, f) {
			continue
		}
		if len(f.Blocked) > 0 && f.Blocked.Contains(p.AccountID()) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortByName orders a roster lexicographically for stable listing output.
func SortByName(players []scripting.Player) {
	sort.Slice(players, func(i, j int) bool {
		return players[i].Name() < players[j].Name()
	})
}

// OnlineAccounts collects the distinct account IDs eligible for periodic
// rewards: session walk, standard filters, blocked ranges excluded.
func OnlineAccounts(sm scripting.SessionManager, f Filter) []uint32 {
	players := ViaSessions(sm, f)

	seen := make(map[uint32]struct{}, len(players))
	out := make([]uint32, 0, len(players))
	for _, p := range players {
		acc := p.AccountID()
		if len(f.Blocked) > 0 && f.Blocked.Contains(acc) {
			continue
		}
		if _, ok := seen[acc]; ok {
			continue
		}
		seen[acc] = struct{}{}
		out = append(out, acc)
	}
	return out
}
