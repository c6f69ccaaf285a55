package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/roster"
	"github.com/wowcore/realonline/realonline/scripting"
	"github.com/wowcore/realonline/realonline/utils"
)

// OnlineConfig is the listing configuration snapshot. Locale here selects
// the message language for every module, not just the listing.
type OnlineConfig struct {
	Locale              string `toml:"locale"`
	Mode                string `toml:"mode"`
	ShowLevel           bool   `toml:"show_level"`
	HideGMs             bool   `toml:"hide_gms"`
	PageSize            uint32 `toml:"page_size"`
	MinLevel            uint32 `toml:"min_level"`
	IgnoreAccountRanges string `toml:"ignore_account_ranges"`
}

const defaultPageSize = 10

func factionName(l *locale.Localizer, team scripting.Team) string {
	switch team {
	case scripting.TeamAlliance:
		return l.T("Aliance", "Alliance")
	case scripting.TeamHorde:
		return l.T("Horda", "Horde")
	default:
		return l.T("Neznámá", "Unknown")
	}
}

// Online lists the real players currently online, paged or ranged.
func Online(cfg func() OnlineConfig, loc func() *locale.Localizer, sessions scripting.SessionManager) scripting.Command {
	return scripting.Command{
		Name:    "online",
		Level:   scripting.SecurityPlayer,
		Console: true,
		Handler: func(ctx context.Context, cc *scripting.CommandContext) bool {
			c := cfg()
			l := loc()

			pageSize := c.PageSize
			if pageSize == 0 {
				pageSize = defaultPageSize
			}

			f := roster.Filter{
				HideGMs:  c.HideGMs,
				MinLevel: c.MinLevel,
				Blocked:  utils.CachedRanges(c.IgnoreAccountRanges),
			}

			var list []scripting.Player
			if strings.ToLower(c.Mode) == "session" {
				list = roster.ViaSessions(sessions, f)
			} else {
				list = roster.ViaPlayers(sessions, f)
			}
			roster.SortByName(list)

			total := uint32(len(list))
			begin, end, err := utils.PageWindow(l, cc.Args, total, pageSize)
			if err != nil {
				cc.Resp.SendSysMessage(err.Error())
				return true
			}

			pages := utils.PageCount(total, pageSize)

			var head string
			if strings.Contains(cc.Args, "-") {
				head = l.T(
					fmt.Sprintf("Skuteční hráči online: %d (rozsah %d-%d)", total, begin+1, end),
					fmt.Sprintf("Real players online: %d (range %d-%d)", total, begin+1, end),
				)
			} else {
				page := begin/pageSize + 1
				head = l.T(
					fmt.Sprintf("Skuteční hráči online: %d (stránka %d/%d, %d na stránku)", total, page, pages, pageSize),
					fmt.Sprintf("Real players online: %d (page %d/%d, %d per page)", total, page, pages, pageSize),
				)
			}
			cc.Resp.SendSysMessage(head)

			var out strings.Builder
			for _, p := range list[begin:end] {
				out.WriteString(p.Name())
				if c.ShowLevel {
					fmt.Fprintf(&out, " [lvl %d]", p.Level())
				}
				out.WriteString(" - ")
				out.WriteString(factionName(l, p.Team()))
				out.WriteString("\n")
			}
			cc.Resp.SendSysMessage(out.String())
			return true
		},
	}
}
