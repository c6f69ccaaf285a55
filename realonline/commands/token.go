package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"log/slog"

	"github.com/wowcore/realonline/realonline/database/repositories"
	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/rewards"
	"github.com/wowcore/realonline/realonline/scripting"
)

func parseCount(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint32(v), true
}

// Token moves the configured reward item between the player's bags and the
// per-account stored balance.
func Token(cfg func() rewards.TickerConfig, loc func() *locale.Localizer, repo repositories.RewardRepository) scripting.Command {
	return scripting.Command{
		Name:    "token",
		Level:   scripting.SecurityPlayer,
		Console: false,
		Handler: func(ctx context.Context, cc *scripting.CommandContext) bool {
			p := cc.Player
			if p == nil {
				return true
			}

			c := cfg()
			l := loc()
			if !c.Enable || c.ItemID == 0 {
				cc.Resp.SendSysMessage(l.T("Reward system je vypnutý.", "Reward system is disabled."))
				return true
			}

			acc := p.AccountID()
			readStored := func() uint32 {
				row, err := repo.Get(ctx, acc, c.ItemID)
				if err != nil {
					slog.Error("Failed to read stored balance",
						slog.String("type", "db"),
						slog.Uint64("account", uint64(acc)),
						slog.Any("error", err),
					)
					return 0
				}
				return row.Stored
			}

			sub := strings.ToLower(strings.TrimSpace(cc.Args))
			if sub == "" {
				cc.Resp.SendSysMessage(l.T(
					fmt.Sprintf("Uskladněné tokeny: %d", readStored()),
					fmt.Sprintf("Stored tokens: %d", readStored()),
				))
				return true
			}

			fields := strings.Fields(sub)
			cmd := fields[0]
			var num string
			if len(fields) > 1 {
				num = fields[1]
			}

			switch cmd {
			case "deposit":
				amount, ok := parseCount(num)
				if !ok {
					cc.Resp.SendSysMessage(l.T(
						"Zadej kladný počet: .token deposit <pocet>",
						"Enter a positive number: .token deposit <count>",
					))
					return true
				}

				have := p.ItemCount(c.ItemID)
				if have < amount {
					cc.Resp.SendSysMessage(l.T(
						fmt.Sprintf("Nemáš dost tokenů v taškách. Máš %d.", have),
						fmt.Sprintf("Not enough tokens in your bags. You have %d.", have),
					))
					return true
				}

				if err := p.DestroyItems(c.ItemID, amount); err != nil {
					cc.Resp.SendSysMessage(l.T(
						"Chyba při ukládání itemu do inventáře.",
						"Error storing item in inventory.",
					))
					return true
				}

				if err := repo.AddStored(ctx, acc, c.ItemID, amount); err != nil {
					slog.Error("Failed to store deposit",
						slog.String("type", "db"),
						slog.Uint64("account", uint64(acc)),
						slog.Any("error", err),
					)
				}

				cc.Resp.SendSysMessage(l.T(
					fmt.Sprintf("Uloženo %d tokenů do úschovy.", amount),
					fmt.Sprintf("Deposited %d token(s) to storage.", amount),
				))
				return true

			case "withdraw":
				amount, ok := parseCount(num)
				if !ok {
					cc.Resp.SendSysMessage(l.T(
						"Zadej kladný počet: .token withdraw <pocet>",
						"Enter a positive number: .token withdraw <count>",
					))
					return true
				}

				stored := readStored()
				if stored < amount {
					cc.Resp.SendSysMessage(l.T(
						fmt.Sprintf("Nemáš dost uskladněných tokenů. Máš %d.", stored),
						fmt.Sprintf("Not enough stored tokens. You have %d.", stored),
					))
					return true
				}

				if !p.CanStoreItems(c.ItemID, amount) {
					cc.Resp.SendSysMessage(l.T(
						"Nemáš dost místa v taškách. Uvolni místo a zkus znovu.",
						"Not enough bag space. Free up space and try again.",
					))
					return true
				}

				if err := p.StoreItems(c.ItemID, amount); err != nil {
					cc.Resp.SendSysMessage(l.T(
						"Chyba při ukládání itemu do inventáře.",
						"Error storing item in inventory.",
					))
					return true
				}
				p.SendNewItem(c.ItemID, amount)

				updated, err := repo.WithdrawStored(ctx, acc, c.ItemID, amount)
				if err != nil {
					slog.Error("Failed to withdraw stored balance",
						slog.String("type", "db"),
						slog.Uint64("account", uint64(acc)),
						slog.Any("error", err),
					)
				} else if !updated {
					// The guarded update lost a race against another drain
					// of the same balance.
					slog.Warn("Stored balance changed during withdraw",
						slog.String("type", "db"),
						slog.Uint64("account", uint64(acc)),
						slog.Uint64("amount", uint64(amount)),
					)
				}

				cc.Resp.SendSysMessage(l.T(
					fmt.Sprintf("Vybráno %d tokenů z úschovy.", amount),
					fmt.Sprintf("Withdrew %d token(s) from storage.", amount),
				))
				return true
			}

			cc.Resp.SendSysMessage(l.T(
				"Neznámý parametr. Použij \".token\", \".token deposit <pocet>\", nebo \".token withdraw <pocet>\".",
				"Unknown parameter. Use \".token\", \".token deposit <count>\", or \".token withdraw <count>\".",
			))
			return true
		},
	}
}
