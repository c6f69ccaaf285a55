package commands

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/wowcore/realonline/realonline/database/repositories"
	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/rewards"
	"github.com/wowcore/realonline/realonline/scripting"
)

// Reward reports the caller's ledger balance and claims outstanding
// entitlements into the character's bags.
func Reward(cfg func() rewards.TickerConfig, loc func() *locale.Localizer, repo repositories.RewardRepository) scripting.Command {
	return scripting.Command{
		Name:    "reward",
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
			row, err := repo.Get(ctx, acc, c.ItemID)
			if err != nil {
				slog.Error("Failed to read reward ledger",
					slog.String("type", "db"),
					slog.Uint64("account", uint64(acc)),
					slog.Any("error", err),
				)
				row = nil
			}
			var entitled, claimed, available uint32
			if row != nil {
				entitled, claimed, available = row.Entitled, row.Claimed, row.Available()
			}

			sub := strings.ToLower(strings.TrimSpace(cc.Args))
			switch sub {
			case "":
				cc.Resp.SendSysMessage(l.T(
					fmt.Sprintf("Celkem získáno: %d | Celkem vyzvednuto: %d | K dispozici: %d", entitled, claimed, available),
					fmt.Sprintf("Total earned: %d | Total claimed: %d | Available: %d", entitled, claimed, available),
				))
				cc.Resp.SendSysMessage(l.T(
					"Napiš \".reward claim\" pro výběr odměny.",
					"Type \".reward claim\" to collect your reward.",
				))
				return true

			case "claim":
				if available == 0 {
					cc.Resp.SendSysMessage(l.T("Nemáš nic k výběru.", "You have nothing to claim."))
					return true
				}

				if !p.CanStoreItems(c.ItemID, available) {
					cc.Resp.SendSysMessage(l.T(
						"Nemáš dost místa v taškách (výběr zrušen). Uvolni místo a zkus znovu.",
						"Not enough bag space (claim canceled). Free up space and try again.",
					))
					return true
				}

				if err := p.StoreItems(c.ItemID, available); err != nil {
					cc.Resp.SendSysMessage(l.T(
						"Chyba při ukládání itemu do inventáře.",
						"Error storing item in inventory.",
					))
					return true
				}
				p.SendNewItem(c.ItemID, available)

				if err := repo.AddClaimed(ctx, acc, c.ItemID, available); err != nil {
					slog.Error("Failed to record claim",
						slog.String("type", "db"),
						slog.Uint64("account", uint64(acc)),
						slog.Any("error", err),
					)
				}

				cc.Resp.SendSysMessage(l.T(
					fmt.Sprintf("Vybráno: Mystery Token %dks", available),
					fmt.Sprintf("Claimed: Mystery Token %d pcs", available),
				))
				return true

			default:
				cc.Resp.SendSysMessage(l.T(
					"Neznámý parametr. Použij \".reward\" nebo \".reward claim\".",
					"Unknown parameter. Use \".reward\" or \".reward claim\".",
				))
				return true
			}
		},
	}
}
