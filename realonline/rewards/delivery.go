// Package rewards holds the reward-granting modules: the periodic
// entitlement ticker, the level-milestone awarder and the login-streak
// awarder, plus the shared delivery path.
package rewards

import (
	"context"
	"strings"

	"log/slog"

	"github.com/wowcore/realonline/realonline/database/repositories"
	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/scripting"
)

// ItemAmount is a configured reward: which item and how many.
type ItemAmount struct {
	ItemID uint32 `toml:"item_id"`
	Count  uint32 `toml:"count"`
}

func (ia ItemAmount) Valid() bool {
	return ia.ItemID != 0 && ia.Count != 0
}

const DeliveryInventory = "inventory"

// Deliverer grants rewards either straight into the player's bags or as a
// ledger entitlement, per the configured delivery mode. A full inventory
// downgrades an inventory delivery to an entitlement with a chat hint.
type Deliverer struct {
	rewards repositories.RewardRepository
	loc     *locale.Localizer
}

func NewDeliverer(rewards repositories.RewardRepository, loc *locale.Localizer) *Deliverer {
	return &Deliverer{rewards: rewards, loc: loc}
}

func (d *Deliverer) Deliver(ctx context.Context, p scripting.Player, account, itemID, count uint32, mode string) error {
	if strings.ToLower(mode) == DeliveryInventory && p != nil {
		if p.CanStoreItems(itemID, count) {
			if err := p.StoreItems(itemID, count); err == nil {
				p.SendNewItem(itemID, count)
				return nil
			}
		}
		p.SendSysMessage(d.loc.T(
			"Inventář je plný, odměna byla připsána na účet. Vyzvedni pomocí \".reward claim\".",
			"Inventory is full, reward was credited to your account. Use \".reward claim\" to collect.",
		))
	}

	if err := d.rewards.AddEntitled(ctx, account, itemID, count); err != nil {
		slog.Error("Failed to credit entitlement",
			slog.String("type", "db"),
			slog.Uint64("account", uint64(account)),
			slog.Uint64("item", uint64(itemID)),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
