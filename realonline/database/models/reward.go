package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Reward is the per-(account, item) ledger row. Entitled counts rewards
// credited to the account, Claimed counts rewards already moved into a
// character's bags, Stored is the token-bank balance.
type Reward struct {
	bun.BaseModel `bun:"table:rewards,alias:rw"`

	Account   uint32    `bun:"account,pk"`
	Item      uint32    `bun:"item,pk"`
	Entitled  uint32    `bun:"entitled,notnull,default:0"`
	Claimed   uint32    `bun:"claimed,notnull,default:0"`
	Stored    uint32    `bun:"stored,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Available is what a claim would grant. Entitled < Claimed is not expected
// but tolerated as zero.
func (r *Reward) Available() uint32 {
	if r.Entitled > r.Claimed {
		return r.Entitled - r.Claimed
	}
	return 0
}
