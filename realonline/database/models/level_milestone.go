package models

import "github.com/uptrace/bun"

// LevelMilestone marks a milestone reward as granted to one character. The
// composite key makes the grant idempotent per character; counting rows per
// (account, milestone) enforces the account-wide cap.
type LevelMilestone struct {
	bun.BaseModel `bun:"table:level_milestones,alias:lm"`

	Account   uint32 `bun:"account,pk"`
	GUID      uint32 `bun:"guid,pk"`
	Milestone uint32 `bun:"milestone,pk"`
}
