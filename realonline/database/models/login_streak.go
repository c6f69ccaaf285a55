package models

import "github.com/uptrace/bun"

// LoginStreak is the one-row-per-account streak state. Serials are day
// indexes relative to the configured day boundary hour.
type LoginStreak struct {
	bun.BaseModel `bun:"table:login_streak,alias:ls"`

	Account          uint32 `bun:"account,pk"`
	LastSerial       uint32 `bun:"last_serial,notnull,default:0"`
	LastRewardSerial uint32 `bun:"last_reward_serial,notnull,default:0"`
	StreakDay        uint32 `bun:"streak_day,notnull,default:0"`
}
