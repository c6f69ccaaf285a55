package rewards

import (
	"context"
	"errors"

	"github.com/wowcore/realonline/realonline/database/models"
	"github.com/wowcore/realonline/realonline/scripting"
)

type fakePlayer struct {
	name    string
	level   uint32
	account uint32
	guid    uint32
	gm      bool

	bags     map[uint32]uint32
	bagSpace bool
	storeErr error

	messages []string
	triggers []string
}

func newFakePlayer(account, guid, level uint32) *fakePlayer {
	return &fakePlayer{
		name:     "Testchar",
		level:    level,
		account:  account,
		guid:     guid,
		bags:     make(map[uint32]uint32),
		bagSpace: true,
	}
}

func (p *fakePlayer) Name() string                   { return p.name }
func (p *fakePlayer) Level() uint32                  { return p.level }
func (p *fakePlayer) Team() scripting.Team           { return scripting.TeamAlliance }
func (p *fakePlayer) IsGameMaster() bool             { return p.gm }
func (p *fakePlayer) IsInWorld() bool                { return true }
func (p *fakePlayer) AccountID() uint32              { return p.account }
func (p *fakePlayer) GUID() uint32                   { return p.guid }
func (p *fakePlayer) Security() scripting.Security   { return scripting.SecurityPlayer }
func (p *fakePlayer) ItemCount(itemID uint32) uint32 { return p.bags[itemID] }

func (p *fakePlayer) CanStoreItems(itemID, count uint32) bool { return p.bagSpace }

func (p *fakePlayer) StoreItems(itemID, count uint32) error {
	if p.storeErr != nil {
		return p.storeErr
	}
	if !p.bagSpace {
		return errors.New("bags full")
	}
	p.bags[itemID] += count
	return nil
}

func (p *fakePlayer) DestroyItems(itemID, count uint32) error {
	if p.bags[itemID] < count {
		return errors.New("not enough items")
	}
	p.bags[itemID] -= count
	return nil
}

func (p *fakePlayer) SendNewItem(itemID, count uint32)   {}
func (p *fakePlayer) SendSysMessage(text string)         { p.messages = append(p.messages, text) }
func (p *fakePlayer) SendAreaTriggerMessage(text string) { p.triggers = append(p.triggers, text) }

type ledgerKey struct {
	account uint32
	item    uint32
}

// fakeRewardRepo mirrors the repository contract in memory, including the
// zero-row Get and the guarded withdraw.
type fakeRewardRepo struct {
	rows   map[ledgerKey]*models.Reward
	getErr error
	addErr error
}

func newFakeRewardRepo() *fakeRewardRepo {
	return &fakeRewardRepo{rows: make(map[ledgerKey]*models.Reward)}
}

func (f *fakeRewardRepo) row(account, item uint32) *models.Reward {
	k := ledgerKey{account, item}
	r, ok := f.rows[k]
	if !ok {
		r = &models.Reward{Account: account, Item: item}
		f.rows[k] = r
	}
	return r
}

func (f *fakeRewardRepo) Get(ctx context.Context, account, item uint32) (*models.Reward, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if r, ok := f.rows[ledgerKey{account, item}]; ok {
		cp := *r
		return &cp, nil
	}
	return &models.Reward{Account: account, Item: item}, nil
}

func (f *fakeRewardRepo) AddEntitled(ctx context.Context, account, item, amount uint32) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.row(account, item).Entitled += amount
	return nil
}

func (f *fakeRewardRepo) AddClaimed(ctx context.Context, account, item, amount uint32) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.row(account, item).Claimed += amount
	return nil
}

func (f *fakeRewardRepo) AddStored(ctx context.Context, account, item, amount uint32) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.row(account, item).Stored += amount
	return nil
}

func (f *fakeRewardRepo) WithdrawStored(ctx context.Context, account, item, amount uint32) (bool, error) {
	r, ok := f.rows[ledgerKey{account, item}]
	if !ok || r.Stored < amount {
		return false, nil
	}
	r.Stored -= amount
	return true, nil
}

type fakeStreakRepo struct {
	rows    map[uint32]*models.LoginStreak
	getErr  error
	upserts int
}

func newFakeStreakRepo() *fakeStreakRepo {
	return &fakeStreakRepo{rows: make(map[uint32]*models.LoginStreak)}
}

func (f *fakeStreakRepo) Get(ctx context.Context, account uint32) (*models.LoginStreak, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	r, ok := f.rows[account]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStreakRepo) Upsert(ctx context.Context, row *models.LoginStreak) error {
	cp := *row
	f.rows[row.Account] = &cp
	f.upserts++
	return nil
}

type milestoneKey struct {
	account   uint32
	guid      uint32
	milestone uint32
}

type fakeMilestoneRepo struct {
	grants map[milestoneKey]struct{}
}

func newFakeMilestoneRepo() *fakeMilestoneRepo {
	return &fakeMilestoneRepo{grants: make(map[milestoneKey]struct{})}
}

func (f *fakeMilestoneRepo) CountForAccount(ctx context.Context, account, milestone uint32) (int, error) {
	n := 0
	for k := range f.grants {
		if k.account == account && k.milestone == milestone {
			n++
		}
	}
	return n, nil
}

func (f *fakeMilestoneRepo) Record(ctx context.Context, account, guid, milestone uint32) (bool, error) {
	k := milestoneKey{account, guid, milestone}
	if _, ok := f.grants[k]; ok {
		return false, nil
	}
	f.grants[k] = struct{}{}
	return true, nil
}
