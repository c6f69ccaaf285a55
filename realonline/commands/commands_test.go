package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wowcore/realonline/realonline/database/models"
	"github.com/wowcore/realonline/realonline/locale"
	"github.com/wowcore/realonline/realonline/rewards"
	"github.com/wowcore/realonline/realonline/scripting"
)

type fakePlayer struct {
	name    string
	level   uint32
	team    scripting.Team
	gm      bool
	inWorld bool
	account uint32
	guid    uint32

	bags     map[uint32]uint32
	bagSpace bool
	storeErr error

	messages []string
}

func newFakePlayer(account uint32, name string, level uint32) *fakePlayer {
	return &fakePlayer{
		name:     name,
		level:    level,
		account:  account,
		guid:     account * 10,
		inWorld:  true,
		bags:     make(map[uint32]uint32),
		bagSpace: true,
	}
}

func (p *fakePlayer) Name() string                   { return p.name }
func (p *fakePlayer) Level() uint32                  { return p.level }
func (p *fakePlayer) Team() scripting.Team           { return p.team }
func (p *fakePlayer) IsGameMaster() bool             { return p.gm }
func (p *fakePlayer) IsInWorld() bool                { return p.inWorld }
func (p *fakePlayer) AccountID() uint32              { return p.account }
func (p *fakePlayer) GUID() uint32                   { return p.guid }
func (p *fakePlayer) Security() scripting.Security   { return scripting.SecurityPlayer }
func (p *fakePlayer) ItemCount(itemID uint32) uint32 { return p.bags[itemID] }

func (p *fakePlayer) CanStoreItems(itemID, count uint32) bool { return p.bagSpace }

func (p *fakePlayer) StoreItems(itemID, count uint32) error {
	if p.storeErr != nil {
		return p.storeErr
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
func (p *fakePlayer) SendAreaTriggerMessage(text string) { p.messages = append(p.messages, text) }

type ledgerKey struct {
	account uint32
	item    uint32
}

type fakeRewardRepo struct {
	rows map[ledgerKey]*models.Reward
}

func newFakeRewardRepo() *fakeRewardRepo {
	return &fakeRewardRepo{rows: make(map[ledgerKey]*models.Reward)}
}

func (f *fakeRewardRepo) seed(account, item, entitled, claimed, stored uint32) {
	f.rows[ledgerKey{account, item}] = &models.Reward{
		Account: account, Item: item,
		Entitled: entitled, Claimed: claimed, Stored: stored,
	}
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
	if r, ok := f.rows[ledgerKey{account, item}]; ok {
		cp := *r
		return &cp, nil
	}
	return &models.Reward{Account: account, Item: item}, nil
}

func (f *fakeRewardRepo) AddEntitled(ctx context.Context, account, item, amount uint32) error {
	f.row(account, item).Entitled += amount
	return nil
}

func (f *fakeRewardRepo) AddClaimed(ctx context.Context, account, item, amount uint32) error {
	f.row(account, item).Claimed += amount
	return nil
}

func (f *fakeRewardRepo) AddStored(ctx context.Context, account, item, amount uint32) error {
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

type recorder struct {
	messages []string
}

func (r *recorder) SendSysMessage(text string)         { r.messages = append(r.messages, text) }
func (r *recorder) SendAreaTriggerMessage(text string) { r.messages = append(r.messages, text) }

func englishLocalizer() func() *locale.Localizer {
	return func() *locale.Localizer { return locale.New(locale.EN) }
}

func tickerConfig() func() rewards.TickerConfig {
	return func() rewards.TickerConfig {
		return rewards.TickerConfig{Enable: true, ItemID: 37711, IntervalCount: 30}
	}
}

func run(t *testing.T, cmd scripting.Command, p scripting.Player, resp scripting.Responder, args string) {
	t.Helper()
	if !cmd.Handler(context.Background(), &scripting.CommandContext{Player: p, Resp: resp, Args: args}) {
		t.Fatalf("%s handler returned false", cmd.Name)
	}
}

func lastMessage(t *testing.T, messages []string) string {
	t.Helper()
	if len(messages) == 0 {
		t.Fatal("no messages sent")
	}
	return messages[len(messages)-1]
}

func wantContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("message %q does not contain %q", got, want)
	}
}
