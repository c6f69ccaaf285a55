package scripting

import (
	"context"
	"testing"
	"time"
)

type dispatchPlayer struct {
	sec Security
}

func (p *dispatchPlayer) Name() string                            { return "Test" }
func (p *dispatchPlayer) Level() uint32                           { return 80 }
func (p *dispatchPlayer) Team() Team                              { return TeamAlliance }
func (p *dispatchPlayer) IsGameMaster() bool                      { return false }
func (p *dispatchPlayer) IsInWorld() bool                         { return true }
func (p *dispatchPlayer) AccountID() uint32                       { return 1 }
func (p *dispatchPlayer) GUID() uint32                            { return 1 }
func (p *dispatchPlayer) Security() Security                      { return p.sec }
func (p *dispatchPlayer) ItemCount(itemID uint32) uint32          { return 0 }
func (p *dispatchPlayer) CanStoreItems(itemID, count uint32) bool { return false }
func (p *dispatchPlayer) StoreItems(itemID, count uint32) error   { return nil }
func (p *dispatchPlayer) DestroyItems(itemID, count uint32) error { return nil }
func (p *dispatchPlayer) SendNewItem(itemID, count uint32)        {}
func (p *dispatchPlayer) SendSysMessage(text string)              {}
func (p *dispatchPlayer) SendAreaTriggerMessage(text string)      {}

type nullResponder struct{}

func (nullResponder) SendSysMessage(text string)         {}
func (nullResponder) SendAreaTriggerMessage(text string) {}

func TestDispatch(t *testing.T) {
	reg := NewRegistry()
	var calls int
	reg.RegisterCommand(Command{
		Name:    "chatonly",
		Level:   SecurityPlayer,
		Console: false,
		Handler: func(ctx context.Context, cc *CommandContext) bool {
			calls++
			return true
		},
	})
	reg.RegisterCommand(Command{
		Name:    "gm",
		Level:   SecurityGameMaster,
		Console: true,
		Handler: func(ctx context.Context, cc *CommandContext) bool {
			calls++
			return true
		},
	})

	ctx := context.Background()
	resp := nullResponder{}

	tests := []struct {
		name    string
		cmd     string
		player  Player
		handled bool
	}{
		{"unknown command", "nosuch", &dispatchPlayer{}, false},
		{"player command from player", "chatonly", &dispatchPlayer{}, true},
		{"player command from console", "chatonly", nil, false},
		{"gm command from console", "gm", nil, true},
		{"gm command from plain player", "gm", &dispatchPlayer{sec: SecurityPlayer}, false},
		{"gm command from gm", "gm", &dispatchPlayer{sec: SecurityGameMaster}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := calls
			handled := reg.Dispatch(ctx, tt.cmd, "", tt.player, resp)
			if handled != tt.handled {
				t.Errorf("Dispatch(%q) = %v, want %v", tt.cmd, handled, tt.handled)
			}
			ran := calls > before
			if ran != tt.handled {
				t.Errorf("handler ran = %v, want %v", ran, tt.handled)
			}
		})
	}
}

func TestRegistryHooks(t *testing.T) {
	reg := NewRegistry()

	var ticks, logins, levels int
	reg.RegisterTick(func(ctx context.Context, elapsed time.Duration) { ticks++ })
	reg.RegisterTick(func(ctx context.Context, elapsed time.Duration) { ticks++ })
	reg.RegisterLogin(func(ctx context.Context, p Player) { logins++ })
	reg.RegisterLevelChanged(func(ctx context.Context, p Player, oldLevel uint32) { levels++ })

	ctx := context.Background()
	reg.OnUpdate(ctx, time.Second)
	reg.OnLogin(ctx, &dispatchPlayer{})
	reg.OnLevelChanged(ctx, &dispatchPlayer{}, 9)

	if ticks != 2 || logins != 1 || levels != 1 {
		t.Errorf("hooks ran ticks=%d logins=%d levels=%d, want 2/1/1", ticks, logins, levels)
	}
}
