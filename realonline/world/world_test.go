package world

import (
	"testing"

	"github.com/wowcore/realonline/realonline/scripting"
)

type stubPlayer struct {
	account uint32
}

func (p *stubPlayer) Name() string                            { return "Stub" }
func (p *stubPlayer) Level() uint32                           { return 1 }
func (p *stubPlayer) Team() scripting.Team                    { return scripting.TeamAlliance }
func (p *stubPlayer) IsGameMaster() bool                      { return false }
func (p *stubPlayer) IsInWorld() bool                         { return true }
func (p *stubPlayer) AccountID() uint32                       { return p.account }
func (p *stubPlayer) GUID() uint32                            { return p.account }
func (p *stubPlayer) Security() scripting.Security            { return scripting.SecurityPlayer }
func (p *stubPlayer) ItemCount(itemID uint32) uint32          { return 0 }
func (p *stubPlayer) CanStoreItems(itemID, count uint32) bool { return false }
func (p *stubPlayer) StoreItems(itemID, count uint32) error   { return nil }
func (p *stubPlayer) DestroyItems(itemID, count uint32) error { return nil }
func (p *stubPlayer) SendNewItem(itemID, count uint32)        {}
func (p *stubPlayer) SendSysMessage(text string)              {}
func (p *stubPlayer) SendAreaTriggerMessage(text string)      {}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	m.Connect(1, nil)
	if got := len(m.Sessions()); got != 1 {
		t.Fatalf("sessions after connect = %d, want 1", got)
	}
	if got := len(m.Players()); got != 0 {
		t.Fatalf("players before place = %d, want 0", got)
	}

	m.Place(1, &stubPlayer{account: 1})
	if got := len(m.Players()); got != 1 {
		t.Fatalf("players after place = %d, want 1", got)
	}

	m.Connect(2, &stubPlayer{account: 2})
	if got := len(m.Sessions()); got != 2 {
		t.Fatalf("sessions = %d, want 2", got)
	}

	m.Disconnect(1)
	if got := len(m.Sessions()); got != 1 {
		t.Fatalf("sessions after disconnect = %d, want 1", got)
	}
	if got := len(m.Players()); got != 1 {
		t.Fatalf("players after disconnect = %d, want 1", got)
	}
	if m.Sessions()[0].AccountID() != 2 {
		t.Errorf("remaining session account = %d, want 2", m.Sessions()[0].AccountID())
	}

	// placing into a gone session is a no-op
	m.Place(1, &stubPlayer{account: 1})
	if got := len(m.Players()); got != 1 {
		t.Errorf("players after stale place = %d, want 1", got)
	}
}
