// Package scripting is the seam between the host world server and the
// gameplay modules. The host owns players, sessions and the game loop; the
// modules register plain handler functions into a Registry, keyed by event
// kind, and the host drives them from its dispatch loop.
package scripting

import (
	"context"
	"time"

	"github.com/wowcore/realonline/realonline/logger"
)

type Team int

const (
	TeamAlliance Team = iota
	TeamHorde
	TeamUnknown
)

// Security is the permission level required to use a command.
type Security int

const (
	SecurityPlayer Security = iota
	SecurityGameMaster
	SecurityAdministrator
)

// Player is a connected, world-placed character as seen by the modules.
// Implemented by the host game model.
type Player interface {
	Name() string
	Level() uint32
	Team() Team
	IsGameMaster() bool
	IsInWorld() bool
	AccountID() uint32
	GUID() uint32
	Security() Security

	// Inventory access. StoreItems must fail without side effects when the
	// bags cannot hold the full count.
	ItemCount(itemID uint32) uint32
	CanStoreItems(itemID, count uint32) bool
	StoreItems(itemID, count uint32) error
	DestroyItems(itemID, count uint32) error
	SendNewItem(itemID, count uint32)

	Responder
}

// Responder receives plain-text command and module output. For a player it
// is the chat channel; the server console provides its own implementation.
type Responder interface {
	SendSysMessage(text string)
	SendAreaTriggerMessage(text string)
}

// Session is a live network session. Player is nil while the character is
// not yet placed in the world.
type Session interface {
	AccountID() uint32
	Player() Player
}

// SessionManager enumerates the host's live sessions and world-placed
// players, the two roster construction strategies.
type SessionManager interface {
	Sessions() []Session
	Players() []Player
}

// CommandContext carries everything a command handler may touch. Player is
// nil when the command comes from the server console.
type CommandContext struct {
	Player Player
	Resp   Responder
	Args   string
}

// CommandFunc returns whether the command was handled. Unhandled commands
// fall through to the host's own command table.
type CommandFunc func(ctx context.Context, cc *CommandContext) bool

type Command struct {
	Name    string
	Level   Security
	Console bool
	Handler CommandFunc
}

type (
	TickFunc  func(ctx context.Context, elapsed time.Duration)
	LoginFunc func(ctx context.Context, p Player)
	LevelFunc func(ctx context.Context, p Player, oldLevel uint32)
)

// Registry maps event kinds to handlers. It is populated once during module
// wiring and afterwards only read, always from the host's game-logic thread.
type Registry struct {
	commands map[string]Command
	ticks    []TickFunc
	logins   []LoginFunc
	levels   []LevelFunc
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) RegisterCommand(c Command) {
	r.commands[c.Name] = c
}

func (r *Registry) RegisterTick(f TickFunc) {
	r.ticks = append(r.ticks, f)
}

func (r *Registry) RegisterLogin(f LoginFunc) {
	r.logins = append(r.logins, f)
}

func (r *Registry) RegisterLevelChanged(f LevelFunc) {
	r.levels = append(r.levels, f)
}

// Commands lists registered command names, for the host's help surface.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c)
	}
	return out
}

// Dispatch routes a chat or console command. It returns false when the name
// is unknown, the caller lacks the required level, or a console invocation
// hits a command that needs a player.
func (r *Registry) Dispatch(ctx context.Context, name, args string, p Player, resp Responder) bool {
	c, ok := r.commands[name]
	if !ok {
		return false
	}
	if p == nil && !c.Console {
		return false
	}
	if p != nil && p.Security() < c.Level {
		return false
	}

	start := time.Now()
	handled := c.Handler(ctx, &CommandContext{Player: p, Resp: resp, Args: args})
	logger.LogCommand(c.Name, time.Since(start), nil)
	return handled
}

// OnUpdate runs the world-tick handlers with the elapsed wall time since the
// previous update.
func (r *Registry) OnUpdate(ctx context.Context, elapsed time.Duration) {
	for _, f := range r.ticks {
		f(ctx, elapsed)
	}
}

func (r *Registry) OnLogin(ctx context.Context, p Player) {
	for _, f := range r.logins {
		f(ctx, p)
	}
}

func (r *Registry) OnLevelChanged(ctx context.Context, p Player, oldLevel uint32) {
	for _, f := range r.levels {
		f(ctx, p, oldLevel)
	}
}
