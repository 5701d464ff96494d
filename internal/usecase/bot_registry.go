package usecase

import (
	"errors"
	"sort"
	"sync"

	"afdian_adapter/internal/domain/entities"
)

var (
	ErrBotNotFound          = errors.New("bot not found")
	ErrBotNotConnected      = errors.New("bot not connected")
	ErrBotAlreadyRegistered = errors.New("bot already registered")
	ErrEmptyBotUserID       = errors.New("bot user_id is empty")
)

// BotRegistry keeps the configured credentials and the live bots, both keyed
// by creator user id. A credential without a live bot means the connect has
// not happened yet or the bot was removed.
type BotRegistry struct {
	mu    sync.RWMutex
	creds map[string]entities.BotCredential
	bots  map[string]*entities.Bot
}

func NewBotRegistry() *BotRegistry {
	return &BotRegistry{
		creds: make(map[string]entities.BotCredential),
		bots:  make(map[string]*entities.Bot),
	}
}

func (r *BotRegistry) AddCredential(cred entities.BotCredential) error {
	if cred.UserID == "" {
		return ErrEmptyBotUserID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.creds[cred.UserID]; ok {
		return ErrBotAlreadyRegistered
	}
	r.creds[cred.UserID] = cred
	return nil
}

func (r *BotRegistry) Credential(userID string) (entities.BotCredential, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cred, ok := r.creds[userID]
	return cred, ok
}

// Register marks bot as live and records its credential.
func (r *BotRegistry) Register(bot *entities.Bot) error {
	if bot == nil || bot.SelfID() == "" {
		return ErrEmptyBotUserID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bots[bot.SelfID()]; ok {
		return ErrBotAlreadyRegistered
	}
	r.creds[bot.SelfID()] = bot.Credential
	r.bots[bot.SelfID()] = bot
	return nil
}

// RegisterOrGet registers bot unless a live bot with the same id exists, in
// which case that one is returned. created reports which happened.
func (r *BotRegistry) RegisterOrGet(bot *entities.Bot) (live *entities.Bot, created bool, err error) {
	if bot == nil || bot.SelfID() == "" {
		return nil, false, ErrEmptyBotUserID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.bots[bot.SelfID()]; ok {
		return existing, false, nil
	}
	r.creds[bot.SelfID()] = bot.Credential
	r.bots[bot.SelfID()] = bot
	return bot, true, nil
}

func (r *BotRegistry) Get(userID string) (*entities.Bot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bot, ok := r.bots[userID]
	return bot, ok
}

// List returns the live bots ordered by user id.
func (r *BotRegistry) List() []*entities.Bot {
	r.mu.RLock()
	out := make([]*entities.Bot, 0, len(r.bots))
	for _, bot := range r.bots {
		out = append(out, bot)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].SelfID() < out[j].SelfID() })
	return out
}

// Credentials returns every known credential ordered by user id.
func (r *BotRegistry) Credentials() []entities.BotCredential {
	r.mu.RLock()
	out := make([]entities.BotCredential, 0, len(r.creds))
	for _, cred := range r.creds {
		out = append(out, cred)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// Remove drops the live bot; the credential stays known.
func (r *BotRegistry) Remove(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bots, userID)
}
