package entities

// BotKind tells token bots, which can sign API calls, from hook-only bots.
type BotKind string

const (
	BotKindToken BotKind = "token"
	BotKindHook  BotKind = "hook"
)

// BotCredential identifies one afdian creator account.
//
// An empty Token marks a hook-only bot: it accepts webhook pushes but can
// neither sign API calls nor verify the pushes it receives.
type BotCredential struct {
	UserID string `json:"user_id" koanf:"user_id" yaml:"user_id"`
	Token  string `json:"token,omitempty" koanf:"token" yaml:"token"`
}

func (c BotCredential) HasToken() bool {
	return c.Token != ""
}

func (c BotCredential) Kind() BotKind {
	if c.HasToken() {
		return BotKindToken
	}
	return BotKindHook
}

// Bot is a live bot instance registered after a successful connect.
type Bot struct {
	Credential BotCredential
	// UID is the uid echoed by ping; empty for hook-only bots.
	UID string
}

func (b *Bot) SelfID() string {
	return b.Credential.UserID
}
