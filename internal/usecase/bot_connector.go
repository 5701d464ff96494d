package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
)

// BotStatus is the public view of one configured bot.
type BotStatus struct {
	UserID    string
	Kind      entities.BotKind
	Connected bool
	UID       string
}

// IBotConnector owns the bot lifecycle: startup connects, lookups made by
// the webhook pipeline and by the management API.
type IBotConnector interface {
	ConnectAll(ctx context.Context, creds []entities.BotCredential) error
	Connect(ctx context.Context, cred entities.BotCredential) (*entities.Bot, error)
	RegisterHookBot(ctx context.Context, userID string) (*entities.Bot, error)
	Credential(userID string) (entities.BotCredential, error)
	Bot(userID string) (*entities.Bot, error)
	List() []BotStatus
}

type BotConnector struct {
	registry *BotRegistry
	api      IAfdianAPIUseCase
	logger   logrus.FieldLogger
}

var _ IBotConnector = (*BotConnector)(nil)

func NewBotConnector(registry *BotRegistry, api IAfdianAPIUseCase, logger logrus.FieldLogger) *BotConnector {
	if registry == nil {
		registry = NewBotRegistry()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BotConnector{registry: registry, api: api, logger: logger}
}

// ConnectAll registers every credential and connects the bots concurrently.
// Credential conflicts and registration failures are returned joined; a
// failed ping is not one of them.
func (c *BotConnector) ConnectAll(ctx context.Context, creds []entities.BotCredential) error {
	var errs []error
	toConnect := make([]entities.BotCredential, 0, len(creds))
	for _, cred := range creds {
		if err := c.registry.AddCredential(cred); err != nil {
			errs = append(errs, err)
			continue
		}
		toConnect = append(toConnect, cred)
	}

	// Every bot is attempted; Wait reports the first failure.
	var g errgroup.Group
	for _, cred := range toConnect {
		g.Go(func() error {
			if _, err := c.Connect(ctx, cred); err != nil {
				return fmt.Errorf("connect %s: %w", cred.UserID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		c.logger.WithError(err).Error("[afdian][bot] some bots could not be registered")
		return err
	}
	return nil
}

// Connect registers cred as a live bot, or returns the bot already live for
// its user id. Token bots are pinged first to learn their uid. A failed ping
// is logged with the platform diagnostics and the bot goes live without a
// uid.
func (c *BotConnector) Connect(ctx context.Context, cred entities.BotCredential) (*entities.Bot, error) {
	log := c.logger.WithFields(logrus.Fields{"user_id": cred.UserID, "kind": cred.Kind()})
	bot := &entities.Bot{Credential: cred}

	if cred.HasToken() {
		resp, err := c.api.Ping(ctx, cred)
		if err != nil {
			fields := logrus.Fields{}
			var failed *afdian.ActionFailed
			if errors.As(err, &failed) {
				fields["status"] = failed.StatusCode
				fields["ec"] = failed.Code
				fields["em"] = failed.Message
				fields["explain"] = failed.Explain
				fields["debug"] = failed.Debug
			}
			log.WithFields(fields).WithError(err).Error("[afdian][bot] ping failed, bot registered without uid")
		} else if resp.Data.UID != nil {
			bot.UID = *resp.Data.UID
		}
	}

	live, created, err := c.registry.RegisterOrGet(bot)
	if err != nil {
		log.WithError(err).Warn("[afdian][bot] register failed")
		return nil, err
	}
	if created {
		log.WithField("uid", live.UID).Info("[afdian][bot] connected")
	}
	return live, nil
}

// RegisterHookBot connects a hook-only bot for a user id first seen on the
// webhook route.
func (c *BotConnector) RegisterHookBot(ctx context.Context, userID string) (*entities.Bot, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyBotUserID
	}
	if bot, ok := c.registry.Get(userID); ok {
		return bot, nil
	}
	c.logger.WithField("user_id", userID).Info("[afdian][bot] registering hook-only bot from webhook")
	return c.Connect(ctx, entities.BotCredential{UserID: userID})
}

func (c *BotConnector) Credential(userID string) (entities.BotCredential, error) {
	cred, ok := c.registry.Credential(userID)
	if !ok {
		return entities.BotCredential{}, ErrBotNotFound
	}
	return cred, nil
}

func (c *BotConnector) Bot(userID string) (*entities.Bot, error) {
	if bot, ok := c.registry.Get(userID); ok {
		return bot, nil
	}
	if _, ok := c.registry.Credential(userID); ok {
		return nil, ErrBotNotConnected
	}
	return nil, ErrBotNotFound
}

func (c *BotConnector) List() []BotStatus {
	creds := c.registry.Credentials()
	out := make([]BotStatus, 0, len(creds))
	for _, cred := range creds {
		status := BotStatus{UserID: cred.UserID, Kind: cred.Kind()}
		if bot, ok := c.registry.Get(cred.UserID); ok {
			status.Connected = true
			status.UID = bot.UID
		}
		out = append(out, status)
	}
	return out
}
