package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"golang.org/x/time/rate"

	"github.com/skinnp91/karmamari/internal/config"
	"github.com/skinnp91/karmamari/internal/domain"
	"github.com/skinnp91/karmamari/internal/karma"
	"github.com/skinnp91/karmamari/internal/platform/correlation"
)

const storeFailureReply = "The karma store is unavailable right now, please try again."

const helpText = `This bot lets you add and remove karma from things.
Achievements included! Add ++ or -- to any word/emoji.

achievement <karma> <message> - set an achievement message for a karma score`

// karmaEngine is the subset of the pipeline the adapter needs.
type karmaEngine interface {
	HandleMessage(ctx context.Context, text string, roster []domain.User) (string, error)
	RegisterAchievement(ctx context.Context, text string) (string, error)
}

// slackAPI is the subset of the Slack web API the adapter uses.
type slackAPI interface {
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Adapter bridges Slack events and the karma engine. Each inbound event is
// handled as an independent unit of work with its own correlation ID.
type Adapter struct {
	api       slackAPI
	socket    *socketmode.Client
	engine    karmaEngine
	limiter   *rate.Limiter
	botUserID string
}

func New(cfg *config.Config, engine karmaEngine) *Adapter {
	api := slack.New(
		cfg.SlackBotToken,
		slack.OptionAppLevelToken(cfg.SlackAppToken),
	)

	return &Adapter{
		api:    api,
		socket: socketmode.New(api),
		engine: engine,
		// chat.postMessage allows roughly one message per second per channel
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Run connects to Slack and processes events until ctx is cancelled.
func (a *Adapter) Run(ctx context.Context) error {
	auth, err := a.api.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("slack auth test: %w", err)
	}
	a.botUserID = auth.UserID
	slog.Info("Slack adapter connected", "bot_user_id", a.botUserID)

	go a.handleEvents(ctx)

	return a.socket.RunContext(ctx)
}

func (a *Adapter) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-a.socket.Events:
			if !ok {
				return
			}
			a.dispatch(ctx, evt)
		}
	}
}

func (a *Adapter) dispatch(ctx context.Context, evt socketmode.Event) {
	if evt.Type != socketmode.EventTypeEventsAPI {
		return
	}

	apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
	if !ok {
		return
	}
	if evt.Request != nil {
		a.socket.Ack(*evt.Request)
	}

	ctx = correlation.WithID(ctx, correlation.NewID())

	switch ev := apiEvent.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		a.handleMessage(ctx, ev)
	case *slackevents.AppMentionEvent:
		a.handleMention(ctx, ev)
	}
}

// handleMessage runs the karma pipeline for a channel message containing
// at least one marker. Messages from bots (including ourselves) and
// message edits/joins are ignored.
func (a *Adapter) handleMessage(ctx context.Context, ev *slackevents.MessageEvent) {
	if ev.BotID != "" || ev.User == a.botUserID || ev.SubType != "" {
		return
	}
	if !karma.HasMarkers(ev.Text) {
		return
	}

	roster, err := a.roster(ctx)
	if err != nil {
		// degraded: mention resolution falls back to raw ids
		slog.WarnContext(ctx, "Roster fetch failed", "error", err)
	}

	reply, err := a.engine.HandleMessage(ctx, ev.Text, roster)
	if err != nil {
		slog.ErrorContext(ctx, "Karma update failed", "channel", ev.Channel, "error", err)
		a.send(ctx, ev.Channel, storeFailureReply)
		return
	}
	if reply == "" {
		return
	}

	a.send(ctx, ev.Channel, reply)
}

// handleMention dispatches bot commands addressed via "@bot <command> ...".
func (a *Adapter) handleMention(ctx context.Context, ev *slackevents.AppMentionEvent) {
	switch mentionCommand(ev.Text) {
	case "achievement":
		reply, err := a.engine.RegisterAchievement(ctx, ev.Text)
		if errors.Is(err, domain.ErrInvalidAchievementCommand) {
			a.send(ctx, ev.Channel, "Usage: achievement <karma> <message>")
			return
		}
		if err != nil {
			slog.ErrorContext(ctx, "Achievement registration failed", "channel", ev.Channel, "error", err)
			a.send(ctx, ev.Channel, storeFailureReply)
			return
		}
		a.send(ctx, ev.Channel, reply)
	case "help":
		a.send(ctx, ev.Channel, helpText)
	}
}

// mentionCommand extracts the command word following the bot mention.
func mentionCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return strings.ToLower(fields[1])
}

// roster fetches the point-in-time user list for mention resolution.
func (a *Adapter) roster(ctx context.Context) ([]domain.User, error) {
	users, err := a.api.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	roster := make([]domain.User, 0, len(users))
	for _, u := range users {
		roster = append(roster, domain.User{ID: u.ID, Name: u.Name})
	}
	return roster, nil
}

func (a *Adapter) send(ctx context.Context, channel, text string) {
	if err := a.limiter.Wait(ctx); err != nil {
		return
	}
	if _, _, err := a.api.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false)); err != nil {
		slog.ErrorContext(ctx, "Failed to post message", "channel", channel, "error", err)
	}
}
