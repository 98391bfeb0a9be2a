package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Slack delivers notifications with chat.postMessage. Delivery is best
// effort: errors are returned once and never retried here.
type Slack struct {
	client contract.SlackClient
	log    *zap.SugaredLogger
}

func NewSlack(client contract.SlackClient, log *zap.SugaredLogger) *Slack {
	return &Slack{client: client, log: log.Named("notifier")}
}

func (s *Slack) Deliver(ctx context.Context, n entity.Notification) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if n.Destination == "" {
		return "", fmt.Errorf("empty destination")
	}

	text := n.Content
	if prefix := mentionPrefix(n); prefix != "" {
		text = prefix + " " + text
	}

	channelID, timestamp, err := s.client.PostMessage(
		n.Destination,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return "", fmt.Errorf("failed to send Slack message: %w", err)
	}

	if n.SeedReaction != "" {
		// a missing seed reaction does not undo the delivery
		if err := s.client.AddReaction(n.SeedReaction, slack.NewRefToMessage(channelID, timestamp)); err != nil {
			s.log.Warnw("failed to seed reaction", "channel", channelID, "reaction", n.SeedReaction, "error", err)
		}
	}

	return entity.AnnouncementID(channelID, timestamp), nil
}

// mentionPrefix renders the ping target as Slack mention markup.
func mentionPrefix(n entity.Notification) string {
	if n.Mention != entity.MentionTarget {
		return ""
	}

	switch target := strings.TrimSpace(n.PingTarget); {
	case target == "":
		return ""
	case target == entity.PingEveryone:
		return "<!channel>"
	case strings.HasPrefix(target, "S"):
		return fmt.Sprintf("<!subteam^%s>", target)
	default:
		return fmt.Sprintf("<@%s>", target)
	}
}
