package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack/slackevents"
)

// HandleEvents receives Events API callbacks. Reactions on announcements are
// RSVP signals: adding one joins the operation, removing it leaves.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, status := h.verifyRequest(r)
	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge *slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		ctx := r.Context()
		switch ev := event.InnerEvent.Data.(type) {
		case *slackevents.ReactionAddedEvent:
			signal := entity.RSVPSignal{
				AnnouncementID: entity.AnnouncementID(ev.Item.Channel, ev.Item.Timestamp),
				ParticipantID:  ev.User,
				Reaction:       ev.Reaction,
			}
			if err := h.rsvpService.Join(ctx, signal); err != nil {
				h.log.Errorw("failed to apply rsvp join", "team", event.TeamID, "error", err)
			}

		case *slackevents.ReactionRemovedEvent:
			signal := entity.RSVPSignal{
				AnnouncementID: entity.AnnouncementID(ev.Item.Channel, ev.Item.Timestamp),
				ParticipantID:  ev.User,
				Reaction:       ev.Reaction,
			}
			if err := h.rsvpService.Leave(ctx, signal); err != nil {
				h.log.Errorw("failed to apply rsvp leave", "team", event.TeamID, "error", err)
			}
		}
	}

	w.WriteHeader(http.StatusOK)
}
