package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/ops-reminder-bot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	missionService contract.MissionService
	rsvpService    contract.RSVPService
	signingSecret  string
	log            *zap.SugaredLogger
}

func New(missionService contract.MissionService, rsvpService contract.RSVPService, signingSecret string, log *zap.SugaredLogger) *SlackHandler {
	return &SlackHandler{
		missionService: missionService,
		rsvpService:    rsvpService,
		signingSecret:  signingSecret,
		log:            log.Named("handler"),
	}
}

// verifyRequest checks the Slack signature and hands back the raw body.
func (h *SlackHandler) verifyRequest(r *http.Request) ([]byte, int) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, http.StatusBadRequest
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return nil, http.StatusUnauthorized
	}

	if _, err := verifier.Write(body); err != nil {
		return nil, http.StatusInternalServerError
	}

	if err := verifier.Ensure(); err != nil {
		return nil, http.StatusUnauthorized
	}

	return body, http.StatusOK
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, status := h.verifyRequest(r); status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdCreate:
		return h.handleCreate(ctx, cmd, slashCmd, "")
	case slackcmd.CmdFrom:
		if len(cmd.Args) == 0 {
			return h.createErrorResponse("Use: `/ops from TEMPLATE CODENAME YYYY-MM-DD HH:MM`")
		}
		template := cmd.Args[0]
		cmd.Args = cmd.Args[1:]
		return h.handleCreate(ctx, cmd, slashCmd, template)
	case slackcmd.CmdCancel:
		return h.handleCancel(ctx, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(ctx, cmd, slashCmd)
	case slackcmd.CmdRSVP:
		return h.handleRSVP(ctx, cmd, slashCmd)
	case slackcmd.CmdTemplate:
		return h.handleTemplate(ctx, cmd, slashCmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(ctx, cmd, slashCmd)
	case slackcmd.CmdTime:
		return h.handleTime()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unrecognized command")
	}
}

func (h *SlackHandler) handleCreate(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand, template string) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Use: `/ops create CODENAME YYYY-MM-DD HH:MM [options] description`")
	}

	req := entity.CreateMissionRequest{
		TenantID:    slashCmd.TeamID,
		Codename:    cmd.Args[0],
		TargetTime:  cmd.Args[1] + " " + cmd.Args[2],
		Description: strings.Join(cmd.Args[3:], " "),
		Location:    cmd.Options[slackcmd.OptLocation],
		PingTarget:  parsePingTarget(cmd.Options[slackcmd.OptPing]),
		Tag:         cmd.Options[slackcmd.OptTag],
		Notes:       cmd.Options[slackcmd.OptNotes],
		CreatedBy:   slashCmd.UserID,
	}

	var mission *entity.Mission
	var err error
	if template != "" {
		mission, err = h.missionService.CreateFromTemplate(ctx, template, req)
	} else {
		mission, err = h.missionService.CreateMission(ctx, req)
	}
	if err != nil {
		return h.errorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ Operation *%s* scheduled for %s. Reminders go out 60, 30, 15 and 3 minutes before, and at start.",
			mission.Codename, h.missionService.FormatGame(mission.TargetUTC)),
	}
}

func (h *SlackHandler) handleCancel(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/ops cancel CODENAME`")
	}

	codename := strings.ToUpper(cmd.Args[0])
	deleted, err := h.missionService.DeleteMission(ctx, slashCmd.TeamID, codename)
	if err != nil {
		return h.errorResponse(err)
	}

	if !deleted {
		return h.createErrorResponse(fmt.Sprintf("No active operation named *%s*", codename))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🛑 Operation *%s* has been cancelled.", codename),
	}
}

func (h *SlackHandler) handleList(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	limit := 0
	if len(cmd.Args) > 0 {
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil || n <= 0 {
			return h.createErrorResponse("Use: `/ops list [N]` with a positive number")
		}
		limit = n
	}

	missions, err := h.missionService.ListUpcoming(ctx, slashCmd.TeamID, limit)
	if err != nil {
		return h.errorResponse(err)
	}

	if len(missions) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No upcoming operations. Use `/ops create` to schedule one.",
		}
	}

	var list strings.Builder
	list.WriteString("*Upcoming operations:*\n")
	for i, m := range missions {
		list.WriteString(fmt.Sprintf("%d. *%s* - %s", i+1, m.Codename, h.missionService.FormatGame(m.TargetUTC)))
		if m.Location != "" {
			list.WriteString(fmt.Sprintf(" 📍 %s", m.Location))
		}
		if m.Description != "" {
			list.WriteString(fmt.Sprintf("\n    %s", m.Description))
		}
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleRSVP(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/ops rsvp CODENAME`")
	}

	codename := strings.ToUpper(cmd.Args[0])
	counts, err := h.missionService.RSVPCounts(ctx, slashCmd.TeamID, codename)
	if err != nil {
		return h.errorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🙋 *%s*: %d going", codename, counts[entity.RSVPStatusGoing]),
	}
}

func (h *SlackHandler) handleTemplate(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	usage := "Use: `/ops template save NAME description`, `/ops template list` or `/ops template delete NAME`"
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(usage)
	}

	switch cmd.Args[0] {
	case "list", "ls":
		templates, err := h.missionService.ListTemplates(ctx, slashCmd.TeamID)
		if err != nil {
			return h.errorResponse(err)
		}

		if len(templates) == 0 {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "No templates saved yet.",
			}
		}

		var list strings.Builder
		list.WriteString("*Templates:*\n")
		for _, t := range templates {
			list.WriteString(fmt.Sprintf("• *%s* - %s\n", t.Name, t.Description))
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         list.String(),
		}

	case "save":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse(usage)
		}

		name := cmd.Args[1]
		if err := h.missionService.SaveTemplate(ctx, slashCmd.TeamID, name, strings.Join(cmd.Args[2:], " ")); err != nil {
			return h.errorResponse(err)
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("✅ Template *%s* saved.", strings.ToLower(name)),
		}

	case "delete", "rm":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse(usage)
		}

		name := strings.ToLower(cmd.Args[1])
		deleted, err := h.missionService.DeleteTemplate(ctx, slashCmd.TeamID, name)
		if err != nil {
			return h.errorResponse(err)
		}

		if !deleted {
			return h.createErrorResponse(fmt.Sprintf("Template *%s* not found", name))
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("🗑️ Template *%s* deleted.", name),
		}
	}

	return h.createErrorResponse(usage)
}

func (h *SlackHandler) handleConfig(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	usage := "Use: `/ops config channel #channel`, `/ops config ignore on|off` or `/ops config show`"
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(usage)
	}

	switch cmd.Args[0] {
	case "show":
		return h.handleConfigShow(ctx, slashCmd)

	case "channel":
		channelID := slashCmd.ChannelID
		if len(cmd.Args) > 1 {
			channelID = parseChannelID(cmd.Args[1])
		}

		if err := h.missionService.SetAnnounceChannel(ctx, slashCmd.TeamID, channelID); err != nil {
			return h.errorResponse(err)
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Operations will be announced in <#%s>", channelID),
		}

	case "ignore":
		if len(cmd.Args) < 2 || (cmd.Args[1] != "on" && cmd.Args[1] != "off") {
			return h.createErrorResponse(usage)
		}

		ignored := cmd.Args[1] == "on"
		if err := h.missionService.SetAnnounceIgnored(ctx, slashCmd.TeamID, ignored); err != nil {
			return h.errorResponse(err)
		}

		text := "▶️ Announcements resumed."
		if ignored {
			text = "⏸️ Announcements paused. Reminder timing continues silently."
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         text,
		}
	}

	return h.createErrorResponse(usage)
}

func (h *SlackHandler) handleConfigShow(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	settings, err := h.missionService.GetSettings(ctx, slashCmd.TeamID)
	if err != nil {
		return h.errorResponse(err)
	}

	channel := "_not set_"
	status := "active"
	if settings != nil {
		if settings.AnnounceChannelID != "" {
			channel = fmt.Sprintf("<#%s>", settings.AnnounceChannelID)
		}
		if settings.AnnounceIgnored {
			status = "paused"
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("⚙️ *Current Configuration:*\n\n📢 *Announcement channel:* %s\n🔔 *Announcements:* %s",
			channel, status),
	}
}

func (h *SlackHandler) handleTime() *slack.Msg {
	now := h.missionService.NowGame()
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🕒 Game clock: %s", h.missionService.FormatGame(now)),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// errorResponse shows validation problems to the user and hides the rest.
func (h *SlackHandler) errorResponse(err error) *slack.Msg {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		switch {
		case errors.Is(err, domain.ErrInvalidTimeFormat):
			return h.createErrorResponse("Invalid time format. Use `YYYY-MM-DD HH:MM` on the game clock")
		case errors.Is(err, domain.ErrPastTime):
			return h.createErrorResponse(fmt.Sprintf("That time is already in the past. Game clock now: %s",
				h.missionService.FormatGame(h.missionService.NowGame())))
		}
		return h.createErrorResponse(capitalize(validationErr.Err.Error()))
	}

	h.log.Errorw("command failed", "error", err)
	return h.createErrorResponse("Something went wrong, please try again")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// parseChannelID extracts C123 from "<#C123|general>"; plain ids pass through.
func parseChannelID(arg string) string {
	arg = strings.TrimSpace(arg)
	arg = strings.TrimPrefix(arg, "<#")
	arg = strings.TrimSuffix(arg, ">")
	id, _, _ := strings.Cut(arg, "|")
	return id
}

// parsePingTarget turns the ping option into the stored ping target:
// the everyone sentinel, a user group id or a user id.
func parsePingTarget(arg string) string {
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(arg) {
	case "":
		return ""
	case "everyone", "@everyone", "channel", "@channel", "<!channel>", "<!everyone>", "<!here>":
		return entity.PingEveryone
	}

	arg = strings.TrimPrefix(arg, "<!subteam^")
	arg = strings.TrimPrefix(arg, "<@")
	arg = strings.TrimSuffix(arg, ">")
	id, _, _ := strings.Cut(arg, "|")
	return id
}
