package service

import (
	"fmt"
	"strings"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/ops-reminder-bot/internal/gameclock"
)

var stageHeadlines = map[string]string{
	domain.StageT60: "📢 *Operation %s* begins in 60 minutes!",
	domain.StageT30: "⏳ *Operation %s* begins in 30 minutes.",
	domain.StageT15: "⚠️ *Operation %s* begins in 15 minutes. Gear up.",
	domain.StageT3:  "🚨 *Operation %s* begins in 3 minutes. Get in position!",
	domain.StageT0:  "🚀 *Operation %s* is starting now!",
}

// renderStage builds the public announcement for a stage. The output depends
// only on the stage and the mission so a repeated render is identical.
func renderStage(stage domain.Stage, m *entity.Mission, gc *gameclock.Translator, rsvpEmoji string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(stageHeadlines[stage.Key], m.Codename))
	b.WriteString("\n")
	writeDetails(&b, m, gc)

	if stage.Key == domain.StageT60 && rsvpEmoji != "" {
		b.WriteString(fmt.Sprintf("\nReact with :%s: to get personal reminders.", rsvpEmoji))
	}

	return b.String()
}

// renderDirect builds the reminder sent to a participant who is going.
func renderDirect(stage domain.Stage, m *entity.Mission, gc *gameclock.Translator) string {
	when := gc.Format(m.TargetUTC) + " " + gc.Label()
	if stage.Lead == 0 {
		return fmt.Sprintf("🚀 *Operation %s* is starting now (%s). See you there!", m.Codename, when)
	}

	return fmt.Sprintf("⏰ Reminder: *Operation %s* starts in %d minutes (%s).",
		m.Codename, int(stage.Lead.Minutes()), when)
}

func writeDetails(b *strings.Builder, m *entity.Mission, gc *gameclock.Translator) {
	b.WriteString(fmt.Sprintf("🕒 %s %s", gc.Format(m.TargetUTC), gc.Label()))
	if m.Location != "" {
		b.WriteString(fmt.Sprintf("  📍 %s", m.Location))
	}
	if m.Tag != "" {
		b.WriteString(fmt.Sprintf("  🏷️ %s", m.Tag))
	}
	if m.Description != "" {
		b.WriteString("\n> " + m.Description)
	}
	if m.Notes != "" {
		b.WriteString("\n_" + m.Notes + "_")
	}
}

// mentionFor returns the mention policy of a stage: the first alert and the
// start call ping the mission target, the ones in between stay quiet.
func mentionFor(stage domain.Stage) entity.MentionPolicy {
	if stage.Key == domain.StageT60 || stage.Key == domain.StageT0 {
		return entity.MentionTarget
	}
	return entity.MentionNone
}
