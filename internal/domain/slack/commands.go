package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdCreate   CommandType = "create"
	CmdFrom     CommandType = "from"
	CmdCancel   CommandType = "cancel"
	CmdList     CommandType = "list"
	CmdRSVP     CommandType = "rsvp"
	CmdTemplate CommandType = "template"
	CmdConfig   CommandType = "config"
	CmdTime     CommandType = "time"
	CmdHelp     CommandType = "help"
)

// Option keys accepted as key=value tokens by create and from.
const (
	OptLocation = "loc"
	OptPing     = "ping"
	OptTag      = "tag"
	OptNotes    = "notes"
)

var optionKeys = map[string]bool{
	OptLocation: true,
	OptPing:     true,
	OptTag:      true,
	OptNotes:    true,
}

type Command struct {
	Type    CommandType
	Args    []string
	Options map[string]string
	Raw     string
}

func ParseCommand(text string) (*Command, error) {
	parts := tokenize(text)
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:     text,
		Options: map[string]string{},
	}

	switch strings.ToLower(parts[0]) {
	case "create", "new":
		cmd.Type = CmdCreate
	case "from":
		cmd.Type = CmdFrom
	case "cancel", "delete", "rm":
		cmd.Type = CmdCancel
	case "list", "ls":
		cmd.Type = CmdList
	case "rsvp":
		cmd.Type = CmdRSVP
	case "template", "tpl":
		cmd.Type = CmdTemplate
	case "config":
		cmd.Type = CmdConfig
	case "time", "now":
		cmd.Type = CmdTime
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	for _, part := range parts[1:] {
		if cmd.Type == CmdCreate || cmd.Type == CmdFrom {
			if key, value, ok := strings.Cut(part, "="); ok && optionKeys[strings.ToLower(key)] {
				cmd.Options[strings.ToLower(key)] = value
				continue
			}
		}
		cmd.Args = append(cmd.Args, part)
	}

	return cmd, nil
}

// tokenize splits on whitespace, keeping "double quoted" runs together.
// Slack clients often send curly quotes, so those count too.
func tokenize(text string) []string {
	text = strings.NewReplacer("“", `"`, "”", `"`).Replace(strings.TrimSpace(text))

	var tokens []string
	var current strings.Builder
	inQuotes := false
	hasToken := false

	for _, r := range text {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n'):
			if hasToken {
				tokens = append(tokens, current.String())
				current.Reset()
				hasToken = false
			}
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}

	if hasToken {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func GetHelpText() string {
	return `*Available Commands:*

*Operations:*
• ` + "`/ops create CODENAME YYYY-MM-DD HH:MM [loc=\"...\"] [ping=everyone|@group] [tag=...] [notes=\"...\"] description`" + ` - Schedule an operation (game clock time)
• ` + "`/ops from TEMPLATE CODENAME YYYY-MM-DD HH:MM [options] [extra text]`" + ` - Schedule from a saved template
• ` + "`/ops cancel CODENAME`" + ` - Cancel an operation
• ` + "`/ops list [N]`" + ` - Show upcoming operations
• ` + "`/ops rsvp CODENAME`" + ` - Show who is going

*Templates:*
• ` + "`/ops template save NAME description`" + ` - Save a template
• ` + "`/ops template list`" + ` - List templates
• ` + "`/ops template delete NAME`" + ` - Delete a template

*Configuration:*
• ` + "`/ops config channel #channel`" + ` - Set the announcement channel
• ` + "`/ops config ignore on|off`" + ` - Pause or resume announcements
• ` + "`/ops config show`" + ` - Show current settings

• ` + "`/ops time`" + ` - Show the current game clock time`
}
