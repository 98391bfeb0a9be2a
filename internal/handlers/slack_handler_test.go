package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/ops-reminder-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	teamID    = "T123456789"
	channelID = "C123456789"
	userID    = "U987654321"
	gameLabel = "2025-03-01 20:00 (UTC-2)"
)

type slashTestCase struct {
	name          string
	text          string
	buildMocks    func(ctx context.Context, m test.ServiceMocks)
	checkResponse func(t *testing.T, response slack.Msg)
}

func runSlashTests(t *testing.T, tests []slashTestCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, tt.text, channelID, userID, teamID, test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)

			var response slack.Msg
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			require.NoError(t, err)

			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Create(t *testing.T) {
	target := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)

	runSlashTests(t, []slashTestCase{
		{
			name: "Should create mission with options",
			text: `create alpha 2025-03-01 20:00 loc="North Gate" ping=<!subteam^S111|@raid> Take the bridge`,
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					CreateMission(gomock.Any(), entity.CreateMissionRequest{
						TenantID:    teamID,
						Codename:    "alpha",
						TargetTime:  "2025-03-01 20:00",
						Description: "Take the bridge",
						Location:    "North Gate",
						PingTarget:  "S111",
						CreatedBy:   userID,
					}).
					Return(&entity.Mission{TenantID: teamID, Codename: "ALPHA", TargetUTC: target}, nil).Times(1)

				m.MissionServiceMock.EXPECT().FormatGame(target).Return(gameLabel).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "✅ Operation *ALPHA* scheduled for "+gameLabel)
			},
		},
		{
			name: "Should map everyone ping to the sentinel",
			text: "create bravo 2025-03-01 20:00 ping=everyone",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					CreateMission(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req entity.CreateMissionRequest) (*entity.Mission, error) {
						assert.Equal(t, entity.PingEveryone, req.PingTarget)
						assert.Empty(t, req.Description)
						return &entity.Mission{Codename: "BRAVO", TargetUTC: target}, nil
					}).Times(1)

				m.MissionServiceMock.EXPECT().FormatGame(target).Return(gameLabel).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "*BRAVO*")
			},
		},
		{
			name: "Should show usage when time is missing",
			text: "create alpha 2025-03-01",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ Use: `/ops create")
			},
		},
		{
			name: "Should explain invalid time format",
			text: "create alpha 2025-13-01 20:00",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					CreateMission(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("target_time", domain.ErrInvalidTimeFormat)).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ Invalid time format")
			},
		},
		{
			name: "Should show the game clock when time is in the past",
			text: "create alpha 2020-01-01 20:00",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				now := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
				m.MissionServiceMock.EXPECT().
					CreateMission(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("target_time", domain.ErrPastTime)).Times(1)
				m.MissionServiceMock.EXPECT().NowGame().Return(now).Times(1)
				m.MissionServiceMock.EXPECT().FormatGame(now).Return(gameLabel).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ That time is already in the past")
				assert.Contains(t, response.Text, gameLabel)
			},
		},
		{
			name: "Should report duplicate codename",
			text: "create alpha 2025-03-01 20:00",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					CreateMission(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("codename", domain.ErrDuplicateCodename)).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ An operation with this codename already exists", response.Text)
			},
		},
		{
			name: "Should hide internal errors",
			text: "create alpha 2025-03-01 20:00",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					CreateMission(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database is locked")).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ Something went wrong, please try again", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_From(t *testing.T) {
	target := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)

	runSlashTests(t, []slashTestCase{
		{
			name: "Should create mission from template",
			text: "from raid charlie 2025-03-01 20:00 bring potions",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					CreateFromTemplate(gomock.Any(), "raid", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, req entity.CreateMissionRequest) (*entity.Mission, error) {
						assert.Equal(t, "charlie", req.Codename)
						assert.Equal(t, "2025-03-01 20:00", req.TargetTime)
						assert.Equal(t, "bring potions", req.Description)
						return &entity.Mission{Codename: "CHARLIE", TargetUTC: target}, nil
					}).Times(1)

				m.MissionServiceMock.EXPECT().FormatGame(target).Return(gameLabel).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "*CHARLIE*")
			},
		},
		{
			name: "Should report missing template",
			text: "from nothing charlie 2025-03-01 20:00",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					CreateFromTemplate(gomock.Any(), "nothing", gomock.Any()).
					Return(nil, domain.NewValidationError("template", domain.ErrTemplateNotFound)).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ Template not found", response.Text)
			},
		},
		{
			name: "Should show usage without template",
			text: "from",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Use: `/ops from")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Cancel(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should cancel mission",
			text: "cancel alpha",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					DeleteMission(gomock.Any(), teamID, "ALPHA").
					Return(true, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "*ALPHA* has been cancelled")
			},
		},
		{
			name: "Should report unknown mission",
			text: "rm ghost",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					DeleteMission(gomock.Any(), teamID, "GHOST").
					Return(false, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ No active operation named *GHOST*", response.Text)
			},
		},
		{
			name: "Should show usage without codename",
			text: "cancel",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Use: `/ops cancel CODENAME`")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_List(t *testing.T) {
	first := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	runSlashTests(t, []slashTestCase{
		{
			name: "Should list upcoming missions in order",
			text: "list",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					ListUpcoming(gomock.Any(), teamID, 0).
					Return([]*entity.Mission{
						{Codename: "ALPHA", TargetUTC: first, Location: "North Gate"},
						{Codename: "BRAVO", TargetUTC: second, Description: "Escort"},
					}, nil).Times(1)

				m.MissionServiceMock.EXPECT().FormatGame(first).Return("2025-03-01 20:00 (UTC-2)").Times(1)
				m.MissionServiceMock.EXPECT().FormatGame(second).Return("2025-03-01 22:00 (UTC-2)").Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "1. *ALPHA* - 2025-03-01 20:00 (UTC-2) 📍 North Gate")
				assert.Contains(t, response.Text, "2. *BRAVO* - 2025-03-01 22:00 (UTC-2)\n    Escort")
			},
		},
		{
			name: "Should pass explicit limit",
			text: "list 3",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					ListUpcoming(gomock.Any(), teamID, 3).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "No upcoming operations")
			},
		},
		{
			name: "Should reject non numeric limit",
			text: "list many",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Use: `/ops list [N]`")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_RSVP(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should show going count",
			text: "rsvp alpha",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					RSVPCounts(gomock.Any(), teamID, "ALPHA").
					Return(map[string]int{entity.RSVPStatusGoing: 4}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "🙋 *ALPHA*: 4 going", response.Text)
			},
		},
		{
			name: "Should show zero when nobody joined",
			text: "rsvp bravo",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					RSVPCounts(gomock.Any(), teamID, "BRAVO").
					Return(map[string]int{}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "🙋 *BRAVO*: 0 going", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Template(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should save template",
			text: "template save Raid Weekly raid, bring potions",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					SaveTemplate(gomock.Any(), teamID, "Raid", "Weekly raid, bring potions").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Template *raid* saved.", response.Text)
			},
		},
		{
			name: "Should list templates",
			text: "template list",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					ListTemplates(gomock.Any(), teamID).
					Return([]*entity.Template{{Name: "raid", Description: "Weekly raid"}}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "• *raid* - Weekly raid")
			},
		},
		{
			name: "Should report empty template list",
			text: "tpl ls",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					ListTemplates(gomock.Any(), teamID).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "No templates saved yet.", response.Text)
			},
		},
		{
			name: "Should delete template",
			text: "template delete RAID",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					DeleteTemplate(gomock.Any(), teamID, "raid").
					Return(true, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "Template *raid* deleted")
			},
		},
		{
			name: "Should report unknown template on delete",
			text: "template delete ghost",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					DeleteTemplate(gomock.Any(), teamID, "ghost").
					Return(false, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ Template *ghost* not found", response.Text)
			},
		},
		{
			name: "Should show usage for unknown action",
			text: "template rename a b",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Use: `/ops template save")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Config(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should set announcement channel from mention",
			text: "config channel <#C555|raids>",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					SetAnnounceChannel(gomock.Any(), teamID, "C555").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Operations will be announced in <#C555>", response.Text)
			},
		},
		{
			name: "Should default announcement channel to the current channel",
			text: "config channel",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					SetAnnounceChannel(gomock.Any(), teamID, channelID).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should pause announcements",
			text: "config ignore on",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					SetAnnounceIgnored(gomock.Any(), teamID, true).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "Announcements paused")
			},
		},
		{
			name: "Should reject unknown ignore value",
			text: "config ignore maybe",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Use: `/ops config")
			},
		},
		{
			name: "Should show configuration",
			text: "config show",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					GetSettings(gomock.Any(), teamID).
					Return(&entity.TenantSettings{TenantID: teamID, AnnounceChannelID: "C555", AnnounceIgnored: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "*Announcement channel:* <#C555>")
				assert.Contains(t, response.Text, "*Announcements:* paused")
			},
		},
		{
			name: "Should show configuration for new workspace",
			text: "config show",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.MissionServiceMock.EXPECT().
					GetSettings(gomock.Any(), teamID).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "_not set_")
				assert.Contains(t, response.Text, "*Announcements:* active")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_TimeAndHelp(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should show game clock",
			text: "time",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				now := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
				m.MissionServiceMock.EXPECT().NowGame().Return(now).Times(1)
				m.MissionServiceMock.EXPECT().FormatGame(now).Return(gameLabel).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "🕒 Game clock: "+gameLabel, response.Text)
			},
		},
		{
			name: "Should show help",
			text: "help",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "/ops create")
			},
		},
		{
			name: "Should show help on empty text",
			text: "",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "/ops create")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := httptest.NewRecorder()
	req := test.CreateSlackRequest(t, "list", channelID, userID, teamID, "wrong-secret")

	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
