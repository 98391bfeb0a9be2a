package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/ops-reminder-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// postedText extracts the text parameter from chat.postMessage options.
func postedText(t *testing.T, channelID string, options ...slack.MsgOption) string {
	t.Helper()

	_, values, err := slack.UnsafeApplyMsgOptions("token", channelID, "https://slack.com/api/", options...)
	require.NoError(t, err)
	return values.Get("text")
}

func TestSlack_Deliver(t *testing.T) {
	tests := []struct {
		name         string
		notification entity.Notification
		buildMock    func(t *testing.T, client *mocks.MockSlackClient)
		wantID       string
		wantErr      bool
	}{
		{
			name: "Should post with channel mention and seed reaction",
			notification: entity.Notification{
				Destination:  "C1",
				Content:      "Operation ALPHA begins in 60 minutes!",
				PingTarget:   entity.PingEveryone,
				Mention:      entity.MentionTarget,
				SeedReaction: "white_check_mark",
			},
			buildMock: func(t *testing.T, client *mocks.MockSlackClient) {
				client.EXPECT().PostMessage("C1", gomock.Any(), gomock.Any()).
					DoAndReturn(func(channelID string, options ...slack.MsgOption) (string, string, error) {
						assert.Equal(t, "<!channel> Operation ALPHA begins in 60 minutes!", postedText(t, channelID, options...))
						return "C1", "1700000000.000100", nil
					}).Times(1)
				client.EXPECT().AddReaction("white_check_mark", slack.NewRefToMessage("C1", "1700000000.000100")).
					Return(nil).Times(1)
			},
			wantID: "C1:1700000000.000100",
		},
		{
			name: "Should render user group mention",
			notification: entity.Notification{
				Destination: "C1",
				Content:     "starting now",
				PingTarget:  "S123",
				Mention:     entity.MentionTarget,
			},
			buildMock: func(t *testing.T, client *mocks.MockSlackClient) {
				client.EXPECT().PostMessage("C1", gomock.Any(), gomock.Any()).
					DoAndReturn(func(channelID string, options ...slack.MsgOption) (string, string, error) {
						assert.Equal(t, "<!subteam^S123> starting now", postedText(t, channelID, options...))
						return "C1", "1.2", nil
					}).Times(1)
			},
			wantID: "C1:1.2",
		},
		{
			name: "Should render user mention",
			notification: entity.Notification{
				Destination: "C1",
				Content:     "starting now",
				PingTarget:  "U123",
				Mention:     entity.MentionTarget,
			},
			buildMock: func(t *testing.T, client *mocks.MockSlackClient) {
				client.EXPECT().PostMessage("C1", gomock.Any(), gomock.Any()).
					DoAndReturn(func(channelID string, options ...slack.MsgOption) (string, string, error) {
						assert.Equal(t, "<@U123> starting now", postedText(t, channelID, options...))
						return "C1", "1.2", nil
					}).Times(1)
			},
			wantID: "C1:1.2",
		},
		{
			name: "Should not mention on quiet stages",
			notification: entity.Notification{
				Destination: "U7",
				Content:     "starts in 30 minutes",
				PingTarget:  entity.PingEveryone,
				Mention:     entity.MentionNone,
			},
			buildMock: func(t *testing.T, client *mocks.MockSlackClient) {
				client.EXPECT().PostMessage("U7", gomock.Any(), gomock.Any()).
					DoAndReturn(func(channelID string, options ...slack.MsgOption) (string, string, error) {
						assert.Equal(t, "starts in 30 minutes", postedText(t, channelID, options...))
						return "D7", "1.3", nil
					}).Times(1)
			},
			wantID: "D7:1.3",
		},
		{
			name: "Should still succeed when the seed reaction fails",
			notification: entity.Notification{
				Destination:  "C1",
				Content:      "hello",
				SeedReaction: "white_check_mark",
			},
			buildMock: func(t *testing.T, client *mocks.MockSlackClient) {
				client.EXPECT().PostMessage("C1", gomock.Any(), gomock.Any()).Return("C1", "1.4", nil).Times(1)
				client.EXPECT().AddReaction(gomock.Any(), gomock.Any()).Return(errors.New("already_reacted")).Times(1)
			},
			wantID: "C1:1.4",
		},
		{
			name: "Should return post errors",
			notification: entity.Notification{
				Destination: "C1",
				Content:     "hello",
			},
			buildMock: func(t *testing.T, client *mocks.MockSlackClient) {
				client.EXPECT().PostMessage("C1", gomock.Any(), gomock.Any()).Return("", "", errors.New("channel_not_found")).Times(1)
			},
			wantErr: true,
		},
		{
			name:         "Should reject empty destination",
			notification: entity.Notification{Content: "hello"},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockSlackClient(ctrl)
			if tt.buildMock != nil {
				tt.buildMock(t, client)
			}

			s := NewSlack(client, zap.NewNop().Sugar())
			id, err := s.Deliver(context.Background(), tt.notification)

			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, id)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestSlack_DeliverCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSlack(mocks.NewMockSlackClient(ctrl), zap.NewNop().Sugar())
	_, err := s.Deliver(ctx, entity.Notification{Destination: "C1", Content: "hello"})

	assert.ErrorIs(t, err, context.Canceled)
}
