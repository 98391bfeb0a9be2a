package service

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/database"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/ops-reminder-bot/internal/gameclock"
	"github.com/diegoclair/ops-reminder-bot/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testTenant  = "T1"
	testChannel = "C1"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockMissionRepo  *mocks.MockMissionRepo
	mockTemplateRepo *mocks.MockTemplateRepo
	mockRSVPRepo     *mocks.MockRSVPRepo
	mockDailyLogRepo *mocks.MockDailyLogRepo
	mockSettingsRepo *mocks.MockSettingsRepo
	mockNotifier     *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	missionRepo := mocks.NewMockMissionRepo(ctrl)
	dm.EXPECT().Mission().Return(missionRepo).AnyTimes()

	templateRepo := mocks.NewMockTemplateRepo(ctrl)
	dm.EXPECT().Template().Return(templateRepo).AnyTimes()

	rsvpRepo := mocks.NewMockRSVPRepo(ctrl)
	dm.EXPECT().RSVP().Return(rsvpRepo).AnyTimes()

	dailyLogRepo := mocks.NewMockDailyLogRepo(ctrl)
	dm.EXPECT().DailyLog().Return(dailyLogRepo).AnyTimes()

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockMissionRepo:  missionRepo,
		mockTemplateRepo: templateRepo,
		mockRSVPRepo:     rsvpRepo,
		mockDailyLogRepo: dailyLogRepo,
		mockSettingsRepo: settingsRepo,
		mockNotifier:     mocks.NewMockNotifier(ctrl),
	}

	return
}

// delivery is one captured Notifier.Deliver call.
type delivery struct {
	notification entity.Notification
	id           string
	at           time.Time
}

// recordDeliveries makes the notifier mock succeed and report every call on
// the returned channel, stamped with the fake clock.
func recordDeliveries(notifier *mocks.MockNotifier, clock clockwork.Clock) <-chan delivery {
	ch := make(chan delivery, 64)
	var seq atomic.Int64
	notifier.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n entity.Notification) (string, error) {
			id := entity.AnnouncementID(n.Destination, "1700000000."+strconv.FormatInt(seq.Add(1), 10))
			ch <- delivery{notification: n, id: id, at: clock.Now()}
			return id, nil
		}).AnyTimes()
	return ch
}

func nextDelivery(t *testing.T, ch <-chan delivery) delivery {
	t.Helper()

	select {
	case d := <-ch:
		return d
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timed out waiting for a delivery")
		return delivery{}
	}
}

func noDelivery(t *testing.T, ch <-chan delivery) {
	t.Helper()

	select {
	case d := <-ch:
		require.FailNow(t, "unexpected delivery", "%+v", d.notification)
	case <-time.After(100 * time.Millisecond):
	}
}

// testEnv is a service Instance on top of a real in-memory database and a
// fake clock.
type testEnv struct {
	db       *database.DB
	dm       contract.DataManager
	clock    *clockwork.FakeClock
	gc       *gameclock.Translator
	services *Instance
}

func newTestEnv(t *testing.T, notifier contract.Notifier, start time.Time) *testEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	clock := clockwork.NewFakeClockAt(start)

	gc, err := gameclock.New(-2, clock)
	require.NoError(t, err)

	dm := database.NewInstance(db)
	services := NewInstance(dm, notifier, Options{
		Clock:     clock,
		GameClock: gc,
		BotUserID: "UBOT",
		DuelHour:  19,
	})

	env := &testEnv{db: db, dm: dm, clock: clock, gc: gc, services: services}
	t.Cleanup(func() {
		services.Reminders.Stop()
		database.CleanupTestDB(t, db)
	})

	return env
}

// advanceTo waits for the reminder task to park on its timer, then moves the
// clock to deadline.
func (e *testEnv) advanceTo(t *testing.T, deadline time.Time) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, e.clock.BlockUntilContext(ctx, 1), "reminder task never waited")
	e.clock.Advance(deadline.Sub(e.clock.Now()))
}

func (e *testEnv) waitIdle(t *testing.T) {
	t.Helper()

	require.Eventually(t, func() bool {
		return e.services.Reminders.Active() == 0
	}, 2*time.Second, 5*time.Millisecond)
}
