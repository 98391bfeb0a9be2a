package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/ops-reminder-bot/internal/gameclock"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	FamilyDailyReset = "reset"
	FamilyDuel       = "duel"
)

// DailyJob is a broadcast sent once per game day, on the first poll at or
// after Hour on the game clock.
type DailyJob struct {
	Family string
	Hour   int
	Render func(ctx context.Context, tenant *entity.TenantSettings, now time.Time) (string, error)
}

// broadcaster polls on a coarse interval instead of waking at exact times;
// the daily gate keeps every job to one run per date regardless.
type broadcaster struct {
	dm       contract.DataManager
	gate     *dailyGate
	notifier contract.Notifier
	gc       *gameclock.Translator
	log      *zap.SugaredLogger
	interval time.Duration
	jobs     []DailyJob
	cron     *cron.Cron
	ctx      context.Context
	cancel   context.CancelFunc
}

func newBroadcaster(dm contract.DataManager, gate *dailyGate, notifier contract.Notifier, opts Options) *broadcaster {
	b := &broadcaster{
		dm:       dm,
		gate:     gate,
		notifier: notifier,
		gc:       opts.GameClock,
		log:      opts.Logger.Named("broadcast"),
		interval: opts.DailyPollInterval,
	}

	b.jobs = []DailyJob{
		{Family: FamilyDailyReset, Hour: 0, Render: b.renderDailyReset},
		{Family: FamilyDuel, Hour: opts.DuelHour, Render: renderDuel},
	}

	return b
}

// Start registers the poll with cron and starts it.
func (b *broadcaster) Start() error {
	logger := cronLogger{log: b.log}
	b.cron = cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	b.ctx, b.cancel = context.WithCancel(context.Background())

	spec := fmt.Sprintf("@every %s", b.interval)
	if _, err := b.cron.AddFunc(spec, func() { b.Poll(b.ctx) }); err != nil {
		return fmt.Errorf("failed to schedule daily poll: %w", err)
	}

	b.log.Infow("Daily broadcaster starting...", "interval", b.interval.String())
	b.cron.Start()
	return nil
}

func (b *broadcaster) Stop() {
	if b.cron == nil {
		return
	}

	b.log.Info("Daily broadcaster stopping...")
	b.cancel()
	<-b.cron.Stop().Done()
}

// Poll runs every due job for every tenant that has somewhere to announce.
func (b *broadcaster) Poll(ctx context.Context) {
	tenants, err := b.dm.Settings().ListAnnouncing(ctx)
	if err != nil {
		b.log.Errorw("failed to list announcing tenants", "error", err)
		return
	}

	now := b.gc.Now()
	hour := b.gc.UTCToGame(now).Hour()
	date := b.gc.Date(now)

	for _, tenant := range tenants {
		for _, job := range b.jobs {
			if hour < job.Hour {
				continue
			}
			b.runJob(ctx, tenant, job, now, date)
		}
	}
}

func (b *broadcaster) runJob(ctx context.Context, tenant *entity.TenantSettings, job DailyJob, now time.Time, date string) {
	log := b.log.With("tenant", tenant.TenantID, "family", job.Family, "date", date)

	key := GateKey{Family: job.Family, Tenant: tenant.TenantID, Slot: strconv.Itoa(job.Hour)}
	ok, err := b.gate.TryRun(ctx, key, date)
	if err != nil {
		log.Errorw("failed to check daily gate", "error", err)
		dailyBroadcastsMetric.WithLabelValues(job.Family, resultStoreError).Inc()
		return
	}
	if !ok {
		return
	}

	content, err := job.Render(ctx, tenant, now)
	if err != nil {
		log.Errorw("failed to render daily broadcast", "error", err)
		dailyBroadcastsMetric.WithLabelValues(job.Family, resultFailed).Inc()
		return
	}

	_, err = b.notifier.Deliver(ctx, entity.Notification{
		Destination: tenant.AnnounceChannelID,
		Content:     content,
		Mention:     entity.MentionNone,
	})
	if err != nil {
		log.Warnw("failed to deliver daily broadcast", "error", err)
		dailyBroadcastsMetric.WithLabelValues(job.Family, resultFailed).Inc()
		return
	}

	log.Info("daily broadcast delivered")
	dailyBroadcastsMetric.WithLabelValues(job.Family, resultDelivered).Inc()
}

func (b *broadcaster) renderDailyReset(ctx context.Context, tenant *entity.TenantSettings, now time.Time) (string, error) {
	missions, err := b.dm.Mission().GetUpcoming(ctx, tenant.TenantID, now, 5)
	if err != nil {
		return "", err
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("🌅 *New game day: %s*\n", b.gc.Date(now)))
	if len(missions) == 0 {
		msg.WriteString("No operations scheduled. Use `/ops create` to plan one!")
		return msg.String(), nil
	}

	msg.WriteString("*Upcoming operations:*\n")
	for _, m := range missions {
		msg.WriteString(fmt.Sprintf("• *%s* at %s %s", m.Codename, b.gc.Format(m.TargetUTC), b.gc.Label()))
		if m.Location != "" {
			msg.WriteString(" (" + m.Location + ")")
		}
		msg.WriteString("\n")
	}

	return msg.String(), nil
}

func renderDuel(_ context.Context, _ *entity.TenantSettings, _ time.Time) (string, error) {
	return "⚔️ *Daily duels are open!* Challenge a rival before the game day ends.", nil
}

// cronLogger routes cron's own logging through zap.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
