package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"hotelbooking/internal/domain"
)

type BookingRepository interface {
	MarkNoShows(ctx context.Context, today time.Time) (int64, error)
	CheckedOutBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

type SessionRepository interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type ReviewRequester interface {
	NotifyReviewRequest(ctx context.Context, userID int64, b *domain.Booking)
}

// Runner owns the scheduled maintenance work: flagging no-shows,
// asking recent guests for a review and pruning expired sessions.
type Runner struct {
	bookings BookingRepository
	sessions SessionRepository
	notifier ReviewRequester
	log      zerolog.Logger
	cron     *cron.Cron
}

func NewRunner(bookings BookingRepository, sessions SessionRepository, notifier ReviewRequester, log zerolog.Logger) *Runner {
	return &Runner{
		bookings: bookings,
		sessions: sessions,
		notifier: notifier,
		log:      log,
		cron:     cron.New(),
	}
}

// Start registers the schedules and launches the cron loop.
func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc("15 2 * * *", r.runMarkNoShows); err != nil {
		return err
	}
	if _, err := r.cron.AddFunc("0 10 * * *", r.runReviewRequests); err != nil {
		return err
	}
	if _, err := r.cron.AddFunc("30 3 * * *", r.runSessionCleanup); err != nil {
		return err
	}
	r.cron.Start()
	r.log.Info().Msg("scheduled jobs started")
	return nil
}

func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Runner) runMarkNoShows() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := r.MarkNoShows(ctx, time.Now().UTC())
	if err != nil {
		r.log.Error().Err(err).Msg("no-show sweep failed")
		return
	}
	r.log.Info().Int64("bookings", n).Msg("no-show sweep finished")
}

func (r *Runner) runReviewRequests() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := r.SendReviewRequests(ctx, time.Now().UTC())
	if err != nil {
		r.log.Error().Err(err).Msg("review request sweep failed")
		return
	}
	r.log.Info().Int("bookings", n).Msg("review requests queued")
}

func (r *Runner) runSessionCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := r.sessions.DeleteExpired(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("session cleanup failed")
		return
	}
	r.log.Info().Int64("sessions", n).Msg("expired sessions removed")
}

// MarkNoShows flags confirmed bookings whose check-in date has passed
// without the guest arriving.
func (r *Runner) MarkNoShows(ctx context.Context, now time.Time) (int64, error) {
	today := now.Truncate(24 * time.Hour)
	return r.bookings.MarkNoShows(ctx, today)
}

// SendReviewRequests queues a review-request notification for every
// stay that checked out the previous day.
func (r *Runner) SendReviewRequests(ctx context.Context, now time.Time) (int, error) {
	today := now.Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)
	bookings, err := r.bookings.CheckedOutBetween(ctx, yesterday, today)
	if err != nil {
		return 0, err
	}
	for i := range bookings {
		b := bookings[i]
		r.notifier.NotifyReviewRequest(ctx, b.UserID, &b)
	}
	return len(bookings), nil
}
