package jobs

import (
	"context"
	"fmt"
	"time"

	"wedding-backend/internal/config"
	"wedding-backend/internal/domain"
	"wedding-backend/internal/guest"
	"wedding-backend/internal/logger"
	"wedding-backend/internal/repository"
	"wedding-backend/internal/service"
)

// JobRunner coordinates the scheduled jobs.
type JobRunner struct {
	guestRepo repository.GuestRepository
	emailSvc  service.EmailService
	config    *config.Config
}

func NewJobRunner(guestRepo repository.GuestRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		guestRepo: guestRepo,
		emailSvc:  emailSvc,
		config:    cfg,
	}
}

// Config exposes the loaded configuration for the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	jobFunc(ctx)
	logger.Info("Job completed", "job", jobName)
}

// SendRSVPReminders nudges every getter whose invitation went out but whose
// RSVP is still pending.
func (jr *JobRunner) SendRSVPReminders() {
	jr.runWithRecovery("SendRSVPReminders", func(ctx context.Context) {
		guests, err := jr.guestRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list guests", "job", "SendRSVPReminders", "error", err)
			return
		}

		sent := 0
		for i := range guests {
			g := guests[i]
			if !g.IsInvitationGetter || g.Email == "" {
				continue
			}
			if g.RSVPStatus != domain.RSVPStatusPending {
				continue
			}
			if g.InvitationStatus != domain.InvitationStatusSent && g.InvitationStatus != domain.InvitationStatusOpened {
				continue
			}
			link := fmt.Sprintf("%s/invitation/%s&%s", jr.config.Wedding.BaseURL, g.FirstName, g.LastName)
			if err := jr.emailSvc.SendRSVPReminder(ctx, &g, link); err != nil {
				logger.Error("Failed to send reminder", "guest_id", g.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("RSVP reminders sent", "count", sent)
	})
}

// LogFunnelReport writes the invitation funnel summary to the log for the
// organizers to review.
func (jr *JobRunner) LogFunnelReport() {
	jr.runWithRecovery("LogFunnelReport", func(ctx context.Context) {
		guests, err := jr.guestRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list guests", "job", "LogFunnelReport", "error", err)
			return
		}
		stats := guest.ComputeStatistics(guests, guest.BuildGraph(guests))
		logger.Info("invitation funnel report",
			"invitations", stats.Invitations,
			"sent", stats.InvitationsSent,
			"opened", stats.InvitationsOpened,
			"responded", stats.InvitationsResponded,
			"attending_guests", stats.AttendingGuests,
			"pending", stats.RSVPPending,
		)
	})
}

// RunAll runs every job once, for manual execution.
func (jr *JobRunner) RunAll() {
	jr.SendRSVPReminders()
	jr.LogFunnelReport()
}
