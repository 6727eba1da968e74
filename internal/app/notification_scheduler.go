package app

import (
	"context"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/domain/notifications"
	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// NotificationScheduler runs the daily jobs that turn approaching deadlines
// into in-app notifications. Each run is idempotent: a subject with an unread
// notification of the same type is skipped.
type NotificationScheduler struct {
	licenseRepo      licensing.LicenseRepository
	userRepo         users.UserRepository
	clientRepo       clients.ClientRepository
	taskRepo         tasks.TaskRepository
	amlRepo          aml.AmlRepository
	notificationRepo notifications.NotificationRepository
	notifications    notifications.NotificationService
	dueSoonDays      int
	cronSpec         string
	cron             *cron.Cron
	logger           logger.Logger
}

// NewNotificationScheduler creates the scheduler. Start must be called to
// begin running jobs.
func NewNotificationScheduler(
	licenseRepo licensing.LicenseRepository,
	userRepo users.UserRepository,
	clientRepo clients.ClientRepository,
	taskRepo tasks.TaskRepository,
	amlRepo aml.AmlRepository,
	notificationRepo notifications.NotificationRepository,
	notificationService notifications.NotificationService,
	cronSpec string,
	dueSoonDays int,
	logger logger.Logger,
) (*NotificationScheduler, error) {
	if dueSoonDays < 1 {
		return nil, fmt.Errorf("due soon window must be at least 1 day, got %d", dueSoonDays)
	}
	return &NotificationScheduler{
		licenseRepo:      licenseRepo,
		userRepo:         userRepo,
		clientRepo:       clientRepo,
		taskRepo:         taskRepo,
		amlRepo:          amlRepo,
		notificationRepo: notificationRepo,
		notifications:    notificationService,
		dueSoonDays:      dueSoonDays,
		cronSpec:         cronSpec,
		cron:             cron.New(),
		logger:           logger,
	}, nil
}

// Start registers the cron entry and begins the schedule.
func (s *NotificationScheduler) Start() error {
	_, err := s.cron.AddFunc(s.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", s.cronSpec, err)
	}

	s.cron.Start()
	s.logger.Info("notification scheduler started", "spec", s.cronSpec, "due_soon_days", s.dueSoonDays)
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (s *NotificationScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("notification scheduler stopped")
}

// RunOnce executes one full sweep over all active licenses.
func (s *NotificationScheduler) RunOnce(ctx context.Context) {
	licenses, err := s.licenseRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("scheduler failed to list licenses", "error", err)
		return
	}

	for _, license := range licenses {
		if err := s.sweepLicense(ctx, license); err != nil {
			s.logger.Error("scheduler sweep failed", "license_id", license.ID, "error", err)
		}
	}
}

func (s *NotificationScheduler) sweepLicense(ctx context.Context, license *licensing.License) error {
	admins, err := s.licenseAdmins(ctx, license.ID)
	if err != nil {
		return err
	}

	if err := s.notifyDueTasks(ctx, license, admins); err != nil {
		return err
	}
	if err := s.notifyOverdueAmlReviews(ctx, license, admins); err != nil {
		return err
	}
	return s.notifySeatLimit(ctx, license, admins)
}

// notifyDueTasks covers tasks due inside the window plus tasks already overdue.
func (s *NotificationScheduler) notifyDueTasks(ctx context.Context, license *licensing.License, admins []*users.User) error {
	now := time.Now()
	cutoff := now.AddDate(0, 0, s.dueSoonDays)

	dueTasks, err := s.taskRepo.ListDueBefore(ctx, license.ID, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list due tasks: %w", err)
	}

	for _, task := range dueTasks {
		recipients := admins
		if task.AssigneeID != nil {
			assignee, err := s.userRepo.GetByID(ctx, *task.AssigneeID)
			if err == nil && assignee.Active {
				recipients = []*users.User{assignee}
			}
		}

		title := fmt.Sprintf("Oppgave forfaller %s: %s", task.DueDate.Format("02.01.2006"), task.Title)
		if task.Overdue(now) {
			title = fmt.Sprintf("Oppgave forfalt %s: %s", task.DueDate.Format("02.01.2006"), task.Title)
		}

		if err := s.notifyOnce(ctx, license.ID, recipients, notifications.TypeTaskDue, task.ID, title, task.Description); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationScheduler) notifyOverdueAmlReviews(ctx context.Context, license *licensing.License, admins []*users.User) error {
	overdue, err := s.amlRepo.ListOverdue(ctx, license.ID)
	if err != nil {
		return fmt.Errorf("failed to list overdue aml reviews: %w", err)
	}

	for _, status := range overdue {
		client, err := s.clientRepo.GetByID(ctx, license.ID, status.ClientID)
		if err != nil {
			s.logger.Warn("aml status references missing client", "client_id", status.ClientID)
			continue
		}

		recipients := admins
		if client.ResponsibleUserID != nil {
			responsible, err := s.userRepo.GetByID(ctx, *client.ResponsibleUserID)
			if err == nil && responsible.Active {
				recipients = []*users.User{responsible}
			}
		}

		title := fmt.Sprintf("AML-gjennomgang forfalt for %s", client.Name)
		body := fmt.Sprintf("Neste gjennomgang var planlagt %s. Risikonivå: %s.",
			status.NextReviewAt.Format("02.01.2006"), status.RiskLevel)

		if err := s.notifyOnce(ctx, license.ID, recipients, notifications.TypeAmlReview, status.ID, title, body); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationScheduler) notifySeatLimit(ctx context.Context, license *licensing.License, admins []*users.User) error {
	activeUsers, err := s.licenseRepo.CountActiveUsers(ctx, license.ID)
	if err != nil {
		return fmt.Errorf("failed to count active users: %w", err)
	}
	if activeUsers < license.SeatLimit {
		return nil
	}

	title := "Alle lisensplasser er i bruk"
	body := fmt.Sprintf("%d av %d plasser er i bruk. Oppgrader planen for å legge til flere brukere.",
		activeUsers, license.SeatLimit)

	return s.notifyOnce(ctx, license.ID, admins, notifications.TypeSeatLimit, license.ID, title, body)
}

// notifyOnce creates one notification per recipient unless an unread one for
// the same subject and type already exists.
func (s *NotificationScheduler) notifyOnce(ctx context.Context, licenseID string, recipients []*users.User, notificationType, subjectID, title, body string) error {
	exists, err := s.notificationRepo.HasUnreadForSubject(ctx, licenseID, notificationType, subjectID)
	if err != nil {
		return fmt.Errorf("failed to check existing notifications: %w", err)
	}
	if exists {
		return nil
	}

	subject := subjectID
	for _, recipient := range recipients {
		notification := &notifications.Notification{
			LicenseID: licenseID,
			UserID:    recipient.ID,
			Type:      notificationType,
			Title:     title,
			Body:      body,
			SubjectID: &subject,
		}
		if _, err := s.notifications.Notify(ctx, notification); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationScheduler) licenseAdmins(ctx context.Context, licenseID string) ([]*users.User, error) {
	allUsers, err := s.userRepo.List(ctx, licenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	admins := make([]*users.User, 0, len(allUsers))
	for _, user := range allUsers {
		if user.Role == users.RoleAdmin && user.Active {
			admins = append(admins, user)
		}
	}
	return admins, nil
}
