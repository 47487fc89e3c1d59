// Package jobs runs scheduled background tasks.
package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/config"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/service"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/texts"
)

// Scheduler runs the daily unread-messages digest for the admin.
type Scheduler struct {
	cron     *cron.Cron
	inbox    *service.Inbox
	adminID  int64
	sendFunc func(chatID int64, text string)
}

// NewScheduler creates the scheduler in the configured timezone
func NewScheduler(cfg *config.Config, inbox *service.Inbox, sendFunc func(chatID int64, text string)) *Scheduler {
	loc, err := time.LoadLocation(cfg.Digest.Timezone)
	if err != nil {
		logger.Warningf("Failed to load timezone %s, falling back to UTC: %v", cfg.Digest.Timezone, err)
		loc = time.UTC
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		inbox:    inbox,
		adminID:  cfg.Bot.AdminID,
		sendFunc: sendFunc,
	}
}

// Start registers the digest job and starts the cron loop
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.runDigest)
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	logger.Infof("Digest scheduler started with schedule %q", schedule)
	return nil
}

// Stop stops the cron loop, waiting for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runDigest() {
	unread, err := s.inbox.UnreadCount()
	if err != nil {
		logger.Errorf("Digest: counting unread messages: %v", err)
		return
	}
	if unread == 0 {
		logger.Debugf("Digest: no unread messages, skipping")
		return
	}

	s.sendFunc(s.adminID, fmt.Sprintf(texts.AdminDigest, unread))
}
