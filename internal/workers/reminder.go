package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/models"
)

const (
	defaultReminderInterval = time.Minute
	reminderBatchSize       = 100
)

// ReminderWorker claims notes whose reminder is due and hands them to the
// notifier. Claiming marks a note as reminded, so a reminder is delivered at
// most once even with several server instances.
type ReminderWorker struct {
	notes    store.NoteRepository
	notifier Notifier
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewReminderWorker(notes store.NoteRepository, notifier Notifier, interval time.Duration, logger *logger.Logger) *ReminderWorker {
	if interval <= 0 {
		interval = defaultReminderInterval
	}
	return &ReminderWorker{
		notes:    notes,
		notifier: notifier,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run checks for due reminders once right away and then every interval
// until ctx is cancelled.
func (w *ReminderWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("reminder worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.deliverDue(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reminder worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// deliverDue drains due reminders batch by batch. A full batch means more
// may be waiting.
func (w *ReminderWorker) deliverDue(ctx context.Context) {
	for ctx.Err() == nil {
		notes, err := w.notes.ClaimDueReminders(ctx, w.now(), reminderBatchSize)
		if err != nil {
			w.logger.Err(err).Msg("failed to claim due reminders")
			return
		}

		for _, note := range notes {
			if err = w.notifier.Notify(ctx, note); err != nil {
				w.logger.Err(err).Str("note_id", note.ID).Str("user_id", note.UserID).Msg("failed to deliver reminder")
			}
		}

		if len(notes) < reminderBatchSize {
			return
		}
	}
}

// LogNotifier records reminders in the structured log.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, note models.Note) error {
	event := n.logger.Info().
		Str("user_id", note.UserID).
		Str("note_id", note.ID).
		Str("title", note.Title).
		Bool("is_important", note.IsImportant)
	if note.ReminderDate != nil {
		event = event.Time("reminder_date", *note.ReminderDate)
	}
	event.Msg("note reminder is due")
	return nil
}
