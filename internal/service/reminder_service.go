package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/entity"
	"notekeeper-be/internal/pkg/mailer"
	"notekeeper-be/internal/repository/specification"
	"notekeeper-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IReminderService interface {
	// Consume subscribes to the reminder topic and upserts schedule rows.
	Consume(ctx context.Context) error
	// Run drives the dispatch loop until ctx is cancelled.
	Run(ctx context.Context)
}

type reminderService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewReminderService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IReminderService {
	return &reminderService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (rs *reminderService) Consume(ctx context.Context) error {
	messages, err := rs.pubSub.Subscribe(ctx, rs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			rs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (rs *reminderService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ScheduleReminderMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal reminder message: %v", err)
		msg.Ack() // Ack malformed messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Scheduling reminder for NoteId: %d", payload.NoteId)

	uow := rs.uowFactory.NewUnitOfWork(ctx)

	// Re-scheduling the same note replaces its slot in place.
	task := entity.ReminderTask{
		Name:       TaskName(payload.NoteId),
		NoteId:     payload.NoteId,
		Minute:     payload.Minute,
		Hour:       payload.Hour,
		DayOfMonth: payload.DayOfMonth,
		Month:      payload.Month,
		DayOfWeek:  payload.DayOfWeek,
		Title:      payload.Title,
		Recipient:  payload.Recipient,
		Enabled:    true,
	}

	if err := uow.ReminderTaskRepository().Upsert(ctx, &task); err != nil {
		log.Printf("[ERROR] Failed to upsert reminder task %s: %v", task.Name, err)
		msg.Nack()
		return
	}

	msg.Ack()
}

// Run ticks once per minute and dispatches every enabled task whose cron
// fields match the current wall-clock minute.
func (rs *reminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rs.dispatchDue(ctx, now)
		}
	}
}

func (rs *reminderService) dispatchDue(ctx context.Context, now time.Time) {
	uow := rs.uowFactory.NewUnitOfWork(ctx)

	tasks, err := uow.ReminderTaskRepository().FindAll(ctx, specification.Filter("enabled", true))
	if err != nil {
		log.Printf("[ERROR] Failed to load reminder tasks: %v", err)
		return
	}

	for _, task := range tasks {
		if !task.Due(now) {
			continue
		}
		if err := rs.emailService.SendReminder(task.Recipient, task.Title); err != nil {
			log.Printf("[ERROR] Failed to send reminder %s: %v", task.Name, err)
			continue
		}
		log.Printf("[INFO] Dispatched reminder %s", task.Name)
	}
}

// TaskName derives the stable schedule slot name for a note.
func TaskName(noteId uint) string {
	return fmt.Sprintf("send_reminder_email_%d", noteId)
}
