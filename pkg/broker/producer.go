package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type SurveyEvent struct {
	Type        string    `json:"type"`
	SurveyID    string    `json:"surveyId"`
	SurveyType  string    `json:"surveyType,omitempty"`
	Status      string    `json:"status,omitempty"`
	ValidatedBy string    `json:"validatedBy,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func (p *Producer) SurveyCreated(ctx context.Context, surveyID uuid.UUID, surveyType string) {
	p.publish(ctx, SurveyEvent{
		Type:       "survey.created",
		SurveyID:   surveyID.String(),
		SurveyType: surveyType,
		OccurredAt: time.Now(),
	})
}

func (p *Producer) SurveyUpdated(ctx context.Context, surveyID uuid.UUID) {
	p.publish(ctx, SurveyEvent{
		Type:       "survey.updated",
		SurveyID:   surveyID.String(),
		OccurredAt: time.Now(),
	})
}

func (p *Producer) SurveyValidated(ctx context.Context, surveyID uuid.UUID, status, validatedBy string) {
	p.publish(ctx, SurveyEvent{
		Type:        "survey.validated",
		SurveyID:    surveyID.String(),
		Status:      status,
		ValidatedBy: validatedBy,
		OccurredAt:  time.Now(),
	})
}

func (p *Producer) SurveyDeleted(ctx context.Context, surveyID uuid.UUID) {
	p.publish(ctx, SurveyEvent{
		Type:       "survey.deleted",
		SurveyID:   surveyID.String(),
		OccurredAt: time.Now(),
	})
}

func (p *Producer) publish(ctx context.Context, event SurveyEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SurveyID),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
