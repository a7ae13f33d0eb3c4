package consumer

import (
	"context"
	"encoding/json"
	"time"

	"hr-admin/internal/benefit"
	"hr-admin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultBenefitType = "Paid Time Off"

// ConsumeCandidateHired provisions the onboarding benefit for every hire
// published through the outbox. Redelivered events are skipped when the
// employee already holds the default benefit.
func ConsumeCandidateHired(
	ctx context.Context,
	reader *kafkago.Reader,
	benefitService benefit.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.candidate_hired")
	log.Info("candidate hired consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("candidate hired consumer stopped")
				return
			}
			log.Error("fetch candidate hired message failed", zap.Error(err))
			continue
		}

		var event events.CandidateHiredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode candidate_hired event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if hasDefaultBenefit(ctx, benefitService, event.EmployeeID) {
			log.Warn("default benefit already exists for event, skipping",
				zap.String("employee_id", event.EmployeeID),
				zap.String("candidate_id", event.CandidateID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = benefitService.Create(ctx, benefit.CreateBenefitRequest{
			EmployeeID:  event.EmployeeID,
			BenefitType: defaultBenefitType,
			Description: "Standard paid time off granted on hire",
			StartDate:   time.Now().UTC().Format("2006-01-02"),
		})
		if err != nil {
			log.Error("create onboarding benefit failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("candidate_id", event.CandidateID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit candidate hired message failed", zap.Error(err))
			continue
		}

		log.Info("onboarding benefit created from candidate_hired event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("candidate_id", event.CandidateID),
		)
	}
}

func hasDefaultBenefit(ctx context.Context, benefitService benefit.Service, employeeID string) bool {
	existing, err := benefitService.GetAll(ctx, benefit.ListFilter{
		EmployeeID: employeeID,
		ActiveOnly: true,
	})
	if err != nil {
		return false
	}
	for _, b := range existing {
		if b.BenefitType == defaultBenefitType {
			return true
		}
	}
	return false
}
