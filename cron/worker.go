package cron

import (
	"context"
	"encoding/json"
	"log"

	"clinicdesk/config"
	auditRepo "clinicdesk/database/repository/audit"
	"clinicdesk/models"
	"clinicdesk/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAuditRecord = "audit:record"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuditDB,
	}
}

// AsynqRecorder enqueues audit entries for background persistence. Queue
// trouble degrades to a log line; recording must never fail a request.
type AsynqRecorder struct {
	client *asynq.Client
}

func NewAsynqRecorder() *AsynqRecorder {
	return &AsynqRecorder{client: asynq.NewClient(redisOpts())}
}

func (r *AsynqRecorder) Record(ctx context.Context, entry models.AuditEntry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		utils.GetLogger().Warn("Failed to encode audit entry", zap.Error(err))
		return
	}
	task := asynq.NewTask(TypeAuditRecord, payload)
	if _, err := r.client.EnqueueContext(ctx, task); err != nil {
		utils.GetLogger().Warn("Failed to enqueue audit entry",
			zap.String("action", entry.Action), zap.Error(err))
	}
}

// InitAuditWorker runs the background audit worker.
func InitAuditWorker(repo auditRepo.Repository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAuditRecord, handleAuditTask(repo))

	go func() {
		log.Println("[AuditWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[AuditWorker] worker stopped: %v", err)
		}
	}()
}

func handleAuditTask(repo auditRepo.Repository) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var entry models.AuditEntry
		if err := json.Unmarshal(t.Payload(), &entry); err != nil {
			utils.GetLogger().Error("Malformed audit task payload", zap.Error(err))
			return nil // not retryable
		}
		return repo.Insert(ctx, entry)
	}
}
