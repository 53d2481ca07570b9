package treatment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"clinicdesk/models"
	"clinicdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CoalesceCache deduplicates bursts of identical searches. The dashboards
// debounce filter edits for ~500ms before fetching; this cache is the
// server-side counterpart, holding raw upstream results for one window so a
// burst hits the backend once. Purely a volume reducer, never correctness.
type CoalesceCache struct {
	client *redis.Client
	window time.Duration
}

func NewCoalesceCache(client *redis.Client, window time.Duration) *CoalesceCache {
	return &CoalesceCache{client: client, window: window}
}

func (c *CoalesceCache) key(actor string, req models.TreatmentFilterRequest) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return utils.CoalesceKeyPrefix + actor + ":" + hex.EncodeToString(sum[:8])
}

// Get returns cached raw results for this actor+request, if still fresh.
// Cache trouble is reported as a miss.
func (c *CoalesceCache) Get(ctx context.Context, actor string, req models.TreatmentFilterRequest) ([]models.Treatment, bool) {
	data, err := c.client.Get(ctx, c.key(actor, req)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		utils.GetLogger().Debug("Coalesce cache read failed", zap.Error(err))
		return nil, false
	}
	var treatments []models.Treatment
	if err := json.Unmarshal([]byte(data), &treatments); err != nil {
		return nil, false
	}
	return treatments, true
}

// Set stores raw results for the coalescing window.
func (c *CoalesceCache) Set(ctx context.Context, actor string, req models.TreatmentFilterRequest, treatments []models.Treatment) {
	payload, err := json.Marshal(treatments)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(actor, req), payload, c.window).Err(); err != nil {
		utils.GetLogger().Debug("Coalesce cache write failed", zap.Error(err))
	}
}
