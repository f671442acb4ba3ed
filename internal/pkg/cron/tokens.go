package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/jwt"
)

// TokenJobs holds background maintenance for the JWT service.
type TokenJobs struct {
	jwtService jwt.Service
	maxAge     time.Duration
}

func NewTokenJobs(jwtService jwt.Service, maxAge time.Duration) *TokenJobs {
	return &TokenJobs{
		jwtService: jwtService,
		maxAge:     maxAge,
	}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_revoked_tokens", 1*time.Hour, j.PurgeRevokedTokens)
}

// PurgeRevokedTokens drops revocation-list entries whose tokens have long
// since expired. Without this the in-memory list grows for the life of the
// process.
func (j *TokenJobs) PurgeRevokedTokens(ctx context.Context) error {
	purged := j.jwtService.PurgeRevokedTokens(j.maxAge)
	if purged > 0 {
		slog.Info("Purged revoked tokens", "count", purged)
	}
	return nil
}
