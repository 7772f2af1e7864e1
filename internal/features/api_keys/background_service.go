package api_keys

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/features/audit_logs"
)

type ApiKeyBackgroundService struct {
	apiKeyRepository *ApiKeyRepository
	auditLogService  *audit_logs.AuditLogService
	logger           *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

const expirySweepInterval = 1 * time.Minute

func (s *ApiKeyBackgroundService) StartWorkers() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("Starting API key background workers",
		slog.Duration("expirySweepInterval", expirySweepInterval))

	s.wg.Add(1)
	go s.expirySweepWorker()
}

func (s *ApiKeyBackgroundService) Stop() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	s.wg.Wait()
}

func (s *ApiKeyBackgroundService) ExecuteAllTasksForTest() error {
	return s.sweepExpiredKeys()
}

func (s *ApiKeyBackgroundService) expirySweepWorker() {
	defer s.wg.Done()

	ticker := time.NewTicker(expirySweepInterval)
	defer ticker.Stop()

	s.logger.Info("Expiry sweep worker started",
		slog.Duration("interval", expirySweepInterval))

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info("Expiry sweep worker shutting down")
			return

		case <-ticker.C:
			if err := s.sweepExpiredKeys(); err != nil {
				s.logger.Error("Error during expiry sweep", slog.String("error", err.Error()))
			}
		}
	}
}

// sweepExpiredKeys deactivates keys whose expiry has passed. The
// authorizer already refuses expired keys on its own; the sweep keeps
// listings and the audit trail in line with what it enforces.
func (s *ApiKeyBackgroundService) sweepExpiredKeys() error {
	expired, err := s.apiKeyRepository.DeactivateExpiredKeys(context.Background(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to deactivate expired keys: %w", err)
	}

	for _, apiKey := range expired {
		keyID := apiKey.ID
		s.auditLogService.WriteKeyEvent(
			fmt.Sprintf("API key expired: %s (%s)", apiKey.Name, apiKey.TokenPrefix),
			&keyID,
			apiKey.Email,
		)
	}

	if len(expired) > 0 {
		s.logger.Info("Expired API keys deactivated", slog.Int("count", len(expired)))
	}

	return nil
}
