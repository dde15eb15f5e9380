package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/session"
)

const serviceName = "SessionService"

const (
	logMessageMaxLen     = 50
	signatureDisplaySize = 16
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the session Service.
// Signatures and tokens are redacted.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// IssueNonce wraps the service method with logging
func (ls *logService) IssueNonce(ctx context.Context, address string) (resp *session.NonceResponse, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Warn("IssueNonce failed",
				zap.String("service", serviceName),
				zap.String("method", "IssueNonce"),
				zap.String("address", address),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("IssueNonce completed",
			zap.String("service", serviceName),
			zap.String("method", "IssueNonce"),
			zap.String("address", address),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.IssueNonce(ctx, address)
}

// Connect wraps the service method with logging
func (ls *logService) Connect(ctx context.Context, req *session.ConnectRequest) (resp *session.ConnectResponse, err error) {
	start := time.Now()

	var address, message, signature string
	if req != nil {
		address, message, signature = req.Address, req.Message, req.Signature
	}
	ls.logger.Info("Connect started",
		zap.String("service", serviceName),
		zap.String("method", "Connect"),
		zap.String("address", address),
		zap.String("message", truncateString(message, logMessageMaxLen)),
		zap.String("signature", redactSignature(signature)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Warn("Connect failed",
				zap.String("service", serviceName),
				zap.String("method", "Connect"),
				zap.String("address", address),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Connect completed",
				zap.String("service", serviceName),
				zap.String("method", "Connect"),
				zap.String("address", resp.Address),
				zap.Time("expires_at", resp.ExpiresAt),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Connect(ctx, req)
}

// Verify wraps the service method with logging
func (ls *logService) Verify(ctx context.Context, token string) (resp *session.VerifyResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Verify"),
			zap.String("token", redactSignature(token)),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Debug("Verify rejected", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("Verify completed", append(fields, zap.String("address", resp.Address))...)
	}()
	return ls.svc.Verify(ctx, token)
}

// Disconnect wraps the service method with logging
func (ls *logService) Disconnect(ctx context.Context, s *auth.Session) (resp *session.DisconnectResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Disconnect"),
			zap.Duration("duration", time.Since(start)),
		}
		if s != nil {
			fields = append(fields, zap.String("address", s.Address), zap.String("token_id", s.TokenID))
		}
		if err != nil {
			ls.logger.Error("Disconnect failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Disconnect completed", fields...)
	}()
	return ls.svc.Disconnect(ctx, s)
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// redactSignature shows only the edges and length of a signature or token
func redactSignature(sig string) string {
	if sig == "" {
		return "<empty>"
	}
	sigLen := len(sig)
	if sigLen > signatureDisplaySize {
		return fmt.Sprintf("%s...%s (%d bytes)", sig[:8], sig[sigLen-4:], sigLen)
	}
	return fmt.Sprintf("<%d bytes>", sigLen)
}
