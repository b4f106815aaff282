package utils

import (
	"clinicare-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func LogBusinessEvent(log *zap.Logger, event, requestID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}, fields...)
	log.Info("business_event", allFields...)
}

func LogSecurityEvent(log *zap.Logger, event, requestID, severity string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("severity", severity),
	}, fields...)
	log.Warn("security_event", allFields...)
}
