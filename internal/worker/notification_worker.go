package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/litreview/internal/service"
)

// StartNotificationWorker subscribes the notification service to domain
// events. Handlers run synchronously inside Publish.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification handlers registered")
}
