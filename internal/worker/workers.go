package worker

import (
	"context"

	"github.com/campus-kit/triage-service/internal/cache"
	"github.com/campus-kit/triage-service/internal/events"
	"github.com/campus-kit/triage-service/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// StartCacheInvalidator drops cached dashboard counts whenever a ticket
// is written, so operators never see stale aggregates past a write.
func StartCacheInvalidator(dispatcher events.Dispatcher, stats *cache.StatsCache) {
	if dispatcher == nil || stats == nil {
		return
	}
	invalidate := func(ctx context.Context, _ events.Event) error {
		stats.Invalidate(ctx)
		return nil
	}
	dispatcher.Subscribe(events.EventTicketFiled, invalidate)
	dispatcher.Subscribe(events.EventTicketStatusChanged, invalidate)
}
