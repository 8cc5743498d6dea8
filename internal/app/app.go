package app

import (
	"fmt"
	"net/http"
	"pushreminder/internal/app/deps"
	"pushreminder/internal/app/services"
	"pushreminder/internal/http/handlers/health"
	registerdeliveryidentity "pushreminder/internal/http/handlers/identities/register_delivery_identity"
	sendnotification "pushreminder/internal/http/handlers/notifications/send_notification"
	cancelreminder "pushreminder/internal/http/handlers/reminders/cancel_reminder"
	listpendingreminders "pushreminder/internal/http/handlers/reminders/list_pending_reminders"
	scheduledailyreminder "pushreminder/internal/http/handlers/reminders/schedule_daily_reminder"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(allowedOrigins []string, s *services.Services) chi.Router {
	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodPost, "/daily", scheduledailyreminder.New(s.ScheduleDailyReminder))
	reminderRouter.Method(http.MethodGet, "/", listpendingreminders.New(s.ListPendingReminders))
	reminderRouter.Method(http.MethodDelete, "/{reminderID}", cancelreminder.New(s.CancelReminder))

	notificationRouter := chi.NewRouter()
	notificationRouter.Method(http.MethodPost, "/", sendnotification.New(s.SendNotification))

	identityRouter := chi.NewRouter()
	identityRouter.Method(
		http.MethodPut,
		"/{identity}",
		registerdeliveryidentity.New(s.RegisterDeliveryIdentity),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Get("/healthz", health.Handle)
	router.Mount("/reminders", reminderRouter)
	router.Mount("/notifications", notificationRouter)
	router.Mount("/identities", identityRouter)
	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: NewRouter(deps.Config.AllowedOrigins, s),
		Addr:    address,
	}
}
