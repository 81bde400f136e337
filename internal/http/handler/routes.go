package handler

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"tenantconsole/docs"
	"tenantconsole/internal/service"
)

// Services are the handlers' dependencies. Nil members leave their routes
// unregistered.
type Services struct {
	Profiles  service.ProfileService
	Overview  service.OverviewService
	Backups   service.BackupService
	Schedules service.ScheduleService
	Schema    service.SchemaService
	Sessions  service.SessionService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, s Services) {
	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}
		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}
		return swagger.HandlerDefault(c)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/v1")

	if s.Profiles != nil {
		api.Get("/clients", ListClients(s.Profiles))
		api.Get("/profiles", ListProfiles(s.Profiles))
		api.Post("/profiles", CreateProfile(s.Profiles))
		api.Get("/profiles/stats", ProfileStats(s.Profiles))
		api.Get("/profiles/:id", GetProfile(s.Profiles))
		api.Patch("/profiles/:id", UpdateProfile(s.Profiles))
		api.Delete("/profiles/:id", DeleteProfile(s.Profiles))
		api.Post("/profiles/:id/toggle-status", ToggleProfileStatus(s.Profiles))
	}

	if s.Overview != nil {
		api.Get("/overview/stats", ClientStats(s.Overview))
		api.Get("/overview/activity", RecentActivity(s.Overview))
	}

	if s.Backups != nil {
		api.Get("/backups", ListBackups(s.Backups))
		api.Post("/backups", CreateBackup(s.Backups))
		api.Post("/backups/quick", QuickBackup(s.Backups))
		api.Post("/backups/prune", PruneBackups(s.Backups))
		api.Get("/backups/:id", GetBackup(s.Backups))
		api.Delete("/backups/:id", DeleteBackup(s.Backups))
		api.Post("/backups/:id/restore", RestoreBackup(s.Backups))
		api.Get("/backups/:id/files", DownloadArtifact(s.Backups))
		api.Get("/backups/:id/link", ArtifactLink(s.Backups))
	}

	if s.Schedules != nil {
		api.Get("/schedules", ListSchedules(s.Schedules))
		api.Post("/schedules/run", RunDueSchedules(s.Schedules))
		api.Get("/schedules/:clientId", GetSchedule(s.Schedules))
		api.Put("/schedules/:clientId", PutSchedule(s.Schedules))
		api.Delete("/schedules/:clientId", DeleteSchedule(s.Schedules))
	}

	if s.Schema != nil {
		api.Get("/data/stats", DataStats(s.Schema))
		api.Get("/tables/stats", TableStats(s.Schema))
		api.Get("/tables/:table/columns", TableColumns(s.Schema))
		api.Get("/tables/:table/rows", TableRows(s.Schema))
		api.Post("/tables/:table/rows", InsertRow(s.Schema))
		api.Patch("/tables/:table/rows/:id", UpdateRow(s.Schema))
		api.Delete("/tables/:table/rows/:id", DeleteRow(s.Schema))
		api.Get("/tables/:table/export", ExportTable(s.Schema))
	}

	if s.Sessions != nil {
		api.Get("/sessions", ListSessions(s.Sessions))
		api.Post("/sessions", StartSession(s.Sessions))
		api.Get("/sessions/stats", SessionStats(s.Sessions))
		api.Post("/sessions/cleanup", CleanupSessions(s.Sessions))
		api.Post("/sessions/:id/actions", RecordSessionAction(s.Sessions))
		api.Delete("/sessions/:id", EndSession(s.Sessions))
	}
}
