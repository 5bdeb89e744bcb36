package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/admin"
	"github.com/cityhall-dev/licensing-management/internal/auth"
	"github.com/cityhall-dev/licensing-management/internal/business"
	"github.com/cityhall-dev/licensing-management/internal/defect"
	"github.com/cityhall-dev/licensing-management/internal/licensing"
	"github.com/cityhall-dev/licensing-management/internal/report"
	"github.com/cityhall-dev/licensing-management/internal/transport/middleware"
	"github.com/cityhall-dev/licensing-management/internal/transport/swagger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Admin     *admin.Handler
	Licensing *licensing.Handler
	Defect    *defect.Handler
	Business  *business.Handler
	Report    *report.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sqlx.DB, h Handlers, cfg *internal.Config, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	// Rendered inspection PDFs are served straight off disk.
	fileServer := http.StripPrefix(cfg.Reports.PublicPath+"/", http.FileServer(http.Dir(cfg.Reports.StorageDir)))
	router.Get(cfg.Reports.PublicPath+"/*", fileServer.ServeHTTP)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.Auth.Register)
			sr.Post("/login", h.Auth.Login)

			sr.Group(func(pr chi.Router) {
				pr.Use(h.Auth.AuthMiddleware)
				pr.Get("/me", h.Auth.Me)
			})
		})

		// The licensing-item catalog is public reference data.
		r.Get("/licensing-items", h.Licensing.ListItems)
		r.Get("/licensing-items/{id}", h.Licensing.GetItem)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Group(func(wr chi.Router) {
				wr.Use(h.Auth.RequireRoles(internal.RoleAdmin, internal.RoleManager))
				wr.Post("/licensing-items", h.Licensing.CreateItem)
				wr.Put("/licensing-items/{id}", h.Licensing.UpdateItem)
			})
			pr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.RequireRoles(internal.RoleAdmin))
				ar.Delete("/licensing-items/{id}", h.Licensing.DeleteItem)
			})

			pr.Get("/defects", h.Defect.ListDefects)
			pr.Get("/defects/{id}", h.Defect.GetDefect)

			pr.Route("/businesses", func(br chi.Router) {
				br.Get("/", h.Business.ListBusinesses)
				br.Get("/{id}", h.Business.GetBusiness)

				br.Group(func(cr chi.Router) {
					cr.Use(h.Auth.RequireRoles(internal.RoleInspector, internal.RoleManager, internal.RoleAdmin))
					cr.Post("/", h.Business.CreateBusiness)
				})
				br.Group(func(mr chi.Router) {
					mr.Use(h.Auth.RequireRoles(internal.RoleManager, internal.RoleAdmin))
					mr.Put("/{id}", h.Business.UpdateBusiness)
				})
				br.Group(func(ar chi.Router) {
					ar.Use(h.Auth.RequireRoles(internal.RoleAdmin))
					ar.Delete("/{id}", h.Business.DeleteBusiness)
				})
			})

			pr.Route("/reports", func(rr chi.Router) {
				rr.Get("/{id}", h.Report.GetReport)
				rr.Get("/business/{businessId}", h.Report.GetReportsByBusiness)

				rr.Group(func(ir chi.Router) {
					ir.Use(h.Auth.RequireRoles(internal.RoleInspector, internal.RoleManager, internal.RoleAdmin))
					ir.Post("/", h.Report.CreateReport)
					ir.Get("/", h.Report.ListReports)
					ir.Get("/export", h.Report.ExportReports)
					ir.Put("/{id}", h.Report.UpdateReport)
				})
			})

			pr.Route("/admin", func(ar chi.Router) {
				ar.Use(h.Auth.RequireRoles(internal.RoleAdmin))
				ar.Get("/pending-users", h.Admin.GetPendingUsers)
				ar.Put("/approve/{id}", h.Admin.ApproveUser)
				ar.Delete("/deny/{id}", h.Admin.DenyUser)
			})
		})
	})
}
