package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public read surface and the API-key-gated
// admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public routes
		r.Group(func(r chi.Router) {
			r.Get("/events/", handlers.eventHandler.listEvents())
			r.Get("/events/{eventID}", handlers.eventHandler.getEvent())

			r.Get("/projects/", handlers.projectHandler.listProjects())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

			r.Get("/gallery/event/{eventID}", handlers.imageHandler.listEventImages())
			r.Get("/gallery/project/{projectID}", handlers.imageHandler.listProjectImages())

			r.Get("/download/executable/{exeID}", handlers.fileHandler.downloadExecutable())

			r.Get("/about/", handlers.groupInfoHandler.getGroupInfo())
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/events/", handlers.eventHandler.createEvent())
			r.Put("/events/{eventID}", handlers.eventHandler.updateEvent())
			r.Delete("/events/{eventID}", handlers.eventHandler.deleteEvent())

			r.Post("/projects/", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/upload_image/", handlers.imageHandler.uploadImage())
			r.Delete("/images/{imageID}", handlers.imageHandler.deleteImage())

			r.Post("/projects/files/upload", handlers.fileHandler.uploadProjectFile())
			r.Delete("/projects/files/{fileID}", handlers.fileHandler.deleteProjectFile())
			r.Get("/projects/files/{fileID}/download", handlers.fileHandler.downloadProjectFile())

			r.Post("/projects/executables/upload", handlers.fileHandler.uploadExecutable())
			r.Delete("/projects/executables/{exeID}", handlers.fileHandler.deleteExecutable())

			r.Post("/about/", handlers.groupInfoHandler.createGroupInfo())
			r.Put("/about/", handlers.groupInfoHandler.updateGroupInfo())
		})
	})
}
