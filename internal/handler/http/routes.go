package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/password/check", h.checkPassword)

		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/visas", h.listVisaTypes)
		r.Get("/api/visas/{visaID}", h.getVisaType)
		r.Get("/api/assistant/questions", h.listQuestions)
		r.Post("/api/assistant/ask", h.ask)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/auth/password", h.changePassword)

		r.Get("/api/profile", h.getProfile)
		r.Patch("/api/profile", h.updateProfile)
		r.Put("/api/profile/numbers", h.updateNumber)

		r.Get("/api/documents", h.listDocuments)
		r.Post("/api/documents", h.addDocument)
		r.Get("/api/documents/{documentID}", h.getDocument)
		r.Patch("/api/documents/{documentID}", h.updateDocument)
		r.Delete("/api/documents/{documentID}", h.deleteDocument)
		r.Get("/api/documents/{documentID}/file", h.downloadDocument)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.addNote)
		r.Patch("/api/notes/{noteID}", h.updateNote)
		r.Delete("/api/notes/{noteID}", h.deleteNote)
		r.Post("/api/notes/{noteID}/important", h.toggleImportant)

		r.Get("/api/categories", h.listCategories)
		r.Post("/api/categories", h.addCategory)
		r.Patch("/api/categories/{categoryID}", h.renameCategory)
		r.Delete("/api/categories/{categoryID}", h.deleteCategory)

		r.Get("/api/quick-access", h.listQuickAccess)
		r.Put("/api/quick-access", h.replaceQuickAccess)
		r.Post("/api/quick-access/{documentID}", h.toggleQuickAccess)

		r.Get("/api/checklist", h.listChecklist)
		r.Post("/api/checklist/toggle", h.toggleChecklistItem)

		r.Get("/api/aima", h.getAimaProcess)
		r.Patch("/api/aima", h.updateAimaProcess)
		r.Delete("/api/aima", h.clearAimaProcess)
		r.Put("/api/aima/type", h.selectProcessType)
		r.Post("/api/aima/steps", h.toggleStep)
		r.Post("/api/aima/dates", h.addImportantDate)
		r.Post("/api/aima/protocols", h.addProtocol)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
