package routes

import (
	"github.com/gofiber/fiber/v2"

	"ppltracker/backend/controllers"
	"ppltracker/backend/store"
)

func SetupRoutes(app *fiber.App, st *store.Store) {
	// Dashboard routes
	dashboardController := controllers.NewDashboardController(st)
	app.Get("/api/subjects", dashboardController.GetSubjects)
	app.Get("/api/dashboard", dashboardController.GetDashboard)

	// Devoirs routes
	assignmentsController := controllers.NewAssignmentsController(st)
	devoirs := app.Group("/api/devoirs")
	devoirs.Get("/", assignmentsController.GetAssignments)
	devoirs.Post("/", assignmentsController.SaveAssignment)
	devoirs.Delete("/:id", assignmentsController.DeleteAssignment)

	// Emploi du temps routes
	scheduleController := controllers.NewScheduleController(st)
	emploi := app.Group("/api/emploi")
	emploi.Get("/", scheduleController.GetWeek)
	emploi.Post("/slots", scheduleController.AddSlot)
	emploi.Delete("/slots/:id", scheduleController.DeleteSlot)
	emploi.Post("/week", scheduleController.ShiftWeek)

	// Notes routes
	notesController := controllers.NewNotesController(st)
	notes := app.Group("/api/notes")
	notes.Get("/", notesController.GetNotes)
	notes.Post("/", notesController.AddNote)
	notes.Delete("/:id", notesController.DeleteNote)

	// Bac blanc routes
	bacBlancController := controllers.NewBacBlancController(st)
	bacblanc := app.Group("/api/bacblanc")
	bacblanc.Get("/", bacBlancController.GetMockExams)
	bacblanc.Post("/score", bacBlancController.SaveScore)
	bacblanc.Delete("/:id", bacBlancController.DeleteMockExam)
}
