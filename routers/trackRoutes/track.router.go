package trackRoutes

import (
	trackController "upskill/controllers/track"
	trackValidator "upskill/validators/trackValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupTrackRoutes(app *fiber.App, ctrl *trackController.TrackController) {
	trackGroup := app.Group("/api/v1/tracks")

	trackGroup.Get("/", ctrl.GetTracks)
	trackGroup.Get("/:id", trackValidator.TrackID(), ctrl.GetTrack)
	trackGroup.Post("/", trackValidator.SaveTrack(), ctrl.CreateTrack)
	trackGroup.Put("/:id", trackValidator.TrackID(), trackValidator.SaveTrack(), ctrl.UpdateTrack)
	trackGroup.Delete("/:id", trackValidator.TrackID(), ctrl.DeleteTrack)
}
