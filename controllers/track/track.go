package trackController

import (
	"fmt"

	"upskill/dto"
	"upskill/middleware"
	"upskill/services"

	"github.com/gofiber/fiber/v2"
)

type TrackController struct {
	Tracks *services.TrackService
}

func NewTrackController(tracks *services.TrackService) *TrackController {
	return &TrackController{Tracks: tracks}
}

func (ctrl *TrackController) GetTracks(c *fiber.Ctx) error {
	tracks, err := ctrl.Tracks.GetAll(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracks fetched successfully!", dto.NewTrackResponses(tracks))
}

func (ctrl *TrackController) GetTrack(c *fiber.Ctx) error {
	track, err := ctrl.Tracks.GetByID(c.UserContext(), c.Locals("trackID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Track fetched successfully!", dto.NewTrackResponse(track))
}

func (ctrl *TrackController) CreateTrack(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTrack").(*dto.TrackRequest)

	track, err := ctrl.Tracks.Create(c.UserContext(), reqData.Input())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	c.Location(fmt.Sprintf("/api/v1/tracks/%d", track.ID))
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Track created successfully!", dto.NewTrackResponse(track))
}

func (ctrl *TrackController) UpdateTrack(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTrack").(*dto.TrackRequest)

	track, err := ctrl.Tracks.Update(c.UserContext(), c.Locals("trackID").(uint), reqData.Input())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Track updated successfully!", dto.NewTrackResponse(track))
}

func (ctrl *TrackController) DeleteTrack(c *fiber.Ctx) error {
	if err := ctrl.Tracks.Delete(c.UserContext(), c.Locals("trackID").(uint)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
