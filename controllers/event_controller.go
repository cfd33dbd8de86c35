package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/entity"
	"github.com/Jordan10001/soramatcha-admin/pkg/resp"
	"github.com/Jordan10001/soramatcha-admin/services"
	"github.com/Jordan10001/soramatcha-admin/utils"
)

type EventController struct {
	Events *services.EventService
}

func NewEventController(events *services.EventService) *EventController {
	return &EventController{Events: events}
}

// eventView adds the singular "location" alias some dashboard components
// read alongside the stored "locations" column.
type eventView struct {
	entity.Event
	Location string `json:"location"`
}

func toEventView(e entity.Event) eventView {
	return eventView{Event: e, Location: e.Locations}
}

// GET /event
func (ctl *EventController) List(c *gin.Context) {
	events := ctl.Events.List()
	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, toEventView(e))
	}
	resp.OK(c, views)
}

type createEventRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Locations   string  `json:"locations"`
	ImageURL    *string `json:"imageUrl"`
	ImagePath   *string `json:"imagePath"`
}

// POST /event
func (ctl *EventController) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid event payload: "+err.Error())
		return
	}

	event, err := ctl.Events.Create(req.Name, req.Description, req.Locations, req.ImageURL, req.ImagePath)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, toEventView(*event))
}

type updateEventRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Locations   string               `json:"locations"`
	ImageURL    utils.OptionalString `json:"imageUrl"`
	ImagePath   *string              `json:"imagePath"`
}

// PATCH /event/:id
func (ctl *EventController) Update(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid event payload: "+err.Error())
		return
	}

	img := services.ImagePatch{Set: req.ImageURL.Present, URL: req.ImageURL.Value, Path: req.ImagePath}
	event, err := ctl.Events.Update(c.Request.Context(), c.Param("id"), req.Name, req.Description, req.Locations, img)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, toEventView(*event))
}

// DELETE /event/:id
func (ctl *EventController) Delete(c *gin.Context) {
	if err := ctl.Events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
