package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/internal/service"
	"campus-llm/backend/internal/store"
)

// EventController handles event-related API endpoints
type EventController struct {
	events *service.EventService
}

// NewEventController creates a new event controller
func NewEventController(events *service.EventService) *EventController {
	return &EventController{events: events}
}

// RegisterRoutes registers the routes for the event controller
func (c *EventController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/events", c.ListEvents)
	api.GET("/events/:id", c.GetEvent)
	api.POST("/events/:id/rsvp", c.RSVP)
	api.POST("/events/:id/checkin", c.CheckIn)
}

// ListEvents returns all events
func (c *EventController) ListEvents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.events.ListEvents())
}

// GetEvent retrieves an event by id
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	event, err := c.events.GetEvent(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// RSVP toggles the user's attendee membership for an event. Repeated
// calls alternate between adding and removing the RSVP.
func (c *EventController) RSVP(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var request models.EventActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	action, err := c.events.ToggleRSVP(id, request.UserID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "action": action})
}

// CheckIn records event attendance and credits the event's points. A
// second check-in for the same user is rejected, not double-counted.
func (c *EventController) CheckIn(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var request models.EventActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	points, err := c.events.CheckIn(ctx.Request.Context(), id, request.UserID)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyCheckedIn) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Already checked in"})
			return
		}
		if errors.Is(err, store.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "points": points})
}
