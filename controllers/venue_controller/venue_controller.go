package venue_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/clients"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/session_models"
	"github.com/hallbook/hallbook/models/venue_models"
	"github.com/hallbook/hallbook/utils"
)

// VenueController serves the venue catalog and records which venue the
// visitor is booking.
type VenueController struct {
	Store *session_models.Store
	API   clients.BookingAPI
}

// NewVenueController creates a new instance of VenueController.
func NewVenueController(store *session_models.Store, api clients.BookingAPI) *VenueController {
	return &VenueController{Store: store, API: api}
}

// AddVenueRequest is the admin's new-venue payload, forwarded to the
// booking store's addProperties endpoint.
type AddVenueRequest struct {
	Name            string   `json:"name" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	SeatingCapacity int      `json:"seatingCapacity" binding:"required,gt=0"`
	Price           int      `json:"price" binding:"required,gt=0"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
	SuitableEvents  []string `json:"suitableEvents"`
}

// ListVenues returns the admin's venues, normalized from whatever shape the
// booking store returns. Malformed records are skipped, not fatal.
func (vc *VenueController) ListVenues(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if sess.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	raw, err := vc.API.PropertiesByAdmin(c.Request.Context(), sess.User.ID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch venues for admin %s: %v", sess.User.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch venues"})
		return
	}

	venues := make([]*venue_models.Venue, 0, len(raw))
	for _, r := range raw {
		if v := venue_models.FromUpstream(r); v != nil {
			venues = append(venues, v)
		}
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues, "total": len(venues)})
}

// SelectVenue stores the venue the visitor is about to book in the session
// and restarts the booking flow for it. Malformed payloads degrade to the
// placeholder venue rather than blocking the page.
func (vc *VenueController) SelectVenue(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read request body"})
		return
	}

	venue := venue_models.FromJSON(raw, c.Query("venueId"))
	sess.SelectedVenue = venue
	sess.Flow = nil // a different venue means a fresh flow
	if err := vc.Store.Save(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	logger.InfoLogger.Infof("Session %s selected venue %s", sess.ID, venue.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "selectedVenue": venue})
}

// AddVenue registers a new venue with the booking store (admins only).
func (vc *VenueController) AddVenue(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req AddVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	rejection, err := vc.API.AddProperty(c.Request.Context(), map[string]interface{}{
		"name":            req.Name,
		"location":        req.Location,
		"seatingCapacity": req.SeatingCapacity,
		"price":           req.Price,
		"description":     req.Description,
		"images":          req.Images,
		"suitableEvents":  req.SuitableEvents,
		"adminId":         sess.User.ID,
	})
	if err != nil {
		logger.ErrorLogger.Errorf("Add venue call failed for admin %s: %v", sess.User.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to add venue"})
		return
	}
	if rejection != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": rejection})
		return
	}

	logger.InfoLogger.Infof("Admin %s added venue %q", sess.User.ID, req.Name)
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Venue added successfully!"})
}

// VenueNames lists the admin's venue names for dropdowns.
func (vc *VenueController) VenueNames(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	names, err := vc.API.PropertyNames(c.Request.Context(), sess.User.ID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch venue names for admin %s: %v", sess.User.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch venue names"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"propertyNames": names})
}
