package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/catalog"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/screens"
)

// AlertsResponse groups the home alert cards and the safety advisories
type AlertsResponse struct {
	Home   []models.HomeAlert   `json:"home"`
	Safety []models.SafetyAlert `json:"safety"`
}

// ServicesResponse is the service directory with its filter tabs
type ServicesResponse struct {
	Categories []string                `json:"categories"`
	Services   []models.ServiceListing `json:"services"`
}

// GetNotices godoc
// @Summary List notices
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Notice
// @Router /catalog/notices [get]
func GetNotices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Notices())
}

// GetAlerts godoc
// @Summary List alerts
// @Tags catalog
// @Produce json
// @Success 200 {object} AlertsResponse
// @Router /catalog/alerts [get]
func GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, AlertsResponse{
		Home:   catalog.HomeAlerts(),
		Safety: catalog.SafetyAlerts(),
	})
}

// GetServices godoc
// @Summary List local services
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter, All by default"
// @Success 200 {object} ServicesResponse
// @Router /catalog/services [get]
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, ServicesResponse{
		Categories: catalog.ServiceCategories(),
		Services:   catalog.Services(c.Query("category")),
	})
}

// GetPolls godoc
// @Summary List polls
// @Description Published tallies with rounded percentages
// @Tags catalog
// @Produce json
// @Param status query string false "active or expired"
// @Success 200 {array} models.PollView
// @Failure 400 {object} ErrorResponse
// @Router /catalog/polls [get]
func GetPolls(c *gin.Context) {
	var polls []models.Poll
	switch status := c.Query("status"); status {
	case "":
		polls = catalog.Polls()
	case models.PollStatusActive, models.PollStatusExpired:
		polls = catalog.PollsByStatus(status)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid poll status: " + status, Code: "bad_request"})
		return
	}

	out := make([]models.PollView, 0, len(polls))
	for _, p := range polls {
		out = append(out, catalog.ViewPoll(p, nil))
	}
	c.JSON(http.StatusOK, out)
}

// GetEvents godoc
// @Summary List volunteer events
// @Tags catalog
// @Produce json
// @Success 200 {array} models.VolunteerEvent
// @Router /catalog/events [get]
func GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Events())
}

// GetFAQs godoc
// @Summary List FAQs
// @Tags catalog
// @Produce json
// @Success 200 {array} models.FAQ
// @Router /catalog/faqs [get]
func GetFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.FAQs())
}

// GetEmergencyNumbers godoc
// @Summary List emergency numbers
// @Tags catalog
// @Produce json
// @Success 200 {array} screens.EmergencyLine
// @Router /catalog/emergency-numbers [get]
func GetEmergencyNumbers(c *gin.Context) {
	c.JSON(http.StatusOK, screens.EmergencyLines())
}
