package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-inc/bloodlink-api/lifecycle"
	"github.com/bloodlink-inc/bloodlink-api/schema"
)

// listSlots is the API for querying the free donation slots of a date
func (s *Server) listSlots(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	booked, err := s.store.BookedSlots(date)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": lifecycle.FreeSlots(schema.AllDaySlots, booked),
	})
}

// myAppointments lists the appointments booked by the requester
func (s *Server) myAppointments(c *gin.Context) {
	requester := c.GetString("requester")

	appointments, err := s.store.ListAppointments(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": appointments,
	})
}
