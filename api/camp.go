package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-inc/bloodlink-api/lifecycle"
	"github.com/bloodlink-inc/bloodlink-api/schema"
	"github.com/bloodlink-inc/bloodlink-api/store"
)

func campIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("campID"), 10, 32)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	return uint(id), true
}

// createCampRequest is the API for proposing a donation camp
func (s *Server) createCampRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var camp schema.CampRequest
	if err := c.BindJSON(&camp); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	camp.UserID = requester

	if err := lifecycle.ValidateCampSubmission(camp); err != nil {
		if ve, ok := err.(*lifecycle.ValidationError); ok {
			abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
				Code:    errorMissingFields.Code,
				Message: ve.Error(),
			})
			return
		}
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
		return
	}

	created, err := s.store.CreateCampRequest(camp)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": created,
	})
}

// myCampRequests lists the camp proposals filed by the requester
func (s *Server) myCampRequests(c *gin.Context) {
	requester := c.GetString("requester")

	camps, err := s.store.ListCampRequests(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"camp_requests": camps,
	})
}

func (s *Server) getCampRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := campIDParam(c)
	if !ok {
		return
	}

	camp, err := s.store.GetCampRequest(id)
	if err != nil {
		if err == store.ErrCampNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorCampNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if camp.UserID != requester {
		abortWithEncoding(c, http.StatusNotFound, errorCampNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": camp,
	})
}

// updateCampRequest edits a pending camp proposal. A reviewed proposal
// refuses the edit.
func (s *Server) updateCampRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := campIDParam(c)
	if !ok {
		return
	}

	var patch schema.CampRequestPatch
	if err := c.BindJSON(&patch); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	existing, err := s.store.GetCampRequest(id)
	if err != nil {
		if err == store.ErrCampNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorCampNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if existing.UserID != requester {
		abortWithEncoding(c, http.StatusNotFound, errorCampNotFound)
		return
	}

	edited, err := lifecycle.EditCampRequest(*existing, patch, time.Now().UTC())
	if err != nil {
		abortWithEncoding(c, http.StatusConflict, errorCampNotEditable)
		return
	}

	if err := s.store.UpdateCampRequest(requester, edited); err != nil {
		if err == store.ErrCampNotEditable {
			abortWithEncoding(c, http.StatusConflict, errorCampNotEditable)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": edited,
	})
}

// deleteCampRequest withdraws a pending camp proposal
func (s *Server) deleteCampRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := campIDParam(c)
	if !ok {
		return
	}

	if err := s.store.DeleteCampRequest(requester, id); err != nil {
		if err == store.ErrCampNotEditable {
			abortWithEncoding(c, http.StatusConflict, errorCampNotEditable)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
