package api

import (
	"net/http"
	"strconv"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/bloodlink-inc/bloodlink-api/store"
)

// adminPendingCamps is an internal only api listing the camp proposals that
// still wait for review
func (s *Server) adminPendingCamps(c *gin.Context) {
	camps, err := s.store.ListPendingCampRequests()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"camp_requests": camps,
	})
}

// adminReviewCamp is an internal only api to confirm or reject a camp proposal
func (s *Server) adminReviewCamp(c *gin.Context) {
	id, ok := campIDParam(c)
	if !ok {
		return
	}

	var params struct {
		Confirm *bool `json:"confirm" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.ReviewCampRequest(id, *params.Confirm); err != nil {
		if err == store.ErrCampNotEditable {
			abortWithEncoding(c, http.StatusConflict, errorCampNotEditable)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "notify_camp_review",
		Args: []tasks.Arg{
			{Type: "uint64", Value: uint64(id)},
		},
	}); err != nil {
		log.WithError(err).Error("enqueue camp review notification")
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func appointmentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("appointmentID"), 10, 32)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	return uint(id), true
}

// adminReviewAppointment is an internal only api to approve or reject a
// pending appointment
func (s *Server) adminReviewAppointment(c *gin.Context) {
	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var params struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.ReviewAppointment(id, *params.Approve); err != nil {
		if err == store.ErrNotTransitionable {
			abortWithEncoding(c, http.StatusConflict, errorNotTransitionable)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminCloseAppointment is an internal only api to record the donation
// outcome of an approved appointment
func (s *Server) adminCloseAppointment(c *gin.Context) {
	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var params struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.CloseAppointment(id, *params.Completed); err != nil {
		if err == store.ErrNotTransitionable {
			abortWithEncoding(c, http.StatusConflict, errorNotTransitionable)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminExpireRequests is an internal only api to trigger the task to
// check expired blood requests
func (s *Server) adminExpireRequests(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "expire_blood_requests",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
