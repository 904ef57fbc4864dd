package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-inc/bloodlink-api/schema"
	"github.com/bloodlink-inc/bloodlink-api/store"
	"github.com/bloodlink-inc/bloodlink-api/utils"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	accountID := c.GetString("requester")

	var params struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		BloodGroup string `json:"blood_group"`
		Gender     string `json:"gender"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	phone, err := utils.NormalizePhone(params.Phone)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidPhone, err)
		return
	}

	// the registered phone must be the one the requester verified
	if utils.AccountID(phone) != accountID {
		abortWithEncoding(c, http.StatusForbidden, errorInvalidParameters)
		return
	}

	if params.BloodGroup != "" && !schema.ValidBloodGroup(params.BloodGroup) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownBloodGroup)
		return
	}

	now := time.Now().UTC()
	profile := schema.Profile{
		ID:         accountID,
		Name:       params.Name,
		Phone:      phone,
		BloodGroup: params.BloodGroup,
		Gender:     params.Gender,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.mongoStore.CreateProfile(profile); err != nil {
		if err == store.ErrProfileExisted {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": profile,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	profile, ok := a.(*schema.Profile)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": profile,
	})
}

// accountUpdate is the API to update profile fields for a user
func (s *Server) accountUpdate(c *gin.Context) {
	accountID := c.GetString("requester")

	var params struct {
		Name                *string `json:"name"`
		BloodGroup          *string `json:"blood_group"`
		Gender              *string `json:"gender"`
		IsAvailableToDonate *bool   `json:"is_available_to_donate"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	fields := map[string]interface{}{}
	if params.Name != nil {
		fields["name"] = *params.Name
	}
	if params.BloodGroup != nil {
		if !schema.ValidBloodGroup(*params.BloodGroup) {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownBloodGroup)
			return
		}
		fields["blood_group"] = *params.BloodGroup
	}
	if params.Gender != nil {
		fields["gender"] = *params.Gender
	}
	if params.IsAvailableToDonate != nil {
		fields["is_available_to_donate"] = *params.IsAvailableToDonate
	}

	if len(fields) == 0 {
		c.JSON(http.StatusOK, gin.H{"result": "OK"})
		return
	}

	if err := s.mongoStore.UpdateProfile(accountID, fields); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountDelete is the API to remove an account from our service
func (s *Server) accountDelete(c *gin.Context) {
	accountID := c.GetString("requester")

	if err := s.mongoStore.DeleteProfile(accountID); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
