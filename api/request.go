package api

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink-inc/bloodlink-api/feed"
	"github.com/bloodlink-inc/bloodlink-api/lifecycle"
	"github.com/bloodlink-inc/bloodlink-api/schema"
	"github.com/bloodlink-inc/bloodlink-api/store"
)

const recentFeedLimit = 50

func regionSchema() lifecycle.RegionSchema {
	if viper.GetString("region.schema") == string(lifecycle.RegionConstituency) {
		return lifecycle.RegionConstituency
	}
	return lifecycle.RegionDistrict
}

// createRequest is the API for posting a blood request, either a receiver
// need or a donor offer. Donor posts book their slot in the same call; if
// the slot is lost to a concurrent booking the post is rolled back.
func (s *Server) createRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var draft lifecycle.Draft
	if err := c.BindJSON(&draft); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	draft.UserID = requester

	bookingRequired := viper.GetBool("appointments.booking_required")

	if err := lifecycle.ValidateRequestSubmission(draft, regionSchema(), bookingRequired); err != nil {
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

	payload := lifecycle.BuildRequestPayload(draft, time.Now().UTC())

	if payload.Type == schema.RequestTypeDonor && bookingRequired {
		booked, err := s.store.BookedSlots(draft.AppointmentDate)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		if !lifecycle.SlotBookable(draft.AppointmentTime, schema.AllDaySlots, booked) {
			abortWithEncoding(c, http.StatusConflict, errorSlotNotBookable)
			return
		}
	}

	created, err := s.mongoStore.CreateRequest(payload)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if created.Type == schema.RequestTypeDonor && bookingRequired {
		if _, err := s.store.BookAppointment(schema.Appointment{
			RequestID:         created.ID.Hex(),
			UserID:            requester,
			AppointmentDate:   draft.AppointmentDate,
			AppointmentTime:   draft.AppointmentTime,
			BloodBankLocation: viper.GetString("appointments.blood_bank_location"),
		}); err != nil {
			// the post must not stand without its slot
			if derr := s.mongoStore.DeleteRequest(requester, created.ID); derr != nil {
				log.WithError(derr).Error("roll back donor post after booking failure")
			}

			if err == store.ErrSlotUnavailable {
				abortWithEncoding(c, http.StatusConflict, errorSlotUnavailable)
				return
			}
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	if created.Type == schema.RequestTypeReceiver && created.Receiver != nil {
		switch created.Receiver.Urgency {
		case schema.UrgencyUrgent, schema.UrgencyCritical:
			if _, err := s.background.SendTask(&tasks.Signature{
				Name: "notify_matching_donors",
				Args: []tasks.Arg{
					{Type: "string", Value: created.ID.Hex()},
				},
			}); err != nil {
				log.WithError(err).Error("enqueue donor matching")
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": created,
	})
}

// listRequests is the public feed API. Filters arrive as query parameters
// and are applied conjunctively over the recent posts.
func (s *Server) listRequests(c *gin.Context) {
	var spec feed.Spec
	if err := c.ShouldBindQuery(&spec); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	posts, err := s.mongoStore.ListRecentRequests(recentFeedLimit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": feed.Apply(posts, spec),
	})
}

// myRequests lists the posts owned by the requester
func (s *Server) myRequests(c *gin.Context) {
	requester := c.GetString("requester")

	requests, err := s.mongoStore.ListAccountRequests(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
	})
}

func (s *Server) getRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	request, err := s.mongoStore.GetRequest(id)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	result := gin.H{
		"result": request,
	}

	// the owner of a donor post also sees its linked appointment
	if request.Type == schema.RequestTypeDonor && request.UserID == requester {
		appointment, err := s.store.GetAppointmentByRequest(id.Hex())
		switch err {
		case nil:
			result["appointment"] = appointment
		case store.ErrAppointmentMissing:
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	c.JSON(http.StatusOK, result)
}

// updateRequest re-validates and rebuilds an edited post. The post type is
// immutable; the stored type always wins over the submitted one.
func (s *Server) updateRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	existing, err := s.mongoStore.GetRequest(id)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if existing.UserID != requester {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	}

	var draft lifecycle.Draft
	if err := c.BindJSON(&draft); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	draft.UserID = requester
	draft.Type = existing.Type
	draft.CreatedAt = existing.CreatedAt

	// edits never re-negotiate the appointment
	if err := lifecycle.ValidateRequestSubmission(draft, regionSchema(), false); err != nil {
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

	payload := lifecycle.BuildRequestPayload(draft, time.Now().UTC())
	payload.ID = existing.ID
	payload.Status = existing.Status

	// keep the geocoded point when the place did not change; otherwise the
	// store geocodes the new location before writing
	if payload.Location == existing.Location {
		payload.Geo = existing.Geo
	}

	if err := s.mongoStore.UpdateRequest(requester, payload); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": payload,
	})
}

// deleteRequest withdraws a post. A donor post releases its booked slot.
func (s *Server) deleteRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.DeleteRequest(requester, id); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.DeleteAppointmentByRequest(requester, id.Hex()); err != nil {
		log.WithError(err).Error("release slot of deleted post")
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
