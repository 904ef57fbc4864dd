package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink-inc/bloodlink-api/api/mocks"
	"github.com/bloodlink-inc/bloodlink-api/schema"
	"github.com/bloodlink-inc/bloodlink-api/store"
)

const testAccountID = "a4c62ea3-4a2b-5a9d-8c6a-111111111111"

// authAs stubs the jwt middleware so handlers see a fixed requester
func authAs(accountID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", accountID)
		c.Next()
	}
}

func testProfile() *schema.Profile {
	return &schema.Profile{
		ID:    testAccountID,
		Name:  "Ravi Kumar",
		Phone: "+919876543210",
	}
}

func TestCreateReceiverRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockBloodlinkCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	m.EXPECT().GetProfile(testAccountID).Return(testProfile(), nil).Times(1)

	created := schema.Request{
		ID:         primitive.NewObjectID(),
		Type:       schema.RequestTypeReceiver,
		UserID:     testAccountID,
		Name:       "Sita Devi",
		BloodGroup: "B+",
		Status:     schema.RequestStatusOpen,
	}
	m.EXPECT().CreateRequest(gomock.AssignableToTypeOf(schema.Request{})).Return(&created, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(authAs(testAccountID))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.createRequest)

	body := `{
		"type": "receiver",
		"name": "Sita Devi",
		"blood_group": "b+",
		"phone": "9876500000",
		"urgency": "soon",
		"location": {"state": "Telangana", "district": "Hyderabad"}
	}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

// TestCreateRequestMissingFields tests that every missing field is reported
// at once
func TestCreateRequestMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockBloodlinkCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	m.EXPECT().GetProfile(testAccountID).Return(testProfile(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(authAs(testAccountID))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.createRequest)

	body := `{
		"type": "receiver",
		"name": "Sita Devi",
		"blood_group": "B+",
		"phone": "9876500000",
		"location": {"state": "Telangana", "district": "Hyderabad"}
	}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorMissingFields.Code, jResp.Code, "wrong error code")
	assert.Contains(t, jResp.Message, "urgency")
}

// TestCreateDonorRequestSlotLost tests that a donor post is rolled back when
// a concurrent booking wins the slot
func TestCreateDonorRequestSlotLost(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockBloodlinkCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	viper.Set("appointments.booking_required", true)
	defer viper.Set("appointments.booking_required", false)

	m.EXPECT().GetProfile(testAccountID).Return(testProfile(), nil).Times(1)
	a.EXPECT().BookedSlots("2026-09-20").Return([]string{}, nil).Times(1)

	created := schema.Request{
		ID:     primitive.NewObjectID(),
		Type:   schema.RequestTypeDonor,
		UserID: testAccountID,
		Status: schema.RequestStatusOpen,
	}
	m.EXPECT().CreateRequest(gomock.AssignableToTypeOf(schema.Request{})).Return(&created, nil).Times(1)
	a.EXPECT().BookAppointment(gomock.AssignableToTypeOf(schema.Appointment{})).
		Return(nil, store.ErrSlotUnavailable).Times(1)
	m.EXPECT().DeleteRequest(testAccountID, created.ID).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(authAs(testAccountID))
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.createRequest)

	body := `{
		"type": "donor",
		"name": "Ravi Kumar",
		"blood_group": "O-",
		"phone": "9876543210",
		"location": {"state": "Telangana", "district": "Hyderabad"},
		"appointment_date": "2026-09-20",
		"appointment_time": "09:00 AM - 10:00 AM"
	}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorSlotUnavailable.Code, jResp.Code, "wrong error code")
}

// TestListRequestsFiltered tests the public feed with query filters
func TestListRequestsFiltered(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	posts := []schema.Request{
		{
			ID:         primitive.NewObjectID(),
			Type:       schema.RequestTypeReceiver,
			BloodGroup: "O-",
			Status:     schema.RequestStatusOpen,
			Receiver:   &schema.ReceiverDetails{Urgency: schema.UrgencyUrgent},
		},
		{
			ID:         primitive.NewObjectID(),
			Type:       schema.RequestTypeDonor,
			BloodGroup: "A+",
			Status:     schema.RequestStatusOpen,
			Donor:      &schema.DonorDetails{AvailableToDonate: true},
		},
	}
	m.EXPECT().ListRecentRequests(int64(recentFeedLimit)).Return(posts, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listRequests)

	req := httptest.NewRequest("GET", "/?blood_group=O-", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Requests []schema.Request `json:"requests"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Requests, 1, "wrong number of posts")
	assert.Equal(t, "O-", jResp.Requests[0].BloodGroup, "wrong post")
}

func TestGetRequestNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().GetProfile(testAccountID).Return(testProfile(), nil).Times(1)

	id := primitive.NewObjectID()
	m.EXPECT().GetRequest(id).Return(nil, store.ErrRequestNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(authAs(testAccountID))
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/:requestID", s.getRequest)

	req := httptest.NewRequest("GET", "/"+id.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
