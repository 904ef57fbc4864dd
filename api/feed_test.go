package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink-inc/bloodlink-api/api/mocks"
	"github.com/bloodlink-inc/bloodlink-api/feed"
	"github.com/bloodlink-inc/bloodlink-api/schema"
)

// TestLiveFeed tests the websocket feed: the change stream is opened before
// the snapshot is read, so a post landing in between is delivered as an
// update rather than lost, and each change produces a refreshed frame
func TestLiveFeed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	snapshot := []schema.Request{
		{
			ID:         primitive.NewObjectID(),
			Type:       schema.RequestTypeReceiver,
			Name:       "Sita Devi",
			BloodGroup: "B+",
			Status:     schema.RequestStatusOpen,
		},
	}

	events := make(chan feed.Event, 1)

	watchCall := m.EXPECT().WatchRequests(gomock.Any()).
		Return((<-chan feed.Event)(events), nil).Times(1)
	m.EXPECT().ListRecentRequests(int64(recentFeedLimit)).
		Return(snapshot, nil).Times(1).After(watchCall)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/live", s.liveFeed)

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err, "dial live feed")
	defer conn.Close()

	var frame struct {
		Type     string           `json:"type"`
		Requests []schema.Request `json:"requests"`
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	assert.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "snapshot", frame.Type)
	assert.Len(t, frame.Requests, 1)
	assert.Equal(t, "Sita Devi", frame.Requests[0].Name)

	fresh := schema.Request{
		ID:         primitive.NewObjectID(),
		Type:       schema.RequestTypeReceiver,
		Name:       "Asha Rao",
		BloodGroup: "A+",
		Status:     schema.RequestStatusOpen,
	}
	events <- feed.Event{Op: feed.OpInsert, ID: fresh.ID, Post: &fresh}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	assert.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "update", frame.Type)
	assert.Len(t, frame.Requests, 2)
	// newest first
	assert.Equal(t, "Asha Rao", frame.Requests[0].Name)
}
