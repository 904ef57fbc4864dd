package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/bloodlink-inc/bloodlink-api/feed"
)

const feedWriteTimeout = 10 * time.Second

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type feedFrame struct {
	Type     string      `json:"type"`
	Requests interface{} `json:"requests"`
}

// liveFeed streams the filtered request feed over a websocket. The client
// gets a full snapshot first, then a refreshed snapshot after every change
// observed on the requests collection.
func (s *Server) liveFeed(c *gin.Context) {
	var spec feed.Spec
	if err := c.ShouldBindQuery(&spec); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// the stream must be open before the snapshot is read, so a change
	// landing between the two shows up as an update instead of vanishing
	events, err := s.mongoStore.WatchRequests(ctx)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	posts, err := s.mongoStore.ListRecentRequests(recentFeedLimit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	conn, err := feedUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Error("upgrade live feed connection")
		return
	}
	defer conn.Close()

	// the client never sends data frames; the reader only surfaces closes
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	writeSnapshot := func(frameType string) error {
		conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
		return conn.WriteJSON(feedFrame{
			Type:     frameType,
			Requests: feed.Apply(posts, spec),
		})
	}

	if err := writeSnapshot("snapshot"); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			posts = feed.Trim(feed.Reduce(posts, ev), recentFeedLimit)
			if err := writeSnapshot("update"); err != nil {
				return
			}
		}
	}
}
