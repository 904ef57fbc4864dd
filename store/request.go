package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodlink-inc/bloodlink-api/external/geoinfo"
	"github.com/bloodlink-inc/bloodlink-api/feed"
	"github.com/bloodlink-inc/bloodlink-api/schema"
)

var (
	ErrRequestNotFound = fmt.Errorf("blood request not found")
)

// BloodPost - operations on blood request posts
type BloodPost interface {
	CreateRequest(request schema.Request) (*schema.Request, error)
	GetRequest(requestID primitive.ObjectID) (*schema.Request, error)
	ListRecentRequests(limit int64) ([]schema.Request, error)
	ListAccountRequests(accountID string) ([]schema.Request, error)
	UpdateRequest(accountID string, request schema.Request) error
	DeleteRequest(accountID string, requestID primitive.ObjectID) error
	NearestDonors(distance int, cords schema.Location, bloodGroups []string) ([]schema.Request, error)
	ExpireRequests(maxAge time.Duration) ([]schema.Request, error)
	WatchRequests(ctx context.Context) (<-chan feed.Event, error)
}

// geocodeRequest fills the geo point in from the display location on a
// best-effort basis so the post can be targeted by proximity queries; a
// geocoding failure never blocks the write.
func (m *mongoDB) geocodeRequest(request *schema.Request) {
	if request.Geo != nil || request.Location == "" {
		return
	}

	results, err := m.geoClient.Get(request.Location)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"location": request.Location,
			"error":    err,
		}).Warn("geocode request location")
		return
	}

	if loc := geoinfo.FirstLocation(results); loc != nil {
		request.Geo = &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{loc.Longitude, loc.Latitude},
		}
	}
}

// CreateRequest inserts a new blood post, geocoding its display location
func (m *mongoDB) CreateRequest(request schema.Request) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	m.geocodeRequest(&request)

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	result, err := c.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = result.InsertedID.(primitive.ObjectID)

	return &request, nil
}

// GetRequest finds a blood post by its ID
func (m *mongoDB) GetRequest(requestID primitive.ObjectID) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	if err := c.FindOne(ctx, bson.M{"_id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// ListRecentRequests returns the newest posts first, up to limit
func (m *mongoDB) ListRecentRequests(limit int64) ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cur, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	requests := make([]schema.Request, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListAccountRequests returns every post owned by an account, newest first
func (m *mongoDB) ListAccountRequests(accountID string) ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := c.Find(ctx, bson.M{"user_id": accountID}, opts)
	if err != nil {
		return nil, err
	}

	requests := make([]schema.Request, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateRequest replaces a post. The query pins the owner and the post type,
// so a post can neither be hijacked nor switched between donor and receiver.
// A replacement without a geo point is geocoded again so an edited post stays
// visible to proximity queries.
func (m *mongoDB) UpdateRequest(accountID string, request schema.Request) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	m.geocodeRequest(&request)

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	query := bson.M{
		"_id":     request.ID,
		"user_id": accountID,
		"type":    request.Type,
	}
	result, err := c.ReplaceOne(ctx, query, request)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// DeleteRequest removes a post owned by an account
func (m *mongoDB) DeleteRequest(accountID string, requestID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": requestID, "user_id": accountID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// NearestDonors - find open donor posts with a compatible blood group within
// distance meters, nearest first
func (m *mongoDB) NearestDonors(distance int, cords schema.Location, bloodGroups []string) ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	query := bson.M{
		"geo": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{cords.Longitude, cords.Latitude},
				},
				"$maxDistance": distance,
			},
		},
		"type":                      schema.RequestTypeDonor,
		"status":                    schema.RequestStatusOpen,
		"donor.available_to_donate": true,
		"blood_group":               bson.M{"$in": bloodGroups},
	}

	cur, err := c.Find(ctx, query)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearest donors with error: %s", err)
		return nil, fmt.Errorf("nearest donors query with error: %s", err)
	}

	donors := make([]schema.Request, 0)
	if err := cur.All(ctx, &donors); err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearest donors query gets %d records near long:%v lat:%v",
		len(donors), cords.Longitude, cords.Latitude)

	return donors, nil
}

// ExpireRequests flips open posts older than maxAge to expired and returns
// the posts that were flipped, so their owners can be told
func (m *mongoDB) ExpireRequests(maxAge time.Duration) ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	now := time.Now().UTC()
	query := bson.M{
		"status":     schema.RequestStatusOpen,
		"created_at": bson.M{"$lte": now.Add(-maxAge)},
	}

	cur, err := c.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	expired := make([]schema.Request, 0)
	if err := cur.All(ctx, &expired); err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return expired, nil
	}

	ids := make([]primitive.ObjectID, 0, len(expired))
	for _, r := range expired {
		ids = append(ids, r.ID)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     schema.RequestStatusExpired,
			"updated_at": now,
		},
	}
	if _, err := c.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, update); err != nil {
		return nil, err
	}

	return expired, nil
}

type requestChange struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID primitive.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
	FullDocument *schema.Request `bson:"fullDocument"`
}

// WatchRequests opens a change stream over the requests collection and
// translates each change into a feed event. The channel is closed when the
// context is cancelled or the stream breaks.
func (m *mongoDB) WatchRequests(ctx context.Context) (<-chan feed.Event, error) {
	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := c.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return nil, err
	}

	events := make(chan feed.Event)

	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var change requestChange
			if err := stream.Decode(&change); err != nil {
				log.WithFields(log.Fields{
					"prefix": mongoLogPrefix,
					"error":  err,
				}).Error("decode request change")
				continue
			}

			ev := feed.Event{
				Op:   change.OperationType,
				ID:   change.DocumentKey.ID,
				Post: change.FullDocument,
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"error":  err,
			}).Error("request change stream closed")
		}
	}()

	return events, nil
}
