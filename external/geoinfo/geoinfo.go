package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	Get(address string) ([]maps.GeocodingResult, error)
}

type geoInfo struct {
	client *maps.Client
}

// Get forward-geocodes a free-text address, e.g. "KIMS, Begumpet, Hyderabad"
func (g geoInfo) Get(address string) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
}

// FirstLocation picks the coordinates of the first geocoding result, or nil
// when the address did not resolve.
func FirstLocation(results []maps.GeocodingResult) *schema.Location {
	if len(results) == 0 {
		return nil
	}
	return &schema.Location{
		Latitude:  results[0].Geometry.Location.Lat,
		Longitude: results[0].Geometry.Location.Lng,
	}
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("create geo client")
		return nil, err
	}

	return &geoInfo{client: client}, nil
}
