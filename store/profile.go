package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

var (
	ErrProfileExisted  = fmt.Errorf("the profile has existed")
	ErrProfileNotFound = fmt.Errorf("profile not found")
)

// MongoAccount - user profile operations
type MongoAccount interface {
	CreateProfile(profile schema.Profile) error
	GetProfile(accountID string) (*schema.Profile, error)
	GetProfileByPhone(phone string) (*schema.Profile, error)
	UpdateProfile(accountID string, fields map[string]interface{}) error
	DeleteProfile(accountID string) error
}

// CreateProfile registers an account into the system
func (m *mongoDB) CreateProfile(profile schema.Profile) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	if _, err := c.InsertOne(ctx, profile); err != nil {
		if we, ok := err.(mongo.WriteException); ok {
			for _, e := range we.WriteErrors {
				if e.Code == 11000 {
					return ErrProfileExisted
				}
			}
		}
		return err
	}

	return nil
}

// GetProfile returns the profile of a given account id
func (m *mongoDB) GetProfile(accountID string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"id": accountID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// GetProfileByPhone returns the profile registered with a phone number
func (m *mongoDB) GetProfileByPhone(phone string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"phone": phone}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile applies a partial update to a profile
func (m *mongoDB) UpdateProfile(accountID string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	fields["updated_at"] = time.Now().UTC()
	result, err := c.UpdateOne(ctx, bson.M{"id": accountID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// DeleteProfile removes an account from our system permanently
func (m *mongoDB) DeleteProfile(accountID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	if _, err := c.DeleteOne(ctx, bson.M{"id": accountID}); err != nil {
		return err
	}

	return nil
}
