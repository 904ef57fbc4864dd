package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

type ProfileTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewProfileTestSuite(connURI, dbName string) *ProfileTestSuite {
	return &ProfileTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ProfileTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *ProfileTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	if _, err := s.testDatabase.Collection(schema.ProfileCollection).InsertOne(ctx, schema.Profile{
		ID:         "account-test-profile",
		Name:       "Lakshmi Prasad",
		Phone:      "+919876522222",
		BloodGroup: "B+",
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *ProfileTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ProfileTestSuite) TestCreateDuplicatedProfile() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	err := store.CreateProfile(schema.Profile{
		ID:    "account-test-profile",
		Phone: "+919876522222",
	})
	s.EqualError(err, ErrProfileExisted.Error())
}

func (s *ProfileTestSuite) TestGetProfileByPhone() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	profile, err := store.GetProfileByPhone("+919876522222")
	s.NoError(err)
	s.Equal("account-test-profile", profile.ID)

	profile, err = store.GetProfileByPhone("+919800000000")
	s.EqualError(err, ErrProfileNotFound.Error())
	s.Nil(profile)
}

func (s *ProfileTestSuite) TestUpdateProfile() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	err := store.UpdateProfile("account-test-profile", map[string]interface{}{
		"is_available_to_donate": true,
	})
	s.NoError(err)

	profile, err := store.GetProfile("account-test-profile")
	s.NoError(err)
	s.True(profile.IsAvailableToDonate)

	err = store.UpdateProfile("account-not-found", map[string]interface{}{
		"is_available_to_donate": true,
	})
	s.EqualError(err, ErrProfileNotFound.Error())
}

// TestVerifyOTPConsumesCode tests that a passcode verifies exactly once
func (s *ProfileTestSuite) TestVerifyOTPConsumesCode() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	err := store.SaveOTP("+919876533333", "482915", time.Now().UTC().Add(5*time.Minute))
	s.NoError(err)

	s.NoError(store.VerifyOTP("+919876533333", "482915"))
	s.EqualError(store.VerifyOTP("+919876533333", "482915"), ErrOTPInvalid.Error())
}

func (s *ProfileTestSuite) TestVerifyOTPWrongCode() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	err := store.SaveOTP("+919876544444", "109283", time.Now().UTC().Add(5*time.Minute))
	s.NoError(err)

	s.EqualError(store.VerifyOTP("+919876544444", "000000"), ErrOTPInvalid.Error())
}

func (s *ProfileTestSuite) TestVerifyOTPExpired() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	err := store.SaveOTP("+919876555555", "678204", time.Now().UTC().Add(-time.Minute))
	s.NoError(err)

	s.EqualError(store.VerifyOTP("+919876555555", "678204"), ErrOTPInvalid.Error())
}

// TestSaveOTPReplacesEarlierCode tests that issuing a new passcode
// invalidates the previous one
func (s *ProfileTestSuite) TestSaveOTPReplacesEarlierCode() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	s.NoError(store.SaveOTP("+919876566666", "111111", time.Now().UTC().Add(5*time.Minute)))
	s.NoError(store.SaveOTP("+919876566666", "222222", time.Now().UTC().Add(5*time.Minute)))

	s.EqualError(store.VerifyOTP("+919876566666", "111111"), ErrOTPInvalid.Error())
	s.NoError(store.VerifyOTP("+919876566666", "222222"))
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, NewProfileTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-profile"))
}
