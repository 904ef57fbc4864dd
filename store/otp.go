package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

var (
	ErrOTPInvalid = fmt.Errorf("the passcode is invalid or has expired")
)

// OneTimeCode - phone verification passcode operations
type OneTimeCode interface {
	SaveOTP(phone, code string, expiresAt time.Time) error
	VerifyOTP(phone, code string) error
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// SaveOTP stores the digest of a freshly issued passcode, replacing any
// earlier code for the same phone
func (m *mongoDB) SaveOTP(phone, code string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.OTPCollection)

	otp := schema.OTP{
		Phone:     phone,
		CodeHash:  hashCode(code),
		ExpiresAt: expiresAt,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := c.ReplaceOne(ctx, bson.M{"phone": phone}, otp, opts); err != nil {
		return err
	}

	return nil
}

// VerifyOTP checks a submitted passcode and consumes it on success. A code
// verifies at most once.
func (m *mongoDB) VerifyOTP(phone, code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.OTPCollection)

	query := bson.M{
		"phone":      phone,
		"code_hash":  hashCode(code),
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}

	var otp schema.OTP
	if err := c.FindOneAndDelete(ctx, query).Decode(&otp); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrOTPInvalid
		}
		return err
	}

	return nil
}
