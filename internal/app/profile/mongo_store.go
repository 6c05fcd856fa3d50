package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// profileDoc is the document shape kept in the profile collection.
type profileDoc struct {
	UserID         int64     `bson:"user_id"`
	ProfilePicture string    `bson:"profile_picture"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per user in a MongoDB collection.
// The user_id field is not a foreign key; nothing checks that the user exists.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a store backed by coll.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// EnsureIndexes creates the unique user_id index. It is a no-op when the index exists.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_id_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create profile index: %w", err)
	}
	return nil
}

// PutProfileAttribute upserts the document of userID.
func (s *MongoStore) PutProfileAttribute(ctx context.Context, userID int64, value string) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "user_id", Value: userID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "profile_picture", Value: value},
			{Key: "updated_at", Value: time.Now().UTC()},
		}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return unavailable("put profile attribute", userID, err)
	}
	return nil
}

// GetProfileAttribute reads the document of userID.
func (s *MongoStore) GetProfileAttribute(ctx context.Context, userID int64) (string, bool, error) {
	var doc profileDoc

	err := s.coll.FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("get profile attribute", userID, err)
	}
	return doc.ProfilePicture, true, nil
}

// Ping checks that the primary of the deployment is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, readpref.Primary())
}
