package kvstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const kvCollection = "kv"

type kvDocument struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// MongoStore is a MongoDB-backed Store: one document per key in a single
// collection, the value held as raw bytes.
type MongoStore struct {
	client *mongo.Client
	dbName string
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{client: client, dbName: dbName}, nil
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(kvCollection)
}

// Get implements Store.
func (s *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc kvDocument
	err := s.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("find key %s: %w", key, err)
	}
	return doc.Value, true, nil
}

// Set implements Store.
func (s *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.collection().ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert key %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}

// Close disconnects the underlying MongoDB client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
