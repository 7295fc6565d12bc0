package config

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBName reads MONGO_DB, defaulting to "workmatch".
func MongoDBName() string {
	if name := os.Getenv("MONGO_DB"); name != "" {
		return name
	}
	return "workmatch"
}

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoClient.Database(MongoDBName())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	embeddings := db.Collection("embeddings")
	_, err := embeddings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// one record per entity
		{
			Keys:    bson.D{{Key: "entity_type", Value: 1}, {Key: "entity_id", Value: 1}},
			Options: options.Index().SetName("uniq_entity").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "entity_type", Value: 1}, {Key: "keywords", Value: 1}},
			Options: options.Index().SetName("by_type_keyword"),
		},
	})
	return err
}
