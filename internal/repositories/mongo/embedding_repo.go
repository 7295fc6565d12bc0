package mongo

import (
	"context"
	"time"

	"github.com/yoockh/workmatch/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const EmbeddingsCollection = "embeddings"

type EmbeddingRepository interface {
	Upsert(ctx context.Context, e *models.Embedding) error
}

type embeddingRepo struct {
	col *mongo.Collection
}

func NewEmbeddingRepo(db *mongo.Database) EmbeddingRepository {
	return &embeddingRepo{col: db.Collection(EmbeddingsCollection)}
}

func (r *embeddingRepo) Upsert(ctx context.Context, e *models.Embedding) error {
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now().UTC()
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"entity_type": e.EntityType, "entity_id": e.EntityID},
		bson.M{"$set": bson.M{
			"raw_text":   e.RawText,
			"keywords":   e.Keywords,
			"updated_at": e.UpdatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

