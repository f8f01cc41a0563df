package repository

import (
	"context"
	"time"

	"github.com/example/storefront/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditTrail records administrative and checkout actions in MongoDB.
// Optional collaborator; handlers write to it asynchronously and keep
// going when it is nil or unreachable.
type AuditTrail struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewAuditTrail(cfg *config.MongoDBConfig) (*AuditTrail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &AuditTrail{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (a *AuditTrail) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

func (a *AuditTrail) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}

// AuditEntry is one recorded action.
type AuditEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Actor     string             `bson:"actor"`
	Action    string             `bson:"action"`
	EntityID  string             `bson:"entity_id"`
	Data      bson.M             `bson:"data"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Record inserts an audit entry, stamping CreatedAt.
func (a *AuditTrail) Record(ctx context.Context, entry *AuditEntry) error {
	entry.CreatedAt = time.Now()
	_, err := a.collection.InsertOne(ctx, entry)
	return err
}

// Entries returns the newest entries for an entity, newest first.
func (a *AuditTrail) Entries(ctx context.Context, entityID string, limit int64) ([]*AuditEntry, error) {
	filter := bson.M{"entity_id": entityID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)

	cursor, err := a.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*AuditEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
