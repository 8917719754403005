package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/framegrid/framegrid/pkg/assembly"
)

// MongoConfig configures a MongoDB-backed assembly store.
type MongoConfig struct {
	URI        string // Connection URI (mongodb://...)
	Database   string // Database name (default "framegrid")
	Collection string // Collection name (default "assemblies")
}

// Mongo is a MongoDB-backed assembly store for durable server deployments.
// Each assembly is one document keyed by name, holding the canonical JSON
// document bytes rather than a field-by-field mapping. This keeps the
// stored form identical across backends and avoids a parallel BSON schema.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoDoc is the stored document shape.
type mongoDoc struct {
	Name      string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongo creates a MongoDB-backed assembly store and verifies connectivity.
func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	if cfg.Database == "" {
		cfg.Database = "framegrid"
	}
	if cfg.Collection == "" {
		cfg.Collection = "assemblies"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Mongo{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Save stores an assembly file, keyed by its name.
func (s *Mongo) Save(ctx context.Context, f *assembly.File) error {
	data, err := encode(f)
	if err != nil {
		return err
	}

	doc := mongoDoc{Name: f.Name, Data: data, UpdatedAt: time.Now().UTC()}
	_, err = s.coll.ReplaceOne(ctx,
		bson.M{"_id": f.Name},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save assembly: %w", err)
	}
	return nil
}

// Load retrieves an assembly file by name.
func (s *Mongo) Load(ctx context.Context, name string) (*assembly.File, error) {
	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load assembly: %w", err)
	}
	return decode(doc.Data)
}

// Delete removes an assembly by name.
func (s *Mongo) Delete(ctx context.Context, name string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("delete assembly: %w", err)
	}
	return nil
}

// List returns the names of all stored assemblies in sorted order.
func (s *Mongo) List(ctx context.Context) ([]string, error) {
	values, err := s.coll.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list assemblies: %w", err)
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Close disconnects the underlying MongoDB client.
func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
