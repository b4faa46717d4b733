package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MongoDB at the given URI and verifies the
// connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// MongoCollection wraps a MongoDB collection holding lead records.
type MongoCollection struct {
	Collection *mongo.Collection
}

// InsertLead inserts a lead record into the collection.
func (c *MongoCollection) InsertLead(ctx context.Context, rec LeadRecord) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.InsertOne(ctx, rec)
	return err
}

// FindLeads queries lead records from the collection.
func (c *MongoCollection) FindLeads(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (LeadCursor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoLeadCursor{cursor: cursor}, nil
}

// FindLeadByID finds a lead record by its lead id.
func (c *MongoCollection) FindLeadByID(ctx context.Context, leadID string) (*LeadRecord, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var rec LeadRecord
	err := c.Collection.FindOne(ctx, bson.M{"lead_id": leadID}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, err
	}
	return &rec, nil
}

// DeleteLead deletes a lead record by its lead id.
func (c *MongoCollection) DeleteLead(ctx context.Context, leadID string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	result, err := c.Collection.DeleteOne(ctx, bson.M{"lead_id": leadID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("lead not found")
	}
	return nil
}

type mongoLeadCursor struct {
	cursor *mongo.Cursor
}

func (m *mongoLeadCursor) All(ctx context.Context, out interface{}) error {
	return m.cursor.All(ctx, out)
}

func (m *mongoLeadCursor) Close(ctx context.Context) error {
	return m.cursor.Close(ctx)
}
