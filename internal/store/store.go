// Package store archives produced lead documents so a vendor system can
// look back at what it sent. Mongo-backed; the collection sits behind an
// interface so callers and tests are not tied to a live database.
package store

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/adf"
)

// LeadRecord is one archived lead document.
type LeadRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LeadID     string             `bson:"lead_id" json:"lead_id"`
	Source     string             `bson:"source" json:"source"`
	ReceivedAt time.Time          `bson:"received_at" json:"received_at"`
	XML        string             `bson:"xml" json:"xml"`
}

// LeadCollection defines the operations the archive needs from its
// backing collection.
type LeadCollection interface {
	InsertLead(ctx context.Context, rec LeadRecord) error
	FindLeads(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (LeadCursor, error)
	FindLeadByID(ctx context.Context, leadID string) (*LeadRecord, error)
	DeleteLead(ctx context.Context, leadID string) error
}

// LeadCursor defines cursor operations for lead queries.
type LeadCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

// Archive renders the document and inserts it as a new record. The
// returned record carries the generated lead id.
func Archive(ctx context.Context, col LeadCollection, source string, doc *adf.Document) (LeadRecord, error) {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return LeadRecord{}, err
	}

	rec := LeadRecord{
		LeadID:     uuid.NewString(),
		Source:     source,
		ReceivedAt: time.Now().UTC(),
		XML:        buf.String(),
	}
	if err := col.InsertLead(ctx, rec); err != nil {
		return LeadRecord{}, err
	}
	return rec, nil
}
