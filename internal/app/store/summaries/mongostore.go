package summarystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/driverdash/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by MongoStore.
const (
	DriversCollection  = "driver_summaries"
	PartnersCollection = "partner_summaries"
	AlertsCollection   = "low_inventory_alerts"
	OverviewCollection = "delivery_overview"
)

// overviewID is the _id of the single overview document.
const overviewID = "current"

// positioned wraps a record with its list position. Lists are read back
// sorted by position, which is how insertion order survives the round trip.
type positioned[T any] struct {
	Position int `bson:"position"`
	Record   T   `bson:",inline"`
}

type overviewDoc struct {
	ID                      string `bson:"_id"`
	models.DeliveryOverview `bson:",inline"`
}

// MongoStore reads and writes summary records in MongoDB.
type MongoStore struct {
	db *mongo.Database
}

// NewMongo creates a MongoStore over db.
func NewMongo(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Drivers(ctx context.Context) ([]models.DriverSummary, error) {
	return findOrdered[models.DriverSummary](ctx, s.db.Collection(DriversCollection))
}

func (s *MongoStore) Partners(ctx context.Context) ([]models.PartnerSummary, error) {
	return findOrdered[models.PartnerSummary](ctx, s.db.Collection(PartnersCollection))
}

func (s *MongoStore) LowInventoryAlerts(ctx context.Context) ([]models.LowInventoryAlert, error) {
	return findOrdered[models.LowInventoryAlert](ctx, s.db.Collection(AlertsCollection))
}

// Overview returns the stored overview, or a zero overview when none has
// been written yet.
func (s *MongoStore) Overview(ctx context.Context) (models.DeliveryOverview, error) {
	var doc overviewDoc
	err := s.db.Collection(OverviewCollection).FindOne(ctx, bson.M{"_id": overviewID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DeliveryOverview{TopDrivers: []models.TopDriver{}}, nil
	}
	if err != nil {
		return models.DeliveryOverview{}, fmt.Errorf("find overview: %w", err)
	}
	if doc.TopDrivers == nil {
		doc.TopDrivers = []models.TopDriver{}
	}
	return doc.DeliveryOverview, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the position index on every list collection.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{DriversCollection, PartnersCollection, AlertsCollection} {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_position").SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("create position index on %s: %w", name, err)
		}
	}
	return nil
}

// IsEmpty reports whether none of the list collections hold documents.
func (s *MongoStore) IsEmpty(ctx context.Context) (bool, error) {
	for _, name := range []string{DriversCollection, PartnersCollection, AlertsCollection} {
		n, err := s.db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return false, fmt.Errorf("count %s: %w", name, err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

// Replace swaps every stored record for the contents of ds. The four
// collections are rewritten in one transaction, so a failure part way
// leaves the previous dataset in place. Deployments without transactions
// (a standalone mongod) are written collection by collection instead.
func (s *MongoStore) Replace(ctx context.Context, ds Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	err := s.replaceInTxn(ctx, ds)
	if IsNotSupported(err) {
		return s.writeAll(ctx, ds)
	}
	return err
}

func (s *MongoStore) replaceInTxn(ctx context.Context, ds Dataset) error {
	sess, err := s.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, s.writeAll(sc, ds)
	})
	return err
}

func (s *MongoStore) writeAll(ctx context.Context, ds Dataset) error {
	if err := replaceOrdered(ctx, s.db.Collection(DriversCollection), ds.Drivers); err != nil {
		return err
	}
	if err := replaceOrdered(ctx, s.db.Collection(PartnersCollection), ds.Partners); err != nil {
		return err
	}
	if err := replaceOrdered(ctx, s.db.Collection(AlertsCollection), ds.Alerts); err != nil {
		return err
	}

	doc := overviewDoc{ID: overviewID, DeliveryOverview: ds.Overview}
	if doc.TopDrivers == nil {
		doc.TopDrivers = []models.TopDriver{}
	}
	_, err := s.db.Collection(OverviewCollection).ReplaceOne(ctx,
		bson.M{"_id": overviewID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace overview: %w", err)
	}
	return nil
}

func findOrdered[T any](ctx context.Context, c *mongo.Collection) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	for cur.Next(ctx) {
		var doc positioned[T]
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.Name(), err)
		}
		out = append(out, doc.Record)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", c.Name(), err)
	}
	return out, nil
}

func replaceOrdered[T any](ctx context.Context, c *mongo.Collection, records []T) error {
	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", c.Name(), err)
	}
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = positioned[T]{Position: i, Record: rec}
	}
	if _, err := c.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %s: %w", c.Name(), err)
	}
	return nil
}
