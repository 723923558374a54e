package quotastore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fullplanes/internal/domain/quota"
	"fullplanes/internal/infra"
	"fullplanes/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	quotaDocumentID = "global"

	// compare-and-set rounds before a contended reservation gives up
	maxReserveAttempts = 16
)

type quotaDocument struct {
	ID        string    `bson:"_id"`
	Month     string    `bson:"month"`
	Used      int       `bson:"used"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps the counter as one document in the configured collection.
type MongoStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

func NewMongoStore(db *mongo.Database, collection string, logger *slog.Logger) *MongoStore {
	return &MongoStore{collection: db.Collection(collection), logger: logger}
}

func (s *MongoStore) Load(ctx context.Context) (*quota.State, error) {
	var doc quotaDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": quotaDocumentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.Wrap(s.logger, infra.KindStoreFailure, "load quota document", err)
	}
	return &quota.State{Month: doc.Month, Used: doc.Used}, nil
}

func (s *MongoStore) Save(ctx context.Context, state quota.State) error {
	update := bson.M{"$set": bson.M{
		"month":      state.Month,
		"used":       state.Used,
		"updated_at": time.Now().UTC(),
	}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": quotaDocumentID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return infra.Wrap(s.logger, infra.KindStoreFailure, "save quota document", err,
			slog.String("month", state.Month), slog.Int("used", state.Used))
	}
	return nil
}

// ReserveShared grants with a compare-and-set on the counter document and retries when another
// process changed it in between.
func (s *MongoStore) ReserveShared(ctx context.Context, month string, n, limit int) (quota.State, int, error) {
	for range maxReserveAttempts {
		var doc quotaDocument
		err := s.collection.FindOne(ctx, bson.M{"_id": quotaDocumentID}).Decode(&doc)
		found := true
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			found = false
		case err != nil:
			return quota.State{}, 0, infra.Wrap(s.logger, infra.KindStoreFailure, "load quota document", err)
		}

		current := quota.NewState(month, 0, limit)
		if found {
			current = quota.NewState(doc.Month, doc.Used, limit).ForMonth(month)
		}
		next, granted := current.Grant(n)
		if granted == 0 {
			return next, 0, nil
		}

		now := time.Now().UTC()
		if !found {
			_, err := s.collection.InsertOne(ctx, quotaDocument{
				ID:        quotaDocumentID,
				Month:     next.Month,
				Used:      next.Used,
				UpdatedAt: now,
			})
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			if err != nil {
				return quota.State{}, 0, infra.Wrap(s.logger, infra.KindStoreFailure, "insert quota document", err)
			}
			return next, granted, nil
		}

		res, err := s.collection.UpdateOne(ctx,
			bson.M{"_id": quotaDocumentID, "month": doc.Month, "used": doc.Used},
			bson.M{"$set": bson.M{"month": next.Month, "used": next.Used, "updated_at": now}},
		)
		if err != nil {
			return quota.State{}, 0, infra.Wrap(s.logger, infra.KindStoreFailure, "reserve quota document", err)
		}
		if res.MatchedCount == 1 {
			return next, granted, nil
		}
	}
	return quota.State{}, 0, infra.Wrap(s.logger, infra.KindStoreFailure, "reserve quota document",
		errs.Newf("counter still contended after %d attempts", maxReserveAttempts),
		slog.String("month", month), slog.Int("requested", n))
}
