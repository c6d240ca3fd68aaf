package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// stampModified merges a fresh modified timestamp into a mapping-shaped
// update payload. Sequence payloads (aggregation pipelines) are returned
// untouched; timestamp handling inside pipeline stages belongs to the caller.
func stampModified(update any) any {
	now := time.Now().UTC()
	switch u := update.(type) {
	case bson.M:
		merged := make(bson.M, len(u)+1)
		for k, v := range u {
			merged[k] = v
		}
		merged["modified"] = now
		return merged
	case map[string]any:
		merged := make(bson.M, len(u)+1)
		for k, v := range u {
			merged[k] = v
		}
		merged["modified"] = now
		return merged
	case bson.D:
		merged := make(bson.D, 0, len(u)+1)
		for _, e := range u {
			if e.Key == "modified" {
				continue
			}
			merged = append(merged, e)
		}
		return append(merged, bson.E{Key: "modified", Value: now})
	default:
		return update
	}
}

// applyStampedUpdate issues a single UpdateOne: mapping payloads are stamped
// and wrapped in $set, pipelines pass through as-is. Success means the store
// accepted the command; a matched count of zero is NOT distinguished from an
// applied update, which the collection-config callers rely on.
func applyStampedUpdate(ctx context.Context, coll *mongo.Collection, filter bson.M, update any) (bool, error) {
	var cmd any
	switch update.(type) {
	case bson.A, []any, []bson.M, []bson.D, mongo.Pipeline:
		cmd = update
	default:
		cmd = bson.M{"$set": stampModified(update)}
	}

	if _, err := coll.UpdateOne(ctx, filter, cmd); err != nil {
		return false, err
	}
	return true, nil
}
