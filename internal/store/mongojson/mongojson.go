// Package mongojson rewrites fetched Mongo documents for the HTTP boundary:
// ObjectIDs and Decimal128 values become strings, BSON datetimes become
// RFC3339 UTC, and the internal _id key is exposed as id. Unrecognized types
// pass through to encoding/json's default behavior.
package mongojson

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func Normalize(doc bson.M) map[string]any {
	if doc == nil {
		return nil
	}
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	if id, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = id
	}
	return out
}

func NormalizeAll(docs []bson.M) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Normalize(doc))
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.Decimal128:
		return val.String()
	case primitive.DateTime:
		return val.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case bson.M:
		return Normalize(val)
	case map[string]any:
		return Normalize(bson.M(val))
	case bson.D:
		return Normalize(val.Map())
	case bson.A:
		return normalizeSlice(val)
	case []any:
		return normalizeSlice(val)
	case []bson.M:
		items := make([]any, 0, len(val))
		for _, item := range val {
			items = append(items, Normalize(item))
		}
		return items
	default:
		return v
	}
}

func normalizeSlice(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, normalizeValue(item))
	}
	return out
}
