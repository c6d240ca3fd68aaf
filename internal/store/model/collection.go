package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldSpec describes one declared field of a tabular collection.
type FieldSpec struct {
	Title       string `bson:"title" json:"title"`
	Type        string `bson:"type" json:"type"`
	Description string `bson:"description" json:"description"`
	Required    bool   `bson:"required" json:"required"`
	Default     any    `bson:"default,omitempty" json:"default,omitempty"`
	Index       bool   `bson:"index" json:"index"`
	Primary     bool   `bson:"primary" json:"primary"`
}

// CollectionConfig is the registry entry for a document collection. The token
// is the external identifier callers use on every request.
type CollectionConfig struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Desc           string             `bson:"desc" json:"desc"`
	CollectionType string             `bson:"collection_type" json:"collection_type"`
	OrgID          string             `bson:"org_id" json:"org_id"`
	Token          string             `bson:"token" json:"token"`
	Timestamps     `bson:",inline"`
}

// CollectionSchema holds the declared fields, keywords and JSON schema for a
// collection, keyed by the config document's id.
type CollectionSchema struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CollectionID string               `bson:"collection_id" json:"collection_id"`
	OrgID        string               `bson:"org_id" json:"org_id"`
	Token        string               `bson:"token" json:"token"`
	Fields       map[string]FieldSpec `bson:"fields" json:"fields"`
	Keywords     []string             `bson:"keywords" json:"keywords"`
	Schemas      map[string]any       `bson:"schemas" json:"schemas"`
	Timestamps   `bson:",inline"`
}

// CollectionView is the payload returned for collection reads and writes.
type CollectionView struct {
	CollectionID string            `json:"collection_id"`
	Collection   *CollectionConfig `json:"collection"`
	Schema       *CollectionSchema `json:"schema"`
}
