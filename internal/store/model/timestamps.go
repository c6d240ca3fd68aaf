package model

import "time"

// Timestamps is the create/modify audit pair carried by every persisted
// record. Both values are timezone-aware UTC and Modified never precedes
// Created.
type Timestamps struct {
	Created  time.Time `bson:"created" json:"created"`
	Modified time.Time `bson:"modified" json:"modified"`
}

// NewTimestamps stamps both fields with the same now-UTC instant. Allocated
// per record; never share a Timestamps value between records.
func NewTimestamps() Timestamps {
	now := time.Now().UTC()
	return Timestamps{Created: now, Modified: now}
}

// Touch refreshes Modified. Created is written once at first persistence and
// is never rewritten here.
func (t *Timestamps) Touch() {
	t.Modified = time.Now().UTC()
}
