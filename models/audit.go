package models

import "time"

// AuditEntry records one desk action (schedule save, treatment update) for
// the admin activity feed.
type AuditEntry struct {
	ID        string    `bson:"id" json:"id"`
	Actor     string    `bson:"actor" json:"actor"`
	Action    string    `bson:"action" json:"action"`
	Subject   string    `bson:"subject" json:"subject"`
	Details   []string  `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
