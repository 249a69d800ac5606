package domain

import "time"

// Client is the business profile of a portal customer. Each client owns
// exactly one User record (its login), all of its ClientService assignments,
// and all of its Documents. Deleting a client cascades over those in strict
// order: documents, assignments, client, user.
type Client struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Organization string    `json:"organization,omitempty" bson:"organization,omitempty"`
	UserID       string    `json:"user_id" bson:"user_id"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
