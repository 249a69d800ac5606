package domain

import "time"

// Document is the metadata record for an uploaded file. The bytes live in the
// blob store under StorageKey; this record is the only authoritative pointer
// to them.
type Document struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ClientID     string    `json:"client_id" bson:"client_id"`
	SubServiceID string    `json:"sub_service_id" bson:"sub_service_id"`
	FileName     string    `json:"file_name" bson:"file_name"`
	StorageKey   string    `json:"-" bson:"storage_key"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
