package domain

import "time"

// Service is a top-level offering (e.g. "Tax Filing"). Deleting a service is
// a hard delete that removes its sub-services with it; nothing downstream
// references a service directly.
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// SubService is a named child of exactly one Service. Sub-services are only
// ever soft-deleted (active=false) because Documents reference them; listing
// endpoints filter on active.
type SubService struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ServiceID string    `json:"service_id" bson:"service_id"`
	Name      string    `json:"name" bson:"name"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ClientService is the assignment edge between a Client and a Service,
// optionally narrowed to one SubService. An empty SubServiceID means the
// client is subscribed to the service as a whole. The triple
// (ClientID, ServiceID, SubServiceID) is unique.
type ClientService struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ClientID     string    `json:"client_id" bson:"client_id"`
	ServiceID    string    `json:"service_id" bson:"service_id"`
	SubServiceID string    `json:"sub_service_id,omitempty" bson:"sub_service_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
