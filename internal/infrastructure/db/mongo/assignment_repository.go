package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firmdesk/client-portal/internal/core/domain"
)

const collectionAssignments = "client_services"

// AssignmentRepository implements ports.AssignmentRepository on MongoDB. The
// unique compound index on (client_id, service_id, sub_service_id) makes the
// assignment triple a true set: duplicate inserts fail at the store rather
// than relying on application code to avoid them.
type AssignmentRepository struct {
	col *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{col: db.Collection(collectionAssignments)}
}

func (r *AssignmentRepository) Create(ctx context.Context, cs *domain.ClientService) (*domain.ClientService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, cs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAssignmentExists
		}
		return nil, fmt.Errorf("insert assignment: %w", err)
	}
	return cs, nil
}

func (r *AssignmentRepository) CreateMany(ctx context.Context, rows []*domain.ClientService) error {
	if len(rows) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAssignmentExists
		}
		return fmt.Errorf("insert assignments: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.ClientService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"client_id": clientID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	var rows []*domain.ClientService
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode assignments: %w", err)
	}
	return rows, nil
}

func (r *AssignmentRepository) DistinctClientIDs(ctx context.Context, serviceID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := r.col.Distinct(ctx, "client_id", bson.M{"service_id": serviceID})
	if err != nil {
		return nil, fmt.Errorf("distinct clients: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *AssignmentRepository) DeleteByService(ctx context.Context, serviceID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"service_id": serviceID})
	return err
}

func (r *AssignmentRepository) DeleteByClient(ctx context.Context, clientID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"client_id": clientID})
	return err
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}

func (r *AssignmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "client_id", Value: 1},
				{Key: "service_id", Value: 1},
				{Key: "sub_service_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "service_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
