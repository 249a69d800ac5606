package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firmdesk/client-portal/internal/core/domain"
)

const (
	collectionServices    = "services"
	collectionSubServices = "sub_services"
)

// ServiceRepository implements ports.ServiceRepository on MongoDB.
type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices)}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, svc); err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return svc, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": svc.ID}, svc)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Service
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	var services []*domain.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// SubServiceRepository implements ports.SubServiceRepository on MongoDB.
type SubServiceRepository struct {
	col *mongo.Collection
}

func NewSubServiceRepository(db *mongo.Database) *SubServiceRepository {
	return &SubServiceRepository{col: db.Collection(collectionSubServices)}
}

func (r *SubServiceRepository) Create(ctx context.Context, sub *domain.SubService) (*domain.SubService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, sub); err != nil {
		return nil, fmt.Errorf("insert sub-service: %w", err)
	}
	return sub, nil
}

func (r *SubServiceRepository) Update(ctx context.Context, sub *domain.SubService) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": sub.ID}, sub)
	if err != nil {
		return fmt.Errorf("update sub-service: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubServiceNotFound
	}
	return nil
}

func (r *SubServiceRepository) FindByID(ctx context.Context, id string) (*domain.SubService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.SubService
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubServiceNotFound
		}
		return nil, fmt.Errorf("find sub-service: %w", err)
	}
	return &s, nil
}

func (r *SubServiceRepository) ListByService(ctx context.Context, serviceID string, activeOnly bool) ([]*domain.SubService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"service_id": serviceID}
	if activeOnly {
		filter["active"] = true
	}
	return r.find(ctx, filter)
}

func (r *SubServiceRepository) ListActive(ctx context.Context) ([]*domain.SubService, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"active": true})
}

func (r *SubServiceRepository) find(ctx context.Context, filter bson.M) ([]*domain.SubService, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list sub-services: %w", err)
	}
	var subs []*domain.SubService
	if err := cur.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("decode sub-services: %w", err)
	}
	return subs, nil
}

func (r *SubServiceRepository) DeleteByService(ctx context.Context, serviceID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"service_id": serviceID})
	return err
}

func (r *SubServiceRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "service_id", Value: 1}, {Key: "active", Value: 1}},
	})
	return err
}
