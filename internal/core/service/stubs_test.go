package service

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/firmdesk/client-portal/internal/core/domain"
)

// In-memory stand-ins for the persistence and storage ports. Each keeps the
// same not-found and duplicate semantics the Mongo repositories implement.

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := *user
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type stubClientRepo struct {
	clients    map[string]*domain.Client
	createErr  error
	createdIDs []string
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *client
	r.clients[clone.ID] = &clone
	r.createdIDs = append(r.createdIDs, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) FindByUserID(_ context.Context, userID string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.UserID == userID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	delete(r.clients, id)
	return nil
}

type stubServiceRepo struct {
	services map[string]*domain.Service
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[string]*domain.Service)}
}

func (r *stubServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	clone := *svc
	r.services[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := r.services[svc.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *svc
	r.services[clone.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *svc
	return &clone, nil
}

func (r *stubServiceRepo) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(r.services))
	for _, svc := range r.services {
		if activeOnly && !svc.Active {
			continue
		}
		clone := *svc
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	delete(r.services, id)
	return nil
}

type stubSubServiceRepo struct {
	subs map[string]*domain.SubService
}

func newStubSubServiceRepo() *stubSubServiceRepo {
	return &stubSubServiceRepo{subs: make(map[string]*domain.SubService)}
}

func (r *stubSubServiceRepo) Create(_ context.Context, sub *domain.SubService) (*domain.SubService, error) {
	clone := *sub
	r.subs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSubServiceRepo) Update(_ context.Context, sub *domain.SubService) error {
	if _, ok := r.subs[sub.ID]; !ok {
		return domain.ErrSubServiceNotFound
	}
	clone := *sub
	r.subs[clone.ID] = &clone
	return nil
}

func (r *stubSubServiceRepo) FindByID(_ context.Context, id string) (*domain.SubService, error) {
	sub, ok := r.subs[id]
	if !ok {
		return nil, domain.ErrSubServiceNotFound
	}
	clone := *sub
	return &clone, nil
}

func (r *stubSubServiceRepo) ListByService(_ context.Context, serviceID string, activeOnly bool) ([]*domain.SubService, error) {
	out := make([]*domain.SubService, 0)
	for _, sub := range r.subs {
		if sub.ServiceID != serviceID {
			continue
		}
		if activeOnly && !sub.Active {
			continue
		}
		clone := *sub
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSubServiceRepo) ListActive(_ context.Context) ([]*domain.SubService, error) {
	out := make([]*domain.SubService, 0)
	for _, sub := range r.subs {
		if !sub.Active {
			continue
		}
		clone := *sub
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSubServiceRepo) DeleteByService(_ context.Context, serviceID string) error {
	for id, sub := range r.subs {
		if sub.ServiceID == serviceID {
			delete(r.subs, id)
		}
	}
	return nil
}

type stubAssignmentRepo struct {
	rows          map[string]*domain.ClientService
	createManyErr error
}

func newStubAssignmentRepo() *stubAssignmentRepo {
	return &stubAssignmentRepo{rows: make(map[string]*domain.ClientService)}
}

func (r *stubAssignmentRepo) Create(_ context.Context, cs *domain.ClientService) (*domain.ClientService, error) {
	for _, row := range r.rows {
		if row.ClientID == cs.ClientID && row.ServiceID == cs.ServiceID && row.SubServiceID == cs.SubServiceID {
			return nil, domain.ErrAssignmentExists
		}
	}
	clone := *cs
	r.rows[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAssignmentRepo) CreateMany(ctx context.Context, rows []*domain.ClientService) error {
	if r.createManyErr != nil {
		return r.createManyErr
	}
	for _, row := range rows {
		if _, err := r.Create(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubAssignmentRepo) ListByClient(_ context.Context, clientID string) ([]*domain.ClientService, error) {
	out := make([]*domain.ClientService, 0)
	for _, row := range r.rows {
		if row.ClientID == clientID {
			clone := *row
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAssignmentRepo) DistinctClientIDs(_ context.Context, serviceID string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, row := range r.rows {
		if row.ServiceID == serviceID {
			seen[row.ClientID] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (r *stubAssignmentRepo) DeleteByService(_ context.Context, serviceID string) error {
	for id, row := range r.rows {
		if row.ServiceID == serviceID {
			delete(r.rows, id)
		}
	}
	return nil
}

func (r *stubAssignmentRepo) DeleteByClient(_ context.Context, clientID string) error {
	for id, row := range r.rows {
		if row.ClientID == clientID {
			delete(r.rows, id)
		}
	}
	return nil
}

func (r *stubAssignmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrAssignmentNotFound
	}
	delete(r.rows, id)
	return nil
}

// byService returns the service's rows sorted by (client, sub-service) for
// assertions.
func (r *stubAssignmentRepo) byService(serviceID string) []*domain.ClientService {
	out := make([]*domain.ClientService, 0)
	for _, row := range r.rows {
		if row.ServiceID == serviceID {
			clone := *row
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClientID != out[j].ClientID {
			return out[i].ClientID < out[j].ClientID
		}
		return out[i].SubServiceID < out[j].SubServiceID
	})
	return out
}

type stubDocumentRepo struct {
	docs map[string]*domain.Document
}

func newStubDocumentRepo() *stubDocumentRepo {
	return &stubDocumentRepo{docs: make(map[string]*domain.Document)}
}

func (r *stubDocumentRepo) Create(_ context.Context, doc *domain.Document) (*domain.Document, error) {
	clone := *doc
	r.docs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDocumentRepo) FindByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	clone := *doc
	return &clone, nil
}

func (r *stubDocumentRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Document, error) {
	out := make([]*domain.Document, 0)
	for _, doc := range r.docs {
		if doc.ClientID == clientID {
			clone := *doc
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubDocumentRepo) Delete(_ context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

type stubBlobStore struct {
	objects     map[string][]byte
	deleteErr   error
	presigned   []string
	deletedKeys []string
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{objects: make(map[string][]byte)}
}

func (s *stubBlobStore) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *stubBlobStore) Delete(_ context.Context, key string) error {
	s.deletedKeys = append(s.deletedKeys, key)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, key)
	return nil
}

func (s *stubBlobStore) PresignGet(_ context.Context, key, _ string) (string, error) {
	s.presigned = append(s.presigned, key)
	return "https://blobs.test/" + key, nil
}

type stubSyncLocker struct {
	held     bool
	acquires int
	releases int
}

func (l *stubSyncLocker) Acquire(_ context.Context, _ string) (func(), error) {
	if l.held {
		return nil, domain.ErrSyncInProgress
	}
	l.held = true
	l.acquires++
	return func() {
		l.held = false
		l.releases++
	}, nil
}

var errBoom = errors.New("boom")
