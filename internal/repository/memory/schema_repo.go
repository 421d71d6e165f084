package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"skema/internal/domain"
	"skema/internal/port"
)

type schemaRepo struct {
	mu      sync.RWMutex
	records map[string]domain.SchemaRecord
}

// NewSchemaRepo creates an in-process SchemaRepository. Definitions live for
// the lifetime of the process; use the postgres repository to keep them.
func NewSchemaRepo() port.SchemaRepository {
	return &schemaRepo{records: make(map[string]domain.SchemaRecord)}
}

func (r *schemaRepo) Create(_ context.Context, record *domain.SchemaRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.Name]; exists {
		return domain.ErrDuplicateSchemaName
	}

	record.ID = uuid.New()
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	r.records[record.Name] = *record
	return nil
}

func (r *schemaRepo) GetByName(_ context.Context, name string) (*domain.SchemaRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

func (r *schemaRepo) List(_ context.Context, offset, limit int) ([]domain.SchemaRecord, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.SchemaRecord, 0, len(r.records))
	for _, record := range r.records {
		all = append(all, record)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].Name < all[j].Name
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []domain.SchemaRecord{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *schemaRepo) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[name]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, name)
	return nil
}
