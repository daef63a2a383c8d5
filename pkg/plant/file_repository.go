package plant

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"Planta-Backend/internal/localstore"
	"context"
	"sort"
	"strings"
	"sync"
)

// plantsKey names the plant collection in the local store. The collection is
// persisted as one JSON array, most-recent-first, care logs inline.
const plantsKey = "myPlants"

// fileRepository keeps the whole plant collection in memory and writes it
// back to the local store on every mutation. Used when no database is
// configured.
type fileRepository struct {
	store  *localstore.Store
	mu     sync.RWMutex
	plants []*entities.Plant
}

func NewFileRepository(store *localstore.Store) PlantRepository {
	r := &fileRepository{store: store}
	r.plants = make([]*entities.Plant, 0)
	store.Load(plantsKey, &r.plants)
	return r
}

func (r *fileRepository) persistLocked() {
	r.store.Save(plantsKey, r.plants)
}

func (r *fileRepository) AddPlant(_ context.Context, plant *entities.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if plant.CareLog == nil {
		plant.CareLog = make([]entities.CareLogEntry, 0)
	}
	r.plants = append([]*entities.Plant{plant}, r.plants...)
	r.persistLocked()
	return nil
}

func (r *fileRepository) GetPlantByID(_ context.Context, id string) (*entities.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plants {
		if p.ID.String() == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPlantNotFound
}

func (r *fileRepository) UpdatePlant(_ context.Context, plant *entities.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.plants {
		if p.ID == plant.ID {
			r.plants[i] = plant
			r.persistLocked()
			return nil
		}
	}
	return domain.ErrPlantNotFound
}

func (r *fileRepository) DeletePlant(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.plants {
		if p.ID.String() == id {
			r.plants = append(r.plants[:i], r.plants[i+1:]...)
			r.persistLocked()
			return nil
		}
	}
	return domain.ErrPlantNotFound
}

func (r *fileRepository) GetPlants(_ context.Context, userID string, category string, search string) ([]*entities.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search = strings.ToLower(search)
	out := make([]*entities.Plant, 0, len(r.plants))
	for _, p := range r.plants {
		if p.UserID.String() != userID {
			continue
		}
		if category != "all" && category != "" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fileRepository) AddCareLog(_ context.Context, entry *entities.CareLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plants {
		if p.ID == entry.PlantID {
			p.CareLog = append([]entities.CareLogEntry{*entry}, p.CareLog...)
			r.persistLocked()
			return nil
		}
	}
	return domain.ErrPlantNotFound
}

func (r *fileRepository) GetCareLogByID(_ context.Context, id string) (*entities.CareLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plants {
		for _, e := range p.CareLog {
			if e.ID.String() == id {
				clone := e
				return &clone, nil
			}
		}
	}
	return nil, domain.ErrCareLogNotFound
}

func (r *fileRepository) UpdateCareLog(_ context.Context, entry *entities.CareLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plants {
		for i, e := range p.CareLog {
			if e.ID == entry.ID {
				p.CareLog[i] = *entry
				r.persistLocked()
				return nil
			}
		}
	}
	return domain.ErrCareLogNotFound
}

func (r *fileRepository) DeleteCareLog(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plants {
		for i, e := range p.CareLog {
			if e.ID.String() == id {
				p.CareLog = append(p.CareLog[:i], p.CareLog[i+1:]...)
				r.persistLocked()
				return nil
			}
		}
	}
	return domain.ErrCareLogNotFound
}

func (r *fileRepository) GetCareLogs(_ context.Context, plantID string, filter domain.CareLogFilter) ([]*entities.CareLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plants {
		if p.ID.String() != plantID {
			continue
		}
		out := make([]*entities.CareLogEntry, 0, len(p.CareLog))
		for i := range p.CareLog {
			e := p.CareLog[i]
			if filter.Activity != "all" && filter.Activity != "" && e.Activity != filter.Activity {
				continue
			}
			if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
				continue
			}
			if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
				continue
			}
			clone := e
			out = append(out, &clone)
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
		return out, nil
	}
	return nil, domain.ErrPlantNotFound
}
