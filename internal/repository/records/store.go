// Package records implements the record store: it owns the crop, livestock,
// sale, activity and user collections in memory and mirrors every mutation to
// a key-value backend before returning to the caller.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/repository/kvstore"
)

// Persisted state keys. Each value is the JSON-serialized full collection.
const (
	KeyCrops       = "crops"
	KeyLivestock   = "livestock"
	KeySales       = "sales"
	KeyActivities  = "activities"
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
)

// Store owns the farm collections. All reads return copies; all mutations
// synchronously persist the affected collection before returning.
type Store struct {
	mu      sync.Mutex
	backend kvstore.Store
	logger  *zap.Logger

	crops       []models.Crop
	livestock   []models.LivestockRecord
	sales       []models.Sale
	activities  []models.ActivityEntry
	users       []models.User
	currentUser *models.User

	lastID int64
	now    func() time.Time
}

// NewStore loads all collections from the backend and returns a ready store.
func NewStore(ctx context.Context, backend kvstore.Store, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		backend:    backend,
		logger:     logger,
		crops:      []models.Crop{},
		livestock:  []models.LivestockRecord{},
		sales:      []models.Sale{},
		activities: []models.ActivityEntry{},
		users:      []models.User{},
		now:        time.Now,
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	logger.Info("record store loaded",
		zap.Int("crops", len(s.crops)),
		zap.Int("livestock", len(s.livestock)),
		zap.Int("sales", len(s.sales)),
		zap.Int("activities", len(s.activities)),
		zap.Int("users", len(s.users)))

	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	if err := loadKey(ctx, s.backend, KeyCrops, &s.crops); err != nil {
		return err
	}
	if err := loadKey(ctx, s.backend, KeyLivestock, &s.livestock); err != nil {
		return err
	}
	if err := loadKey(ctx, s.backend, KeySales, &s.sales); err != nil {
		return err
	}
	if err := loadKey(ctx, s.backend, KeyActivities, &s.activities); err != nil {
		return err
	}
	if err := loadKey(ctx, s.backend, KeyUsers, &s.users); err != nil {
		return err
	}

	raw, ok, err := s.backend.Get(ctx, KeyCurrentUser)
	if err != nil {
		return fmt.Errorf("load %s: %w", KeyCurrentUser, err)
	}
	if ok {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return fmt.Errorf("decode %s: %w", KeyCurrentUser, err)
		}
		s.currentUser = &u
	}

	for _, c := range s.crops {
		s.observeID(c.ID)
	}
	for _, l := range s.livestock {
		s.observeID(l.ID)
	}
	for _, sale := range s.sales {
		s.observeID(sale.ID)
	}
	for _, u := range s.users {
		s.observeID(u.ID)
	}

	return nil
}

func loadKey[T any](ctx context.Context, backend kvstore.Store, key string, dst *[]T) error {
	raw, ok, err := backend.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) observeID(id int64) {
	if id > s.lastID {
		s.lastID = id
	}
}

// nextID generates a unique id that is monotonic by creation time. Ids are
// unix milliseconds, bumped by one when two records land on the same tick.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) persist(ctx context.Context, key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// --- Crops ---

// AddCrop appends a crop, assigning its id, and persists the collection.
func (s *Store) AddCrop(ctx context.Context, crop models.Crop) (models.Crop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	crop.ID = s.nextID()
	s.crops = append(s.crops, crop)
	if err := s.persist(ctx, KeyCrops, s.crops); err != nil {
		return models.Crop{}, err
	}
	return crop, nil
}

// UpdateCrop replaces the mutable fields of the crop with the given id. A
// missing id is a silent no-op reported through the boolean.
func (s *Store) UpdateCrop(ctx context.Context, id int64, patch models.Crop) (models.Crop, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.crops {
		if s.crops[i].ID != id {
			continue
		}
		patch.ID = id
		s.crops[i] = patch
		if err := s.persist(ctx, KeyCrops, s.crops); err != nil {
			return models.Crop{}, false, err
		}
		return patch, true, nil
	}
	return models.Crop{}, false, nil
}

// RemoveCrop deletes the crop with the given id and returns it. A missing id
// is a silent no-op reported through the boolean.
func (s *Store) RemoveCrop(ctx context.Context, id int64) (models.Crop, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.crops {
		if s.crops[i].ID != id {
			continue
		}
		removed := s.crops[i]
		s.crops = append(s.crops[:i], s.crops[i+1:]...)
		if err := s.persist(ctx, KeyCrops, s.crops); err != nil {
			return models.Crop{}, false, err
		}
		return removed, true, nil
	}
	return models.Crop{}, false, nil
}

// Crops returns the crop collection in insertion order.
func (s *Store) Crops() []models.Crop {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Crop, len(s.crops))
	copy(out, s.crops)
	return out
}

// FindCrop looks a crop up by id.
func (s *Store) FindCrop(id int64) (models.Crop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.crops {
		if c.ID == id {
			return c, true
		}
	}
	return models.Crop{}, false
}

// --- Livestock ---

// AddLivestock appends a livestock record, assigning its id, and persists.
func (s *Store) AddLivestock(ctx context.Context, record models.LivestockRecord) (models.LivestockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID()
	s.livestock = append(s.livestock, record)
	if err := s.persist(ctx, KeyLivestock, s.livestock); err != nil {
		return models.LivestockRecord{}, err
	}
	return record, nil
}

// UpdateLivestock replaces the mutable fields of the record with the given id.
func (s *Store) UpdateLivestock(ctx context.Context, id int64, patch models.LivestockRecord) (models.LivestockRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.livestock {
		if s.livestock[i].ID != id {
			continue
		}
		patch.ID = id
		s.livestock[i] = patch
		if err := s.persist(ctx, KeyLivestock, s.livestock); err != nil {
			return models.LivestockRecord{}, false, err
		}
		return patch, true, nil
	}
	return models.LivestockRecord{}, false, nil
}

// RemoveLivestock deletes the record with the given id and returns it.
func (s *Store) RemoveLivestock(ctx context.Context, id int64) (models.LivestockRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.livestock {
		if s.livestock[i].ID != id {
			continue
		}
		removed := s.livestock[i]
		s.livestock = append(s.livestock[:i], s.livestock[i+1:]...)
		if err := s.persist(ctx, KeyLivestock, s.livestock); err != nil {
			return models.LivestockRecord{}, false, err
		}
		return removed, true, nil
	}
	return models.LivestockRecord{}, false, nil
}

// Livestock returns the livestock collection in insertion order.
func (s *Store) Livestock() []models.LivestockRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LivestockRecord, len(s.livestock))
	copy(out, s.livestock)
	return out
}

// FindLivestock looks a livestock record up by id.
func (s *Store) FindLivestock(id int64) (models.LivestockRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.livestock {
		if l.ID == id {
			return l, true
		}
	}
	return models.LivestockRecord{}, false
}

// --- Sales ---

// AddSale appends a sale, assigning its id, and persists. Sales carry no
// update path; Amount is expected to be fixed by the caller at creation.
func (s *Store) AddSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = s.nextID()
	s.sales = append(s.sales, sale)
	if err := s.persist(ctx, KeySales, s.sales); err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

// RemoveSale deletes the sale with the given id and returns it.
func (s *Store) RemoveSale(ctx context.Context, id int64) (models.Sale, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].ID != id {
			continue
		}
		removed := s.sales[i]
		s.sales = append(s.sales[:i], s.sales[i+1:]...)
		if err := s.persist(ctx, KeySales, s.sales); err != nil {
			return models.Sale{}, false, err
		}
		return removed, true, nil
	}
	return models.Sale{}, false, nil
}

// Sales returns the sale collection in insertion order.
func (s *Store) Sales() []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// FindSale looks a sale up by id.
func (s *Store) FindSale(id int64) (models.Sale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sale := range s.sales {
		if sale.ID == id {
			return sale, true
		}
	}
	return models.Sale{}, false
}

// --- Activities ---

// AppendActivity adds an audit entry to the end of the log and persists it.
// The log is append-only and never trimmed.
func (s *Store) AppendActivity(ctx context.Context, entry models.ActivityEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append(s.activities, entry)
	return s.persist(ctx, KeyActivities, s.activities)
}

// Activities returns the full activity log in insertion order.
func (s *Store) Activities() []models.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ActivityEntry, len(s.activities))
	copy(out, s.activities)
	return out
}

// --- Users & session ---

// AddUser appends a user, assigning its id, and persists. Email uniqueness is
// the caller's concern.
func (s *Store) AddUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID()
	s.users = append(s.users, user)
	if err := s.persist(ctx, KeyUsers, s.users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FindUserByEmail looks a user up by their unique email.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// CurrentUser returns the active session user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

// SetCurrentUser stores the session pointer and persists it.
func (s *Store) SetCurrentUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyCurrentUser, err)
	}
	if err := s.backend.Set(ctx, KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("persist %s: %w", KeyCurrentUser, err)
	}
	s.currentUser = &user
	return nil
}

// ClearCurrentUser removes the session pointer.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("clear %s: %w", KeyCurrentUser, err)
	}
	s.currentUser = nil
	return nil
}
