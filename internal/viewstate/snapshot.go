package viewstate

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"alcyxob/workout-tracker/internal/domain"
)

// SnapshotCache persists the last known state of each workout day to a JSON
// file so a restart can render immediately while the store is fetched. A
// snapshot that fails to load is discarded with a warning rather than
// blocking startup.
type SnapshotCache struct {
	mu   sync.Mutex
	path string
	days map[string]domain.WorkoutDayWithExercises
}

// NewSnapshotCache opens the cache at path, loading any existing snapshot.
// A missing or unreadable file leaves the cache empty.
func NewSnapshotCache(path string) *SnapshotCache {
	cache := &SnapshotCache{
		path: path,
		days: make(map[string]domain.WorkoutDayWithExercises),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: Could not read snapshot %s: %v", path, err)
		}
		return cache
	}
	if err := json.Unmarshal(data, &cache.days); err != nil {
		log.Printf("WARN: Discarding corrupt snapshot %s: %v", path, err)
		cache.days = make(map[string]domain.WorkoutDayWithExercises)
	}
	return cache
}

// Get returns the cached snapshot of a day, if any.
func (s *SnapshotCache) Get(dayID string) (domain.WorkoutDayWithExercises, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.days[dayID]
	return day, ok
}

// Put replaces the snapshot for a day and rewrites the file. Every write
// serializes the full cache; the snapshot is small and the simplicity wins.
func (s *SnapshotCache) Put(day domain.WorkoutDayWithExercises) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days[day.ID] = day
	return s.save()
}

// Remove drops a day's snapshot, if present, and rewrites the file.
func (s *SnapshotCache) Remove(dayID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.days[dayID]; !ok {
		return nil
	}
	delete(s.days, dayID)
	return s.save()
}

func (s *SnapshotCache) save() error {
	data, err := json.Marshal(s.days)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
