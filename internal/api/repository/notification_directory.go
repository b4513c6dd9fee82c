package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"novelhub/internal/api/models"
)

// NotificationDirectory is the single source of truth for all notification
// records in the current session. Records older than the retention TTL are
// filtered out of reads and removed by the periodic sweep.
type NotificationDirectory struct {
	mu      sync.RWMutex
	records []*models.Notification // newest first
	ttl     time.Duration
	now     func() time.Time
}

// NewNotificationDirectory creates an empty directory with the given retention TTL.
func NewNotificationDirectory(ttl time.Duration) *NotificationDirectory {
	return &NotificationDirectory{
		ttl: ttl,
		now: time.Now,
	}
}

// Add assigns a fresh id and timestamp, clears the read flag and prepends the
// record. It never fails.
func (d *NotificationDirectory) Add(record models.Notification) *models.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()

	record.ID = uuid.New().String()
	record.CreatedAt = d.now()
	record.IsRead = false

	cp := record
	d.records = append([]*models.Notification{&cp}, d.records...)
	return &record
}

// GetByID returns a copy of the record with the given id.
func (d *NotificationDirectory) GetByID(id string) (*models.Notification, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, record := range d.records {
		if record.ID == id {
			cp := *record
			return &cp, true
		}
	}
	return nil, false
}

// TakeByID removes and returns the record with the given id when its kind
// matches, under a single lock. Decision flows consume their source record
// through this so that concurrent deciders cannot both act on the same record:
// exactly one caller wins, the rest see a miss.
func (d *NotificationDirectory) TakeByID(id string, kind models.NotificationKind) (*models.Notification, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, record := range d.records {
		if record.ID == id {
			if record.Kind != kind {
				return nil, false
			}
			cp := *record
			d.records = append(d.records[:i], d.records[i+1:]...)
			return &cp, true
		}
	}
	return nil, false
}

// MarkRead flips the read flag of the record with the given id. A missing id is
// a no-op: UI-driven deletes race with reads and that is expected.
func (d *NotificationDirectory) MarkRead(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, record := range d.records {
		if record.ID == id {
			record.IsRead = true
			return
		}
	}
}

// Remove deletes the record with the given id; missing ids are a no-op.
func (d *NotificationDirectory) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, record := range d.records {
		if record.ID == id {
			d.records = append(d.records[:i], d.records[i+1:]...)
			return
		}
	}
}

// VisibleTo returns the records the given user may see, newest first. Records
// past the retention TTL are filtered out even if the sweep has not run yet.
func (d *NotificationDirectory) VisibleTo(user *models.User) []models.Notification {
	d.mu.RLock()
	defer d.mu.RUnlock()

	cutoff := d.now().Add(-d.ttl)
	visible := make([]models.Notification, 0, len(d.records))
	for _, record := range d.records {
		if record.CreatedAt.Before(cutoff) {
			continue
		}
		if record.VisibleToUser(user) {
			visible = append(visible, *record)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible
}

// SweepExpired removes every record whose age exceeds the TTL relative to now
// and returns how many were removed. Calling it twice with the same now removes
// nothing further.
func (d *NotificationDirectory) SweepExpired(now time.Time) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	cutoff := now.Add(-d.ttl)
	kept := d.records[:0]
	removed := 0
	for _, record := range d.records {
		if record.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, record)
	}
	d.records = kept
	return removed
}

// Count returns the number of records currently held, expired or not.
func (d *NotificationDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.records)
}

// StartSweepRoutine runs SweepExpired on the given cadence until done is closed.
func (d *NotificationDirectory) StartSweepRoutine(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.SweepExpired(d.now())
		case <-done:
			return
		}
	}
}
