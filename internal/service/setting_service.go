package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingService reads and writes the flat site settings map.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a SettingService instance.
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// GetAll returns every setting as a key -> value map.
func (s *SettingService) GetAll() (map[string]string, error) {
	var records []db.Setting
	if err := s.db.Find(&records).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(records))
	for _, record := range records {
		values[record.Key] = record.Value
	}
	return values, nil
}

// Get returns a single setting value, or "" when the key is absent.
func (s *SettingService) Get(key string) (string, error) {
	var record db.Setting
	err := s.db.Where("key = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return record.Value, nil
}

// SetAll upserts each key in turn and returns the resulting full map. Keys
// are processed sequentially without a wrapping transaction, so a failure
// mid-batch leaves earlier keys applied.
func (s *SettingService) SetAll(values map[string]string) (map[string]string, error) {
	for key, value := range values {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			continue
		}
		if err := s.set(trimmedKey, value); err != nil {
			return nil, err
		}
	}
	return s.GetAll()
}

// Delete removes a single key.
func (s *SettingService) Delete(key string) error {
	var record db.Setting
	if err := s.db.Where("key = ?", strings.TrimSpace(key)).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSettingNotFound
		}
		return err
	}
	return s.db.Unscoped().Delete(&record).Error
}

// IncrementVisitors bumps the vanity visitor counter by one and returns the
// new count. Absent or unparseable values are treated as zero. The
// read-then-write is not atomic: concurrent increments can lose updates,
// which is accepted for this counter.
func (s *SettingService) IncrementVisitors() (int64, error) {
	raw, err := s.Get(db.SettingKeyVisitorCount)
	if err != nil {
		return 0, err
	}

	current, parseErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if parseErr != nil {
		current = 0
	}

	next := current + 1
	if err := s.set(db.SettingKeyVisitorCount, strconv.FormatInt(next, 10)); err != nil {
		return 0, err
	}
	return next, nil
}

// SetVisitors overwrites the visitor counter, e.g. for an admin reset.
func (s *SettingService) SetVisitors(count int64) error {
	return s.set(db.SettingKeyVisitorCount, strconv.FormatInt(count, 10))
}

// LastUpdated reports the most recent content modification across tribes,
// staff, updates and pages. The four queries run concurrently and any subset
// may fail; whatever succeeded wins, and the current time is returned when
// nothing did.
func (s *SettingService) LastUpdated(ctx context.Context) time.Time {
	tables := []string{"tribes", "staff_members", "updates", "pages"}

	var (
		mu     sync.Mutex
		newest time.Time
	)

	group, ctx := errgroup.WithContext(ctx)
	for _, table := range tables {
		table := table
		group.Go(func() error {
			var stamp *time.Time
			err := s.db.WithContext(ctx).Table(table).
				Select("MAX(updated_at)").
				Scan(&stamp).Error
			// best effort: a failed or empty table simply contributes nothing
			if err != nil || stamp == nil {
				return nil
			}

			mu.Lock()
			if stamp.After(newest) {
				newest = *stamp
			}
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	if newest.IsZero() {
		return time.Now()
	}
	return newest
}

func (s *SettingService) set(key, value string) error {
	var record db.Setting
	err := s.db.Where("key = ?", key).First(&record).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.db.Create(&db.Setting{Key: key, Value: value}).Error
	}

	record.Value = value
	return s.db.Save(&record).Error
}
