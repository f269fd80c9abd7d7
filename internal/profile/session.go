package profile

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jonathan/career-planner/internal/catalog"
	"github.com/jonathan/career-planner/internal/storage"
	"github.com/jonathan/career-planner/internal/types"
)

// Subscriber receives a snapshot of the profile after every mutation.
// Subscribers run while the session is locked: they must not block and must
// not call back into the Session.
type Subscriber func(snapshot *types.Profile)

// Session owns one user's profile. Every mutation is applied in memory,
// written to the store under StorageKey, then announced to subscribers.
// Store failures are logged and otherwise ignored; the in-memory profile
// stays authoritative.
type Session struct {
	store   storage.Store
	catalog *catalog.Catalog
	logger  zerolog.Logger

	mu          sync.Mutex
	profile     *types.Profile
	subscribers map[int]Subscriber
	nextSubID   int
}

// Open rehydrates the session from store. A missing or unreadable document
// starts the session from the empty profile.
func Open(ctx context.Context, store storage.Store, cat *catalog.Catalog, logger zerolog.Logger) (*Session, error) {
	if store == nil {
		return nil, errors.New("profile session requires a store")
	}
	if cat == nil {
		return nil, errors.New("profile session requires a catalog")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &Session{
		store:       store,
		catalog:     cat,
		logger:      logger.With().Str("component", "profile").Logger(),
		profile:     &types.Profile{},
		subscribers: make(map[int]Subscriber),
	}

	doc, err := store.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.logger.Debug().Msg("no stored profile, starting empty")
	case err != nil:
		s.logger.Warn().Err(err).Msg("failed to read stored profile, starting empty")
	default:
		p, decodeErr := Decode(doc)
		if decodeErr != nil {
			s.logger.Warn().Err(decodeErr).Msg("stored profile partially restored")
		}
		s.profile = p
	}

	return s, nil
}

// Snapshot returns a deep copy of the current profile
func (s *Session) Snapshot() *types.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// Subscribe registers fn for mutation notifications and returns a function
// that removes it.
func (s *Session) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// SetCourse records a course at the given level, replacing any earlier level
func (s *Session) SetCourse(ctx context.Context, courseID string, level types.CourseLevel) *types.Profile {
	return s.mutate(ctx, "set_course", func(p *types.Profile) { p.SetCourse(courseID, level) })
}

// RemoveCourse drops a recorded course
func (s *Session) RemoveCourse(ctx context.Context, courseID string) *types.Profile {
	return s.mutate(ctx, "remove_course", func(p *types.Profile) { p.RemoveCourse(courseID) })
}

// AddActivity appends an extracurricular activity
func (s *Session) AddActivity(ctx context.Context, name string, hours int) *types.Profile {
	return s.mutate(ctx, "add_activity", func(p *types.Profile) { p.AddActivity(name, hours) })
}

// RemoveActivity removes the activity at index
func (s *Session) RemoveActivity(ctx context.Context, index int) *types.Profile {
	return s.mutate(ctx, "remove_activity", func(p *types.Profile) { p.RemoveActivity(index) })
}

// RateSkill sets the 1-5 self-rating for a skill
func (s *Session) RateSkill(ctx context.Context, skill string, rating int) *types.Profile {
	return s.mutate(ctx, "rate_skill", func(p *types.Profile) { p.RateSkill(skill, rating) })
}

// SetPreference sets a 0-100 preference axis
func (s *Session) SetPreference(ctx context.Context, axis string, value int) *types.Profile {
	return s.mutate(ctx, "set_preference", func(p *types.Profile) { p.SetPreference(axis, value) })
}

// SetGoals replaces the ranked priorities and lifestyle preferences
func (s *Session) SetGoals(ctx context.Context, priorityIDs []string, city types.CityPreference, schedule types.SchedulePreference) *types.Profile {
	return s.mutate(ctx, "set_goals", func(p *types.Profile) { p.SetGoals(priorityIDs, city, schedule) })
}

// MovePriority moves a priority from one position to another
func (s *Session) MovePriority(ctx context.Context, from, to int) *types.Profile {
	return s.mutate(ctx, "move_priority", func(p *types.Profile) { p.MovePriority(from, to) })
}

// SaveMajor saves a snapshot of the catalog major with the given id.
// Unknown ids leave the profile unchanged.
func (s *Session) SaveMajor(ctx context.Context, id string) *types.Profile {
	return s.mutate(ctx, "save_major", func(p *types.Profile) {
		if m, ok := s.catalog.Major(id); ok {
			p.SaveMajor(m)
		}
	})
}

// SaveCollege saves a snapshot of the catalog college with the given id
func (s *Session) SaveCollege(ctx context.Context, id string) *types.Profile {
	return s.mutate(ctx, "save_college", func(p *types.Profile) {
		if c, ok := s.catalog.College(id); ok {
			p.SaveCollege(c)
		}
	})
}

// SaveJob saves a snapshot of the catalog job with the given id
func (s *Session) SaveJob(ctx context.Context, id string) *types.Profile {
	return s.mutate(ctx, "save_job", func(p *types.Profile) {
		if j, ok := s.catalog.Job(id); ok {
			p.SaveJob(j)
		}
	})
}

// RemoveSavedMajor drops a saved major
func (s *Session) RemoveSavedMajor(ctx context.Context, id string) *types.Profile {
	return s.mutate(ctx, "remove_saved_major", func(p *types.Profile) { p.RemoveSavedMajor(id) })
}

// RemoveSavedCollege drops a saved college
func (s *Session) RemoveSavedCollege(ctx context.Context, id string) *types.Profile {
	return s.mutate(ctx, "remove_saved_college", func(p *types.Profile) { p.RemoveSavedCollege(id) })
}

// RemoveSavedJob drops a saved job
func (s *Session) RemoveSavedJob(ctx context.Context, id string) *types.Profile {
	return s.mutate(ctx, "remove_saved_job", func(p *types.Profile) { p.RemoveSavedJob(id) })
}

// Reset discards everything the user entered and removes the stored document
func (s *Session) Reset(ctx context.Context) *types.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = &types.Profile{}
	if err := s.store.Delete(ctx, StorageKey); err != nil {
		s.logger.Error().Err(err).Str("op", "reset").Msg("failed to delete stored profile")
	}
	return s.notify()
}

func (s *Session) mutate(ctx context.Context, op string, apply func(p *types.Profile)) *types.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply(s.profile)
	s.persist(ctx, op)
	return s.notify()
}

// notify must be called with s.mu held.
func (s *Session) notify() *types.Profile {
	for _, fn := range s.subscribers {
		fn(s.profile.Clone())
	}
	return s.profile.Clone()
}

// persist must be called with s.mu held.
func (s *Session) persist(ctx context.Context, op string) {
	doc, err := Encode(s.profile)
	if err != nil {
		s.logger.Error().Err(err).Str("op", op).Msg("failed to encode profile")
		return
	}
	if err := s.store.Put(ctx, StorageKey, doc); err != nil {
		s.logger.Error().Err(err).Str("op", op).Msg("failed to persist profile")
		return
	}
	s.logger.Debug().Str("op", op).Int("bytes", len(doc)).Msg("profile persisted")
}
