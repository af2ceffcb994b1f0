package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

// MeetingRepository is the in-memory meeting store.
type MeetingRepository struct {
	mu       sync.Mutex
	meetings map[string]*entity.Meeting
}

var _ repository.MeetingRepository = (*MeetingRepository)(nil)

func NewMeetingRepository() *MeetingRepository {
	return &MeetingRepository{meetings: make(map[string]*entity.Meeting)}
}

func cloneMeeting(m *entity.Meeting) *entity.Meeting {
	cp := *m
	cp.Attendees = append([]string(nil), m.Attendees...)
	cp.Tags = append([]string(nil), m.Tags...)
	return &cp
}

func (r *MeetingRepository) Create(_ context.Context, m *entity.Meeting) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	m.ID = newID()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Attendees == nil {
		m.Attendees = []string{}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	r.meetings[m.ID] = cloneMeeting(m)
	return m.ID, nil
}

func (r *MeetingRepository) FindByID(_ context.Context, id, ownerID string) (*entity.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[id]
	if !ok || m.UserID != ownerID {
		return nil, repository.ErrNotFound
	}
	return cloneMeeting(m), nil
}

func (r *MeetingRepository) FindByOwner(_ context.Context, ownerID string, f repository.MeetingFilter) ([]*entity.Meeting, error) {
	return r.find(func(m *entity.Meeting) bool {
		if m.UserID != ownerID {
			return false
		}
		if f.Status != "" && m.Status != f.Status {
			return false
		}
		if f.DateFrom != "" && m.Date < f.DateFrom {
			return false
		}
		if f.DateTo != "" && m.Date > f.DateTo {
			return false
		}
		return true
	})
}

func (r *MeetingRepository) FindUpcoming(_ context.Context, ownerID string, days int) ([]*entity.Meeting, error) {
	today := time.Now().Format("2006-01-02")
	until := time.Now().AddDate(0, 0, days).Format("2006-01-02")
	return r.find(func(m *entity.Meeting) bool {
		return m.UserID == ownerID &&
			m.Status == entity.MeetingScheduled &&
			m.Date >= today && m.Date <= until
	})
}

func (r *MeetingRepository) FindByDate(_ context.Context, ownerID, date string) ([]*entity.Meeting, error) {
	return r.find(func(m *entity.Meeting) bool {
		return m.UserID == ownerID && m.Date == date
	})
}

func (r *MeetingRepository) Update(_ context.Context, id, ownerID string, patch repository.MeetingPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[id]
	if !ok || m.UserID != ownerID {
		return false, nil
	}
	if patch.Company != nil {
		m.Company = *patch.Company
	}
	if patch.Contact != nil {
		m.Contact = *patch.Contact
	}
	if patch.Subject != nil {
		m.Subject = *patch.Subject
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Date != nil {
		m.Date = *patch.Date
	}
	if patch.Time != nil {
		m.Time = *patch.Time
	}
	if patch.Duration != nil {
		m.Duration = *patch.Duration
	}
	if patch.Location != nil {
		m.Location = *patch.Location
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Priority != nil {
		m.Priority = *patch.Priority
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
	if patch.Attendees != nil {
		m.Attendees = append([]string(nil), patch.Attendees...)
	}
	if patch.Tags != nil {
		m.Tags = append([]string(nil), patch.Tags...)
	}
	if patch.Phone != nil {
		m.Phone = *patch.Phone
	}
	if patch.Email != nil {
		m.Email = *patch.Email
	}
	if patch.CompanyAddress != nil {
		m.CompanyAddress = *patch.CompanyAddress
	}
	m.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *MeetingRepository) Delete(_ context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.meetings[id]
	if !ok || m.UserID != ownerID {
		return false, nil
	}
	delete(r.meetings, id)
	return true, nil
}

func (r *MeetingRepository) find(match func(*entity.Meeting) bool) ([]*entity.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meetings := make([]*entity.Meeting, 0)
	for _, m := range r.meetings {
		if match(m) {
			meetings = append(meetings, cloneMeeting(m))
		}
	}
	sort.Slice(meetings, func(i, j int) bool {
		if meetings[i].Date != meetings[j].Date {
			return meetings[i].Date < meetings[j].Date
		}
		return meetings[i].Time < meetings[j].Time
	})
	return meetings, nil
}
