package models

import (
	"fmt"
	"time"
)

// LiveDetails holds the fields specific to live courses: the overall
// session plan and the recurring weekly slots.
type LiveDetails struct {
	TotalSessions      int           `bson:"total_sessions" json:"total_sessions"`
	SessionDurationMin int           `bson:"session_duration_min" json:"session_duration_min"`
	MaxParticipants    int           `bson:"max_participants,omitempty" json:"max_participants,omitempty"`
	StartDate          *time.Time    `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate            *time.Time    `bson:"end_date,omitempty" json:"end_date,omitempty"`
	WeeklySlots        []SessionSlot `bson:"weekly_slots,omitempty" json:"weekly_slots,omitempty"`
}

// SessionSlot is one recurring weekly live-session slot.
type SessionSlot struct {
	Day      string `bson:"day" json:"day"` // monday..sunday
	StartsAt string `bson:"starts_at" json:"starts_at"` // "18:00", course-local time
	EndsAt   string `bson:"ends_at" json:"ends_at"`
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func (d *LiveDetails) Validate() error {
	if d.TotalSessions <= 0 {
		return fmt.Errorf("total_sessions must be positive")
	}
	if d.SessionDurationMin <= 0 {
		return fmt.Errorf("session_duration_min must be positive")
	}
	if d.MaxParticipants < 0 {
		return fmt.Errorf("max_participants must be non-negative")
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		return fmt.Errorf("end_date precedes start_date")
	}
	for i, s := range d.WeeklySlots {
		if !weekdays[s.Day] {
			return fmt.Errorf("weekly_slots[%d]: unknown day %q", i, s.Day)
		}
		if s.StartsAt == "" || s.EndsAt == "" {
			return fmt.Errorf("weekly_slots[%d]: starts_at and ends_at are required", i)
		}
	}
	return nil
}
