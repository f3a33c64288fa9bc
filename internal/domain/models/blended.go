package models

import "fmt"

// BlendedDetails holds the fields specific to blended courses:
// self-paced modules plus scheduled doubt-clearing sessions and the
// criteria a student must meet to earn a certificate.
type BlendedDetails struct {
	Modules       []CourseModule `bson:"course_modules,omitempty" json:"course_modules,omitempty"`
	DoubtSchedule *DoubtSchedule `bson:"doubt_schedule,omitempty" json:"doubt_schedule,omitempty"`
	Certification *CertCriteria  `bson:"certification,omitempty" json:"certification,omitempty"`
}

// CourseModule is the blended-course alternate curriculum unit. It
// coexists with the shared week/section/lesson curriculum; blended
// courses may use either or both representations.
type CourseModule struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	DurationMin int      `bson:"duration_min,omitempty" json:"duration_min,omitempty"`
	Topics      []string `bson:"topics,omitempty" json:"topics,omitempty"`
}

// DoubtSchedule describes the recurring doubt-clearing session slots.
type DoubtSchedule struct {
	Frequency   string   `bson:"frequency" json:"frequency"` // daily | weekly | biweekly
	Days        []string `bson:"days,omitempty" json:"days,omitempty"`
	TimeSlot    string   `bson:"time_slot,omitempty" json:"time_slot,omitempty"` // e.g. "18:00-19:00"
	DurationMin int      `bson:"duration_min,omitempty" json:"duration_min,omitempty"`
}

// CertCriteria are the completion thresholds for certificate eligibility.
type CertCriteria struct {
	MinAttendancePct float64 `bson:"min_attendance_pct" json:"min_attendance_pct"`
	MinAssignmentPct float64 `bson:"min_assignment_pct" json:"min_assignment_pct"`
	FinalExam        bool    `bson:"final_exam" json:"final_exam"`
}

var doubtFrequencies = map[string]bool{"daily": true, "weekly": true, "biweekly": true}

func (d *BlendedDetails) Validate() error {
	for i, m := range d.Modules {
		if m.Title == "" {
			return fmt.Errorf("course_modules[%d]: title is required", i)
		}
	}
	if ds := d.DoubtSchedule; ds != nil {
		if !doubtFrequencies[ds.Frequency] {
			return fmt.Errorf("doubt_schedule.frequency must be daily, weekly or biweekly, got %q", ds.Frequency)
		}
	}
	if c := d.Certification; c != nil {
		if c.MinAttendancePct < 0 || c.MinAttendancePct > 100 {
			return fmt.Errorf("certification.min_attendance_pct must be within 0..100")
		}
		if c.MinAssignmentPct < 0 || c.MinAssignmentPct > 100 {
			return fmt.Errorf("certification.min_assignment_pct must be within 0..100")
		}
	}
	return nil
}

// AssignModuleIDs fills in missing module IDs positionally (module_1, ...).
// Existing IDs are preserved, same policy as the shared curriculum.
func (d *BlendedDetails) AssignModuleIDs() {
	for i := range d.Modules {
		if d.Modules[i].ID == "" {
			d.Modules[i].ID = fmt.Sprintf("module_%d", i+1)
		}
	}
}
