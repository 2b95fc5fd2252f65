package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SkillList is a list of required skill tags, stored as JSONB.
type SkillList []string

// Value implements driver.Valuer for JSONB storage.
func (s SkillList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB storage.
func (s *SkillList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("cannot scan %T into SkillList", src)
}

// NormalizeSkills trims every tag and drops empty entries. The canonical
// wire representation for job creation is a JSON array of strings; only
// the listing filter accepts a comma-separated form (see SplitSkills).
func NormalizeSkills(in []string) SkillList {
	out := make(SkillList, 0, len(in))
	for _, skill := range in {
		if skill = strings.TrimSpace(skill); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}

// SplitSkills parses the comma-separated ?skills= query parameter.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return NormalizeSkills(strings.Split(raw, ","))
}

// JobDB represents a job record in the database
type JobDB struct {
	JobID          uuid.UUID `json:"id" db:"job_id"`                        // Primary key
	Title          string    `json:"title" db:"title"`                      // Job title
	Description    string    `json:"description" db:"description"`         // Job description
	Budget         float64   `json:"budget" db:"budget"`                    // Job budget
	Duration       int       `json:"duration" db:"duration"`                // Duration in days
	SkillsRequired SkillList `json:"skillsRequired" db:"skills_required"`   // Required skill tags
	PostedBy       uuid.UUID `json:"postedBy" db:"posted_by"`               // Owning employer
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// JobWithPoster is a job row joined with its poster's public fields.
type JobWithPoster struct {
	JobDB
	PosterName  string `json:"-" db:"poster_name"`
	PosterEmail string `json:"-" db:"poster_email"`
}
