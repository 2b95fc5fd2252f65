package models

import (
	"time"

	"github.com/google/uuid"
)

// BidStatus is the closed set of bid states.
type BidStatus string

const (
	BidPending  BidStatus = "Pending"  // default on creation
	BidAccepted BidStatus = "Accepted" // chosen by the job owner
	BidRejected BidStatus = "Rejected" // declined, or sibling of an accepted bid
)

// BidDB represents a bid record in the database
type BidDB struct {
	BidID        uuid.UUID `json:"id" db:"bid_id"`               // Primary key
	JobID        uuid.UUID `json:"job" db:"job_id"`              // Job being bid on
	FreelancerID uuid.UUID `json:"freelancer" db:"freelancer_id"`
	BidAmount    float64   `json:"bidAmount" db:"bid_amount"`
	Timeline     int       `json:"timeline" db:"timeline"` // Proposed timeline in days
	Message      string    `json:"message" db:"message"`
	Status       BidStatus `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// BidDetail is a bid row joined with its freelancer's public fields
// and the referenced job.
type BidDetail struct {
	BidDB
	FreelancerName  string    `json:"-" db:"freelancer_name"`
	FreelancerEmail string    `json:"-" db:"freelancer_email"`
	JobTitle        string    `json:"-" db:"job_title"`
	JobBudget       float64   `json:"-" db:"job_budget"`
	JobDuration     int       `json:"-" db:"job_duration"`
	JobSkills       SkillList `json:"-" db:"job_skills"`
	JobPostedBy     uuid.UUID `json:"-" db:"job_posted_by"`
}
