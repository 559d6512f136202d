package models

import (
	"time"
)

// User defines the student account model based on the 'users' table.
// Passwords are stored and compared in clear text; the field is excluded
// from JSON so it never leaves the process.
type User struct {
	ID         string    `json:"id" db:"id"`                  // Store-assigned identifier
	Name       string    `json:"name" db:"name"`              // Student's full name
	Email      string    `json:"email" db:"email"`            // Email address (unique, lowercased)
	Password   string    `json:"-" db:"password"`             // Clear-text password (excluded from JSON)
	StudentID  string    `json:"studentId" db:"student_id"`   // Campus identifier (unique, uppercased)
	JoinedDate time.Time `json:"joinedDate" db:"joined_date"` // Account creation date
}
