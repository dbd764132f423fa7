// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ImportantDate is a labelled date on the AIMA process timeline
// (appointment, deadline, renewal). Date uses the YYYY-MM-DD layout.
type ImportantDate struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// AimaProcess tracks the user's immigration process with AIMA.
// There is at most one process per user.
//
// Protocols hold ciphertext while the process travels between the service and
// the store and plaintext once the service returns it.
type AimaProcess struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	ProcessType    *string         `json:"process_type"`
	CompletedSteps []string        `json:"completed_steps"`
	ImportantDates []ImportantDate `json:"important_dates"`
	Protocols      []string        `json:"protocols"`
	Notes          *string         `json:"notes"`
	Step           int             `json:"step"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CalculateStep returns the step the user is on: one past the number of
// completed steps.
func CalculateStep(completedSteps []string) int {
	return len(completedSteps) + 1
}

// AimaProcessUpdate is a partial update of the process. Nil fields are kept.
// An empty ProcessType clears the process type.
type AimaProcessUpdate struct {
	UserID         string           `json:"-"`
	ProcessType    *string          `json:"process_type,omitempty"`
	CompletedSteps *[]string        `json:"completed_steps,omitempty"`
	ImportantDates *[]ImportantDate `json:"important_dates,omitempty"`
	Protocols      *[]string        `json:"protocols,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// AimaStepToggle is the body of the step toggle endpoint.
type AimaStepToggle struct {
	StepID string `json:"step_id"`
}

// AimaProcessTypeSelect is the body of the process type selection endpoint.
type AimaProcessTypeSelect struct {
	ProcessType string `json:"process_type"`
}

// AimaProtocol is the body of the protocol endpoint.
type AimaProtocol struct {
	Protocol string `json:"protocol"`
}
