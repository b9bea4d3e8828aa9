package models

import "time"

// Question represents a single masala submitted by a visitor and answered
// by an admin alem. The upstream API is the source of truth; no invariants
// are enforced locally beyond validation at submission time.
type Question struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CategoryID  string     `json:"categoryId"`
	Category    string     `json:"category,omitempty"` // Category name, server-joined
	UserName    string     `json:"userName,omitempty"`
	UserEmail   string     `json:"userEmail,omitempty"`
	UserPhone   string     `json:"userPhone,omitempty"`
	Answer      *string    `json:"answer"`
	IsAnswered  bool       `json:"isAnswered"`
	CreatedAt   time.Time  `json:"createdAt"`
	AnsweredAt  *time.Time `json:"answeredAt"`
}

// QuestionSubmission is the payload accepted from the public ask-question form.
// Validation tags mirror the form rules: title and description minimums and a
// Bangladeshi phone number.
type QuestionSubmission struct {
	Title       string `json:"title" validate:"required,min=10"`
	Description string `json:"description" validate:"required,min=20"`
	CategoryID  string `json:"categoryId" validate:"required"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail" validate:"omitempty,email"`
	UserPhone   string `json:"userPhone" validate:"required,bd_phone"`
}

// AnswerPayload carries an admin's answer to a question.
type AnswerPayload struct {
	Answer string `json:"answer" validate:"required"`
}
