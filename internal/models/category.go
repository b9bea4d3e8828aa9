package models

// Category groups questions by topic (e.g. নামাজ, রোজা, যাকাত).
type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"questionCount"` // Server-computed, read-only
}

// CategoryPayload is the admin create/update body for a category.
type CategoryPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
