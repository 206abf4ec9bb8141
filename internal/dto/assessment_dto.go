package dto

import (
	"github.com/google/uuid"
)

type CreateAssessmentSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type SelectCategoriesRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	Categories []string  `json:"categories" validate:"required,min=1,dive,required"`
}

type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type QuestionDTO struct {
	Id       int         `json:"id"`
	Prompt   string      `json:"prompt"`
	Options  []OptionDTO `json:"options"`
	Multiple bool        `json:"multiple"`
}

// AssessmentStateResponse is the common shape every assessment mutation
// returns: where the session is and what to ask next.
type AssessmentStateResponse struct {
	SessionId       uuid.UUID         `json:"session_id"`
	Phase           string            `json:"phase"`
	PrimaryCategory string            `json:"primary_category,omitempty"`
	Question        *QuestionDTO      `json:"question,omitempty"`
	QuestionNumber  int               `json:"question_number,omitempty"`
	QuestionCount   int               `json:"question_count,omitempty"`
	Result          *AssessmentResult `json:"result,omitempty"`
}

type AssessmentResult struct {
	Tier            string   `json:"tier"`
	Score           int      `json:"score"`
	MaxScore        int      `json:"max_score"`
	Percentage      int      `json:"percentage"`
	Recommendations []string `json:"recommendations"`
	OtherCategories []string `json:"other_categories,omitempty"`
}

type SubmitAnswerRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	QuestionId int       `json:"question_id" validate:"required"`
	Values     []string  `json:"values" validate:"required,min=1,dive,required"`
}

type GoBackRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
}

type SendResultsEmailRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
}
