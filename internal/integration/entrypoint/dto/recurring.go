package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurring"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateTemplateRequest represents the request body for creating a recurring template.
// An empty end date uses the configured default.
type CreateTemplateRequest struct {
	WalletID    string            `json:"wallet_id" binding:"required,uuid"`
	CategoryID  string            `json:"category_id" binding:"required,uuid"`
	Type        string            `json:"type" binding:"required"`
	Amount      valueobject.Money `json:"amount"`
	StartDate   string            `json:"start_date" binding:"required"`
	EndDate     string            `json:"end_date,omitempty"`
	Frequency   string            `json:"frequency" binding:"required"`
	Description string            `json:"description"`
}

// UpdateTemplateRequest represents the request body for updating a recurring template.
type UpdateTemplateRequest struct {
	WalletID    string            `json:"wallet_id" binding:"required,uuid"`
	CategoryID  string            `json:"category_id" binding:"required,uuid"`
	Type        string            `json:"type" binding:"required"`
	Amount      valueobject.Money `json:"amount"`
	EndDate     string            `json:"end_date" binding:"required"`
	Frequency   string            `json:"frequency" binding:"required"`
	Description string            `json:"description"`
}

// TemplateResponse represents a single recurring template in API responses.
type TemplateResponse struct {
	ID          string            `json:"id"`
	WalletID    string            `json:"wallet_id"`
	CategoryID  string            `json:"category_id"`
	Type        string            `json:"type"`
	Amount      valueobject.Money `json:"amount"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	NextDueDate string            `json:"next_due_date"`
	Frequency   string            `json:"frequency"`
	Status      string            `json:"status"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TemplateListResponse represents the response for listing recurring templates.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// LastOccurrenceQuery represents the query parameters for previewing the final occurrence.
type LastOccurrenceQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	Frequency string `form:"frequency" binding:"required"`
}

// LastOccurrenceResponse represents the date of the final occurrence.
type LastOccurrenceResponse struct {
	LastOccurrenceDate string `json:"last_occurrence_date"`
}

// ProjectionQuery represents the query parameters for projecting future entries.
type ProjectionQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// OccurrenceResponse identifies one occurrence of a template.
type OccurrenceResponse struct {
	TemplateID string `json:"template_id"`
	DueDate    string `json:"due_date"`
}

// ProcessTemplatesResponse summarizes a catch-up pass.
type ProcessTemplatesResponse struct {
	Created     []EntryResponse      `json:"created"`
	Skipped     []OccurrenceResponse `json:"skipped"`
	Failed      []OccurrenceResponse `json:"failed"`
	Deactivated int                  `json:"deactivated"`
	Errors      int                  `json:"errors"`
}

// ToTemplateResponse converts a domain RecurringTemplate entity to a TemplateResponse DTO.
func ToTemplateResponse(template *entity.RecurringTemplate) TemplateResponse {
	return TemplateResponse{
		ID:          template.ID.String(),
		WalletID:    template.WalletID.String(),
		CategoryID:  template.CategoryID.String(),
		Type:        string(template.Type),
		Amount:      template.Amount,
		StartDate:   FormatDate(template.StartDate),
		EndDate:     FormatDate(template.EndDate),
		NextDueDate: FormatDate(template.NextDueDate),
		Frequency:   string(template.Frequency),
		Status:      string(template.Status),
		Description: template.Description,
		CreatedAt:   template.CreatedAt,
		UpdatedAt:   template.UpdatedAt,
	}
}

// ToTemplateListResponse converts a list of templates to a TemplateListResponse DTO.
func ToTemplateListResponse(templates []*entity.RecurringTemplate) TemplateListResponse {
	responses := make([]TemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = ToTemplateResponse(template)
	}
	return TemplateListResponse{Templates: responses}
}

// ToProcessTemplatesResponse converts a catch-up pass summary to its DTO.
func ToProcessTemplatesResponse(output *recurring.ProcessDueTemplatesOutput) ProcessTemplatesResponse {
	return ProcessTemplatesResponse{
		Created:     ToEntryListResponse(output.Created).Entries,
		Skipped:     toOccurrenceResponses(output.Skipped),
		Failed:      toOccurrenceResponses(output.Failed),
		Deactivated: output.Deactivated,
		Errors:      output.Errors,
	}
}

func toOccurrenceResponses(occurrences []entity.Occurrence) []OccurrenceResponse {
	responses := make([]OccurrenceResponse, len(occurrences))
	for i, occurrence := range occurrences {
		responses[i] = OccurrenceResponse{
			TemplateID: occurrence.TemplateID.String(),
			DueDate:    FormatDate(occurrence.DueDate),
		}
	}
	return responses
}
