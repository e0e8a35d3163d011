/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine types from the external API contract.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *Response: Response wrappers returned to clients

VALIDATION:
  Structural validation happens in the handlers through the validate
  package rule sets. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"encoding/json"
	"time"

	"github.com/odnamta/gis-erp-sub004/compliance"
	"github.com/odnamta/gis-erp-sub004/finance"
	"github.com/odnamta/gis-erp-sub004/lifecycle"
	"github.com/odnamta/gis-erp-sub004/reporting"
	"github.com/odnamta/gis-erp-sub004/store"
	"github.com/odnamta/gis-erp-sub004/validate"
)

// =============================================================================
// DOCUMENTS
// =============================================================================

// CreateDocumentRequest creates a document of any registered type. The
// payload is the variant-specific create input; see the finance and
// shipping rule sets for the accepted shapes.
type CreateDocumentRequest struct {
	DocType lifecycle.DocType `json:"doc_type"`
	Payload json.RawMessage   `json:"payload"`
}

// DocumentResponse is a stored document row.
type DocumentResponse struct {
	ID        string             `json:"id"`
	DocType   lifecycle.DocType  `json:"doc_type"`
	Status    lifecycle.Status   `json:"status"`
	Payload   json.RawMessage    `json:"payload"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	Next      []lifecycle.Status `json:"next_statuses"`
}

func documentResponse(rec store.Record) DocumentResponse {
	resp := DocumentResponse{
		ID:        rec.ID,
		DocType:   rec.DocType,
		Status:    rec.Status,
		Payload:   rec.Payload,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Next:      []lifecycle.Status{},
	}
	if m, ok := lifecycle.Lookup(rec.DocType); ok {
		resp.Next = m.Table.Next(rec.Status)
	}
	return resp
}

// TransitionRequest asks for one status transition.
type TransitionRequest struct {
	To lifecycle.Status `json:"to"`
}

// ValidationFailureResponse wraps an accumulated validation result.
type ValidationFailureResponse struct {
	Error      string          `json:"error"`
	Validation validate.Result `json:"validation"`
}

// =============================================================================
// FINANCE
// =============================================================================

// InvoiceTotalsRequest computes totals for a set of line items.
type InvoiceTotalsRequest struct {
	Lines []finance.InvoiceLine `json:"lines"`
}

// BudgetRequest reconciles a job order budget against its vouchers.
type BudgetRequest struct {
	BudgetAmount finance.Money          `json:"budget_amount"`
	Requests     []finance.Disbursement `json:"requests"`
}

// SettlementRequest classifies a released-vs-spent gap.
type SettlementRequest struct {
	ReleasedAmount finance.Money `json:"released_amount"`
	SpentAmount    finance.Money `json:"spent_amount"`
}

// AgingResponse is the receivables aging dashboard block.
type AgingResponse struct {
	AsOf             string                `json:"as_of"`
	Buckets          []finance.BucketTotal `json:"buckets"`
	TotalOutstanding finance.Money         `json:"total_outstanding"`
}

// =============================================================================
// DASHBOARDS
// =============================================================================

// PipelineRequest rolls up an already-fetched PJO collection.
type PipelineRequest struct {
	Records []reporting.PipelineRecord `json:"records"`
}

// TopCustomersRequest ranks customers over a job collection.
type TopCustomersRequest struct {
	Records        []reporting.JobRecord `json:"records"`
	CurrentPeriod  string                `json:"current_period"`
	PreviousPeriod string                `json:"previous_period"`
	Limit          int                   `json:"limit"`
}

// CertificatesRequest classifies training certificates.
type CertificatesRequest struct {
	Certificates []compliance.Certificate `json:"certificates"`
	AsOf         string                   `json:"as_of"`
}
