/*
handlers.go - HTTP handlers: the server-action collaborator of the core

PURPOSE:
  Each handler follows the same shape:
  1. Parse and structurally validate input
  2. Load the document row (where one is involved)
  3. Call the engines (lifecycle, finance, compliance, reporting)
  4. Persist the result
  5. Serialize the response

  The engines stay pure; everything effectful (clock reads, ID minting,
  storage) happens here.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, failed structural validation
  - 404: Document not found
  - 409: Illegal status transition
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/odnamta/gis-erp-sub004/compliance"
	"github.com/odnamta/gis-erp-sub004/finance"
	"github.com/odnamta/gis-erp-sub004/lifecycle"
	"github.com/odnamta/gis-erp-sub004/reporting"
	"github.com/odnamta/gis-erp-sub004/shipping"
	"github.com/odnamta/gis-erp-sub004/store"
	"github.com/odnamta/gis-erp-sub004/validate"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store store.DocumentStore

	// Now is the clock used for timestamps and as_of defaults.
	// Overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// NewHandler creates a new handler over the given store.
func NewHandler(st store.DocumentStore) *Handler {
	return &Handler{Store: st, Now: time.Now}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// asOf reads the as_of query parameter (YYYY-MM-DD), defaulting to the
// handler clock.
func (h *Handler) asOf(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return h.Now(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as_of %q: expected YYYY-MM-DD", raw)
	}
	return t, nil
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// DOCUMENT LIFECYCLE
// =============================================================================

// CreateDocument validates a create payload and stores the document in
// its type's initial status.
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if !decode(w, r, &req) {
		return
	}
	machine, ok := lifecycle.Lookup(req.DocType)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown document type %q", req.DocType))
		return
	}

	now := h.Now()
	payload, result, err := h.buildPayload(r, machine, req.Payload, now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !result.Valid {
		writeJSON(w, http.StatusBadRequest, ValidationFailureResponse{
			Error:      "validation failed",
			Validation: result,
		})
		return
	}

	rec := store.Record{
		ID:        uuid.NewString(),
		DocType:   machine.Type,
		Status:    machine.Initial,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Store.Put(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, documentResponse(rec))
}

// buildPayload validates the variant-specific create input and returns
// the payload to persist. The validation result carries every violated
// rule; the error return is for malformed JSON only.
func (h *Handler) buildPayload(r *http.Request, machine lifecycle.Machine, raw json.RawMessage, now time.Time) (json.RawMessage, validate.Result, error) {
	bad := func(err error) (json.RawMessage, validate.Result, error) {
		return nil, validate.Result{}, fmt.Errorf("invalid %s payload: %w", machine.Type, err)
	}

	switch machine.Type {
	case finance.DocTypeInvoice:
		var in finance.InvoiceInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return bad(err)
		}
		if result := finance.ValidateInvoiceInput(in); !result.Valid {
			return nil, result, nil
		}
		totals := finance.InvoiceTotals(in.Lines)
		inv := finance.Invoice{
			Number:     in.Number,
			CustomerID: in.CustomerID,
			JobOrderID: in.JobOrderID,
			Status:     machine.Initial,
			Lines:      in.Lines,
			Subtotal:   totals.Subtotal,
			TaxAmount:  totals.TaxAmount,
			GrandTotal: totals.GrandTotal,
			IssueDate:  now,
		}
		out, err := json.Marshal(inv)
		return out, validate.OK(), err

	case finance.DocTypeDisbursement:
		var in finance.DisbursementInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return bad(err)
		}
		if result := finance.ValidateDisbursementInput(in); !result.Valid {
			return nil, result, nil
		}
		seq, err := h.nextSequence(r, finance.DocTypeDisbursement)
		if err != nil {
			return nil, validate.Result{}, err
		}
		d := finance.Disbursement{
			Number:          finance.GenerateBKKNumber(now.Year(), seq),
			JobOrderID:      in.JobOrderID,
			RequesterID:     in.RequesterID,
			Purpose:         in.Purpose,
			Status:          machine.Initial,
			AmountRequested: in.Amount,
			RequestedAt:     now,
		}
		out, err := json.Marshal(d)
		return out, validate.OK(), err

	case shipping.DocTypeBooking:
		var in shipping.BookingInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return bad(err)
		}
		if result := shipping.ValidateBookingInput(in); !result.Valid {
			return nil, result, nil
		}
		b := shipping.Booking{
			Shipper:        in.Shipper,
			Consignee:      in.Consignee,
			Origin:         in.Origin,
			Destination:    in.Destination,
			ContainerCount: in.ContainerCount,
			Status:         machine.Initial,
		}
		out, err := json.Marshal(b)
		return out, validate.OK(), err

	case shipping.DocTypeShippingInstruction:
		var in shipping.InstructionInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return bad(err)
		}
		if result := shipping.ValidateInstructionInput(in); !result.Valid {
			return nil, result, nil
		}
		si := shipping.ShippingInstruction{
			BookingID: in.BookingID,
			Shipper:   in.Shipper,
			Consignee: in.Consignee,
			Status:    machine.Initial,
		}
		out, err := json.Marshal(si)
		return out, validate.OK(), err

	case shipping.DocTypeBillOfLading:
		var in shipping.BLInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return bad(err)
		}
		if result := shipping.ValidateBLInput(in); !result.Valid {
			return nil, result, nil
		}
		bl := shipping.BillOfLading{
			BookingID:       in.BookingID,
			Shipper:         in.Shipper,
			Consignee:       in.Consignee,
			VesselName:      in.VesselName,
			PortOfLoading:   in.PortOfLoading,
			PortOfDischarge: in.PortOfDischarge,
			Status:          machine.Initial,
		}
		out, err := json.Marshal(bl)
		return out, validate.OK(), err

	default:
		// Arrival notices and manifests arrive from upstream systems with
		// their payload already shaped; store as-is in the initial status.
		if len(raw) == 0 {
			raw = json.RawMessage(`{}`)
		}
		return raw, validate.OK(), nil
	}
}

// nextSequence numbers documents of one type within the store.
func (h *Handler) nextSequence(r *http.Request, docType lifecycle.DocType) (int, error) {
	existing, err := h.Store.ListByType(r.Context(), docType)
	if err != nil {
		return 0, err
	}
	return len(existing) + 1, nil
}

// GetDocument returns one document row with its allowed next statuses.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, documentResponse(rec))
}

// ListDocuments returns every document of the requested type.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docType := lifecycle.DocType(r.URL.Query().Get("type"))
	if _, ok := lifecycle.Lookup(docType); !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown document type %q", docType))
		return
	}
	recs, err := h.Store.ListByType(r.Context(), docType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]DocumentResponse, len(recs))
	for i, rec := range recs {
		out[i] = documentResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

// TransitionDocument validates and applies one status transition,
// stamping the lifecycle timestamps the target status owns. Illegal
// transitions are a 409, never a 500: the validator fails closed and the
// caller decides how to surface it.
func (h *Handler) TransitionDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req TransitionRequest
	if !decode(w, r, &req) {
		return
	}
	var c validate.Checker
	c.Required("to", string(req.To))
	if result := c.Result(); !result.Valid {
		writeJSON(w, http.StatusBadRequest, ValidationFailureResponse{Error: "validation failed", Validation: result})
		return
	}

	rec, err := h.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	now := h.Now()
	payload, status, ok, err := applyTransition(rec, req.To, now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusConflict,
			fmt.Sprintf("transition %s -> %s is not allowed for %s", rec.Status, req.To, rec.DocType))
		return
	}

	rec.Status = status
	rec.Payload = payload
	rec.UpdatedAt = now
	if err := h.Store.Put(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, documentResponse(rec))
}

// applyTransition routes to the variant's transition application. The
// boolean is false for illegal transitions; the error covers payloads
// that fail to round-trip through JSON.
func applyTransition(rec store.Record, to lifecycle.Status, at time.Time) (json.RawMessage, lifecycle.Status, bool, error) {
	reencode := func(v any, ok bool, status lifecycle.Status) (json.RawMessage, lifecycle.Status, bool, error) {
		if !ok {
			return rec.Payload, rec.Status, false, nil
		}
		out, err := json.Marshal(v)
		return out, status, true, err
	}

	switch rec.DocType {
	case finance.DocTypeInvoice:
		var inv finance.Invoice
		if err := json.Unmarshal(rec.Payload, &inv); err != nil {
			return nil, rec.Status, false, err
		}
		inv.Status = rec.Status
		next, ok := finance.ApplyInvoiceTransition(inv, to, at)
		return reencode(next, ok, next.Status)

	case finance.DocTypeDisbursement:
		var d finance.Disbursement
		if err := json.Unmarshal(rec.Payload, &d); err != nil {
			return nil, rec.Status, false, err
		}
		d.Status = rec.Status
		next, ok := finance.ApplyDisbursementTransition(d, to, at)
		return reencode(next, ok, next.Status)

	case shipping.DocTypeBillOfLading:
		var bl shipping.BillOfLading
		if err := json.Unmarshal(rec.Payload, &bl); err != nil {
			return nil, rec.Status, false, err
		}
		bl.Status = rec.Status
		next, ok := shipping.ApplyBLTransition(bl, to, at)
		return reencode(next, ok, next.Status)

	case shipping.DocTypeShippingInstruction:
		var si shipping.ShippingInstruction
		if err := json.Unmarshal(rec.Payload, &si); err != nil {
			return nil, rec.Status, false, err
		}
		si.Status = rec.Status
		next, ok := shipping.ApplySITransition(si, to, at)
		return reencode(next, ok, next.Status)

	case shipping.DocTypeArrivalNotice:
		var an shipping.ArrivalNotice
		if err := json.Unmarshal(rec.Payload, &an); err != nil {
			return nil, rec.Status, false, err
		}
		an.Status = rec.Status
		next, ok := shipping.ApplyArrivalTransition(an, to, at)
		return reencode(next, ok, next.Status)

	case shipping.DocTypeCargoManifest:
		var m shipping.CargoManifest
		if err := json.Unmarshal(rec.Payload, &m); err != nil {
			return nil, rec.Status, false, err
		}
		m.Status = rec.Status
		next, ok := shipping.ApplyManifestTransition(m, to, at)
		return reencode(next, ok, next.Status)

	case shipping.DocTypeBooking:
		var b shipping.Booking
		if err := json.Unmarshal(rec.Payload, &b); err != nil {
			return nil, rec.Status, false, err
		}
		b.Status = rec.Status
		next, ok := shipping.ApplyBookingTransition(b, to, at)
		return reencode(next, ok, next.Status)
	}

	// Unregistered types fail closed.
	return rec.Payload, rec.Status, false, nil
}

// =============================================================================
// FINANCE ENDPOINTS
// =============================================================================

// ComputeInvoiceTotals recomputes subtotal, tax, and grand total.
func (h *Handler) ComputeInvoiceTotals(w http.ResponseWriter, r *http.Request) {
	var req InvoiceTotalsRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, finance.InvoiceTotals(req.Lines))
}

// ComputeBudget reconciles a budget against its disbursement vouchers.
func (h *Handler) ComputeBudget(w http.ResponseWriter, r *http.Request) {
	var req BudgetRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, finance.AvailableBudget(req.BudgetAmount, req.Requests))
}

// ComputeSettlement classifies a released-vs-spent difference.
func (h *Handler) ComputeSettlement(w http.ResponseWriter, r *http.Request) {
	var req SettlementRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, finance.SettlementDifference(req.ReleasedAmount, req.SpentAmount))
}

// =============================================================================
// DASHBOARD ENDPOINTS
// =============================================================================

// AgingDashboard buckets stored invoices as of the requested date.
func (h *Handler) AgingDashboard(w http.ResponseWriter, r *http.Request) {
	at, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	recs, err := h.Store.ListByType(r.Context(), finance.DocTypeInvoice)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	invoices := make([]finance.Invoice, 0, len(recs))
	for _, rec := range recs {
		var inv finance.Invoice
		if err := json.Unmarshal(rec.Payload, &inv); err != nil {
			continue // tolerate foreign rows; the report covers what parses
		}
		inv.Status = rec.Status
		invoices = append(invoices, inv)
	}
	items := finance.AgedInvoices(invoices)
	writeJSON(w, http.StatusOK, AgingResponse{
		AsOf:             at.Format("2006-01-02"),
		Buckets:          finance.GroupByAgingBucket(items, at),
		TotalOutstanding: finance.TotalOutstanding(items),
	})
}

// BKKSummaryDashboard rolls up stored disbursement vouchers.
func (h *Handler) BKKSummaryDashboard(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.ListByType(r.Context(), finance.DocTypeDisbursement)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	vouchers := make([]finance.Disbursement, 0, len(recs))
	for _, rec := range recs {
		var d finance.Disbursement
		if err := json.Unmarshal(rec.Payload, &d); err != nil {
			continue
		}
		d.Status = rec.Status
		vouchers = append(vouchers, d)
	}
	writeJSON(w, http.StatusOK, finance.BKKSummary(vouchers))
}

// PipelineDashboard rolls up a posted PJO collection by stage.
func (h *Handler) PipelineDashboard(w http.ResponseWriter, r *http.Request) {
	var req PipelineRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, reporting.GroupByPipelineStage(req.Records))
}

// WinLossDashboard rolls up a posted PJO collection into won/lost/pending.
func (h *Handler) WinLossDashboard(w http.ResponseWriter, r *http.Request) {
	var req PipelineRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, reporting.WinLossData(req.Records))
}

// TopCustomersDashboard ranks a posted job collection.
func (h *Handler) TopCustomersDashboard(w http.ResponseWriter, r *http.Request) {
	var req TopCustomersRequest
	if !decode(w, r, &req) {
		return
	}
	ranked := reporting.RankByValue(req.Records, req.CurrentPeriod, req.PreviousPeriod)
	writeJSON(w, http.StatusOK, reporting.TopN(ranked, req.Limit))
}

// ClassifyCertificates derives compliance status for posted training
// certificates.
func (h *Handler) ClassifyCertificates(w http.ResponseWriter, r *http.Request) {
	var req CertificatesRequest
	if !decode(w, r, &req) {
		return
	}
	at := h.Now()
	if req.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid as_of %q: expected YYYY-MM-DD", req.AsOf))
			return
		}
		at = parsed
	}
	writeJSON(w, http.StatusOK, compliance.ClassifyCertificates(req.Certificates, at))
}
