package httptransport

import (
	"errors"
	"net/http"
	"time"

	"aurum/internal/application"
	"aurum/internal/identity"
	"aurum/internal/platform/middleware"
	"aurum/internal/session"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/platform/sentinel"
)

type applicationResponse struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customer_id"`
	Amount         int64   `json:"amount"`
	TenureMonths   int     `json:"tenure_months"`
	NetWeightGrams float64 `json:"net_weight_grams"`
	Carat          int     `json:"carat"`
	Status         string  `json:"status"`
	FailureReason  string  `json:"failure_reason,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func toApplicationResponse(app application.Application) applicationResponse {
	return applicationResponse{
		ID:             app.ID.String(),
		CustomerID:     app.CustomerID.String(),
		Amount:         app.Amount,
		TenureMonths:   app.TenureMonths,
		NetWeightGrams: app.NetWeightGrams,
		Carat:          app.Carat,
		Status:         string(app.Status),
		FailureReason:  app.FailureReason,
		CreatedAt:      app.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// loadDraft returns the session's draft, or a fresh one bound to the
// authenticated customer.
func (h *Handler) loadDraft(r *http.Request) (session.Draft, error) {
	d, err := h.drafts.Load(r.Context(), middleware.GetSessionID(r.Context()))
	if errors.Is(err, sentinel.ErrNotFound) {
		return session.Draft{CustomerID: middleware.GetActorID(r.Context())}, nil
	}
	return d, err
}

func (h *Handler) saveDraft(r *http.Request, d session.Draft) error {
	return h.drafts.Save(r.Context(), middleware.GetSessionID(r.Context()), d)
}

type draftOrnamentsRequest struct {
	Ornaments []application.OrnamentItem `json:"ornaments"`
}

func (h *Handler) handleDraftOrnaments(w http.ResponseWriter, r *http.Request) {
	var in draftOrnamentsRequest
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	d, err := h.loadDraft(r)
	if err != nil {
		writeError(w, err)
		return
	}
	d.Ornaments = in.Ornaments
	if err := h.saveDraft(r, d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type draftTermsRequest struct {
	Amount       int64 `json:"amount"`
	TenureMonths int   `json:"tenure_months"`
}

func (h *Handler) handleDraftTerms(w http.ResponseWriter, r *http.Request) {
	var in draftTermsRequest
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	d, err := h.loadDraft(r)
	if err != nil {
		writeError(w, err)
		return
	}
	d.Amount = in.Amount
	d.TenureMonths = in.TenureMonths
	if err := h.saveDraft(r, d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type draftDocumentRequest struct {
	Text string `json:"text"`
}

// handleDraftDocument accepts the text content of the identity document and
// pulls out the fields used for the consistency check. Nothing extractable
// is not an error; the application carries the failure reason instead.
func (h *Handler) handleDraftDocument(w http.ResponseWriter, r *http.Request) {
	var in draftDocumentRequest
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	d, err := h.loadDraft(r)
	if err != nil {
		writeError(w, err)
		return
	}
	d.Extracted = identity.ExtractFromText(in.Text)
	d.FailureReason = ""
	if d.Extracted == (identity.Extracted{}) {
		d.FailureReason = "no identity fields could be extracted from the document"
	}
	if err := h.saveDraft(r, d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) handleDraftGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.loadDraft(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// handleSubmit finalizes the session's draft into a submitted application.
// The draft survives a failed submission so the customer can correct the
// offending step; it is cleared only on success.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d, err := h.loadDraft(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(d.Ornaments) == 0 {
		writeError(w, dErrors.New(dErrors.CodeValidation, "add ornaments before submitting"))
		return
	}
	if d.Amount == 0 || d.TenureMonths == 0 {
		writeError(w, dErrors.New(dErrors.CodeValidation, "set loan terms before submitting"))
		return
	}

	app, err := h.applications.Submit(ctx, application.SubmitInput{
		CustomerID:    domain.CustomerID(middleware.GetActorID(ctx)),
		Ornaments:     d.Ornaments,
		Amount:        d.Amount,
		TenureMonths:  d.TenureMonths,
		Extracted:     d.Extracted,
		FailureReason: d.FailureReason,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.ApplicationsSubmitted.Inc()
	if err := h.drafts.Clear(ctx, middleware.GetSessionID(ctx)); err != nil {
		h.logger.WarnContext(ctx, "draft cleanup failed",
			"session_id", middleware.GetSessionID(ctx), "error", err)
	}
	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

func (h *Handler) handleCustomerApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applications.ListByCustomer(r.Context(), domain.CustomerID(middleware.GetActorID(r.Context())))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]applicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationResponse(app))
	}
	writeJSON(w, http.StatusOK, map[string]any{"applications": out})
}

func (h *Handler) handleCustomerApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicationID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	app, err := h.applications.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	// Customers see only their own applications.
	if app.CustomerID.String() != middleware.GetActorID(r.Context()) {
		writeError(w, dErrors.New(dErrors.CodeNotFound, "application not found"))
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}
