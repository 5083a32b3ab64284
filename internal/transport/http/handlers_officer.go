package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aurum/internal/application"
	"aurum/internal/platform/middleware"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/masking"
)

type officerLoginRequest struct {
	EmpCode string `json:"emp_code"`
	PIN     string `json:"pin"`
}

func (h *Handler) handleOfficerLogin(w http.ResponseWriter, r *http.Request) {
	var in officerLoginRequest
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}

	o, err := h.officers.Authenticate(r.Context(), in.EmpCode, in.PIN)
	if err != nil {
		writeError(w, err)
		return
	}
	token, _, err := h.tokens.Generate(o.ID.String(), o.Name, middleware.RoleOfficer, h.sessionTTL)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "token generation failed", "error", err)
		writeError(w, dErrors.New(dErrors.CodeInternal, "could not start session"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"officer_id": o.ID.String(),
		"name":       o.Name,
		"expires_in": int64(h.sessionTTL / time.Second),
	})
}

func (h *Handler) handlePendingApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applications.ListPending(r.Context())
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

// reviewResponse is the officer's screen for one application: the declared
// identity (masked), the extracted identity, and the field-by-field match.
type reviewResponse struct {
	Application applicationResponse `json:"application"`
	Customer    struct {
		FullName string `json:"full_name"`
		DOB      string `json:"dob"`
		IDLast4  string `json:"id_last4"`
	} `json:"customer"`
	Match struct {
		NameMatch bool   `json:"name_match"`
		DOBMatch  bool   `json:"dob_match"`
		IDMatch   bool   `json:"id_match"`
		Risk      string `json:"risk"`
		Reason    string `json:"reason"`
	} `json:"match"`
}

func (h *Handler) handleReviewBundle(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicationID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bundle, err := h.applications.ReviewBundle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var out reviewResponse
	out.Application = toApplicationResponse(bundle.Application)
	out.Customer.FullName = bundle.CustomerName
	out.Customer.DOB = masking.DOB(bundle.Declared.DOB)
	out.Customer.IDLast4 = bundle.Declared.IDLast4
	out.Match.NameMatch = bundle.Match.NameMatch
	out.Match.DOBMatch = bundle.Match.DOBMatch
	out.Match.IDMatch = bundle.Match.IDMatch
	out.Match.Risk = string(bundle.Match.Risk)
	out.Match.Reason = bundle.Match.Reason
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handlePickUp(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicationID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	app, err := h.applications.PickUp(r.Context(), id, middleware.GetActorName(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicationID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in application.DecideInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}

	app, err := h.applications.Decide(r.Context(), id, middleware.GetActorName(r.Context()), in)
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.IncDecision(string(app.Status))
	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

type auditEntryResponse struct {
	Timestamp string `json:"timestamp"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Remarks   string `json:"remarks"`
}

func (h *Handler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicationID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	trail, err := h.auditTrail.List(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]auditEntryResponse, 0, len(trail))
	for _, e := range trail {
		out = append(out, auditEntryResponse{
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
			Actor:     e.Actor,
			Action:    e.Action,
			Remarks:   e.Remarks,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"audit_trail": out})
}

func parseApplicationID(r *http.Request) (domain.ApplicationID, error) {
	id, err := domain.ParseApplicationID(chi.URLParam(r, "id"))
	if err != nil {
		return "", dErrors.New(dErrors.CodeValidation, "invalid application id")
	}
	return id, nil
}
