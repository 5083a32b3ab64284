package httptransport

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"aurum/internal/customer"
	"aurum/internal/notification"
	"aurum/internal/platform/middleware"
	"aurum/internal/policy"
	"aurum/internal/visit"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/masking"
)

type loginRequest struct {
	Mobile string `json:"mobile"`
	PIN    string `json:"pin"`
}

type loginResponse struct {
	Token      string `json:"token"`
	CustomerID string `json:"customer_id"`
	FullName   string `json:"full_name"`
	ExpiresIn  int64  `json:"expires_in"`
}

// profileResponse shows the customer their own record with sensitive
// fields masked. There is no endpoint that returns them unmasked.
type profileResponse struct {
	CustomerID string `json:"customer_id"`
	FullName   string `json:"full_name"`
	DOB        string `json:"dob"`
	Gender     string `json:"gender"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	PAN        string `json:"pan"`
	Aadhaar    string `json:"aadhaar"`
}

func maskedProfile(c customer.Customer) profileResponse {
	return profileResponse{
		CustomerID: c.ID.String(),
		FullName:   c.FullName,
		DOB:        masking.DOB(c.DOB),
		Gender:     c.Gender,
		Mobile:     masking.Mobile(c.Mobile),
		Email:      c.Email,
		Address:    c.Address,
		PAN:        masking.PAN(c.PAN),
		Aadhaar:    masking.AadhaarLast4(c.Aadhaar),
	}
}

func (h *Handler) handleCustomerRegister(w http.ResponseWriter, r *http.Request) {
	var in customer.RegisterInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.customers.Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.CustomersRegistered.Inc()
	h.logger.InfoContext(r.Context(), "customer registered",
		"request_id", middleware.GetRequestID(r.Context()),
		"customer_id", c.ID,
	)
	writeJSON(w, http.StatusCreated, map[string]string{
		"customer_id": c.ID.String(),
		"full_name":   c.FullName,
	})
}

func (h *Handler) handleCustomerLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.customers.Authenticate(r.Context(), in.Mobile, in.PIN)
	if err != nil {
		writeError(w, err)
		return
	}
	token, _, err := h.tokens.Generate(c.ID.String(), c.FullName, middleware.RoleCustomer, h.sessionTTL)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "token generation failed", "error", err)
		writeError(w, dErrors.New(dErrors.CodeInternal, "could not start session"))
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token:      token,
		CustomerID: c.ID.String(),
		FullName:   c.FullName,
		ExpiresIn:  int64(h.sessionTTL / time.Second),
	})
}

func (h *Handler) handleCustomerProfile(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.Get(r.Context(), domain.CustomerID(middleware.GetActorID(r.Context())))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, maskedProfile(c))
}

type notificationResponse struct {
	ApplicationID string `json:"application_id"`
	Sender        string `json:"sender"`
	Message       string `json:"message"`
	CreatedAt     string `json:"created_at"`
}

func (h *Handler) handleCustomerNotifications(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notifications.ListByCustomer(r.Context(), domain.CustomerID(middleware.GetActorID(r.Context())))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]notificationResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNotificationResponse(n))
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": out})
}

func toNotificationResponse(n notification.Notification) notificationResponse {
	return notificationResponse{
		ApplicationID: n.ApplicationID.String(),
		Sender:        string(n.Sender),
		Message:       n.Message,
		CreatedAt:     n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) handleListBranches(w http.ResponseWriter, _ *http.Request) {
	type branch struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	out := make([]branch, 0, len(visit.Branches))
	for name, code := range visit.Branches {
		out = append(out, branch{Name: name, Code: code})
	}
	// Map order is random; keep the payload stable for clients.
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	writeJSON(w, http.StatusOK, map[string]any{"branches": out})
}

// handleLoanQuote returns an indicative EMI for the requested terms. The
// quote does not reserve anything and is not persisted.
func (h *Handler) handleLoanQuote(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil || amount <= 0 {
		writeError(w, dErrors.New(dErrors.CodeValidation, "amount must be a positive integer"))
		return
	}
	tenure, err := strconv.Atoi(r.URL.Query().Get("tenure_months"))
	if err != nil || tenure < policy.MinTenureMonths || tenure > policy.MaxTenureMonths {
		writeError(w, dErrors.Newf(dErrors.CodeValidation,
			"tenure_months must be between %d and %d", policy.MinTenureMonths, policy.MaxTenureMonths))
		return
	}
	writeJSON(w, http.StatusOK, policy.EMI(amount, policy.DefaultAnnualRate, tenure))
}
