package httptransport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"aurum/internal/application"
	"aurum/internal/jwttoken"
	"aurum/internal/platform/metrics"
	"aurum/internal/platform/middleware"
	"aurum/internal/transport/http/mocks"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
)

type OfficerHandlerSuite struct {
	suite.Suite
}

func TestOfficerHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfficerHandlerSuite))
}

func (s *OfficerHandlerSuite) newHandler(apps ApplicationService) (http.Handler, string) {
	tokens := jwttoken.NewService("test-signing-key", "aurum-test")
	h := New(Config{
		Logger:       discardLogger(),
		Metrics:      metrics.New(prometheus.NewRegistry()),
		Applications: apps,
		Tokens:       tokens,
		Validator:    jwttoken.NewAdapter(tokens),
		SessionTTL:   time.Hour,
	})
	token, _, err := tokens.Generate("off-1", "Anita Sharma", middleware.RoleOfficer, time.Hour)
	s.Require().NoError(err)
	return NewRouter(h, nil), token
}

func (s *OfficerHandlerSuite) do(router http.Handler, token, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *OfficerHandlerSuite) TestPickUpPassesOfficerName() {
	ctrl := gomock.NewController(s.T())
	mockApps := mocks.NewMockApplicationService(ctrl)
	router, token := s.newHandler(mockApps)

	appID := domain.ApplicationID("GL-1A2B3C4D")
	mockApps.EXPECT().
		PickUp(gomock.Any(), appID, "Anita Sharma").
		Return(application.Application{ID: appID, Status: application.StatusUnderReview}, nil)

	rec := s.do(router, token, http.MethodPost, "/officer/applications/GL-1A2B3C4D/review", map[string]any{})
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("UNDER_REVIEW", body["status"])
}

func (s *OfficerHandlerSuite) TestDecisionConflictMapsTo409() {
	ctrl := gomock.NewController(s.T())
	mockApps := mocks.NewMockApplicationService(ctrl)
	router, token := s.newHandler(mockApps)

	mockApps.EXPECT().
		Decide(gomock.Any(), domain.ApplicationID("GL-1A2B3C4D"), "Anita Sharma", gomock.Any()).
		Return(application.Application{}, dErrors.New(dErrors.CodeInvalidTransition, "application GL-1A2B3C4D is REJECTED, not under review"))

	rec := s.do(router, token, http.MethodPost, "/officer/applications/GL-1A2B3C4D/decision",
		map[string]any{"decision": "reject", "remarks": "Invalid or expired document"})
	s.Equal(http.StatusConflict, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("invalid_transition", body["error"])
}

func (s *OfficerHandlerSuite) TestDecisionRemarksAreTrimmed() {
	ctrl := gomock.NewController(s.T())
	mockApps := mocks.NewMockApplicationService(ctrl)
	router, token := s.newHandler(mockApps)

	mockApps.EXPECT().
		Decide(gomock.Any(), domain.ApplicationID("GL-1A2B3C4D"), "Anita Sharma",
			application.DecideInput{Decision: application.DecisionReject, Remarks: "Document unreadable or blurred"}).
		Return(application.Application{ID: "GL-1A2B3C4D", Status: application.StatusRejected}, nil)

	rec := s.do(router, token, http.MethodPost, "/officer/applications/GL-1A2B3C4D/decision",
		map[string]any{"decision": "reject", "remarks": "  Document unreadable or blurred  "})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *OfficerHandlerSuite) TestMalformedApplicationID() {
	ctrl := gomock.NewController(s.T())
	mockApps := mocks.NewMockApplicationService(ctrl)
	router, token := s.newHandler(mockApps)

	rec := s.do(router, token, http.MethodPost, "/officer/applications/not-an-id/review", map[string]any{})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestSanitizeTrimsNestedStrings(t *testing.T) {
	in := struct {
		Name string
		Tags []string
	}{Name: "  Ravi  ", Tags: []string{" a ", "b "}}
	sanitize(&in)
	assert.Equal(t, "Ravi", in.Name)
	require.Equal(t, []string{"a", "b"}, in.Tags)
}
