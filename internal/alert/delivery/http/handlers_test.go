package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pharmaclear-api/internal/alert"
	"pharmaclear-api/internal/model"
	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/scope"
)

type fakeUsecase struct {
	out       alert.SearchOutput
	err       error
	lastInput alert.SearchInput
}

func (f *fakeUsecase) Search(ctx context.Context, sc model.Scope, input alert.SearchInput) (alert.SearchOutput, error) {
	f.lastInput = input
	if f.err != nil {
		return alert.SearchOutput{}, f.err
	}
	return f.out, nil
}

func newTestRouter(uc alert.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1", Email: "u1@example.com"})
		c.Request = c.Request.WithContext(ctx)
	})

	h := New(log.NewNoop(), uc)
	r.GET("/search", h.Search)
	return r
}

func TestSearchHandlerOK(t *testing.T) {
	uc := &fakeUsecase{out: alert.SearchOutput{
		Results: []model.AlertRecord{
			{
				Title:        "Recalled lot",
				Date:         "2024-01-15",
				Source:       model.SourceFDA,
				Severity:     model.SeverityHigh,
				SourceURL:    "https://example.com/1",
				RecallNumber: "D-1-2024",
				EventID:      "100",
			},
		},
		Total: 1,
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?q=aspirin&severity_filter=high", nil)
	newTestRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Data searchResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Data.Total != 1 || len(body.Data.Results) != 1 {
		t.Fatalf("unexpected payload: %+v", body.Data)
	}
	if body.Data.Results[0].RecallNumber != "D-1-2024" {
		t.Errorf("recall_number = %q", body.Data.Results[0].RecallNumber)
	}

	if uc.lastInput.Query != "aspirin" {
		t.Errorf("query passed to usecase = %q", uc.lastInput.Query)
	}
	if uc.lastInput.Filter.Severity != string(model.SeverityHigh) {
		t.Errorf("severity filter passed to usecase = %q", uc.lastInput.Filter.Severity)
	}
	// Unset filters must default to the all sentinel.
	if uc.lastInput.Filter.DateRange != alert.FilterAll || uc.lastInput.Filter.Source != alert.FilterAll {
		t.Errorf("default filters = %+v", uc.lastInput.Filter)
	}
}

func TestSearchHandlerShortQuery(t *testing.T) {
	uc := &fakeUsecase{err: alert.ErrQueryTooShort}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?q=a", nil)
	newTestRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}

func TestSearchHandlerInvalidFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad date filter", "/search?q=aspirin&date_filter=2y"},
		{"bad source filter", "/search?q=aspirin&source_filter=EMA"},
		{"bad severity filter", "/search?q=aspirin&severity_filter=critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.query, nil)
			newTestRouter(uc).ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
			if uc.lastInput.Query != "" {
				t.Error("usecase must not be called for invalid filters")
			}
		})
	}
}
