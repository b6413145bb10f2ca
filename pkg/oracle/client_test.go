package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/opora-health/opora_backend/config"
)

func testClient(baseURL string) *Client {
	return New(config.OracleConfig{
		BaseURL:                baseURL,
		APIKey:                 "test-key",
		CatalogTimeoutSeconds:  2,
		QuestionTimeoutSeconds: 2,
		ReportTimeoutSeconds:   2,
		MaxAttempts:            3,
	})
}

func TestSymptomCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/get-symptoms" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"symptoms":[{"id":"s1","name":"Anxiety","clarifications":["worry"]}]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).SymptomCatalog(context.Background())
	if err != nil {
		t.Fatalf("SymptomCatalog() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Anxiety" {
		t.Errorf("SymptomCatalog() = %+v", got)
	}
}

func TestVariantsSendsComplaint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["complaint"] != "I feel low" {
			t.Errorf("complaint = %q", body["complaint"])
		}
		w.Write([]byte(`{"variants":["a","b"]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Variants(context.Background(), "I feel low")
	if err != nil {
		t.Fatalf("Variants() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Variants() = %v", got)
	}
}

func TestStageQuestionsFencedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate-part2" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte("```json\n{\"questions\":[{\"id\":\"q1\",\"text\":\"hi\",\"type\":\"scale_1_10\"}]}\n```"))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).StageQuestions(context.Background(), 2, PromptContext{Complaint: "x"})
	if err != nil {
		t.Fatalf("StageQuestions() error = %v", err)
	}
	if len(got) != 1 || got[0].Type != "scale_1_10" {
		t.Errorf("StageQuestions() = %+v", got)
	}
}

func TestStageQuestionsRejectsUnknownStage(t *testing.T) {
	if _, err := testClient("http://unused").StageQuestions(context.Background(), 3, PromptContext{}); err == nil {
		t.Error("expected an error for stage 3, which has its own endpoint")
	}
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"symptoms":[{"id":"s1","name":"Anxiety"}]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).SymptomCatalog(context.Background())
	if err != nil {
		t.Fatalf("SymptomCatalog() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("SymptomCatalog() = %+v", got)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("server called %d times, want 3", n)
	}
}

func TestNoRetryOnMalformedBody(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SymptomCatalog(context.Background())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("SymptomCatalog() error = %v, want ErrMalformed", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("malformed body retried %d times, want a single attempt", n)
	}
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SymptomCatalog(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("SymptomCatalog() error = %v, want ErrUnavailable", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("4xx retried %d times, want a single attempt", n)
	}
}

func TestGenerateReportSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate-results" {
			t.Errorf("path = %s", r.URL.Path)
		}
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateReport(context.Background(), PromptContext{Complaint: "x"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("GenerateReport() error = %v, want ErrUnavailable", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("report generation attempted %d times, want exactly 1", n)
	}
}

func TestUnreachableServer(t *testing.T) {
	// a closed server refuses connections
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testClient(srv.URL).Variants(context.Background(), "x")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Variants() error = %v, want ErrUnavailable", err)
	}
}

func TestPromptContextWireKeys(t *testing.T) {
	pc := PromptContext{
		Complaint:     "c",
		Symptoms:      map[string]SymptomSelection{"s1": {Details: "d"}},
		Stage1Answers: map[string]any{"q1": "a"},
		Stage2Answers: map[string]any{"q2": 5},
	}
	raw, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"generalDescription", "symptoms", "answersPart1", "answersPart2"} {
		if _, ok := got[key]; !ok {
			t.Errorf("wire payload missing %q: %s", key, raw)
		}
	}
	if _, ok := got["answersPart3"]; ok {
		t.Error("empty stage-3 answers should be omitted")
	}
}
