package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/girlmathhq/girlmath/internal/engine"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := New(Config{Seed: 42}, engine.New(nil))
	srv := httptest.NewServer(svc.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestScoreEndpoint(t *testing.T) {
	srv := newTestServer(t)

	in := engine.PurchaseInput{
		Price:    "30",
		Category: "clothes",
		Uses:     "20",
		SkipVibe: true,
	}
	resp := postJSON(t, srv.URL+"/v1/score", in)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out ScoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out.Metrics.Score < 0 || out.Metrics.Score > 100 {
		t.Errorf("score = %d, out of range", out.Metrics.Score)
	}
	if out.Metrics.Verdict == "" {
		t.Error("empty verdict")
	}
	if out.Punchline == "" {
		t.Error("empty punchline")
	}
	if out.Insight == "" {
		t.Error("empty insight")
	}
}

func TestScoreRejectsGet(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/score")
	if err != nil {
		t.Fatalf("GET /v1/score: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestScoreRejectsBadBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/score", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("POST /v1/score: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPunchlineEndpoint(t *testing.T) {
	srv := newTestServer(t)

	in := engine.PurchaseInput{Price: "85", Category: "skincare", Mode: "bestie", SkipVibe: true}
	resp := postJSON(t, srv.URL+"/v1/punchline", in)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out PunchlineResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Punchline == "" {
		t.Error("empty punchline")
	}
}

func TestOffersEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/offers?item=silk+scarf&brand=acme&low=20&high=80")
	if err != nil {
		t.Fatalf("GET /v1/offers: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out OffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Offers) != 5 {
		t.Errorf("got %d offers, want 5", len(out.Offers))
	}
	for _, o := range out.Offers {
		if o.Price < 20 || o.Price > 80 {
			t.Errorf("offer price %d outside [20,80]", o.Price)
		}
	}
}

func TestOffersRequiresItem(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/offers")
	if err != nil {
		t.Fatalf("GET /v1/offers: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatusCountsEvaluations(t *testing.T) {
	srv := newTestServer(t)

	in := engine.PurchaseInput{Price: "10", Category: "food", SkipVibe: true}
	for i := 0; i < 3; i++ {
		resp := postJSON(t, srv.URL+"/v1/score", in)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	}

	resp, err := http.Get(srv.URL + "/v1/status")
	if err != nil {
		t.Fatalf("GET /v1/status: %v", err)
	}
	defer resp.Body.Close()

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Evaluations != 3 {
		t.Errorf("evaluations = %d, want 3", status.Evaluations)
	}
	if status.LastVerdict == "" {
		t.Error("last verdict not recorded")
	}
}
