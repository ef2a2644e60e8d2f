package serve

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/flags"
	"tableflip.dev/moodcal/pkg/store"
	"tableflip.dev/moodcal/pkg/window"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	w, err := window.Parse("2025-03", "2025-04")
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	moods := store.NewMoods(store.NewMemorySlot(nil), nil)
	moods.Load()
	svc := &app.Service{Moods: moods, Window: w, Flags: flags.None{}}
	now := func() time.Time { return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC) }
	return NewServer(Config{Addr: ":0", Now: now}, svc, nil)
}

func do(t *testing.T, s *Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	code, body := do(t, s, http.MethodGet, "/healthz", "")
	if code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected healthz %d %v", code, body)
	}
}

func TestPutThenGetMood(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodPut, "/api/v1/moods/2025-04-10", `{"mood":"sad"}`)
	if code != http.StatusOK {
		t.Fatalf("put: %d %v", code, body)
	}

	code, body = do(t, s, http.MethodGet, "/api/v1/moods/2025-04-10", "")
	if code != http.StatusOK {
		t.Fatalf("get: %d %v", code, body)
	}
	data, _ := body["data"].(map[string]any)
	if data["mood"] != "sad" {
		t.Fatalf("expected sad, got %v", body)
	}

	code, _ = do(t, s, http.MethodGet, "/api/v1/moods/2025-04-11", "")
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty day, got %d", code)
	}
}

func TestPutMoodErrors(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		path string
		body string
		want int
	}{
		{"/api/v1/moods/2025-05-01", `{"mood":"happy"}`, http.StatusUnprocessableEntity},
		{"/api/v1/moods/yesterday", `{"mood":"happy"}`, http.StatusBadRequest},
		{"/api/v1/moods/2025-04-01", `{"mood":"elated"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		code, body := do(t, s, http.MethodPut, tc.path, tc.body)
		if code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d %v", tc.path, tc.body, tc.want, code, body)
		}
		if _, ok := body["error"]; !ok {
			t.Fatalf("%s: expected error body, got %v", tc.path, body)
		}
	}
}

func TestCalendarDefaultsToClampedMonth(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodGet, "/api/v1/calendar", "")
	if code != http.StatusOK {
		t.Fatalf("calendar: %d %v", code, body)
	}
	if !strings.Contains(mustJSON(t, body), "2025-04-01") {
		t.Fatalf("expected April 2025 grid, got %v", body)
	}

	code, _ = do(t, s, http.MethodGet, "/api/v1/calendar/2025-13", "")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad month, got %d", code)
	}
}

func TestListMoodsAndSummary(t *testing.T) {
	s := newTestServer(t)
	for _, p := range []string{"/api/v1/moods/2025-03-31", "/api/v1/moods/2025-04-01"} {
		if code, body := do(t, s, http.MethodPut, p, `{"mood":"happy"}`); code != http.StatusOK {
			t.Fatalf("put %s: %d %v", p, code, body)
		}
	}

	code, body := do(t, s, http.MethodGet, "/api/v1/moods?since=2025-04-01", "")
	if code != http.StatusOK {
		t.Fatalf("list: %d %v", code, body)
	}
	meta, _ := body["meta"].(map[string]any)
	if meta["count"] != float64(1) {
		t.Fatalf("expected one record since April, got %v", body)
	}

	code, _ = do(t, s, http.MethodGet, "/api/v1/moods?until=soon", "")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad bound, got %d", code)
	}

	code, body = do(t, s, http.MethodGet, "/api/v1/summary/2025-03", "")
	if code != http.StatusOK {
		t.Fatalf("summary: %d %v", code, body)
	}
	if !strings.Contains(mustJSON(t, body), `"March 2025"`) {
		t.Fatalf("expected March summary, got %v", body)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}
