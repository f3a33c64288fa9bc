package migrate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/migrate"
)

func jsonResp(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestNewClient_Validation(t *testing.T) {
	log := zap.NewNop()
	if _, err := migrate.NewClient("localhost:8080", "tok", log); err == nil {
		t.Error("expected error for non-absolute base URL")
	}
	if _, err := migrate.NewClient("http://localhost:8080", "", log); err == nil {
		t.Error("expected error for missing token")
	}
	if _, err := migrate.NewClient("http://localhost:8080/", "tok", log); err != nil {
		t.Errorf("trailing slash rejected: %v", err)
	}
}

func TestClient_SlugExists(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/api/v1/tcourse/slug/taken":
			jsonResp(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{}})
		case "/api/v1/tcourse/slug/open":
			jsonResp(w, http.StatusNotFound, map[string]any{"success": false, "error": "course not found"})
		default:
			jsonResp(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "boom"})
		}
	}))
	defer srv.Close()

	// Trailing slash on the base URL must not produce double-slash paths.
	c, err := migrate.NewClient(srv.URL+"/", "secret-token", zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	ctx := context.Background()

	exists, err := c.SlugExists(ctx, "taken")
	if err != nil || !exists {
		t.Errorf("taken: got (%v, %v), want (true, nil)", exists, err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization header: got %q", gotAuth)
	}
	exists, err = c.SlugExists(ctx, "open")
	if err != nil || exists {
		t.Errorf("open: got (%v, %v), want (false, nil)", exists, err)
	}
	if _, err := c.SlugExists(ctx, "broken"); err == nil {
		t.Error("expected error on 500")
	}
}

func TestClient_CreateCourse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/tcourse" {
			jsonResp(w, http.StatusNotFound, map[string]any{"success": false, "error": "not found"})
			return
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			jsonResp(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
			return
		}
		if payload["title"] == "" {
			jsonResp(w, http.StatusBadRequest, map[string]any{"success": false, "error": "title is required"})
			return
		}
		jsonResp(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "65f000000000000000000001"},
		})
	}))
	defer srv.Close()

	c, err := migrate.NewClient(srv.URL, "tok", zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	ctx := context.Background()
	id, err := c.CreateCourse(ctx, map[string]any{"title": "New Course", "course_type": "blended"})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if id != "65f000000000000000000001" {
		t.Errorf("id: got %q", id)
	}

	if _, err := c.CreateCourse(ctx, map[string]any{"title": ""}); err == nil {
		t.Error("expected error on 400 response")
	}
}

// legacyServer serves a fixed legacy collection the way the real
// handler does: per-request limit clamped to 1..100 (default 20) and an
// ?after=<id> cursor, so fetching everything takes multiple requests.
func legacyServer(t *testing.T, total int) *httptest.Server {
	t.Helper()
	docs := make([]map[string]any, total)
	for i := range docs {
		docs[i] = map[string]any{
			"_id":          fmt.Sprintf("%024x", i+1),
			"course_title": fmt.Sprintf("Legacy Course %d", i+1),
		}
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/legacy-courses" {
			jsonResp(w, http.StatusNotFound, map[string]any{"success": false, "error": "not found"})
			return
		}
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil || limit < 1 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}
		after := r.URL.Query().Get("after")
		var page []map[string]any
		for _, d := range docs {
			if after != "" && d["_id"].(string) <= after {
				continue
			}
			page = append(page, d)
			if len(page) == limit {
				break
			}
		}
		jsonResp(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"items": page, "shown": len(page), "total": total},
		})
	}))
}

func TestClient_FetchLegacy_PagesThroughCollection(t *testing.T) {
	srv := legacyServer(t, 250)
	defer srv.Close()

	c, err := migrate.NewClient(srv.URL, "tok", zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	ctx := context.Background()

	// limit 0 walks every page, well past the per-request cap.
	rows, err := c.FetchLegacy(ctx, 0)
	if err != nil {
		t.Fatalf("FetchLegacy failed: %v", err)
	}
	if len(rows) != 250 {
		t.Fatalf("rows: got %d, want 250", len(rows))
	}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		id := r["_id"].(string)
		if seen[id] {
			t.Fatalf("duplicate document %s across pages", id)
		}
		seen[id] = true
	}
	if rows[0]["course_title"] != "Legacy Course 1" || rows[249]["course_title"] != "Legacy Course 250" {
		t.Errorf("ordering lost: first=%v last=%v", rows[0]["course_title"], rows[249]["course_title"])
	}
}

func TestClient_FetchLegacy_HonorsLimit(t *testing.T) {
	srv := legacyServer(t, 250)
	defer srv.Close()

	c, err := migrate.NewClient(srv.URL, "tok", zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	rows, err := c.FetchLegacy(context.Background(), 150)
	if err != nil {
		t.Fatalf("FetchLegacy failed: %v", err)
	}
	if len(rows) != 150 {
		t.Errorf("rows: got %d, want 150", len(rows))
	}
}

func analyzeServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/legacy-courses":
			jsonResp(w, http.StatusOK, map[string]any{
				"success": true,
				"data": map[string]any{"items": []map[string]any{
					{"course_title": "A", "class_type": "live", "course_fee": 100},
					{"course_title": "B", "status": "active"},
				}},
			})
		case "/api/v1/tcourse":
			jsonResp(w, http.StatusOK, map[string]any{
				"success": true,
				"data": map[string]any{"items": []map[string]any{
					{"title": "C", "course_type": r.URL.Query().Get("course_type"), "status": "published"},
				}},
			})
		default:
			jsonResp(w, http.StatusNotFound, map[string]any{"success": false, "error": "not found"})
		}
	}))
}

func TestAnalyze(t *testing.T) {
	srv := analyzeServer()
	defer srv.Close()

	c, err := migrate.NewClient(srv.URL, "tok", zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	report, err := migrate.Analyze(context.Background(), c, 50)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.LegacyCount != 2 {
		t.Errorf("LegacyCount: got %d, want 2", report.LegacyCount)
	}
	wantLegacyOnly := []string{"class_type", "course_fee", "course_title"}
	if !reflect.DeepEqual(report.LegacyOnly, wantLegacyOnly) {
		t.Errorf("LegacyOnly: got %v, want %v", report.LegacyOnly, wantLegacyOnly)
	}
	wantNewOnly := []string{"course_type", "title"}
	if !reflect.DeepEqual(report.NewOnly, wantNewOnly) {
		t.Errorf("NewOnly: got %v, want %v", report.NewOnly, wantNewOnly)
	}
	if !reflect.DeepEqual(report.Common, []string{"status"}) {
		t.Errorf("Common: got %v", report.Common)
	}
	if rec := report.Recommendations["course_fee"]; rec == "" || rec == "no automatic mapping; review manually" {
		t.Errorf("course_fee should have a concrete recommendation, got %q", rec)
	}
	if rec := report.Recommendations["course_title"]; rec != "rename to title" {
		t.Errorf("course_title recommendation: got %q", rec)
	}
}

// Apart from the generation timestamp, the same snapshots must encode
// to the same report bytes run after run.
func TestAnalyze_Deterministic(t *testing.T) {
	srv := analyzeServer()
	defer srv.Close()

	c, err := migrate.NewClient(srv.URL, "tok", zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	ctx := context.Background()

	first, err := migrate.Analyze(ctx, c, 50)
	if err != nil {
		t.Fatalf("first Analyze failed: %v", err)
	}
	second, err := migrate.Analyze(ctx, c, 50)
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}

	first.GeneratedAt = time.Time{}
	second.GeneratedAt = time.Time{}
	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("reports differ for identical snapshots:\n%s\n%s", a, b)
	}
}
