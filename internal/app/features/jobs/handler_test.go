package jobs_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/app/features/jobs"
	"github.com/medhedtech/medh-backend/internal/domain/models"
	"github.com/medhedtech/medh-backend/internal/testutil"
)

func newTestHandler(t *testing.T) (*jobs.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return jobs.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestHandleCreate(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := map[string]any{
		"title":       "  Senior Go Engineer  ",
		"department":  "Engineering",
		"work_mode":   "remote",
		"description": "<p>Build course infrastructure.</p><script>alert(1)</script>",
		"skills":      []string{"Go", "MongoDB"},
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/jobs", body)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201\nbody: %s", rec.Code, rec.Body.String())
	}

	var created models.Job
	testutil.DecodeEnvelope(t, rec, &created)
	if created.Title != "Senior Go Engineer" {
		t.Errorf("title not trimmed: %q", created.Title)
	}
	if created.Status != models.JobStatusActive {
		t.Errorf("status: got %q, want active", created.Status)
	}
	if strings.Contains(created.Description, "<script") {
		t.Errorf("description not sanitized: %q", created.Description)
	}

	var stored models.Job
	if err := fixtures.DB().Collection("jobs").FindOne(ctx, bson.M{"_id": created.ID}).Decode(&stored); err != nil {
		t.Fatalf("job not persisted: %v", err)
	}
	if stored.TitleCI != "senior go engineer" {
		t.Errorf("title_ci: got %q", stored.TitleCI)
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	handler, _ := newTestHandler(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"description": "d"}},
		{"missing description", map[string]any{"title": "T"}},
		{"bad work mode", map[string]any{"title": "T", "description": "d", "work_mode": "onsite"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/jobs", tt.body)
			rec := httptest.NewRecorder()
			handler.HandleCreate(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleList_PublicExcludesClosed(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateJob(ctx, "Open Role One", models.JobStatusActive)
	fixtures.CreateJob(ctx, "Open Role Two", models.JobStatusActive)
	fixtures.CreateJob(ctx, "Filled Role", models.JobStatusClosed)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Items []models.Job `json:"items"`
		Shown int          `json:"shown"`
	}
	testutil.DecodeEnvelope(t, rec, &data)
	if data.Shown != 2 {
		t.Errorf("shown: got %d, want 2", data.Shown)
	}
	for _, j := range data.Items {
		if j.Status != models.JobStatusActive {
			t.Errorf("public list leaked %q posting %q", j.Status, j.Title)
		}
	}

	// Admin view sees everything.
	rec = httptest.NewRecorder()
	handler.HandleListAll(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/all", nil))
	testutil.DecodeEnvelope(t, rec, &data)
	if data.Shown != 3 {
		t.Errorf("admin shown: got %d, want 3", data.Shown)
	}
}

func TestHandleUpdate(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	job := fixtures.CreateJob(ctx, "Backend Engineer", models.JobStatusActive)

	body := map[string]any{"location": "Hyderabad", "work_mode": "hybrid"}
	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID.Hex(), body)
	req = testutil.WithChiURLParam(req, "id", job.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var stored models.Job
	if err := fixtures.DB().Collection("jobs").FindOne(ctx, bson.M{"_id": job.ID}).Decode(&stored); err != nil {
		t.Fatalf("job lookup failed: %v", err)
	}
	if stored.Location != "Hyderabad" || stored.WorkMode != "hybrid" {
		t.Errorf("update not applied: %+v", stored)
	}
	if stored.Title != "Backend Engineer" {
		t.Errorf("empty title overwrote existing: %q", stored.Title)
	}
}

func TestHandleClose(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	job := fixtures.CreateJob(ctx, "Temporary Role", models.JobStatusActive)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+job.ID.Hex()+"/close", nil)
	req = testutil.WithChiURLParam(req, "id", job.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleClose(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var stored models.Job
	if err := fixtures.DB().Collection("jobs").FindOne(ctx, bson.M{"_id": job.ID}).Decode(&stored); err != nil {
		t.Fatalf("job lookup failed: %v", err)
	}
	if stored.Status != models.JobStatusClosed {
		t.Errorf("status: got %q, want closed", stored.Status)
	}
	if stored.ClosedAt == nil {
		t.Error("closed_at not set")
	}

	// Unknown id.
	missing := "65f000000000000000000099"
	req = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+missing+"/close", nil)
	req = testutil.WithChiURLParam(req, "id", missing)
	rec = httptest.NewRecorder()
	handler.HandleClose(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing job: got %d, want 404", rec.Code)
	}
}
