package courses_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/app/features/courses"
	"github.com/medhedtech/medh-backend/internal/domain/models"
	"github.com/medhedtech/medh-backend/internal/testutil"
)

func newTestHandler(t *testing.T) (*courses.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := courses.NewHandler(db, zap.NewNop())
	return handler, testutil.NewFixtures(t, db)
}

func TestHandleCreate_Success(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := map[string]any{
		"course_type": "live",
		"title":       "Live Data Engineering",
		"category":    "Data",
		"status":      "published",
		"live": map[string]any{
			"total_sessions":       24,
			"session_duration_min": 90,
		},
		"prices": []map[string]any{
			{"currency": "INR", "individual": 14999, "is_active": true},
		},
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/tcourse", body)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201\nbody: %s", rec.Code, rec.Body.String())
	}

	var data struct {
		ID        string `json:"_id"`
		Slug      string `json:"slug"`
		UniqueKey string `json:"unique_key"`
	}
	env := testutil.DecodeEnvelope(t, rec, &data)
	if !env.Success {
		t.Errorf("success=false: %s", env.Message)
	}
	if data.ID == "" || data.UniqueKey == "" {
		t.Errorf("incomplete create payload: %+v", data)
	}
	if data.Slug != "live-data-engineering" {
		t.Errorf("slug: got %q", data.Slug)
	}
}

func TestHandleCreate_RejectsBadShape(t *testing.T) {
	handler, _ := newTestHandler(t)

	// live course carrying a free section
	body := map[string]any{
		"course_type": "live",
		"title":       "Broken",
		"live":        map[string]any{"total_sessions": 5, "session_duration_min": 60},
		"free":        map[string]any{"access_type": "unrestricted"},
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/tcourse", body)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestHandleCreate_RejectsUnknownFields(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := map[string]any{
		"course_type": "free",
		"title":       "X",
		"free":        map[string]any{"access_type": "unrestricted"},
		"bogus_field": true,
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/tcourse", body)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestHandleGet(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Visible Course", models.CourseTypeBlended)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tcourse/"+course.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var got models.Course
	testutil.DecodeEnvelope(t, rec, &got)
	if got.Title != "Visible Course" {
		t.Errorf("title: got %q", got.Title)
	}

	// Bad hex id.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/tcourse/nope", nil)
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec = httptest.NewRecorder()
	handler.HandleGet(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: got %d, want 400", rec.Code)
	}
}

func TestHandleGetBySlug(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Sluggable Course", models.CourseTypeFree)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tcourse/slug/"+course.Slug, nil)
	req = testutil.WithChiURLParam(req, "slug", course.Slug)
	rec := httptest.NewRecorder()
	handler.HandleGetBySlug(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/tcourse/slug/none", nil)
	req = testutil.WithChiURLParam(req, "slug", "none")
	rec = httptest.NewRecorder()
	handler.HandleGetBySlug(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing slug: got %d, want 404", rec.Code)
	}
}

func TestHandleList_FiltersTypeAndStatus(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateCourse(ctx, "Blended One", models.CourseTypeBlended)
	fixtures.CreateCourse(ctx, "Live One", models.CourseTypeLive)
	deleted := fixtures.CreateCourse(ctx, "Gone", models.CourseTypeBlended)

	// Soft-delete one course directly.
	if _, err := fixtures.DB().Collection("courses").UpdateOne(ctx,
		map[string]any{"_id": deleted.ID},
		map[string]any{"$set": map[string]any{"status": models.CourseStatusDeleted}},
	); err != nil {
		t.Fatalf("failed to soft-delete fixture: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tcourse?course_type=blended", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Items []struct {
			Title      string `json:"title"`
			CourseType string `json:"course_type"`
		} `json:"items"`
		Total int64 `json:"total"`
		Shown int   `json:"shown"`
	}
	testutil.DecodeEnvelope(t, rec, &data)

	// Deleted courses never appear in the default list.
	if data.Total != 1 {
		t.Errorf("total: got %d, want 1", data.Total)
	}
	for _, it := range data.Items {
		if it.CourseType != "blended" {
			t.Errorf("leaked course type %q", it.CourseType)
		}
		if it.Title == "Gone" {
			t.Error("soft-deleted course leaked into list")
		}
	}
}

func TestHandleCurriculum(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "No Curriculum Yet", models.CourseTypeBlended)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tcourse/"+course.ID.Hex()+"/curriculum", nil)
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleCurriculum(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	// A course without a curriculum returns an empty array, not null.
	var raw struct {
		Curriculum json.RawMessage `json:"curriculum"`
	}
	testutil.DecodeEnvelope(t, rec, &raw)
	if string(raw.Curriculum) == "null" {
		t.Error("curriculum serialized as null, want []")
	}
}

func TestHandleDelete(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "To Delete", models.CourseTypeFree)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tcourse/"+course.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var got models.Course
	if err := fixtures.DB().Collection("courses").FindOne(ctx, map[string]any{"_id": course.ID}).Decode(&got); err != nil {
		t.Fatalf("course disappeared: %v", err)
	}
	if got.Status != models.CourseStatusDeleted {
		t.Errorf("status: got %q, want deleted", got.Status)
	}
}
