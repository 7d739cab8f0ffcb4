package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jonkomane982/student-feedback-app/internal/models/db_models"
	"github.com/Jonkomane982/student-feedback-app/internal/repositories"
	"github.com/Jonkomane982/student-feedback-app/internal/services"
)

type memFeedbackRepo struct {
	rows   map[int]db_models.Feedback
	nextID int
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{rows: make(map[int]db_models.Feedback), nextID: 1}
}

func (m *memFeedbackRepo) ListAll(ctx context.Context) ([]db_models.Feedback, error) {
	out := make([]db_models.Feedback, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmissionDate.After(out[j].SubmissionDate)
	})
	return out, nil
}

func (m *memFeedbackRepo) GetByID(ctx context.Context, id int) (*db_models.Feedback, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (m *memFeedbackRepo) Create(ctx context.Context, feedback *db_models.Feedback) error {
	feedback.FeedbackID = m.nextID
	feedback.SubmissionDate = time.Now()
	m.rows[m.nextID] = *feedback
	m.nextID++
	return nil
}

func (m *memFeedbackRepo) Update(ctx context.Context, id int, feedback *db_models.Feedback) (*db_models.Feedback, error) {
	existing, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	existing.StudentName = feedback.StudentName
	existing.CourseCode = feedback.CourseCode
	existing.Comments = feedback.Comments
	existing.Rating = feedback.Rating
	m.rows[id] = existing
	return &existing, nil
}

func (m *memFeedbackRepo) Delete(ctx context.Context, id int) (*db_models.Feedback, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return &row, nil
}

func (m *memFeedbackRepo) ListByCourse(ctx context.Context, courseCode string) ([]db_models.Feedback, error) {
	out := []db_models.Feedback{}
	for _, row := range m.rows {
		if row.CourseCode == courseCode {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmissionDate.After(out[j].SubmissionDate)
	})
	return out, nil
}

func (m *memFeedbackRepo) Stats(ctx context.Context) (*repositories.StatsRow, error) {
	students := map[string]bool{}
	courses := map[string]bool{}
	var sum int
	for _, row := range m.rows {
		students[row.StudentName] = true
		courses[row.CourseCode] = true
		sum += row.Rating
	}
	stats := &repositories.StatsRow{
		TotalFeedbacks: int64(len(m.rows)),
		TotalStudents:  int64(len(students)),
		TotalCourses:   int64(len(courses)),
	}
	if len(m.rows) > 0 {
		stats.AverageRating = float64(int(float64(sum)/float64(len(m.rows))*100+0.5)) / 100
	}
	return stats, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupRouter(repo *memFeedbackRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewFeedbackController(services.NewFeedbackService(repo))

	r := gin.New()
	group := r.Group("/api/feedback")
	group.GET("", controller.ListFeedback)
	group.GET("/dashboard/stats", controller.GetDashboardStats)
	group.GET("/course/:courseId", controller.ListFeedbackByCourse)
	group.GET("/lecturer/:lecturerId", controller.ListFeedbackByLecturer)
	group.GET("/:id", controller.GetFeedback)
	group.POST("", controller.CreateFeedback)
	group.PUT("/:id", controller.UpdateFeedback)
	group.DELETE("/:id", controller.DeleteFeedback)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}

func TestCreateFeedback(t *testing.T) {
	repo := newMemFeedbackRepo()
	r := setupRouter(repo)

	before := time.Now()
	w, env := doJSON(t, r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"student_name": "A",
		"course_code":  "C1",
		"comments":     "good",
		"rating":       5,
	})
	after := time.Now()

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !env.Success {
		t.Error("expected success envelope")
	}

	var created db_models.Feedback
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if created.Rating != 5 {
		t.Errorf("expected data.rating == 5, got %d", created.Rating)
	}
	if created.FeedbackID == 0 {
		t.Error("expected a server-assigned feedback_id")
	}
	if created.SubmissionDate.Before(before.Add(-time.Second)) || created.SubmissionDate.After(after.Add(time.Second)) {
		t.Errorf("submission_date %v outside test window", created.SubmissionDate)
	}
}

func TestCreateFeedbackRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing student_name", map[string]interface{}{"course_code": "C1", "comments": "x", "rating": 3}},
		{"missing course_code", map[string]interface{}{"student_name": "A", "comments": "x", "rating": 3}},
		{"missing comments", map[string]interface{}{"student_name": "A", "course_code": "C1", "rating": 3}},
		{"missing rating", map[string]interface{}{"student_name": "A", "course_code": "C1", "comments": "x"}},
		{"rating zero", map[string]interface{}{"student_name": "A", "course_code": "C1", "comments": "x", "rating": 0}},
		{"rating six", map[string]interface{}{"student_name": "A", "course_code": "C1", "comments": "x", "rating": 6}},
		{"name too long", map[string]interface{}{"student_name": strings.Repeat("a", 101), "course_code": "C1", "comments": "x", "rating": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemFeedbackRepo()
			r := setupRouter(repo)

			w, env := doJSON(t, r, http.MethodPost, "/api/feedback", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if env.Success {
				t.Error("expected failure envelope")
			}
			if len(repo.rows) != 0 {
				t.Errorf("expected no row persisted, got %d", len(repo.rows))
			}
		})
	}
}

func TestCreateThenFetchRoundTrip(t *testing.T) {
	repo := newMemFeedbackRepo()
	r := setupRouter(repo)

	_, createEnv := doJSON(t, r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"student_name": "A",
		"course_code":  "C1",
		"comments":     "good",
		"rating":       5,
	})

	var created db_models.Feedback
	if err := json.Unmarshal(createEnv.Data, &created); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}

	w, fetchEnv := doJSON(t, r, http.MethodGet, "/api/feedback/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var fetched db_models.Feedback
	if err := json.Unmarshal(fetchEnv.Data, &fetched); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if fetched.StudentName != created.StudentName ||
		fetched.CourseCode != created.CourseCode ||
		fetched.Comments != created.Comments ||
		fetched.Rating != created.Rating {
		t.Errorf("round-trip mismatch: created %+v, fetched %+v", created, fetched)
	}
}

func TestGetFeedbackErrors(t *testing.T) {
	r := setupRouter(newMemFeedbackRepo())

	w, _ := doJSON(t, r, http.MethodGet, "/api/feedback/99", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing row, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/feedback/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestUpdateFeedback(t *testing.T) {
	repo := newMemFeedbackRepo()
	r := setupRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"student_name": "A", "course_code": "C1", "comments": "good", "rating": 5,
	})

	w, env := doJSON(t, r, http.MethodPut, "/api/feedback/1", map[string]interface{}{
		"student_name": "A", "course_code": "C1", "comments": "meh after the exam", "rating": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated db_models.Feedback
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if updated.Rating != 2 || updated.Comments != "meh after the exam" {
		t.Errorf("update not applied: %+v", updated)
	}

	w, _ = doJSON(t, r, http.MethodPut, "/api/feedback/99", map[string]interface{}{
		"student_name": "A", "course_code": "C1", "comments": "x", "rating": 2,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing row, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPut, "/api/feedback/1", map[string]interface{}{
		"student_name": "A", "course_code": "C1", "comments": "x", "rating": 9,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad rating, got %d", w.Code)
	}
}

func TestDeleteFeedbackTwice(t *testing.T) {
	repo := newMemFeedbackRepo()
	r := setupRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"student_name": "A", "course_code": "C1", "comments": "good", "rating": 5,
	})

	w, env := doJSON(t, r, http.MethodDelete, "/api/feedback/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", w.Code)
	}

	var deleted db_models.Feedback
	if err := json.Unmarshal(env.Data, &deleted); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if deleted.FeedbackID != 1 {
		t.Errorf("expected deleted row 1, got %d", deleted.FeedbackID)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/feedback/1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", w.Code)
	}
}

func TestListFeedbackIncludesCount(t *testing.T) {
	repo := newMemFeedbackRepo()
	r := setupRouter(repo)

	w, env := doJSON(t, r, http.MethodGet, "/api/feedback", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if env.Count == nil || *env.Count != 0 {
		t.Errorf("expected count 0 on empty list, got %v", env.Count)
	}

	doJSON(t, r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"student_name": "A", "course_code": "C1", "comments": "good", "rating": 5,
	})
	doJSON(t, r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"student_name": "B", "course_code": "C2", "comments": "fine", "rating": 3,
	})

	_, env = doJSON(t, r, http.MethodGet, "/api/feedback", nil)
	if env.Count == nil || *env.Count != 2 {
		t.Errorf("expected count 2, got %v", env.Count)
	}
}

func TestListFeedbackByCourseFilters(t *testing.T) {
	repo := newMemFeedbackRepo()
	r := setupRouter(repo)

	for _, seed := range []map[string]interface{}{
		{"student_name": "A", "course_code": "C1", "comments": "x", "rating": 5},
		{"student_name": "B", "course_code": "C2", "comments": "x", "rating": 3},
		{"student_name": "C", "course_code": "C1", "comments": "x", "rating": 4},
	} {
		doJSON(t, r, http.MethodPost, "/api/feedback", seed)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/feedback/course/C1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if env.Count == nil || *env.Count != 2 {
		t.Fatalf("expected count 2, got %v", env.Count)
	}

	var rows []db_models.Feedback
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	for _, row := range rows {
		if row.CourseCode != "C1" {
			t.Errorf("row %d has course %q, want C1", row.FeedbackID, row.CourseCode)
		}
	}
}

func TestDashboardStatsSingleRow(t *testing.T) {
	repo := newMemFeedbackRepo()
	r := setupRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"student_name": "A", "course_code": "C1", "comments": "good", "rating": 5,
	})

	w, env := doJSON(t, r, http.MethodGet, "/api/feedback/dashboard/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stats struct {
		TotalFeedbacks int64   `json:"total_feedbacks"`
		TotalStudents  int64   `json:"total_students"`
		TotalCourses   int64   `json:"total_courses"`
		AverageRating  float64 `json:"average_rating"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if stats.TotalFeedbacks != 1 || stats.TotalStudents != 1 || stats.TotalCourses != 1 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.AverageRating != 5.00 {
		t.Errorf("expected average_rating 5.00, got %v", stats.AverageRating)
	}
}

func TestLecturerFeedbackReturnsAll(t *testing.T) {
	repo := newMemFeedbackRepo()
	r := setupRouter(repo)

	for _, seed := range []map[string]interface{}{
		{"student_name": "A", "course_code": "C1", "comments": "x", "rating": 5},
		{"student_name": "B", "course_code": "C2", "comments": "x", "rating": 3},
	} {
		doJSON(t, r, http.MethodPost, "/api/feedback", seed)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/feedback/lecturer/7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if env.Count == nil || *env.Count != 2 {
		t.Errorf("expected all feedback back, got count %v", env.Count)
	}
}
