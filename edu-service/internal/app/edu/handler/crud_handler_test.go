package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"
	"aussieedu/edu-service/internal/app/edu/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestRootAndHealth(t *testing.T) {
	env := newTestEnv(nil)

	w := env.do(http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AussieEdu API is running", w.Body.String())

	w = env.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"edu-service"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(nil)

	w := env.do(http.MethodOptions, "/api/inquiries", nil, map[string]string{
		"Origin":                        "https://aussieedu.example",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// ===================== inquiries =====================

func TestCreateInquiryHandler(t *testing.T) {
	env := newTestEnv(nil)
	env.inquiries.On("CreateInquiry", mock.Anything, mock.MatchedBy(func(req *entity.CreateInquiryRequest) bool {
		return req.Email == "jane@example.com" && req.PreferredCourse == "Nursing"
	})).Return(&entity.Inquiry{
		ID:              primitive.NewObjectID(),
		Name:            "Jane",
		Email:           "jane@example.com",
		Phone:           "+61 400 000 000",
		Message:         "Interested in nursing programs",
		PreferredCourse: "Nursing",
		Status:          "new",
		CreatedAt:       time.Now().UTC(),
	}, nil)

	body := `{"name":"Jane","email":"jane@example.com","phone":"+61 400 000 000","message":"Interested in nursing programs","preferredCourse":"Nursing"}`
	w := env.do(http.MethodPost, "/api/inquiries", strings.NewReader(body), jsonHeaders)

	require.Equal(t, http.StatusCreated, w.Code)
	var inquiry entity.Inquiry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inquiry))
	assert.Equal(t, "new", inquiry.Status)
	env.inquiries.AssertExpectations(t)
}

func TestCreateInquiryHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing name", `{"email":"jane@example.com","phone":"1","message":"hi"}`, "name is required"},
		{"bad status", `{"name":"J","email":"jane@example.com","phone":"1","message":"hi","status":"archived"}`, "status must be one of: new in-progress contacted closed"},
		{"bad email", `{"name":"J","email":"not-an-email","phone":"1","message":"hi"}`, ""},
		{"unknown field", `{"name":"J","email":"jane@example.com","phone":"1","message":"hi","priority":"high"}`, ""},
		{"malformed", `{"name":`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(nil)

			w := env.do(http.MethodPost, "/api/inquiries", strings.NewReader(tt.body), jsonHeaders)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, decodeMessage(t, w))
			}
			env.inquiries.AssertNotCalled(t, "CreateInquiry", mock.Anything, mock.Anything)
		})
	}
}

func TestListInquiriesByEmailHandler(t *testing.T) {
	env := newTestEnv(nil)
	env.inquiries.On("ListInquiriesByEmail", mock.Anything, "jane@example.com").
		Return([]entity.Inquiry{{Name: "Jane", Email: "jane@example.com", Status: "new"}}, nil)

	w := env.do(http.MethodGet, "/api/inquiries/user/jane@example.com", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var inquiries []entity.Inquiry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inquiries))
	assert.Len(t, inquiries, 1)
}

func TestUpdateInquiryHandler(t *testing.T) {
	env := newTestEnv(nil)
	env.inquiries.On("UpdateInquiry", mock.Anything, "i-1", mock.MatchedBy(func(req *entity.UpdateInquiryRequest) bool {
		return req.Status != nil && *req.Status == "contacted" && req.Name == nil
	})).Return(&entity.Inquiry{Status: "contacted"}, nil)

	w := env.do(http.MethodPatch, "/api/inquiries/i-1", strings.NewReader(`{"status":"contacted"}`), jsonHeaders)

	assert.Equal(t, http.StatusOK, w.Code)
	env.inquiries.AssertExpectations(t)
}

// ===================== consultations =====================

func TestBookConsultationHandler(t *testing.T) {
	env := newTestEnv(nil)
	env.consultations.On("BookConsultation", mock.Anything, mock.Anything).Return(&entity.Consultation{
		ID:               primitive.NewObjectID(),
		Name:             "Sam",
		Email:            "sam@example.com",
		Date:             time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:             "10:30",
		ConsultationType: "virtual",
		Status:           "scheduled",
	}, nil)

	body := `{"name":"Sam","email":"sam@example.com","phone":"0400","date":"2026-11-02","time":"10:30","consultationType":"virtual"}`
	w := env.do(http.MethodPost, "/api/consultations", strings.NewReader(body), jsonHeaders)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"scheduled"`)

	body = `{"name":"Sam","email":"sam@example.com","phone":"0400","date":"2026-11-02","time":"10:30","consultationType":"carrier-pigeon"}`
	w = env.do(http.MethodPost, "/api/consultations", strings.NewReader(body), jsonHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.consultations.AssertNumberOfCalls(t, "BookConsultation", 1)
}

func TestBookConsultationHandler_InvalidDate(t *testing.T) {
	env := newTestEnv(nil)
	env.consultations.On("BookConsultation", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC 3339", service.ErrValidation))

	body := `{"name":"Sam","email":"sam@example.com","phone":"0400","date":"next tuesday","time":"10:30","consultationType":"phone"}`
	w := env.do(http.MethodPost, "/api/consultations", strings.NewReader(body), jsonHeaders)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "date must be YYYY-MM-DD or RFC 3339", decodeMessage(t, w))
}

// ===================== testimonials / universities =====================

func TestListFeaturedTestimonialsHandler(t *testing.T) {
	env := newTestEnv(nil)
	env.testimonials.On("ListFeaturedTestimonials", mock.Anything).
		Return([]entity.Testimonial{{Name: "Priya", Featured: true}}, nil)

	w := env.do(http.MethodGet, "/api/testimonials/featured", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"featured":true`)
	env.testimonials.AssertNotCalled(t, "GetTestimonial", mock.Anything, mock.Anything)
}

func TestListUniversitiesHandler(t *testing.T) {
	env := newTestEnv(nil)
	env.universities.On("ListUniversities", mock.Anything).Return([]entity.University{}, nil)

	w := env.do(http.MethodGet, "/api/universities", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListUniversitiesHandler_Error(t *testing.T) {
	env := newTestEnv(nil)
	env.universities.On("ListUniversities", mock.Anything).Return(nil, errors.New("connection reset"))

	w := env.do(http.MethodGet, "/api/universities", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, w))
}

func TestCreateUniversityHandler_Validation(t *testing.T) {
	env := newTestEnv(nil)

	body := `{"name":"UNSW","location":"Sydney","image":"unsw.jpg","description":"Research university","ranking":0}`
	w := env.do(http.MethodPost, "/api/universities", strings.NewReader(body), jsonHeaders)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ranking must be at least 1", decodeMessage(t, w))
}

// ===================== delete =====================

func TestDeleteHandlers(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		setup    func(env *testEnv, err error)
		notFound string
		success  string
	}{
		{
			name:     "inquiry",
			path:     "/api/inquiries/",
			setup:    func(env *testEnv, err error) { env.inquiries.On("DeleteInquiry", mock.Anything, mock.Anything).Return(err) },
			notFound: "Inquiry not found",
			success:  "Inquiry deleted successfully",
		},
		{
			name:     "consultation",
			path:     "/api/consultations/",
			setup:    func(env *testEnv, err error) { env.consultations.On("DeleteConsultation", mock.Anything, mock.Anything).Return(err) },
			notFound: "Consultation not found",
			success:  "Consultation deleted successfully",
		},
		{
			name:     "testimonial",
			path:     "/api/testimonials/",
			setup:    func(env *testEnv, err error) { env.testimonials.On("DeleteTestimonial", mock.Anything, mock.Anything).Return(err) },
			notFound: "Testimonial not found",
			success:  "Testimonial deleted successfully",
		},
		{
			name:     "university",
			path:     "/api/universities/",
			setup:    func(env *testEnv, err error) { env.universities.On("DeleteUniversity", mock.Anything, mock.Anything).Return(err) },
			notFound: "University not found",
			success:  "University deleted successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" found", func(t *testing.T) {
			env := newTestEnv(nil)
			tt.setup(env, nil)

			w := env.do(http.MethodDelete, tt.path+primitive.NewObjectID().Hex(), nil, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.success, decodeMessage(t, w))
		})

		t.Run(tt.name+" not found", func(t *testing.T) {
			env := newTestEnv(nil)
			tt.setup(env, service.ErrNotFound)

			w := env.do(http.MethodDelete, tt.path+"missing", nil, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, tt.notFound, decodeMessage(t, w))
		})
	}
}
