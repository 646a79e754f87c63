package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/genius-ayush/voiceHire/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testEnv struct {
	handler    *Handler
	recruiters *fakeRecruiterRepo
	jobs       *fakeJobRepo
	candidates *fakeCandidateRepo
	questions  *fakeQuestionRepo
	interviews *fakeInterviewRepo
	responses  *fakeResponseRepo
	oration    *fakeOration
	cache      *fakeStatusCache
	router     *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recruiters := newFakeRecruiterRepo()
	jobs := newFakeJobRepo()
	candidates := newFakeCandidateRepo(jobs)
	questions := newFakeQuestionRepo()
	interviews := newFakeInterviewRepo(jobs, candidates)
	responses := newFakeResponseRepo()
	vendor := &fakeOration{}
	cache := newFakeStatusCache()

	h := &Handler{
		Logger:     zap.NewNop(),
		Recruiters: recruiters,
		Jobs:       jobs,
		Candidates: candidates,
		Questions:  questions,
		Interviews: interviews,
		Responses:  responses,
		Oration:    vendor,
		Cache:      cache,
		JwtSecret:  testSecret,
		JwtTTL:     time.Hour,
	}

	r := gin.New()
	authed := func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		claims, err := auth.ParseToken(testSecret, header[len("Bearer "):])
		if err == nil {
			c.Set("claims", claims)
		}
		c.Next()
	}

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", authed, h.Me)

	r.GET("/jobPostings/jobs", authed, h.ListJobs)
	r.POST("/jobPostings/jobs", authed, h.CreateJob)
	r.GET("/jobPostings/jobs/:id", authed, h.GetJob)
	r.PATCH("/jobPostings/jobs/:id", authed, h.PatchJob)
	r.DELETE("/jobPostings/jobs/:id", authed, h.DeleteJob)
	r.GET("/jobPostings/jobs/:id/interviews", authed, h.ListJobInterviews)

	r.GET("/candidates/jobs/:jobId/candidates", authed, h.ListCandidates)
	r.POST("/candidates/jobs/:jobId/candidates", authed, h.CreateCandidate)
	r.GET("/candidates/candidates/:id", authed, h.GetCandidate)
	r.PATCH("/candidates/candidates/:id/status", authed, h.UpdateCandidateStatus)

	r.GET("/questions/jobs/:jobId/questions", authed, h.ListQuestions)
	r.POST("/questions/jobs/:jobId/questions", authed, h.CreateQuestion)
	r.PUT("/questions/questions/:id", authed, h.UpdateQuestion)
	r.DELETE("/questions/questions/:id", authed, h.DeleteQuestion)

	r.POST("/interviews/conductInterview", authed, h.ConductInterview)
	r.GET("/interviews/:id/status", authed, h.GetInterviewStatus)
	r.POST("/interviews/:id/cancel", authed, h.CancelInterview)
	r.GET("/interviews/:id/responses", authed, h.ListInterviewResponses)

	return &testEnv{
		handler:    h,
		recruiters: recruiters,
		jobs:       jobs,
		candidates: candidates,
		questions:  questions,
		interviews: interviews,
		responses:  responses,
		oration:    vendor,
		cache:      cache,
		router:     r,
	}
}

// do issues one request against the in-memory router. A non-empty token is
// sent as a bearer credential.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.True(t, env.Success, "expected success envelope, got body %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// register creates a recruiter through the API and returns its token and id.
func (e *testEnv) register(t *testing.T, email string) (string, uuid.UUID) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "Asha Iyer",
		"email":    email,
		"password": "s3cretpw",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res struct {
		Token string    `json:"token"`
		ID    uuid.UUID `json:"id"`
	}
	decodeData(t, w, &res)
	return res.Token, res.ID
}

// createJob makes a job posting owned by the token's recruiter.
func (e *testEnv) createJob(t *testing.T, token, title string) uuid.UUID {
	t.Helper()
	w := e.do(t, http.MethodPost, "/jobPostings/jobs", token, gin.H{
		"title":       title,
		"description": "builds things",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var job struct {
		ID uuid.UUID `json:"id"`
	}
	decodeData(t, w, &job)
	return job.ID
}
