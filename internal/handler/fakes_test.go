package handler

import (
	"context"
	"sync"
	"time"

	"github.com/genius-ayush/voiceHire/internal/oration"
	"github.com/genius-ayush/voiceHire/internal/repository"
	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/google/uuid"
)

// in-memory repository fakes; all honor the recruiter/job scoping the
// postgres implementations enforce.

type fakeRecruiterRepo struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]model.Recruiter
	createErr error
}

func newFakeRecruiterRepo() *fakeRecruiterRepo {
	return &fakeRecruiterRepo{byID: make(map[uuid.UUID]model.Recruiter)}
}

func (f *fakeRecruiterRepo) Create(_ context.Context, r *model.Recruiter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == r.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.RecruiterID = uuid.New()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	f.byID[r.RecruiterID] = *r
	return nil
}

func (f *fakeRecruiterRepo) GetByEmail(_ context.Context, email string) (model.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.byID {
		if r.Email == email {
			return r, nil
		}
	}
	return model.Recruiter{}, repository.ErrNotFound
}

func (f *fakeRecruiterRepo) GetByID(_ context.Context, id uuid.UUID) (model.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return model.Recruiter{}, repository.ErrNotFound
	}
	return r, nil
}

func (f *fakeRecruiterRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type fakeJobRepo struct {
	byID map[uuid.UUID]model.JobPosting
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[uuid.UUID]model.JobPosting)}
}

func (f *fakeJobRepo) Create(_ context.Context, j *model.JobPosting) error {
	j.JobPostingID = uuid.New()
	j.IsActive = true
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	f.byID[j.JobPostingID] = *j
	return nil
}

func (f *fakeJobRepo) ListByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]model.JobPosting, error) {
	out := make([]model.JobPosting, 0)
	for _, j := range f.byID {
		if j.RecruiterID == recruiterID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id, recruiterID uuid.UUID) (model.JobPosting, error) {
	j, ok := f.byID[id]
	if !ok || j.RecruiterID != recruiterID {
		return model.JobPosting{}, repository.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) Update(_ context.Context, id, recruiterID uuid.UUID, patch model.PatchJobReq) (model.JobPosting, error) {
	j, ok := f.byID[id]
	if !ok || j.RecruiterID != recruiterID {
		return model.JobPosting{}, repository.ErrNotFound
	}
	if patch.Title != nil {
		j.Title = *patch.Title
	}
	if patch.Description != nil {
		j.Description = *patch.Description
	}
	if patch.IsActive != nil {
		j.IsActive = *patch.IsActive
	}
	j.UpdatedAt = time.Now()
	f.byID[id] = j
	return j, nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id, recruiterID uuid.UUID) error {
	j, ok := f.byID[id]
	if !ok || j.RecruiterID != recruiterID {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeCandidateRepo struct {
	jobs *fakeJobRepo
	byID map[uuid.UUID]model.Candidate
}

func newFakeCandidateRepo(jobs *fakeJobRepo) *fakeCandidateRepo {
	return &fakeCandidateRepo{jobs: jobs, byID: make(map[uuid.UUID]model.Candidate)}
}

func (f *fakeCandidateRepo) Create(_ context.Context, cand *model.Candidate) error {
	cand.CandidateID = uuid.New()
	cand.Status = model.CandidateStatusApplied
	if cand.Skills == nil {
		cand.Skills = []string{}
	}
	cand.AppliedAt = time.Now()
	cand.UpdatedAt = cand.AppliedAt
	f.byID[cand.CandidateID] = *cand
	return nil
}

func (f *fakeCandidateRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]model.Candidate, error) {
	out := make([]model.Candidate, 0)
	for _, cand := range f.byID {
		if cand.JobPostingID == jobID {
			out = append(out, cand)
		}
	}
	return out, nil
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id, recruiterID uuid.UUID) (model.Candidate, error) {
	cand, ok := f.byID[id]
	if !ok {
		return model.Candidate{}, repository.ErrNotFound
	}
	if job, jobOK := f.jobs.byID[cand.JobPostingID]; !jobOK || job.RecruiterID != recruiterID {
		return model.Candidate{}, repository.ErrNotFound
	}
	return cand, nil
}

func (f *fakeCandidateRepo) UpdateStatus(ctx context.Context, id, recruiterID uuid.UUID, status model.CandidateStatus) (model.Candidate, error) {
	cand, err := f.GetByID(ctx, id, recruiterID)
	if err != nil {
		return model.Candidate{}, err
	}
	cand.Status = status
	cand.UpdatedAt = time.Now()
	f.byID[id] = cand
	return cand, nil
}

type fakeQuestionRepo struct {
	byID  map[uuid.UUID]model.Question
	order []uuid.UUID
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{byID: make(map[uuid.UUID]model.Question)}
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	q.QuestionID = uuid.New()
	q.IsActive = true
	if q.Keywords == nil {
		q.Keywords = []string{}
	}
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	f.byID[q.QuestionID] = *q
	f.order = append(f.order, q.QuestionID)
	return nil
}

func (f *fakeQuestionRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]model.Question, error) {
	out := make([]model.Question, 0)
	for _, id := range f.order {
		if q := f.byID[id]; q.JobPostingID == jobID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Update(_ context.Context, id, _ uuid.UUID, req model.UpdateQuestionReq) (model.Question, error) {
	q, ok := f.byID[id]
	if !ok {
		return model.Question{}, repository.ErrNotFound
	}
	if req.QuestionText != nil {
		q.QuestionText = *req.QuestionText
	}
	if req.Difficulty != nil {
		q.Difficulty = *req.Difficulty
	}
	if req.Keywords != nil {
		q.Keywords = req.Keywords
	}
	q.UpdatedAt = time.Now()
	f.byID[id] = q
	return q, nil
}

func (f *fakeQuestionRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeInterviewRepo struct {
	jobs       *fakeJobRepo
	candidates *fakeCandidateRepo
	byID       map[uuid.UUID]model.Interview
	startErr   error
}

func newFakeInterviewRepo(jobs *fakeJobRepo, candidates *fakeCandidateRepo) *fakeInterviewRepo {
	return &fakeInterviewRepo{jobs: jobs, candidates: candidates, byID: make(map[uuid.UUID]model.Interview)}
}

func (f *fakeInterviewRepo) Create(_ context.Context, iv *model.Interview) error {
	iv.InterviewID = uuid.New()
	iv.Status = model.InterviewStatusScheduled
	iv.CreatedAt = time.Now()
	iv.UpdatedAt = iv.CreatedAt
	f.byID[iv.InterviewID] = *iv
	return nil
}

func (f *fakeInterviewRepo) GetByID(_ context.Context, id, recruiterID uuid.UUID) (model.Interview, error) {
	iv, ok := f.byID[id]
	if !ok {
		return model.Interview{}, repository.ErrNotFound
	}
	if job, jobOK := f.jobs.byID[iv.JobPostingID]; !jobOK || job.RecruiterID != recruiterID {
		return model.Interview{}, repository.ErrNotFound
	}
	return iv, nil
}

func (f *fakeInterviewRepo) GetByConversationID(_ context.Context, conversationID string) (model.Interview, error) {
	for _, iv := range f.byID {
		if iv.ConversationID != nil && *iv.ConversationID == conversationID {
			return iv, nil
		}
	}
	return model.Interview{}, repository.ErrNotFound
}

func (f *fakeInterviewRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]model.Interview, error) {
	out := make([]model.Interview, 0)
	for _, iv := range f.byID {
		if iv.JobPostingID == jobID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeInterviewRepo) Start(_ context.Context, id uuid.UUID, conversationID string, startedAt time.Time) error {
	if f.startErr != nil {
		return f.startErr
	}
	iv, ok := f.byID[id]
	if !ok || iv.Status != model.InterviewStatusScheduled {
		return repository.ErrNotFound
	}
	iv.Status = model.InterviewStatusInProgress
	iv.ConversationID = &conversationID
	iv.StartedAt = &startedAt
	f.byID[id] = iv

	cand := f.candidates.byID[iv.CandidateID]
	cand.Status = model.CandidateStatusInterviewScheduled
	f.candidates.byID[iv.CandidateID] = cand
	return nil
}

func (f *fakeInterviewRepo) Complete(_ context.Context, conversationID string, completedAt time.Time) error {
	for id, iv := range f.byID {
		if iv.ConversationID != nil && *iv.ConversationID == conversationID && iv.Status == model.InterviewStatusInProgress {
			iv.Status = model.InterviewStatusCompleted
			iv.CompletedAt = &completedAt
			f.byID[id] = iv

			cand := f.candidates.byID[iv.CandidateID]
			cand.Status = model.CandidateStatusInterviewed
			f.candidates.byID[iv.CandidateID] = cand
		}
	}
	return nil
}

func (f *fakeInterviewRepo) Cancel(ctx context.Context, id, recruiterID uuid.UUID) (model.Interview, error) {
	iv, err := f.GetByID(ctx, id, recruiterID)
	if err != nil {
		return model.Interview{}, err
	}
	if iv.Status.Terminal() {
		return model.Interview{}, repository.ErrTerminalState
	}
	iv.Status = model.InterviewStatusCancelled
	f.byID[id] = iv
	return iv, nil
}

func (f *fakeInterviewRepo) SetScore(_ context.Context, id uuid.UUID, overallScore float64, feedback string) error {
	iv, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	iv.OverallScore = &overallScore
	iv.Feedback = &feedback
	f.byID[id] = iv
	return nil
}

type fakeResponseRepo struct {
	byInterview map[uuid.UUID][]model.InterviewResponse
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{byInterview: make(map[uuid.UUID][]model.InterviewResponse)}
}

func (f *fakeResponseRepo) CreateBatch(_ context.Context, responses []model.InterviewResponse) error {
	for i := range responses {
		responses[i].ResponseID = uuid.New()
		f.byInterview[responses[i].InterviewID] = append(f.byInterview[responses[i].InterviewID], responses[i])
	}
	return nil
}

func (f *fakeResponseRepo) ListByInterview(_ context.Context, interviewID, _ uuid.UUID) ([]model.InterviewResponse, error) {
	return f.byInterview[interviewID], nil
}

// fakeOration counts calls so tests can assert that no outbound request was
// attempted on validation failures.
type fakeOration struct {
	createCalls  int
	getCalls     int
	createErr    error
	getErr       error
	conversation *oration.Conversation
	lastPhone    string
	lastVars     oration.DynamicVariables
}

func (f *fakeOration) CreateConversation(_ context.Context, toPhoneNumber string, vars oration.DynamicVariables) (*oration.Conversation, error) {
	f.createCalls++
	f.lastPhone = toPhoneNumber
	f.lastVars = vars
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.conversation, nil
}

func (f *fakeOration) GetConversation(_ context.Context, _ string) (*oration.Conversation, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.conversation, nil
}

type fakeStatusCache struct {
	store map[string]*model.InterviewStatusRes
	sets  int
}

func newFakeStatusCache() *fakeStatusCache {
	return &fakeStatusCache{store: make(map[string]*model.InterviewStatusRes)}
}

func (f *fakeStatusCache) Get(_ context.Context, conversationID string) (*model.InterviewStatusRes, error) {
	return f.store[conversationID], nil
}

func (f *fakeStatusCache) Set(_ context.Context, conversationID string, snap *model.InterviewStatusRes) error {
	f.sets++
	f.store[conversationID] = snap
	return nil
}
