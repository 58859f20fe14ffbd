package api

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/logbook"
	"github.com/FocuswithJustin/uddf/core/validate"
	"github.com/FocuswithJustin/uddf/internal/fileguard"
	"github.com/FocuswithJustin/uddf/internal/logging"
)

// MaxJobFiles caps the number of files a single job may validate.
const MaxJobFiles = 10000

const maxJobRequestBytes = 1 << 20

// JobStatus represents the status of a batch validation job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobCancelled JobStatus = "cancelled"
)

// Finished reports whether the job will not change any more.
func (s JobStatus) Finished() bool {
	return s == JobCompleted || s == JobCancelled
}

// Job is a batch validation of files under the server root. Report paths
// are relative to the root.
type Job struct {
	ID          string               `json:"id"`
	Status      JobStatus            `json:"status"`
	Options     validate.Options     `json:"options"`
	Total       int                  `json:"total"`
	Done        int                  `json:"done"`
	Progress    int                  `json:"progress"` // 0-100
	Summary     JobSummary           `json:"summary"`
	Reports     []logbook.FileReport `json:"reports,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`

	cancel context.CancelFunc
}

// JobSummary counts finished files by outcome.
type JobSummary struct {
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"` // decoded but failed validation
	Failed  int `json:"failed"`  // could not be read or decoded
}

func (s *JobSummary) add(report *logbook.FileReport) {
	switch {
	case report.Err != nil:
		s.Failed++
	case report.Valid():
		s.Valid++
	default:
		s.Invalid++
	}
}

// JobRequest is the body of POST /jobs. With no paths every .uddf and
// .uddf.xz file under the root is validated. Unset options keep their
// defaults.
type JobRequest struct {
	Paths      []string `json:"paths"`
	Strict     *bool    `json:"strict,omitempty"`
	Ranges     *bool    `json:"ranges,omitempty"`
	References *bool    `json:"references,omitempty"`
}

func (r JobRequest) options() validate.Options {
	opts := validate.DefaultOptions()
	if r.Strict != nil {
		opts.StrictMode = *r.Strict
	}
	if r.Ranges != nil {
		opts.ValidateRanges = *r.Ranges
	}
	if r.References != nil {
		opts.ValidateReferences = *r.References
	}
	return opts
}

// JobStore manages jobs. Getters return copies so callers never race with
// the goroutine running the job.
type JobStore struct {
	jobs map[string]*Job
	mu   sync.RWMutex
	now  func() time.Time
}

// NewJobStore creates a new job store.
func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		now:  time.Now,
	}
}

// Create registers a pending job and returns it with the context the job
// must run under.
func (js *JobStore) Create(total int, opts validate.Options) (Job, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	now := js.now()
	job := &Job{
		ID:        uuid.New().String(),
		Status:    JobPending,
		Options:   opts,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
		cancel:    cancel,
	}

	js.mu.Lock()
	js.jobs[job.ID] = job
	js.mu.Unlock()

	return job.snapshot(true), ctx
}

// Get returns a copy of the job, including its reports.
func (js *JobStore) Get(id string) (Job, bool) {
	js.mu.RLock()
	defer js.mu.RUnlock()

	job, ok := js.jobs[id]
	if !ok {
		return Job{}, false
	}
	return job.snapshot(true), true
}

// List returns all jobs without reports, newest first.
func (js *JobStore) List() []Job {
	js.mu.RLock()
	jobs := make([]Job, 0, len(js.jobs))
	for _, job := range js.jobs {
		jobs = append(jobs, job.snapshot(false))
	}
	js.mu.RUnlock()

	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID < jobs[j].ID
		}
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs
}

// Len returns the number of stored jobs.
func (js *JobStore) Len() int {
	js.mu.RLock()
	defer js.mu.RUnlock()
	return len(js.jobs)
}

// Cancel stops a pending or running job. Cancelling a finished job is a
// no-op that returns false.
func (js *JobStore) Cancel(id string) (Job, bool, error) {
	js.mu.Lock()
	defer js.mu.Unlock()

	job, ok := js.jobs[id]
	if !ok {
		return Job{}, false, errors.NewNotFound("job", id)
	}
	if job.Status.Finished() {
		return job.snapshot(false), false, nil
	}
	job.cancel()
	job.Status = JobCancelled
	now := js.now()
	job.UpdatedAt = now
	job.CompletedAt = &now
	return job.snapshot(false), true, nil
}

// Delete removes a job, cancelling it first if it is still running.
func (js *JobStore) Delete(id string) bool {
	js.mu.Lock()
	defer js.mu.Unlock()

	job, ok := js.jobs[id]
	if !ok {
		return false
	}
	job.cancel()
	delete(js.jobs, id)
	return true
}

// CancelAll cancels every unfinished job.
func (js *JobStore) CancelAll() {
	js.mu.RLock()
	ids := make([]string, 0, len(js.jobs))
	for id := range js.jobs {
		ids = append(ids, id)
	}
	js.mu.RUnlock()

	for _, id := range ids {
		js.Cancel(id)
	}
}

func (js *JobStore) start(id string) {
	js.update(id, func(job *Job) {
		if job.Status == JobPending {
			job.Status = JobRunning
		}
	})
}

func (js *JobStore) advance(id string, done int, report *logbook.FileReport) {
	js.update(id, func(job *Job) {
		job.Done = done
		job.Progress = percent(done, job.Total)
		job.Summary.add(report)
	})
}

// finish attaches the reports. A cancelled job keeps its status.
func (js *JobStore) finish(id string, reports []logbook.FileReport) {
	js.update(id, func(job *Job) {
		job.Reports = reports
		if job.Status == JobCancelled {
			return
		}
		job.Status = JobCompleted
		job.Progress = 100
		completed := job.UpdatedAt
		job.CompletedAt = &completed
	})
}

func (js *JobStore) update(id string, fn func(*Job)) {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, ok := js.jobs[id]; ok {
		job.UpdatedAt = js.now()
		fn(job)
	}
}

func (j *Job) snapshot(withReports bool) Job {
	c := *j
	c.cancel = nil
	c.Reports = nil
	if withReports && j.Reports != nil {
		c.Reports = make([]logbook.FileReport, len(j.Reports))
		copy(c.Reports, j.Reports)
	}
	if j.CompletedAt != nil {
		t := *j.CompletedAt
		c.CompletedAt = &t
	}
	return c
}

func percent(done, total int) int {
	if total == 0 {
		return 100
	}
	return done * 100 / total
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Root == "" {
		respondError(w, http.StatusServiceUnavailable, "JOBS_DISABLED", "server has no job root configured")
		return
	}

	var req JobRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJobRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON: "+err.Error())
		return
	}

	rel := req.Paths
	if len(rel) == 0 {
		var err error
		if rel, err = discover(s.cfg.Root); err != nil {
			logging.ErrorContext(r.Context(), "job discovery failed", "error", err)
			respondError(w, http.StatusInternalServerError, "DISCOVERY_FAILED", "could not list job root")
			return
		}
		if len(rel) == 0 {
			respondError(w, http.StatusBadRequest, "NO_FILES", "no .uddf files under the job root")
			return
		}
	}
	if len(rel) > MaxJobFiles {
		respondError(w, http.StatusBadRequest, "TOO_MANY_FILES", "a job may validate at most 10000 files")
		return
	}

	paths := make([]string, len(rel))
	for i, p := range rel {
		full, err := fileguard.ResolvePath(s.cfg.Root, p)
		if err != nil {
			logging.SecurityEvent("path_rejected", "api",
				"path", p,
				"reason", err.Error())
			respondError(w, http.StatusBadRequest, "INVALID_PATH", err.Error())
			return
		}
		paths[i] = full
	}

	job, ctx := s.jobs.Create(len(paths), req.options())
	logging.JobEvent(job.ID, "created", "files", len(paths), "request_id", logging.GetRequestID(r.Context()))
	go s.runJob(ctx, job.ID, paths, rel, job.Options)

	respond(w, http.StatusAccepted, job)
}

// runJob validates paths and publishes progress. rel holds the paths as
// the client named them and replaces the resolved paths in every report.
func (s *Server) runJob(ctx context.Context, id string, paths, rel []string, opts validate.Options) {
	s.jobs.start(id)
	logging.JobEvent(id, "started", "files", len(paths))

	display := make(map[string]string, len(paths))
	for i, p := range paths {
		display[p] = filepath.ToSlash(filepath.Clean(rel[i]))
	}

	reports := logbook.ValidateFilesWithProgress(ctx, paths, opts, s.cfg.Workers, func(done, total int, report logbook.FileReport) {
		s.jobs.advance(id, done, &report)
		valid := report.Valid()
		s.hub.Broadcast(ProgressMessage{
			Type:     MessageProgress,
			JobID:    id,
			Done:     done,
			Total:    total,
			Progress: percent(done, total),
			File:     display[report.Path],
			Valid:    &valid,
		})
	})
	for i := range reports {
		reports[i].Path = display[paths[i]]
	}
	s.jobs.finish(id, reports)

	job, _ := s.jobs.Get(id)
	msg := ProgressMessage{
		Type:     MessageComplete,
		JobID:    id,
		Done:     job.Done,
		Total:    job.Total,
		Progress: job.Progress,
		Message:  string(job.Status),
	}
	if job.Status == JobCancelled {
		msg.Type = MessageError
	}
	s.hub.Broadcast(msg)
	logging.JobEvent(id, string(job.Status),
		"valid", job.Summary.Valid,
		"invalid", job.Summary.Invalid,
		"failed", job.Summary.Failed)
}

// discover lists logbooks under root relative to it, sorted.
func discover(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLogbookName(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, rel)
		return nil
	})
	sort.Strings(out)
	return out, err
}

func isLogbookName(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, ".uddf") || strings.HasSuffix(name, ".uddf.xz")
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := s.jobs.List()
	respondList(w, jobs, len(jobs))
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}
	job, found := s.jobs.Get(id)
	if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Job not found")
		return
	}
	respond(w, http.StatusOK, job)
}

// handleDeleteJob cancels a running job, or removes a finished one.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}

	job, cancelled, err := s.jobs.Cancel(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Job not found")
		return
	}
	if cancelled {
		logging.JobEvent(id, "cancel_requested", "request_id", logging.GetRequestID(r.Context()))
		respond(w, http.StatusAccepted, job)
		return
	}

	s.jobs.Delete(id)
	logging.InfoContext(r.Context(), "job deleted", "job_id", id)
	respond(w, http.StatusOK, map[string]interface{}{"id": id, "deleted": true})
}

func jobID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "job id must be a UUID")
		return "", false
	}
	return id, true
}
