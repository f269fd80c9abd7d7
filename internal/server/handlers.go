package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jonathan/career-planner/internal/ranking"
	"github.com/jonathan/career-planner/internal/rendering"
	"github.com/jonathan/career-planner/internal/types"
)

// maxBodyBytes bounds mutation request bodies
const maxBodyBytes = 64 << 10

// CourseRequest is the body of PUT /profile/courses/{course}
type CourseRequest struct {
	Level string `json:"level"`
}

// ActivityRequest is the body of POST /profile/activities
type ActivityRequest struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}

// SkillRequest is the body of PUT /profile/skills/{skill}
type SkillRequest struct {
	Rating int `json:"rating"`
}

// PreferenceRequest is the body of PUT /profile/preferences/{axis}
type PreferenceRequest struct {
	Value int `json:"value"`
}

// GoalsRequest is the body of PUT /profile/goals
type GoalsRequest struct {
	Priorities []string `json:"priorities"`
	CityTown   string   `json:"cityTown"`
	Schedule   string   `json:"schedule"`
}

// MoveRequest is the body of POST /profile/goals/priorities/move
type MoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// DashboardResponse is the body of GET /dashboard
type DashboardResponse struct {
	SavedMajors     []types.MajorDefinition `json:"savedMajors"`
	SavedColleges   []types.College         `json:"savedColleges"`
	SavedJobs       []types.Job             `json:"savedJobs"`
	Goals           types.Goals             `json:"goals"`
	ValuesStatement string                  `json:"valuesStatement"`
	Checklist       []types.ChecklistItem   `json:"checklist"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	return nil
}

// pathParam returns the unescaped value of a route parameter
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (s *Server) handleListMajors(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Majors())
}

func (s *Server) handleListColleges(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Colleges())
}

func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Jobs())
}

func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleSetCourse(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	p := s.session.SetCourse(r.Context(), pathParam(r, "course"), types.CourseLevel(req.Level))
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleRemoveCourse(w http.ResponseWriter, r *http.Request) {
	p := s.session.RemoveCourse(r.Context(), pathParam(r, "course"))
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleAddActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	p := s.session.AddActivity(r.Context(), req.Name, req.Hours)
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleRemoveActivity(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "index", Message: "must be an integer"})
		return
	}
	p := s.session.RemoveActivity(r.Context(), index)
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleRateSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	p := s.session.RateSkill(r.Context(), pathParam(r, "skill"), req.Rating)
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleSetPreference(w http.ResponseWriter, r *http.Request) {
	var req PreferenceRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	p := s.session.SetPreference(r.Context(), pathParam(r, "axis"), req.Value)
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleSetGoals(w http.ResponseWriter, r *http.Request) {
	var req GoalsRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	p := s.session.SetGoals(r.Context(), req.Priorities,
		types.CityPreference(req.CityTown), types.SchedulePreference(req.Schedule))
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleMovePriority(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	p := s.session.MovePriority(r.Context(), req.From, req.To)
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	var p *types.Profile
	switch chi.URLParam(r, "kind") {
	case "majors":
		p = s.session.SaveMajor(r.Context(), id)
	case "colleges":
		p = s.session.SaveCollege(r.Context(), id)
	case "jobs":
		p = s.session.SaveJob(r.Context(), id)
	default:
		s.writeError(w, &ErrNotFound{Resource: "saved kind " + chi.URLParam(r, "kind")})
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleUnsave(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	var p *types.Profile
	switch chi.URLParam(r, "kind") {
	case "majors":
		p = s.session.RemoveSavedMajor(r.Context(), id)
	case "colleges":
		p = s.session.RemoveSavedCollege(r.Context(), id)
	case "jobs":
		p = s.session.RemoveSavedJob(r.Context(), id)
	default:
		s.writeError(w, &ErrNotFound{Resource: "saved kind " + chi.URLParam(r, "kind")})
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handleResults scores the catalog against the current profile.
// ?limit=n overrides the configured default; limit=0 returns every major.
// Negative or non-numeric limits fall back to the default.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	limit := s.resultsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			limit = n
		}
	}

	scored := ranking.ScoreAll(s.session.Snapshot(), s.catalog.Majors())
	s.jsonResponse(w, http.StatusOK, types.MatchResults{Ranked: ranking.TopN(scored, limit)})
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	p := s.session.Snapshot()
	export := rendering.BuildPlanExport(p, s.now())

	s.jsonResponse(w, http.StatusOK, DashboardResponse{
		SavedMajors:     export.SavedMajors,
		SavedColleges:   export.SavedColleges,
		SavedJobs:       export.SavedJobs,
		Goals:           export.Goals,
		ValuesStatement: rendering.ValuesStatement(p.Goals),
		Checklist:       rendering.ProgressChecklist(p),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	data, err := rendering.ExportJSON(s.session.Snapshot(), s.now())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to export plan")
		s.errorResponse(w, http.StatusInternalServerError, "failed to export plan")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rendering.ExportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug().Err(err).Msg("failed to write plan export")
	}
}

func (s *Server) handlePrint(w http.ResponseWriter, _ *http.Request) {
	page, err := rendering.RenderPlanHTML(s.session.Snapshot())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to render plan")
		s.errorResponse(w, http.StatusInternalServerError, "failed to render plan")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		s.logger.Debug().Err(err).Msg("failed to write plan page")
	}
}
