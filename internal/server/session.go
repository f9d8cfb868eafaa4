package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/archive"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/render"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/wizard"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

func (s *Server) startSession(c *gin.Context) {
	st, err := s.sessions.Start(c.Request.Context())
	if err != nil {
		sessionError(c, "", err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(st))
}

func (s *Server) getSession(c *gin.Context) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return
	}
	st, err := s.sessions.Get(c.Request.Context(), id)
	s.respondSession(c, id, st, err)
}

func (s *Server) resetSession(c *gin.Context) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return
	}
	st, err := s.sessions.Reset(c.Request.Context(), id)
	s.respondSession(c, id, st, err)
}

func (s *Server) updatePark(c *gin.Context) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return
	}
	var park api.BusinessPark
	if !bindJSON(c, &park) {
		return
	}
	st, err := s.sessions.UpdatePark(c.Request.Context(), id, park)
	s.respondSession(c, id, st, err)
}

func (s *Server) toggleReason(c *gin.Context) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return
	}
	reason, ok := pathID[api.ReasonID](c, "reasonID")
	if !ok {
		return
	}
	st, err := s.sessions.ToggleReason(c.Request.Context(), id, reason)
	s.respondSession(c, id, st, err)
}

func (s *Server) toggleSolution(c *gin.Context) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return
	}
	sol, ok := pathID[api.SolutionID](c, "solutionID")
	if !ok {
		return
	}
	st, err := s.sessions.ToggleSolution(c.Request.Context(), id, sol)
	s.respondSession(c, id, st, err)
}

func (s *Server) setVariant(c *gin.Context) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return
	}
	sol, ok := pathID[api.SolutionID](c, "solutionID")
	if !ok {
		return
	}
	var req api.SetVariantRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.VariantID != "" && !api.ValidID(req.VariantID) {
		errorJSON(c, http.StatusBadRequest,
			fmt.Errorf("%w: variant_id", ErrInvalidID))
		return
	}
	st, err := s.sessions.SetVariant(
		c.Request.Context(), id, sol, req.VariantID,
	)
	s.respondSession(c, id, st, err)
}

func (s *Server) setGovernanceModel(c *gin.Context) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return
	}
	var req api.SetGovernanceModelRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.GovernanceModelID != "" && !api.ValidID(req.GovernanceModelID) {
		errorJSON(c, http.StatusBadRequest,
			fmt.Errorf("%w: governance_model_id", ErrInvalidID))
		return
	}
	st, err := s.sessions.SetGovernanceModel(
		c.Request.Context(), id, req.GovernanceModelID,
	)
	s.respondSession(c, id, st, err)
}

func (s *Server) getRecommendations(c *gin.Context) {
	st, content, ok := s.sessionWithContent(c)
	if !ok {
		return
	}
	recs := wizard.Recommend(st, content)
	c.JSON(http.StatusOK, api.RecommendationsResponse{
		Recommendations: recs,
		Count:           len(recs),
	})
}

func (s *Server) getComparison(c *gin.Context) {
	st, content, ok := s.sessionWithContent(c)
	if !ok {
		return
	}
	rows := wizard.Compare(st, content)
	c.JSON(http.StatusOK, api.ComparisonResponse{
		Rows:  rows,
		Count: len(rows),
	})
}

func (s *Server) getSummary(c *gin.Context) {
	st, content, ok := s.sessionWithContent(c)
	if !ok {
		return
	}
	key := archive.SummaryKey(st.ID)
	data, err := s.archive.Fetch(c.Request.Context(), key,
		summaryStamp(st, content),
		func() ([]byte, error) {
			return render.Summary(st, content)
		},
	)
	if err != nil {
		renderError(c, key, err)
		return
	}
	sendPDF(c, "parkmanager-"+string(st.ID)+".pdf", data)
}

func (s *Server) sessionWithContent(
	c *gin.Context,
) (*api.WizardState, *api.Content, bool) {
	id, ok := pathID[api.SessionID](c, "sessionID")
	if !ok {
		return nil, nil, false
	}
	st, err := s.sessions.Get(c.Request.Context(), id)
	if err != nil {
		sessionError(c, id, err)
		return nil, nil, false
	}
	content, ok := s.loadContent(c)
	if !ok {
		return nil, nil, false
	}
	return st, content, true
}

func (s *Server) respondSession(
	c *gin.Context, id api.SessionID, st *api.WizardState, err error,
) {
	if err != nil {
		sessionError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(st))
}

func sessionResponse(st *api.WizardState) *api.SessionResponse {
	return &api.SessionResponse{
		State:    st,
		Progress: wizard.Progress(st),
	}
}

// summaryStamp identifies the inputs of a rendered summary. A changed
// session, refreshed content or another locale produces a new stamp
func summaryStamp(st *api.WizardState, c *api.Content) string {
	return fmt.Sprintf("%s|%s|%s",
		st.LastUpdated.UTC().Format(time.RFC3339Nano),
		c.FetchedAt.UTC().Format(time.RFC3339Nano),
		c.Locale,
	)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		errorJSON(c, http.StatusBadRequest,
			fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return false
	}
	return true
}
