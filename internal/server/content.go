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

const pdfContentType = "application/pdf"

// loadContent fetches the content for the requested locale, writing an
// error response when it cannot
func (s *Server) loadContent(c *gin.Context) (*api.Content, bool) {
	locale := s.locale(c)
	content, err := s.content.Content(c.Request.Context(), locale)
	if err != nil {
		contentError(c, locale, err)
		return nil, false
	}
	return content, true
}

func (s *Server) getContent(c *gin.Context) {
	content, ok := s.loadContent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, content)
}

func (s *Server) listReasons(c *gin.Context) {
	content, ok := s.loadContent(c)
	if !ok {
		return
	}
	groups := wizard.GroupReasons(content)
	c.JSON(http.StatusOK, api.ReasonGroupsResponse{
		Groups: groups,
		Count:  len(groups),
	})
}

func (s *Server) listSolutions(c *gin.Context) {
	content, ok := s.loadContent(c)
	if !ok {
		return
	}
	sols := wizard.SortSolutions(content.Solutions)
	c.JSON(http.StatusOK, api.SolutionsListResponse{
		Solutions: sols,
		Count:     len(sols),
	})
}

func (s *Server) listGovernanceModels(c *gin.Context) {
	content, ok := s.loadContent(c)
	if !ok {
		return
	}
	models := wizard.SortGovernanceModels(content.GovernanceModels)
	c.JSON(http.StatusOK, api.GovernanceModelsListResponse{
		GovernanceModels: models,
		Count:            len(models),
	})
}

func (s *Server) getFactsheet(c *gin.Context) {
	id, ok := pathID[api.SolutionID](c, "solutionID")
	if !ok {
		return
	}
	content, ok := s.loadContent(c)
	if !ok {
		return
	}
	sol, ok := content.Solution(id)
	if !ok {
		errorJSON(c, http.StatusNotFound,
			fmt.Errorf("%w: solution %s", ErrUnknownEntry, id))
		return
	}

	key := archive.FactsheetKey(content.Locale, id)
	stamp := content.FetchedAt.UTC().Format(time.RFC3339Nano)
	data, err := s.archive.Fetch(c.Request.Context(), key, stamp,
		func() ([]byte, error) {
			return render.Factsheet(sol, wizard.VariantsFor(sol, content),
				render.Options{
					Created: content.FetchedAt,
					Locale:  content.Locale,
				},
			)
		},
	)
	if err != nil {
		renderError(c, key, err)
		return
	}
	name := sol.Slug
	if name == "" {
		name = string(id)
	}
	sendPDF(c, name+".pdf", data)
}

func sendPDF(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, pdfContentType, data)
}
