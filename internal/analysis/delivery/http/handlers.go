package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-analyzer/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a task description
// @Description Extracts description, priority, due date and category from free text using an LLM.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Task text"
// @Success     200  {object} analyzeResp
// @Failure     422  {object} response.ErrorResp "Invalid request or model output"
// @Failure     429  {object} response.ErrorResp "Rate limit exceeded"
// @Failure     500  {object} response.ErrorResp "Service misconfigured"
// @Failure     502  {object} response.ErrorResp "Model call failed or returned invalid JSON"
// @Router      /analyze-task [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		h.l.Infof(ctx, "analysis.delivery.http.Analyze: rejected request: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}
