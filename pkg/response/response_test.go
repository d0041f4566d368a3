package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "smart-task-analyzer/pkg/errors"
	"smart-task-analyzer/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if body["foo"] != "bar" {
			t.Errorf("expected bare body, got %s", w.Body.String())
		}
	})

	t.Run("HTTPError with string detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadGateway, "upstream down"))

		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
		var resp response.ErrorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Detail != "upstream down" {
			t.Errorf("unexpected detail: %v", resp.Detail)
		}
	})

	t.Run("HTTPError with structured detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		detail := []map[string]string{{"field": "priority"}}
		response.Error(c, pkgErrors.NewHTTPErrorWithDetail(http.StatusUnprocessableEntity, "invalid", detail))

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
		var resp struct {
			Detail []map[string]string `json:"detail"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Detail) != 1 || resp.Detail[0]["field"] != "priority" {
			t.Errorf("unexpected detail: %s", w.Body.String())
		}
	})

	t.Run("Unknown error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("db crash"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c, "slow down")

		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})
}
