package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

var errSample = errors.New("sample")

type keyedError struct{}

func (keyedError) Error() string { return "weak" }
func (keyedError) Key() string { return "error.password_min_length" }
func (keyedError) Args() []interface{} { return []interface{}{10} }

func decodeStatus(t *testing.T, body []byte) (int, string) {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return resp.StatusCode, resp.Msg
}

func TestRespondMappedError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rules := []MappedError{{Target: errSample, Code: response.CodeConflict, Key: "error.order_already_confirmed"}}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	RespondMappedError(c, fmt.Errorf("wrapped: %w", errSample), rules, response.CodeInternal, "error.internal")
	if code, _ := decodeStatus(t, w.Body.Bytes()); code != response.CodeConflict {
		t.Fatalf("expected mapped code 409, got %d", code)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	RespondMappedError(c, errors.New("boom"), rules, response.CodeInternal, "error.internal")
	if code, _ := decodeStatus(t, w.Body.Bytes()); code != response.CodeInternal {
		t.Fatalf("expected fallback code 500, got %d", code)
	}
}

func TestRespondMappedErrorPasswordPolicy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Accept-Language", "en-US")

	RespondMappedError(c, keyedError{}, nil, response.CodeInternal, "error.internal")
	code, msg := decodeStatus(t, w.Body.Bytes())
	if code != response.CodeBadRequest || msg != "password must be at least 10 characters" {
		t.Fatalf("unexpected response: %d %q", code, msg)
	}
}
