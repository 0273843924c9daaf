package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int64
	}{
		{total: 0, size: 20, want: 0},
		{total: 20, size: 20, want: 1},
		{total: 21, size: 20, want: 2},
		{total: 5, size: 0, want: 0},
	}
	for _, tc := range cases {
		got := NewPagination(1, tc.size, tc.total)
		if got.TotalPage != tc.want {
			t.Fatalf("total=%d size=%d: want %d pages, got %d", tc.total, tc.size, tc.want, got.TotalPage)
		}
	}
}

func TestErrorCarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Forbidden(c, "denied")

	if w.Code != 200 {
		t.Fatalf("expected http 200, got %d", w.Code)
	}
	var body struct {
		StatusCode int               `json:"status_code"`
		Msg        string            `json:"msg"`
		Data       map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.StatusCode != CodeForbidden || body.Msg != "denied" || body.Data["request_id"] != "req-1" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
