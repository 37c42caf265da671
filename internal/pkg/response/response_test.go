package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, 400, "bad request", "BAD_REQ")

	require.Equal(t, 400, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "bad request", body["error"])
	require.Equal(t, "BAD_REQ", body["code"])
}

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		fn   func(c *gin.Context, message string, errorCode ...string)
		want int
	}{
		{"bad request", BadRequest, 400},
		{"unauthorized", Unauthorized, 401},
		{"not found", NotFound, 404},
		{"conflict", Conflict, 409},
		{"too many requests", TooManyRequests, 429},
		{"internal", InternalServerError, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.fn(c, "boom")
			require.Equal(t, tc.want, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, "boom", body["error"])
			// code is omitted when not supplied
			require.NotContains(t, body, "code")
		})
	}
}
