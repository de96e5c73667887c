package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	Init()
	Init()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/questions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", PrometheusHandler())

	for _, path := range []string{"/questions/1", "/questions/2", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	QuizQuestionsServed.WithLabelValues("all").Inc()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	// endpoint 标签使用路由模板
	assert.Contains(t, body, `http_requests_total{endpoint="/questions/:id",method="GET",status="200"} 2`)
	assert.Contains(t, body, `http_requests_total{endpoint="unmatched",method="GET",status="404"} 1`)
	assert.NotContains(t, body, `endpoint="/questions/1"`)
	assert.Contains(t, body, `trivia_quiz_questions_served_total{scope="all"} 1`)
}
