package controllers

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func (s *ControllersSuite) TestPingController_Ping() {
	s.Run("ok", func() {
		s.pingMock.On("CheckConnection", mock.Anything).Return(nil).Once()
		res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/ping"})
		s.Equal(http.StatusOK, res.StatusCode)
		s.Equal("pong", body)
	})

	s.Run("db down", func() {
		s.pingMock.On("CheckConnection", mock.Anything).Return(errors.New("connection refused")).Once()
		res, _ := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/ping"})
		s.Equal(http.StatusInternalServerError, res.StatusCode)
	})
}

func (s *ControllersSuite) TestRouter_Metrics() {
	s.makeRequest(requestFields{Method: http.MethodGet, URL: "/"})

	res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/metrics"})

	s.Equal(http.StatusOK, res.StatusCode)
	s.Contains(body, `http_requests_total{method="GET",route="/",status="200"} 1`)
	s.Contains(body, "http_request_duration_seconds")
}

func (s *ControllersSuite) TestRouter_Errors() {
	s.Run("unknown path", func() {
		res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/a/b/c"})
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Contains(body, "Página no encontrada.")
	})

	s.Run("method not allowed", func() {
		res, body := s.makeRequest(requestFields{Method: http.MethodPut, URL: "/"})
		s.Equal(http.StatusMethodNotAllowed, res.StatusCode)
		s.Contains(body, "Método no permitido.")
	})

	s.Run("english", func() {
		res, body := s.makeRequest(requestFields{
			Method:  http.MethodGet,
			URL:     "/a/b/c",
			Headers: map[string]string{"Accept-Language": "en-GB"},
		})
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Contains(body, "Page not found.")
	})
}
