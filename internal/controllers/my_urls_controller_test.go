package controllers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/fsdevblog/acortador/internal/models"
	"github.com/fsdevblog/acortador/internal/services"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func (s *ControllersSuite) TestMyURLsController_LoginRequired() {
	requests := []struct {
		method string
		uri    string
	}{
		{method: http.MethodGet, uri: "/my-urls"},
		{method: http.MethodGet, uri: "/create"},
		{method: http.MethodPost, uri: "/create"},
		{method: http.MethodGet, uri: "/1/update"},
		{method: http.MethodPost, uri: "/1/update"},
		{method: http.MethodPost, uri: "/1/delete"},
	}
	for _, r := range requests {
		s.Run(r.method+" "+r.uri, func() {
			res, _ := s.makeRequest(requestFields{Method: r.method, URL: r.uri, Form: url.Values{"long_url": {"x"}}})

			s.Equal(http.StatusFound, res.StatusCode)
			s.Equal("/auth/login", res.Header.Get("Location"))
		})
	}
	s.urlServMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
	s.urlServMock.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ControllersSuite) TestMyURLsController_List() {
	otherID := s.user.ID + 1
	s.urlServMock.On("GetAll", mock.Anything).Return([]models.URLWithAuthor{
		{ID: 2, ShortURL: "f546b9", LongURL: "https://go.dev/doc", AuthorID: &otherID, Username: "other"},
		{ID: 1, ShortURL: "5ababd", LongURL: "example.com", AuthorID: &s.user.ID, Username: s.user.Username},
	}, nil)

	res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/my-urls", LoggedIn: true})

	s.Equal(http.StatusOK, res.StatusCode)
	s.Contains(body, s.user.Username)
	s.Contains(body, "http://sho.rt/5ababd")
	s.Contains(body, "http://sho.rt/f546b9")
	s.Contains(body, `href="/1/update"`)
	s.NotContains(body, `href="/2/update"`)
	s.Contains(body, `href="/auth/logout"`)
}

func (s *ControllersSuite) TestMyURLsController_List_Empty() {
	s.urlServMock.On("GetAll", mock.Anything).Return([]models.URLWithAuthor{}, nil)

	res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/my-urls", LoggedIn: true})

	s.Equal(http.StatusOK, res.StatusCode)
	s.Contains(body, `class="empty"`)
}

func (s *ControllersSuite) TestMyURLsController_Create() {
	isCurrentUser := mock.MatchedBy(func(id *uint) bool { return id != nil && *id == s.user.ID })
	s.urlServMock.On("Create", mock.Anything, "example.com", isCurrentUser).
		Return(&models.URL{ID: 3, ShortURL: "5ababd", LongURL: "example.com", AuthorID: &s.user.ID}, nil)

	s.Run("form", func() {
		res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/create", LoggedIn: true})
		s.Equal(http.StatusOK, res.StatusCode)
		s.Contains(body, `action="/create"`)
	})

	s.Run("empty url", func() {
		res, body := s.makeRequest(requestFields{
			Method:   http.MethodPost,
			URL:      "/create",
			Form:     url.Values{"long_url": {""}},
			LoggedIn: true,
		})
		s.Equal(http.StatusOK, res.StatusCode)
		s.Contains(body, "La url es obligatoria.")
		s.urlServMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("valid", func() {
		res, _ := s.makeRequest(requestFields{
			Method:   http.MethodPost,
			URL:      "/create",
			Form:     url.Values{"long_url": {"example.com"}},
			LoggedIn: true,
		})
		s.Equal(http.StatusFound, res.StatusCode)
		s.Equal("/my-urls", res.Header.Get("Location"))
		s.urlServMock.AssertNumberOfCalls(s.T(), "Create", 1)
	})
}

func (s *ControllersSuite) TestMyURLsController_Update() {
	owned := &models.URLWithAuthor{ID: 1, ShortURL: "5ababd", LongURL: "example.com", AuthorID: &s.user.ID}
	s.urlServMock.On("GetOwned", mock.Anything, uint(1), s.user.ID).Return(owned, nil)
	s.urlServMock.On("GetOwned", mock.Anything, uint(2), s.user.ID).
		Return(nil, errors.Wrap(services.ErrForbidden, "url id 2"))
	s.urlServMock.On("GetOwned", mock.Anything, uint(3), s.user.ID).
		Return(nil, errors.Wrap(services.ErrRecordNotFound, "url id 3"))
	s.urlServMock.On("Update", mock.Anything, uint(1), s.user.ID, "https://go.dev/doc").
		Return(&models.URL{ID: 1, ShortURL: "f546b9", LongURL: "https://go.dev/doc", AuthorID: &s.user.ID}, nil)

	tests := []struct {
		name         string
		method       string
		uri          string
		form         url.Values
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "form", method: http.MethodGet, uri: "/1/update", wantStatus: http.StatusOK, wantBody: `value="example.com"`},
		{name: "form forbidden", method: http.MethodGet, uri: "/2/update", wantStatus: http.StatusForbidden},
		{
			name:       "form not found",
			method:     http.MethodGet,
			uri:        "/3/update",
			wantStatus: http.StatusNotFound,
			wantBody:   "La URL con id 3 no existe.",
		},
		{name: "form non numeric id", method: http.MethodGet, uri: "/abc/update", wantStatus: http.StatusNotFound},
		{
			name:       "empty url",
			method:     http.MethodPost,
			uri:        "/1/update",
			form:       url.Values{"long_url": {""}},
			wantStatus: http.StatusOK,
			wantBody:   "La URL es obligatoria.",
		},
		{
			name:       "forbidden",
			method:     http.MethodPost,
			uri:        "/2/update",
			form:       url.Values{"long_url": {"https://go.dev/doc"}},
			wantStatus: http.StatusForbidden,
			wantBody:   "No tienes permiso para modificar esta URL.",
		},
		{
			name:       "not found",
			method:     http.MethodPost,
			uri:        "/3/update",
			form:       url.Values{"long_url": {"https://go.dev/doc"}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "valid",
			method:       http.MethodPost,
			uri:          "/1/update",
			form:         url.Values{"long_url": {"https://go.dev/doc"}},
			wantStatus:   http.StatusFound,
			wantLocation: "/my-urls",
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res, body := s.makeRequest(requestFields{Method: tt.method, URL: tt.uri, Form: tt.form, LoggedIn: true})

			s.Equal(tt.wantStatus, res.StatusCode)
			s.Equal(tt.wantLocation, res.Header.Get("Location"))
			if tt.wantBody != "" {
				s.Contains(body, tt.wantBody)
			}
		})
	}
	s.urlServMock.AssertNumberOfCalls(s.T(), "Update", 1)
}

func (s *ControllersSuite) TestMyURLsController_Delete() {
	s.urlServMock.On("Delete", mock.Anything, uint(1), s.user.ID).Return(nil)
	s.urlServMock.On("Delete", mock.Anything, uint(2), s.user.ID).
		Return(errors.Wrap(services.ErrForbidden, "url id 2"))
	s.urlServMock.On("Delete", mock.Anything, uint(3), s.user.ID).
		Return(errors.Wrap(services.ErrRecordNotFound, "url id 3"))

	tests := []struct {
		id         string
		wantStatus int
	}{
		{id: "1", wantStatus: http.StatusFound},
		{id: "2", wantStatus: http.StatusForbidden},
		{id: "3", wantStatus: http.StatusNotFound},
		{id: "x", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.id, func() {
			res, _ := s.makeRequest(requestFields{
				Method:   http.MethodPost,
				URL:      fmt.Sprintf("/%s/delete", tt.id),
				LoggedIn: true,
			})
			s.Equal(tt.wantStatus, res.StatusCode)
		})
	}

	s.Run("get is not allowed", func() {
		res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/1/delete", LoggedIn: true})
		s.Equal(http.StatusMethodNotAllowed, res.StatusCode)
		s.Contains(body, "Método no permitido.")
	})
}
