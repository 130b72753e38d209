package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/acortador/internal/controllers/middlewares"
	"github.com/fsdevblog/acortador/internal/models"
	"github.com/fsdevblog/acortador/internal/services"
	"github.com/fsdevblog/acortador/internal/tokens"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func (s *ControllersSuite) TestAuthController_Register() {
	username := gofakeit.Username()
	password := gofakeit.Password(true, true, true, false, false, 12)

	s.userServMock.On("Register", mock.Anything, username, password).
		Return(&models.User{ID: 7, Username: username}, nil)
	s.userServMock.On("Register", mock.Anything, "taken", password).
		Return(nil, errors.Wrap(services.ErrDuplicateKey, "register user taken"))

	tests := []struct {
		name         string
		form         url.Values
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "valid",
			form:         url.Values{"username": {username}, "password": {password}},
			wantStatus:   http.StatusFound,
			wantLocation: "/auth/login",
		},
		{
			name:       "empty username",
			form:       url.Values{"username": {""}, "password": {password}},
			wantStatus: http.StatusOK,
			wantBody:   "El nombre de usuario es obligatorio.",
		},
		{
			name:       "empty both",
			form:       url.Values{},
			wantStatus: http.StatusOK,
			wantBody:   "El nombre de usuario es obligatorio.",
		},
		{
			name:       "empty password",
			form:       url.Values{"username": {username}},
			wantStatus: http.StatusOK,
			wantBody:   "La contraseña es obligatoria.",
		},
		{
			name:       "taken",
			form:       url.Values{"username": {"taken"}, "password": {password}},
			wantStatus: http.StatusOK,
			wantBody:   "El usuario taken ya está registrado.",
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res, body := s.makeRequest(requestFields{Method: http.MethodPost, URL: "/auth/register", Form: tt.form})

			s.Equal(tt.wantStatus, res.StatusCode)
			s.Equal(tt.wantLocation, res.Header.Get("Location"))
			if tt.wantBody != "" {
				s.Contains(body, tt.wantBody)
			}
		})
	}
	s.userServMock.AssertNumberOfCalls(s.T(), "Register", 2)
}

func (s *ControllersSuite) TestAuthController_Forms() {
	for _, uri := range []string{"/auth/register", "/auth/login"} {
		s.Run(uri, func() {
			res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: uri})
			s.Equal(http.StatusOK, res.StatusCode)
			s.Contains(body, `action="`+uri+`"`)
			s.Contains(body, `type="password"`)
		})
	}
}

func (s *ControllersSuite) TestAuthController_Login() {
	s.userServMock.On("Authenticate", mock.Anything, s.user.Username, "secret").Return(s.user, nil)
	s.userServMock.On("Authenticate", mock.Anything, s.user.Username, "wrong").
		Return(nil, services.ErrInvalidPassword)
	s.userServMock.On("Authenticate", mock.Anything, "nobody", mock.Anything).
		Return(nil, services.ErrUserNotFound)

	s.Run("unknown user", func() {
		res, body := s.makeRequest(requestFields{
			Method: http.MethodPost,
			URL:    "/auth/login",
			Form:   url.Values{"username": {"nobody"}, "password": {"secret"}},
		})
		s.Equal(http.StatusOK, res.StatusCode)
		s.Contains(body, "Usuario incorrecto.")
		s.Empty(res.Cookies())
	})

	s.Run("wrong password", func() {
		res, body := s.makeRequest(requestFields{
			Method: http.MethodPost,
			URL:    "/auth/login",
			Form:   url.Values{"username": {s.user.Username}, "password": {"wrong"}},
		})
		s.Equal(http.StatusOK, res.StatusCode)
		s.Contains(body, "Contraseña incorrecta.")
	})

	s.Run("valid", func() {
		res, _ := s.makeRequest(requestFields{
			Method: http.MethodPost,
			URL:    "/auth/login",
			Form:   url.Values{"username": {s.user.Username}, "password": {"secret"}},
		})
		s.Equal(http.StatusFound, res.StatusCode)
		s.Equal("/my-urls", res.Header.Get("Location"))

		cookies := res.Cookies()
		s.Require().Len(cookies, 1)
		s.Equal(middlewares.SessionCookieName, cookies[0].Name)
		s.True(cookies[0].HttpOnly)

		userID, err := tokens.ValidateSessionJWT(cookies[0].Value, []byte(s.config.SessionSecret))
		s.Require().NoError(err)
		s.Equal(s.user.ID, userID)
	})
}

func (s *ControllersSuite) TestAuthController_Logout() {
	res, _ := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/auth/logout", LoggedIn: true})

	s.Equal(http.StatusFound, res.StatusCode)
	s.Equal("/", res.Header.Get("Location"))
	s.True(strings.HasPrefix(res.Header.Get("Set-Cookie"), middlewares.SessionCookieName+"=;"))
}

func (s *ControllersSuite) TestLoggedInHeader() {
	res, body := s.makeRequest(requestFields{Method: http.MethodGet, URL: "/", LoggedIn: true})

	s.Equal(http.StatusOK, res.StatusCode)
	s.Contains(body, s.user.Username)
	s.Contains(body, `href="/my-urls"`)
	s.NotContains(body, `href="/auth/login"`)
}
