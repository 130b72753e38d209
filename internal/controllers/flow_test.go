package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/acortador/internal/config"
	"github.com/fsdevblog/acortador/internal/controllers"
	"github.com/fsdevblog/acortador/internal/controllers/middlewares"
	"github.com/fsdevblog/acortador/internal/db"
	"github.com/fsdevblog/acortador/internal/models"
	"github.com/fsdevblog/acortador/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FlowSuite проходит сценарии пользователя через настоящие сервисы и sqlite в памяти.
type FlowSuite struct {
	suite.Suite
	conn   *gorm.DB
	router *gin.Engine
}

func (s *FlowSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	conn, err := db.NewConnectionFactory(context.Background(), db.FactoryConfig{
		StorageType: db.StorageTypeSQLite,
		DSN:         ":memory:",
	})
	s.Require().NoError(err)
	s.conn = conn

	dbServices := services.Factory(conn)
	s.router = controllers.MustSetupRouter(controllers.RouterParams{
		URLService:  dbServices.URLService,
		UserService: dbServices.UserService,
		PingService: dbServices.PingService,
		AppConf: config.Config{
			BaseURL:         "http://sho.rt",
			SessionSecret:   "flow-secret",
			SessionTTL:      time.Hour,
			DefaultLanguage: "es",
		},
		Logger: zap.NewNop(),
	})
}

func (s *FlowSuite) TearDownTest() {
	s.Require().NoError(db.Close(s.conn))
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

func (s *FlowSuite) do(method, uri string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, uri, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, uri, nil)
	}
	if session != nil {
		req.AddCookie(session)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// signUp регистрирует пользователя и возвращает cookie сессии.
func (s *FlowSuite) signUp(username string) *http.Cookie {
	creds := url.Values{"username": {username}, "password": {"secret"}}

	w := s.do(http.MethodPost, "/auth/register", creds, nil)
	s.Require().Equal(http.StatusFound, w.Code)

	w = s.do(http.MethodPost, "/auth/login", creds, nil)
	s.Require().Equal(http.StatusFound, w.Code)
	for _, c := range w.Result().Cookies() { //nolint:bodyclose
		if c.Name == middlewares.SessionCookieName {
			return c
		}
	}
	s.FailNow("session cookie is not set")
	return nil
}

func (s *FlowSuite) TestAnonymousShortenAndRedirect() {
	w := s.do(http.MethodPost, "/", url.Values{"long_url": {"example.com"}}, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "http://sho.rt/5ababd")

	w = s.do(http.MethodGet, "/5ababd", nil, nil)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("https://example.com", w.Header().Get("Location"))

	w = s.do(http.MethodGet, "/ffffff", nil, nil)
	s.Equal(http.StatusNotFound, w.Code)

	var count int64
	s.Require().NoError(s.conn.Model(&models.URL{}).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *FlowSuite) TestEmptyInputLeavesStoreUnchanged() {
	session := s.signUp("ana")

	s.do(http.MethodPost, "/", url.Values{"long_url": {""}}, nil)
	s.do(http.MethodPost, "/create", url.Values{"long_url": {""}}, session)

	var count int64
	s.Require().NoError(s.conn.Model(&models.URL{}).Count(&count).Error)
	s.Zero(count)
}

func (s *FlowSuite) TestOwnerLifecycle() {
	ana := s.signUp("ana")
	bob := s.signUp("bob")

	w := s.do(http.MethodPost, "/create", url.Values{"long_url": {"example.com"}}, ana)
	s.Require().Equal(http.StatusFound, w.Code)

	var mURL models.URL
	s.Require().NoError(s.conn.First(&mURL).Error)
	s.Equal("5ababd", mURL.ShortURL)
	id := "/" + strconv.FormatUint(uint64(mURL.ID), 10)

	w = s.do(http.MethodGet, "/my-urls", nil, bob)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "example.com")
	s.NotContains(w.Body.String(), `href="`+id+`/update"`)

	s.Run("other user is forbidden", func() {
		w := s.do(http.MethodPost, id+"/update", url.Values{"long_url": {"https://go.dev/doc"}}, bob)
		s.Equal(http.StatusForbidden, w.Code)
		w = s.do(http.MethodPost, id+"/delete", nil, bob)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("update recomputes short code", func() {
		w := s.do(http.MethodPost, id+"/update", url.Values{"long_url": {"https://go.dev/doc"}}, ana)
		s.Equal(http.StatusFound, w.Code)

		var updated models.URL
		s.Require().NoError(s.conn.First(&updated, mURL.ID).Error)
		s.Equal("f546b9", updated.ShortURL)
		s.Equal("https://go.dev/doc", updated.LongURL)

		w = s.do(http.MethodGet, "/f546b9", nil, nil)
		s.Equal("https://https://go.dev/doc", w.Header().Get("Location"))
	})

	s.Run("delete", func() {
		w := s.do(http.MethodPost, id+"/delete", nil, ana)
		s.Equal(http.StatusFound, w.Code)

		w = s.do(http.MethodGet, id+"/update", nil, ana)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *FlowSuite) TestDuplicateRegistration() {
	s.signUp("ana")

	w := s.do(http.MethodPost, "/auth/register", url.Values{"username": {"ana"}, "password": {"x"}}, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "El usuario ana ya está registrado.")
}

func (s *FlowSuite) TestPing() {
	w := s.do(http.MethodGet, "/ping", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("pong", w.Body.String())
}
