package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wealthnest/client-go/api"
	"github.com/wealthnest/client-go/models"
	"github.com/wealthnest/client-go/querycache"
	"github.com/wealthnest/client-go/store"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Redirect(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordingNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

var testUser = models.User{ID: 7, Email: "jo@example.com", FullName: "Jo Doe", IsVerified: true}

const validAccess = "access-valid"

// signedToken builds an HS256 token with the given expiry; the manager only
// reads the exp claim, it never verifies the signature.
func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

type ManagerTestSuite struct {
	suite.Suite
	ctx      context.Context
	echo     *echo.Echo
	server   *httptest.Server
	tokens   *store.MemoryStore
	cache    *querycache.Cache
	notifier *recordingNotifier
	nav      *recordingNavigator
	manager  *Manager

	requests atomic.Int64
	meDelay  time.Duration
}

func (suite *ManagerTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.tokens = store.NewMemoryStore()
	suite.cache = querycache.New()
	suite.notifier = &recordingNotifier{}
	suite.nav = &recordingNavigator{}
	suite.requests.Store(0)
	suite.meDelay = 0

	suite.echo = echo.New()
	suite.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			suite.requests.Add(1)
			return next(c)
		}
	})
	suite.registerHandlers()
	suite.server = httptest.NewServer(suite.echo)
	suite.T().Cleanup(suite.server.Close)

	client := api.NewClient(api.Config{BaseURL: suite.server.URL}, suite.tokens)
	suite.manager = NewManager(Config{
		API:           client,
		Tokens:        suite.tokens,
		Cache:         suite.cache,
		Navigator:     suite.nav,
		Notifier:      suite.notifier,
		RedirectDelay: time.Millisecond,
	})
}

func (suite *ManagerTestSuite) registerHandlers() {
	suite.echo.POST("/auth/login", func(c echo.Context) error {
		var req models.LoginRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Password != "secret123" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Incorrect email or password"})
		}
		return c.JSON(http.StatusOK, models.Token{AccessToken: validAccess, RefreshToken: "refresh-valid"})
	})

	suite.echo.GET("/auth/me", func(c echo.Context) error {
		if suite.meDelay > 0 {
			time.Sleep(suite.meDelay)
		}
		if c.Request().Header.Get(echo.HeaderAuthorization) != "Bearer "+validAccess {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Could not validate credentials"})
		}
		return c.JSON(http.StatusOK, testUser)
	})

	suite.echo.POST("/auth/register", func(c echo.Context) error {
		var req models.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Email == "taken@example.com" {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "User with this email or phone already exists"})
		}
		return c.JSON(http.StatusCreated, models.User{ID: 11, Email: req.Email})
	})

	suite.echo.POST("/auth/accept-invitation", func(c echo.Context) error {
		var req models.AcceptInvitationRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Token != "invite-ok" {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid or expired invitation"})
		}
		return c.JSON(http.StatusOK, models.Token{AccessToken: validAccess, RefreshToken: "refresh-valid"})
	})
}

func (suite *ManagerTestSuite) TestBootstrapWithoutStoredToken() {
	assert.True(suite.T(), suite.manager.Loading())

	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	assert.False(suite.T(), suite.manager.Loading())
	assert.False(suite.T(), suite.manager.IsAuthenticated())
	assert.Equal(suite.T(), int64(0), suite.requests.Load(), "no stored token means no network call")
}

func (suite *ManagerTestSuite) TestBootstrapRestoresSession() {
	require.NoError(suite.T(), suite.tokens.Save(suite.ctx, models.Token{
		AccessToken: validAccess, RefreshToken: "refresh-valid",
	}))

	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	assert.True(suite.T(), suite.manager.IsAuthenticated())
	user, ok := suite.manager.CurrentUser()
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), testUser, user)
}

func (suite *ManagerTestSuite) TestBootstrapRejectedTokenClearsStore() {
	require.NoError(suite.T(), suite.tokens.Save(suite.ctx, models.Token{
		AccessToken: "access-revoked", RefreshToken: "refresh-revoked",
	}))

	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx),
		"a 401 during bootstrap means not logged in, never a surfaced error")

	assert.False(suite.T(), suite.manager.IsAuthenticated())
	assert.False(suite.T(), suite.manager.Loading())
	_, err := suite.tokens.Load(suite.ctx)
	assert.ErrorIs(suite.T(), err, store.ErrNoToken)
}

func (suite *ManagerTestSuite) TestBootstrapLocallyExpiredTokenSkipsNetwork() {
	require.NoError(suite.T(), suite.tokens.Save(suite.ctx, models.Token{
		AccessToken:  signedToken(suite.T(), time.Now().Add(-time.Hour)),
		RefreshToken: "refresh-stale",
	}))

	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	assert.False(suite.T(), suite.manager.IsAuthenticated())
	assert.Equal(suite.T(), int64(0), suite.requests.Load())
	_, err := suite.tokens.Load(suite.ctx)
	assert.ErrorIs(suite.T(), err, store.ErrNoToken)
}

func (suite *ManagerTestSuite) TestBootstrapIsSingleEntry() {
	require.NoError(suite.T(), suite.tokens.Save(suite.ctx, models.Token{
		AccessToken: validAccess, RefreshToken: "refresh-valid",
	}))
	suite.meDelay = 50 * time.Millisecond

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = suite.manager.Bootstrap(suite.ctx)
		}()
	}
	wg.Wait()

	assert.Equal(suite.T(), int64(1), suite.requests.Load(), "concurrent bootstraps must share one attempt")
	assert.True(suite.T(), suite.manager.IsAuthenticated())

	// Once resolved, a later call is a no-op.
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))
	assert.Equal(suite.T(), int64(1), suite.requests.Load())
}

func (suite *ManagerTestSuite) TestLoginSuccess() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	err := suite.manager.Login(suite.ctx, "jo@example.com", "secret123", "")
	require.NoError(suite.T(), err)

	assert.True(suite.T(), suite.manager.IsAuthenticated())
	token, err := suite.tokens.Load(suite.ctx)
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token.AccessToken)
	assert.NotEmpty(suite.T(), token.RefreshToken)

	user, ok := suite.manager.CurrentUser()
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), testUser.Email, user.Email)

	assert.Equal(suite.T(), RouteDashboard, suite.nav.last())
	assert.Contains(suite.T(), suite.notifier.successes, "Login successful")
}

func (suite *ManagerTestSuite) TestLoginFailureLeavesStateUnchanged() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	err := suite.manager.Login(suite.ctx, "jo@example.com", "wrong-password", "")
	require.Error(suite.T(), err)

	assert.False(suite.T(), suite.manager.IsAuthenticated())
	_, loadErr := suite.tokens.Load(suite.ctx)
	assert.ErrorIs(suite.T(), loadErr, store.ErrNoToken, "failed login must not persist tokens")
	assert.Equal(suite.T(), "Incorrect email or password", suite.notifier.lastError())
	assert.Empty(suite.T(), suite.nav.paths)
}

func (suite *ManagerTestSuite) TestLoginValidationBlocksNetworkCall() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))
	before := suite.requests.Load()

	err := suite.manager.Login(suite.ctx, "not-an-email", "secret123", "")
	require.Error(suite.T(), err)

	assert.Equal(suite.T(), before, suite.requests.Load(), "invalid input must not reach the network")
	assert.Equal(suite.T(), "A valid email address is required", suite.notifier.lastError())
}

func (suite *ManagerTestSuite) TestRegisterDoesNotAuthenticate() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	err := suite.manager.Register(suite.ctx, models.RegisterRequest{
		Email:    "new@example.com",
		Phone:    "+919876543210",
		Password: "secret123",
		FullName: "New User",
	})
	require.NoError(suite.T(), err)

	assert.False(suite.T(), suite.manager.IsAuthenticated())
	_, loadErr := suite.tokens.Load(suite.ctx)
	assert.ErrorIs(suite.T(), loadErr, store.ErrNoToken, "registration issues no tokens")
	assert.Equal(suite.T(), RouteLogin, suite.nav.last())
	assert.Contains(suite.T(), suite.notifier.successes, "Registration successful. Please login.")
}

func (suite *ManagerTestSuite) TestRegisterFailureSurfacesDetail() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	err := suite.manager.Register(suite.ctx, models.RegisterRequest{
		Email:    "taken@example.com",
		Phone:    "+919876543210",
		Password: "secret123",
	})
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), "User with this email or phone already exists", suite.notifier.lastError())
	assert.Empty(suite.T(), suite.nav.paths)
}

func (suite *ManagerTestSuite) TestLogoutClearsEverything() {
	require.NoError(suite.T(), suite.tokens.Save(suite.ctx, models.Token{
		AccessToken: validAccess, RefreshToken: "refresh-valid",
	}))
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))
	require.True(suite.T(), suite.manager.IsAuthenticated())

	// A fresh cache entry from this session must not survive the logout.
	families := querycache.NewKey("families")
	_, err := suite.cache.Read(suite.ctx, families, func(ctx context.Context) (any, error) {
		return "cached families", nil
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), querycache.Fresh, suite.cache.State(families))

	suite.manager.Logout(suite.ctx)

	assert.False(suite.T(), suite.manager.IsAuthenticated())
	_, loadErr := suite.tokens.Load(suite.ctx)
	assert.ErrorIs(suite.T(), loadErr, store.ErrNoToken)
	assert.Equal(suite.T(), querycache.Absent, suite.cache.State(families))
	assert.Equal(suite.T(), RouteLogin, suite.nav.last())
}

func (suite *ManagerTestSuite) TestLogoutIsSafeWhenLoggedOut() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	require.NotPanics(suite.T(), func() {
		suite.manager.Logout(suite.ctx)
		suite.manager.Logout(suite.ctx)
	})
	assert.False(suite.T(), suite.manager.IsAuthenticated())
}

func (suite *ManagerTestSuite) TestAcceptInvitationSuccess() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	err := suite.manager.AcceptInvitation(suite.ctx, models.AcceptInvitationRequest{
		Token:           "invite-ok",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Phone:           "+919876543210",
	})
	require.NoError(suite.T(), err)

	assert.True(suite.T(), suite.manager.IsAuthenticated())
	token, loadErr := suite.tokens.Load(suite.ctx)
	require.NoError(suite.T(), loadErr)
	assert.NotEmpty(suite.T(), token.AccessToken)
	assert.Equal(suite.T(), RouteDashboard, suite.nav.last())
	assert.Contains(suite.T(), suite.notifier.successes, "Account activated successfully!")
}

func (suite *ManagerTestSuite) TestAcceptInvitationMissingToken() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))
	before := suite.requests.Load()

	err := suite.manager.AcceptInvitation(suite.ctx, models.AcceptInvitationRequest{
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Phone:           "+919876543210",
	})
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), before, suite.requests.Load())
	assert.Equal(suite.T(), "No invitation token provided", suite.notifier.lastError())
}

func (suite *ManagerTestSuite) TestAcceptInvitationPasswordMismatch() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))
	before := suite.requests.Load()

	err := suite.manager.AcceptInvitation(suite.ctx, models.AcceptInvitationRequest{
		Token:           "invite-ok",
		Password:        "secret123",
		ConfirmPassword: "different",
		Phone:           "+919876543210",
	})
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), before, suite.requests.Load())
	assert.Equal(suite.T(), "Passwords do not match", suite.notifier.lastError())
	assert.False(suite.T(), suite.manager.IsAuthenticated())
}

func (suite *ManagerTestSuite) TestAcceptInvitationRejectedByServer() {
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	err := suite.manager.AcceptInvitation(suite.ctx, models.AcceptInvitationRequest{
		Token:           "invite-expired",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Phone:           "+919876543210",
	})
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), "Invalid or expired invitation", suite.notifier.lastError())
	assert.False(suite.T(), suite.manager.IsAuthenticated())
	_, loadErr := suite.tokens.Load(suite.ctx)
	assert.ErrorIs(suite.T(), loadErr, store.ErrNoToken)
}

func (suite *ManagerTestSuite) TestHandleAPIErrorForcesLogoutOn401() {
	require.NoError(suite.T(), suite.tokens.Save(suite.ctx, models.Token{
		AccessToken: validAccess, RefreshToken: "refresh-valid",
	}))
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))
	require.True(suite.T(), suite.manager.IsAuthenticated())
	navBefore := len(suite.nav.paths)

	suite.manager.HandleAPIError(suite.ctx, &api.Error{StatusCode: http.StatusUnauthorized, Detail: "Could not validate credentials"})

	assert.False(suite.T(), suite.manager.IsAuthenticated())
	_, loadErr := suite.tokens.Load(suite.ctx)
	assert.ErrorIs(suite.T(), loadErr, store.ErrNoToken)
	assert.Len(suite.T(), suite.nav.paths, navBefore, "forced logout must not redirect; the route guard does")
}

func (suite *ManagerTestSuite) TestHandleAPIErrorIgnoresOtherFailures() {
	require.NoError(suite.T(), suite.tokens.Save(suite.ctx, models.Token{
		AccessToken: validAccess, RefreshToken: "refresh-valid",
	}))
	require.NoError(suite.T(), suite.manager.Bootstrap(suite.ctx))

	suite.manager.HandleAPIError(suite.ctx, &api.Error{StatusCode: http.StatusBadRequest, Detail: "bad input"})

	assert.True(suite.T(), suite.manager.IsAuthenticated())
	_, loadErr := suite.tokens.Load(suite.ctx)
	assert.NoError(suite.T(), loadErr)
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, tokenExpired("not-a-jwt"), "unparseable tokens are the server's call")
	assert.False(t, tokenExpired(""))
}
