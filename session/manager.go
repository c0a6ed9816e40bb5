package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/wealthnest/client-go/api"
	"github.com/wealthnest/client-go/models"
	"github.com/wealthnest/client-go/querycache"
	"github.com/wealthnest/client-go/store"
	"github.com/wealthnest/client-go/utils/logger"
)

// State is the lifecycle position of the session.
type State int

const (
	// StateBootstrapping is entered exactly once, at construction, and left
	// exactly once, when Bootstrap resolves.
	StateBootstrapping State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateBootstrapping:
		return "bootstrapping"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

const (
	RouteDashboard = "/app/dashboard"
	RouteLogin     = "/login"
)

const defaultRedirectDelay = time.Second

type Config struct {
	API    *api.Client
	Tokens store.TokenStore
	// Cache is cleared on login/logout so no view data outlives a session.
	Cache     *querycache.Cache
	Navigator Navigator
	Notifier  Notifier
	// RedirectDelay is the pause between invitation acceptance and the
	// redirect, so the success notification stays visible.
	RedirectDelay time.Duration
}

// Manager is the single source of truth for who is logged in. It owns the
// token store and the session state; everything else reads it.
type Manager struct {
	api           *api.Client
	tokens        store.TokenStore
	cache         *querycache.Cache
	nav           Navigator
	notify        Notifier
	validate      *validator.Validate
	redirectDelay time.Duration

	mu           sync.Mutex
	state        State
	user         *models.User
	bootstrapped bool

	boot singleflight.Group
}

func NewManager(cfg Config) *Manager {
	m := &Manager{
		api:           cfg.API,
		tokens:        cfg.Tokens,
		cache:         cfg.Cache,
		nav:           cfg.Navigator,
		notify:        cfg.Notifier,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		redirectDelay: cfg.RedirectDelay,
		state:         StateBootstrapping,
	}
	if m.nav == nil {
		m.nav = NopNavigator{}
	}
	if m.notify == nil {
		m.notify = LogNotifier{}
	}
	if m.redirectDelay == 0 {
		m.redirectDelay = defaultRedirectDelay
	}
	if m.cache != nil {
		m.cache.SetGate(m.IsAuthenticated)
	}
	return m
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// Loading reports whether the session is still being restored; views stay
// gated behind it until Bootstrap resolves.
func (m *Manager) Loading() bool {
	return m.State() == StateBootstrapping
}

func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// Bootstrap restores the session from stored credentials. A second call while
// one is pending joins the in-flight attempt; once resolved, further calls
// are no-ops until a new Manager is constructed.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.mu.Lock()
	if m.bootstrapped {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	_, err, _ := m.boot.Do("bootstrap", func() (any, error) {
		return nil, m.restoreSession(ctx)
	})
	return err
}

func (m *Manager) restoreSession(ctx context.Context) error {
	defer m.finishBootstrap()

	token, err := m.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoToken) {
			logger.LogWarn("token store read failed", zap.Error(err))
		}
		return nil
	}

	if tokenExpired(token.AccessToken) {
		_ = m.tokens.Clear(ctx)
		return nil
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		// An invalid or expired token means "not logged in", never a
		// surfaced error.
		_ = m.tokens.Clear(ctx)
		if !api.IsAuthError(err) {
			logger.LogWarn("session restore failed", zap.Error(err))
		}
		return nil
	}

	m.setAuthenticated(user)
	logger.LogInfo("session restored", zap.String("email", user.Email))
	return nil
}

// finishBootstrap flips loading off exactly once.
func (m *Manager) finishBootstrap() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bootstrapped = true
	if m.state == StateBootstrapping {
		m.state = StateUnauthenticated
	}
}

// Login authenticates, persists the token pair, populates the session and
// hard-resets the application onto the dashboard. On any failure the session
// is left unchanged and nothing is persisted.
func (m *Manager) Login(ctx context.Context, email, password, twoFactorCode string) error {
	req := models.LoginRequest{Email: email, Password: password, TwoFactorCode: twoFactorCode}
	if err := m.validate.Struct(req); err != nil {
		m.notify.Error(validationMessage(err))
		return err
	}

	token, err := m.api.Login(ctx, req)
	if err != nil {
		m.notify.Error(api.Detail(err, "Login failed"))
		return err
	}
	if err := m.tokens.Save(ctx, token); err != nil {
		m.notify.Error("Login failed")
		return err
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		// Roll back so a half-finished login leaves no credentials behind.
		_ = m.tokens.Clear(ctx)
		m.notify.Error(api.Detail(err, "Login failed"))
		return err
	}

	m.setAuthenticated(user)
	m.notify.Success("Login successful")
	m.reset(RouteDashboard)
	return nil
}

// Register creates the account without authenticating; the user is sent to
// the login flow.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := m.validate.Struct(req); err != nil {
		m.notify.Error(validationMessage(err))
		return err
	}

	if _, err := m.api.Register(ctx, req); err != nil {
		m.notify.Error(api.Detail(err, "Registration failed"))
		return err
	}

	m.notify.Success("Registration successful. Please login.")
	m.nav.Redirect(RouteLogin)
	return nil
}

// Logout clears the stored tokens and the in-memory session, then hard-resets
// onto the login route. Safe to call from any state, including logged out.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.tokens.Clear(ctx); err != nil {
		logger.LogWarn("token store clear failed", zap.Error(err))
	}
	m.setUnauthenticated()
	m.notify.Success("Logged out successfully")
	m.reset(RouteLogin)
}

// AcceptInvitation activates an invited account. The token is only checked
// for presence here; its validity is the server's call.
func (m *Manager) AcceptInvitation(ctx context.Context, req models.AcceptInvitationRequest) error {
	if req.Token == "" {
		m.notify.Error("No invitation token provided")
		return errors.New("session: no invitation token provided")
	}
	if err := m.validate.Struct(req); err != nil {
		m.notify.Error(validationMessage(err))
		return err
	}

	token, err := m.api.AcceptInvitation(ctx, req)
	if err != nil {
		m.notify.Error(api.Detail(err, "Failed to accept invitation"))
		return err
	}
	if err := m.tokens.Save(ctx, token); err != nil {
		m.notify.Error("Failed to accept invitation")
		return err
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		_ = m.tokens.Clear(ctx)
		m.notify.Error(api.Detail(err, "Failed to accept invitation"))
		return err
	}

	m.setAuthenticated(user)
	m.notify.Success("Account activated successfully!")

	// Short pause so the success notification is visible before the reset.
	select {
	case <-ctx.Done():
	case <-time.After(m.redirectDelay):
	}
	m.reset(RouteDashboard)
	return nil
}

// HandleAPIError applies the forced-logout rule: a 401 on an authenticated
// call outside the explicit auth flows ends the session. No redirect is
// issued here; the route guard owns that.
func (m *Manager) HandleAPIError(ctx context.Context, err error) {
	if !api.IsAuthError(err) {
		return
	}
	_ = m.tokens.Clear(ctx)
	m.setUnauthenticated()
	logger.LogInfo("session expired, forced logout")
}

func (m *Manager) setAuthenticated(user models.User) {
	m.mu.Lock()
	u := user
	m.user = &u
	m.state = StateAuthenticated
	m.mu.Unlock()
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()
	if m.cache != nil {
		m.cache.Clear()
	}
}

// reset is the full application-state reset behind the hard redirects: every
// cached view datum is dropped before navigation.
func (m *Manager) reset(route string) {
	if m.cache != nil {
		m.cache.Clear()
	}
	m.nav.Redirect(route)
}

// validationMessage maps the first failed field to the message the forms
// showed for it.
func validationMessage(err error) string {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return "Please check the form and try again"
	}

	f := fields[0]
	switch {
	case f.Field() == "ConfirmPassword":
		return "Passwords do not match"
	case f.Field() == "Password" && f.Tag() == "min":
		return "Password must be at least 8 characters long"
	case f.Field() == "Password":
		return "Password is required"
	case f.Field() == "Phone":
		return "Phone number is required"
	case f.Field() == "Email":
		return "A valid email address is required"
	case f.Field() == "TwoFactorCode":
		return "The 2FA code must be 6 digits"
	default:
		return "Please check the form and try again"
	}
}
