package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	sharedauth "lookcircuit-backend/internal/shared/auth"
	"lookcircuit-backend/internal/shared/server/respond"
	"lookcircuit-backend/internal/shared/telemetry"
	"lookcircuit-backend/internal/users"
)

const stateTTL = 5 * time.Minute

// UserSink records identities returned by a provider.
type UserSink interface {
	UpsertFromAuth(ctx context.Context, user users.User) error
}

// Service runs the social login flow behind the welcome screen's provider buttons.
type Service struct {
	providers  map[string]Provider
	uiRedirect string
	states     *stateStore
	users      UserSink
}

// NewService builds a Service. uiRedirect is usually an app deep link such as
// lookcircuit://auth; the session token is appended as ?token=.
func NewService(uiRedirect string, sink UserSink, providers ...Provider) *Service {
	s := &Service{
		providers:  make(map[string]Provider, len(providers)),
		uiRedirect: uiRedirect,
		states:     newStateStore(),
		users:      sink,
	}
	for _, p := range providers {
		s.providers[p.Name] = p
	}
	return s
}

// Providers lists the names of configured providers, sorted.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name, p := range s.providers {
		if p.Configured() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RegisterRoutes attaches the auth routes.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.GET("/providers", s.listProviders)
	auth.GET("/:provider/start", s.start)
	auth.GET("/:provider/callback", s.callback)
}

func (s *Service) listProviders(c *gin.Context) {
	respond.OK(c, gin.H{"providers": s.Providers()})
}

func (s *Service) provider(c *gin.Context) (Provider, bool) {
	p, ok := s.providers[c.Param("provider")]
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "unknown login provider", nil)
		return Provider{}, false
	}
	if !p.Configured() {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", p.Name+" auth not configured", nil)
		return Provider{}, false
	}
	return p, true
}

func (s *Service) start(c *gin.Context) {
	p, ok := s.provider(c)
	if !ok {
		return
	}
	state := uuid.NewString()
	s.states.put(state, p.Name, stateTTL)
	telemetry.Info("auth.start", map[string]any{"provider": p.Name, "request_id": c.GetString("requestId")})
	c.Redirect(http.StatusFound, p.OAuth.AuthCodeURL(state, oauth2.AccessTypeOffline))
}

func (s *Service) callback(c *gin.Context) {
	p, ok := s.provider(c)
	if !ok {
		return
	}
	state, code := c.Query("state"), c.Query("code")
	if state == "" || code == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "missing state or code", nil)
		return
	}
	if !s.states.consume(state, p.Name) {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid or expired state", nil)
		return
	}

	ctx := c.Request.Context()
	token, err := p.OAuth.Exchange(ctx, code)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "failed to exchange code", nil)
		return
	}
	prof, err := p.fetchProfile(ctx, token)
	if err != nil {
		telemetry.Warn("auth.profile_failed", map[string]any{"provider": p.Name, "error": err.Error()})
		respond.Error(c, http.StatusBadGateway, "auth_failed", "failed to fetch user profile", nil)
		return
	}

	userID := p.UserID(prof.Subject)
	if s.users != nil && prof.Email != "" {
		err := s.users.UpsertFromAuth(ctx, users.User{
			ID:         userID,
			Email:      prof.Email,
			FullName:   prof.Name,
			PictureURL: prof.Picture,
		})
		if err != nil {
			telemetry.Error("auth.upsert_failed", map[string]any{"provider": p.Name, "user_id": userID, "error": err.Error()})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save user", nil)
			return
		}
	}

	jwt, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:     userID,
		Email:   prof.Email,
		Name:    prof.Name,
		Picture: prof.Picture,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}
	redirectURL, err := appendToken(s.uiRedirect, jwt)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to redirect", nil)
		return
	}

	telemetry.Info("auth.complete", map[string]any{"provider": p.Name, "user_id": userID})
	c.Redirect(http.StatusFound, redirectURL)
}

func appendToken(rawURL, token string) (string, error) {
	if rawURL == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
