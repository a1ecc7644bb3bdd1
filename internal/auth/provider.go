package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// Profile is the identity a provider returns after the code exchange.
type Profile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Provider is one OAuth2 social login backend.
type Provider struct {
	Name        string
	OAuth       *oauth2.Config
	UserInfoURL string
	decode      func(*http.Response) (Profile, error)
}

// Configured reports whether the client credentials and callback are set.
func (p Provider) Configured() bool {
	return p.OAuth != nil && p.OAuth.ClientID != "" && p.OAuth.ClientSecret != "" && p.OAuth.RedirectURL != ""
}

// UserID is the namespaced id stored for users of this provider.
func (p Provider) UserID(subject string) string {
	return p.Name + ":" + subject
}

func (p Provider) fetchProfile(ctx context.Context, token *oauth2.Token) (Profile, error) {
	resp, err := p.OAuth.Client(ctx, token).Get(p.UserInfoURL)
	if err != nil {
		return Profile{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("%s userinfo status %d", p.Name, resp.StatusCode)
	}
	prof, err := p.decode(resp)
	if err != nil {
		return Profile{}, fmt.Errorf("decode %s profile: %w", p.Name, err)
	}
	if strings.TrimSpace(prof.Subject) == "" {
		return Profile{}, fmt.Errorf("%s profile has no subject", p.Name)
	}
	return prof, nil
}

// GoogleProvider signs users in with Google.
func GoogleProvider(clientID, clientSecret, redirectURL string) Provider {
	return Provider{
		Name: ProviderGoogle,
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		decode:      decodeGoogle,
	}
}

func decodeGoogle(resp *http.Response) (Profile, error) {
	var info struct {
		Sub     string `json:"sub"`
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Profile{}, err
	}
	// v2 userinfo returns "id", openid returns "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	return Profile{Subject: info.Sub, Email: info.Email, Name: info.Name, Picture: info.Picture}, nil
}

// FacebookProvider signs users in with Facebook.
func FacebookProvider(clientID, clientSecret, redirectURL string) Provider {
	return Provider{
		Name: ProviderFacebook,
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email,picture.type(large)",
		decode:      decodeFacebook,
	}
}

func decodeFacebook(resp *http.Response) (Profile, error) {
	var info struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Profile{}, err
	}
	return Profile{Subject: info.ID, Email: info.Email, Name: info.Name, Picture: info.Picture.Data.URL}, nil
}
