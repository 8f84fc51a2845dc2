package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/ecodeclub/pointsmall/internal/user/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	uuid "github.com/lithammer/shortuuid/v4"
)

const authURLPattern = "https://accounts.google.com/o/oauth2/v2/auth?client_id=%s&redirect_uri=%s&response_type=code&scope=openid%%20email%%20profile&state=%s"

type OAuth2Service interface {
	AuthURL() (string, error)
	VerifyCode(ctx context.Context, code string) (domain.GoogleInfo, error)
}

type GoogleOAuth2Service struct {
	clientId     string
	clientSecret string
	redirectURL  string
	logger       *elog.Component
	client       *http.Client
}

func NewGoogleService(clientId, clientSecret, redirectURL string) OAuth2Service {
	return &GoogleOAuth2Service{
		clientId:     clientId,
		clientSecret: clientSecret,
		redirectURL:  url.QueryEscape(redirectURL),
		logger:       elog.DefaultLogger,
		client:       http.DefaultClient,
	}
}

func (s *GoogleOAuth2Service) AuthURL() (string, error) {
	state := uuid.New()
	return fmt.Sprintf(authURLPattern, s.clientId, s.redirectURL, state), nil
}

func (s *GoogleOAuth2Service) VerifyCode(ctx context.Context, code string) (domain.GoogleInfo, error) {
	const tokenURL = "https://oauth2.googleapis.com/token"
	var tokenRes tokenResult
	err := httpx.NewRequest(ctx, http.MethodPost, tokenURL).
		Client(s.client).
		AddParam("client_id", s.clientId).
		AddParam("client_secret", s.clientSecret).
		AddParam("code", code).
		AddParam("redirect_uri", s.redirectURL).
		AddParam("grant_type", "authorization_code").Do().
		JSONScan(&tokenRes)
	if err != nil {
		return domain.GoogleInfo{}, err
	}
	if tokenRes.AccessToken == "" {
		return domain.GoogleInfo{}, fmt.Errorf("换取 access_token 失败 %s, %s", tokenRes.Error, tokenRes.ErrorDesc)
	}

	const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	var info userinfoResult
	err = httpx.NewRequest(ctx, http.MethodGet, userinfoURL).
		Client(s.client).
		AddParam("access_token", tokenRes.AccessToken).Do().
		JSONScan(&info)
	if err != nil {
		return domain.GoogleInfo{}, err
	}
	if info.Id == "" {
		return domain.GoogleInfo{}, fmt.Errorf("获取用户信息失败")
	}
	return domain.GoogleInfo{
		Sub:    info.Id,
		Email:  info.Email,
		Name:   info.Name,
		Avatar: info.Picture,
	}, nil
}

type tokenResult struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	IdToken      string `json:"id_token"`
	Scope        string `json:"scope"`

	Error     string `json:"error"`
	ErrorDesc string `json:"error_description"`
}

type userinfoResult struct {
	Id      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
