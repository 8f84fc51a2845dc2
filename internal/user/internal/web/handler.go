package web

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pointsmall/internal/user/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	googleSvc service.OAuth2Service
	userSvc   service.UserService
}

func NewHandler(googleSvc service.OAuth2Service, userSvc service.UserService) *Handler {
	return &Handler{
		googleSvc: googleSvc,
		userSvc:   userSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/login", ginx.B[LoginReq](h.Login))
	oauth2 := server.Group("/oauth2")
	oauth2.GET("/google/auth_url", ginx.W(h.GoogleAuthURL))
	oauth2.Any("/google/callback", ginx.B[GoogleCallback](h.Callback))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.LoginByEmail(ctx.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredential):
		return invalidCredentialResult, nil
	case errors.Is(err, service.ErrUserInactive):
		return userInactiveResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	if err = h.newSession(ctx, u); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) GoogleAuthURL(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.googleSvc.AuthURL()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) Callback(ctx *ginx.Context, req GoogleCallback) (ginx.Result, error) {
	info, err := h.googleSvc.VerifyCode(ctx.Request.Context(), req.Code)
	if err != nil {
		return systemErrorResult, err
	}
	u, err := h.userSvc.FindOrCreateByGoogle(ctx.Request.Context(), info)
	if errors.Is(err, service.ErrUserInactive) {
		return userInactiveResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	if err = h.newSession(ctx, u); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		Id:     sess.Claims().Uid,
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if errors.Is(err, service.ErrDuplicateUser) {
		return duplicateEmailResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// newSession 会话里带上 admin 标记位，admin 服务的登录校验靠它
func (h *Handler) newSession(ctx *ginx.Context, u domain.User) error {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"admin": strconv.FormatBool(u.Role.IsAdmin()),
		}).Build()
	return err
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:      u.Id,
		SN:      u.SN,
		Name:    u.Name,
		Email:   u.Email,
		Avatar:  u.Avatar,
		Points:  u.Points,
		IsAdmin: u.Role.IsAdmin(),
	}
}
