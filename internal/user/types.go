package user

import (
	"github.com/ecodeclub/pointsmall/internal/user/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/user/internal/service"
	"github.com/ecodeclub/pointsmall/internal/user/internal/web"
)

type User = domain.User
type GoogleInfo = domain.GoogleInfo
type Status = domain.Status
type Service = service.UserService
type Handler = web.Handler

const (
	StatusActive   = domain.StatusActive
	StatusInactive = domain.StatusInactive
)

var (
	ErrUserNotFound  = service.ErrUserNotFound
	ErrPointsChanged = service.ErrPointsChanged
)
