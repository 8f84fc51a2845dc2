// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pointsmall/internal/redemption/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.RedemptionService
}

func NewHandler(svc service.RedemptionService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/vouchers/:id/redeem", ginx.S(h.Redeem))
	redemptions := server.Group("/redemptions")
	redemptions.POST("/list", ginx.BS[ListReq](h.List))
	redemptions.GET("/stats", ginx.S(h.Stats))
}

func (h *Handler) Redeem(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	voucherId, err := ctx.Param("id").AsInt64()
	if err != nil {
		return voucherNotFoundResult, nil
	}
	res, err := h.svc.Redeem(ctx.Request.Context(), sess.Claims().Uid, voucherId)
	switch {
	case errors.Is(err, service.ErrVoucherNotFound):
		return voucherNotFoundResult, nil
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	case errors.Is(err, service.ErrUserInactive):
		return userInactiveResult, nil
	case errors.Is(err, service.ErrVoucherUnavailable):
		return voucherUnavailableResult, nil
	case errors.Is(err, service.ErrInsufficientPoints):
		return insufficientPointsResult, nil
	case errors.Is(err, service.ErrUserLimitReached):
		return userLimitReachedResult, nil
	case errors.Is(err, service.ErrConcurrentConflict):
		return concurrentConflictResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RedeemResult{
			SN:              res.SN,
			VoucherTitle:    res.VoucherTitle,
			PointsUsed:      res.PointsUsed,
			RemainingPoints: res.RemainingPoints,
		},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	rs, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total:       total,
			Redemptions: newRedemptions(rs),
		},
	}, nil
}

func (h *Handler) Stats(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	stats, err := h.svc.Stats(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	res := Stats{
		TotalRedemptions: stats.TotalRedemptions,
		TotalPointsUsed:  stats.TotalPointsUsed,
	}
	for _, c := range stats.CategoryCounts {
		res.CategoryCounts = append(res.CategoryCounts, CategoryCount{
			Category: c.Category,
			Count:    c.Count,
		})
	}
	return ginx.Result{
		Data: res,
	}, nil
}
