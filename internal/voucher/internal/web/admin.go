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
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/voucher/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 挂在 admin 服务上，所有接口都要求管理员身份
type AdminHandler struct {
	svc service.VoucherService
}

func NewAdminHandler(svc service.VoucherService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	vouchers := server.Group("/vouchers")
	vouchers.POST("/save", ginx.B[SaveReq](h.Save))
	vouchers.POST("/delete", ginx.B[DeleteReq](h.Delete))
	vouchers.GET("/analytics", ginx.W(h.Analytics))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), h.toDomain(req.Voucher))
	switch {
	case errors.Is(err, service.ErrInvalidVoucher):
		return invalidVoucherResult, nil
	case errors.Is(err, service.ErrTotalLimitImmutable):
		return totalLimitFixedResult, nil
	case errors.Is(err, service.ErrVoucherNotFound):
		return voucherNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *AdminHandler) Analytics(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Analytics(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AnalyticsResp{
			TopRedeemed:   newVouchers(res.TopRedeemed),
			LowRedeemed:   newVouchers(res.LowRedeemed),
			CategoryStats: newCategoryStats(res.CategoryStats),
			Recent:        newVouchers(res.Recent),
		},
	}, nil
}

func (h *AdminHandler) toDomain(v Voucher) domain.Voucher {
	return domain.Voucher{
		Id:                 v.Id,
		Title:              v.Title,
		Desc:               v.Desc,
		Category:           v.Category,
		Brand:              v.Brand,
		Image:              v.Image,
		Terms:              v.Terms,
		PointsCost:         v.PointsCost,
		OriginalPrice:      v.OriginalPrice,
		DiscountPercentage: v.DiscountPercentage,
		TotalLimit:         v.TotalLimit,
		UserLimit:          v.UserLimit,
		ExpiryDate:         v.ExpiryDate,
		Status:             domain.Status(v.Status),
	}
}
