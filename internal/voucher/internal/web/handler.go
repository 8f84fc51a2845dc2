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

// Handler 面向 C 端的只读接口，不需要登录
type Handler struct {
	svc service.VoucherService
}

func NewHandler(svc service.VoucherService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	vouchers := server.Group("/vouchers")
	vouchers.POST("/list", ginx.B[ListReq](h.List))
	vouchers.POST("/detail", ginx.B[DetailReq](h.Detail))
	vouchers.GET("/categories", ginx.W(h.Categories))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	vs, total, err := h.svc.List(ctx.Request.Context(), domain.Query{
		Category:  req.Category,
		MinPoints: req.MinPoints,
		MaxPoints: req.MaxPoints,
		Offset:    req.Offset,
		Limit:     req.Limit,
		Sort:      req.Sort,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total:    total,
			Vouchers: newVouchers(vs),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	v, err := h.svc.Detail(ctx.Request.Context(), req.Id)
	if errors.Is(err, service.ErrVoucherNotFound) {
		return voucherNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newVoucher(v),
	}, nil
}

func (h *Handler) Categories(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Categories(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: res,
	}, nil
}
