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
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pointsmall/internal/ai/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/ai/internal/errs"
	"github.com/ecodeclub/pointsmall/internal/ai/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	emptyQuestionResult = ginx.Result{
		Code: errs.EmptyQuestion.Code,
		Msg:  errs.EmptyQuestion.Msg,
	}
)

type ChatReq struct {
	Question string `json:"question"`
}

type ChatResp struct {
	Answer string `json:"answer,omitempty"`
}

type Handler struct {
	svc service.ChatService
}

func NewHandler(svc service.ChatService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	ai := server.Group("/ai")
	ai.POST("/chat", ginx.BS[ChatReq](h.Chat))
}

func (h *Handler) Chat(ctx *ginx.Context, req ChatReq, sess session.Session) (ginx.Result, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return emptyQuestionResult, nil
	}
	res, err := h.svc.Chat(ctx.Request.Context(), domain.ChatRequest{
		Uid:      sess.Claims().Uid,
		Question: question,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ChatResp{
			Answer: res.Answer,
		},
	}, nil
}
