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

package service

import (
	"context"
	"time"

	"github.com/ecodeclub/pointsmall/internal/ai/internal/domain"
	"github.com/ecodeclub/pointsmall/internal/ai/internal/repository"
	"github.com/ecodeclub/pointsmall/internal/ai/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Gemini 提供 OpenAI 兼容接口，直接复用 openai 客户端
const baseUrl = "https://generativelanguage.googleapis.com/v1beta/openai/"

// systemPrompt 限定助手只回答积分商城相关的问题
const systemPrompt = "你是积分商城的购物助手，根据用户的积分情况推荐合适的兑换券，" +
	"回答兑换规则相关的问题。不要回答与积分商城无关的内容。"

type ChatService interface {
	Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
}

type GeminiService struct {
	client *openai.Client
	model  string
	repo   repository.ChatLogRepo
	logger *elog.Component
}

func NewGeminiService(apikey, model string, repo repository.ChatLogRepo) ChatService {
	client := openai.NewClient(
		option.WithBaseURL(baseUrl),
		option.WithAPIKey(apikey),
	)
	return &GeminiService{
		client: client,
		model:  model,
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *GeminiService) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(req.Question),
		}),
		Model: openai.F(svc.model),
	}
	completion, err := svc.client.Chat.Completions.New(ctx, params)
	if err != nil {
		svc.saveLog(req, domain.ChatResponse{}, dao.ChatStatusFailed)
		return domain.ChatResponse{}, err
	}
	var ans string
	if len(completion.Choices) > 0 {
		ans = completion.Choices[0].Message.Content
	}
	res := domain.ChatResponse{
		Answer: ans,
		Tokens: completion.Usage.TotalTokens,
	}
	svc.saveLog(req, res, dao.ChatStatusSuccess)
	return res, nil
}

// saveLog 记录失败不影响主流程
func (svc *GeminiService) saveLog(req domain.ChatRequest, resp domain.ChatResponse, status uint8) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := svc.repo.Save(ctx, dao.ChatLog{
		Uid:      req.Uid,
		Question: req.Question,
		Answer:   resp.Answer,
		Tokens:   resp.Tokens,
		Status:   status,
	})
	if err != nil {
		svc.logger.Error("保存 AI 问答记录失败", elog.FieldErr(err), elog.Int64("uid", req.Uid))
	}
}
