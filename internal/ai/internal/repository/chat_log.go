package repository

import (
	"context"

	"github.com/ecodeclub/pointsmall/internal/ai/internal/repository/dao"
)

type ChatLogRepo interface {
	Save(ctx context.Context, l dao.ChatLog) (int64, error)
}

type chatLogRepo struct {
	dao dao.ChatLogDAO
}

func NewChatLogRepo(d dao.ChatLogDAO) ChatLogRepo {
	return &chatLogRepo{dao: d}
}

func (r *chatLogRepo) Save(ctx context.Context, l dao.ChatLog) (int64, error) {
	return r.dao.Insert(ctx, l)
}
