package domain

type ChatRequest struct {
	Uid      int64
	Question string
}

type ChatResponse struct {
	Answer string
	// 本次调用消耗的 token 总数
	Tokens int64
}
