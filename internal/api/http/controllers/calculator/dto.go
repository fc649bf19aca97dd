package calculator

import "keypadCalc/internal/domain"

// KeyRequest — нажатие клавиши (для POST /api/v1/keys). Value нужен для digit и operator.
type KeyRequest struct {
	Action string `json:"action" binding:"required"`
	Value  string `json:"value"`
}

// Key переводит запрос в доменную клавишу.
func (r KeyRequest) Key() domain.Key {
	return domain.Key{Action: domain.Action(r.Action), Value: r.Value}
}

// DisplayResponse — обе строки экрана.
type DisplayResponse struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Error    bool   `json:"error"`
}

func newDisplayResponse(d domain.Display) DisplayResponse {
	return DisplayResponse{Current: d.Current, Previous: d.Previous, Error: d.Error}
}

// HistoryItem — одна запись в истории (для GET /api/v1/history). Index — номер для /history/:index/use.
type HistoryItem struct {
	Index         int    `json:"index"`
	Expression    string `json:"expression"`
	Result        string `json:"result"`
	ResultDisplay string `json:"result_display"`
}

// HistoryResponse — история, новые записи первыми.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
	Empty bool          `json:"empty"`
}

// ErrorResponse — ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
