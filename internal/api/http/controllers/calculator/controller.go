package calculator

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"keypadCalc/internal/calc"
	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

// Controller — маршруты виджета: клавиши, экран, история.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/keys", c.press)
	api.GET("/display", c.display)
	api.GET("/history", c.history)
	api.DELETE("/history", c.clearHistory)
	api.POST("/history/:index/use", c.useHistoryEntry)
}

// @Summary Нажать клавишу
// @Description Передаёт нажатие (digit, decimal, operator, calculate, clear, delete, percent) движку сессии и возвращает экран.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body KeyRequest true "Клавиша"
// @Success 200 {object} DisplayResponse "Экран после нажатия"
// @Failure 400 {object} ErrorResponse "Неизвестная клавиша или операция"
// @Router /api/v1/keys [post]
func (c *Controller) press(ctx *gin.Context) {
	var req KeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("press bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	d, err := c.uc.Press(ctx.Request.Context(), sessionID(ctx), req.Key())
	if err != nil {
		c.fail(ctx, "press", err)
		return
	}
	ctx.JSON(http.StatusOK, newDisplayResponse(d))
}

// @Summary Текущий экран
// @Tags calculator
// @Produce json
// @Success 200 {object} DisplayResponse
// @Router /api/v1/display [get]
func (c *Controller) display(ctx *gin.Context) {
	d, err := c.uc.Display(ctx.Request.Context(), sessionID(ctx))
	if err != nil {
		c.fail(ctx, "display", err)
		return
	}
	ctx.JSON(http.StatusOK, newDisplayResponse(d))
}

// @Summary История вычислений сессии
// @Description Новые записи первыми; result_display — результат с разделителями тысяч.
// @Tags calculator
// @Produce json
// @Success 200 {object} HistoryResponse
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context(), sessionID(ctx))
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	items := make([]HistoryItem, len(list))
	for i, e := range list {
		items[i] = HistoryItem{
			Index:         i,
			Expression:    e.Expression,
			Result:        e.Result,
			ResultDisplay: calc.Format(e.Result),
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items, Empty: len(items) == 0})
}

// @Summary Очистить историю
// @Tags calculator
// @Success 204
// @Router /api/v1/history [delete]
func (c *Controller) clearHistory(ctx *gin.Context) {
	if err := c.uc.ClearHistory(ctx.Request.Context(), sessionID(ctx)); err != nil {
		c.fail(ctx, "clear history", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Взять результат из истории
// @Description Подставляет результат записи index (0 — самая новая) в текущий операнд.
// @Tags calculator
// @Produce json
// @Param index path int true "Номер записи"
// @Success 200 {object} DisplayResponse
// @Failure 404 {object} ErrorResponse "Нет такой записи"
// @Router /api/v1/history/{index}/use [post]
func (c *Controller) useHistoryEntry(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid index: " + ctx.Param("index")})
		return
	}
	d, err := c.uc.UseHistoryEntry(ctx.Request.Context(), sessionID(ctx), index)
	if err != nil {
		c.fail(ctx, "use history entry", err)
		return
	}
	ctx.JSON(http.StatusOK, newDisplayResponse(d))
}

// fail переводит ошибку use case в HTTP-статус.
func (c *Controller) fail(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownAction), errors.Is(err, domain.ErrUnknownOperation), errors.Is(err, domain.ErrEmptySession):
		c.log.Warn(op+" bad request", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrHistoryIndex):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.log.Error(op+" failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
