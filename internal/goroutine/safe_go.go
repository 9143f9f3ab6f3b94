package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
)

// Logger интерфейс для логирования ошибок
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler обрабатывает panic в горутинах
type RecoveryHandler struct {
	logger func() Logger
}

// NewRecoveryHandler создает новый обработчик
func NewRecoveryHandler(l Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: func() Logger { return l }}
}

// SafeGo запускает горутину с обработкой panic
func (rh *RecoveryHandler) SafeGo(fn func()) {
	go func() {
		defer rh.recover("goroutine")
		fn()
	}()
}

// SafeGoWithContext запускает горутину с контекстом и обработкой panic
func (rh *RecoveryHandler) SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer rh.recover("goroutine (with context)")
		fn(ctx)
	}()
}

func (rh *RecoveryHandler) recover(where string) {
	if r := recover(); r != nil {
		rh.logger().Errorf("Panic in %s: %v\nStack trace:\n%s", where, r, debug.Stack())
	}
}

// DefaultRecoveryHandler пишет в общий logrus-логгер; берёт его при каждой панике,
// потому что logger.Init может заменить логгер после старта.
var DefaultRecoveryHandler = &RecoveryHandler{
	logger: func() Logger { return logger.Component("goroutine") },
}

// SafeGo - упрощенная функция для запуска безопасной горутины
func SafeGo(fn func()) {
	DefaultRecoveryHandler.SafeGo(fn)
}

// SafeGoWithContext - упрощенная функция для запуска безопасной горутины с контекстом
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	DefaultRecoveryHandler.SafeGoWithContext(ctx, fn)
}
