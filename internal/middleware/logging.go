package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware writing one log entry per processed update
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("kind", updateKind(c)),
				zap.Duration("elapsed", time.Since(start)),
			}
			if chat := c.Chat(); chat != nil {
				fields = append(fields, zap.Int64("chat_id", chat.ID))
			}

			if err != nil {
				logger.Error("Failed to handle update", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

func updateKind(c tele.Context) string {
	if c.Callback() != nil {
		return "callback"
	}
	return "text"
}
