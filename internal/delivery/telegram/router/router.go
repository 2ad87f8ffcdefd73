package router

import (
	"strings"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter dispatches inline-button callbacks by their unique key.
// Keys starting with "cal_" go to CalDelegate.
type CallbackRouter struct {
	handlers    map[string]HandlerFunc
	CalDelegate HandlerFunc
	log         *zap.Logger
}

func New(logger *zap.Logger) *CallbackRouter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CallbackRouter{handlers: make(map[string]HandlerFunc), log: logger}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// SplitData splits raw callback data into its key and payload.
func SplitData(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key = raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		key = raw[:i]
		payload = raw[i+1:]
	}
	return key, payload
}

// Dispatch reports whether a handler was found for the callback.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := SplitData(c.Data())
	r.log.Debug("callback", zap.String("key", key), zap.String("payload", payload))
	_ = c.Respond()

	if strings.HasPrefix(key, "cal_") {
		if r.CalDelegate != nil {
			return true, r.CalDelegate(c, payload)
		}
		return true, nil
	}
	if h, ok := r.handlers[key]; ok {
		return true, h(c, payload)
	}
	return false, nil
}
