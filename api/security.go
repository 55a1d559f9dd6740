package api

import (
	"net/http"

	"github.com/projectveo/backend/errs"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	stdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/unrolled/secure"
)

// secureHeaders adds the standard browser hardening headers
func secureHeaders(isDevelopment bool) func(http.Handler) http.Handler {
	s := secure.New(secure.Options{
		IsDevelopment:      isDevelopment,
		ContentTypeNosniff: true,
		FrameDeny:          true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})
	return s.Handler
}

// newIPRateLimiter limits requests per client IP using an in-memory store.
// rateFormatted follows the limiter format, e.g. "10-H" or "100-M". Empty disables limiting.
func newIPRateLimiter(rateFormatted string) (func(http.Handler) http.Handler, error) {
	if rateFormatted == "" {
		return func(next http.Handler) http.Handler { return next }, nil
	}
	rate, err := limiter.NewRateFromFormatted(rateFormatted)
	if err != nil {
		return nil, err
	}
	responder := NewResponder(log.With().Str("handlerName", "rateLimiter").Logger())
	instance := limiter.New(memory.NewStore(), rate)
	return stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			responder.WriteError(w, errs.NewRateLimitedError())
		}),
	).Handler, nil
}
