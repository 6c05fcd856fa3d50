package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"userreg/internal/pkg/errs"
	"userreg/internal/pkg/logx"
	"userreg/internal/pkg/resp"
)

const healthCheckTimeout = 2 * time.Second

// HandleHealth pings every registered dependency. Any failure answers 503 with the per-check status.
func HandleHealth(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := make([]string, 0, len(deps.HealthChecks))
		for name := range deps.HealthChecks {
			names = append(names, name)
		}
		sort.Strings(names)

		checks := make(map[string]string, len(names))
		healthy := true
		for _, name := range names {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			err := deps.HealthChecks[name](ctx)
			cancel()

			if err != nil {
				healthy = false
				checks[name] = "unavailable"
				logx.FromContext(r.Context()).Warn().Err(err).Str("check", name).Msg("Health check failed")
				continue
			}
			checks[name] = "ok"
		}

		if !healthy {
			resp.RespondError(w, r, errs.NewError(errs.ErrStoreUnavailable), map[string]any{"checks": checks})
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"status": "ok",
			"checks": checks,
		})
	}
}
