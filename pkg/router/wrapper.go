package router

import (
	"encoding/json"
	"net/http"

	"github.com/fitstride-lab/backend/pkg/errorx"
	"github.com/fitstride-lab/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	r *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, httpReq *http.Request) {
		if httpReq.Method != method {
			http.NotFound(w, httpReq)
			return
		}

		ctx := httpReq.Context()
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithSnowFlake(ctx, r.snowflake)
		ctx = xcontext.WithTokenEngine(ctx, r.accessTokenEngine)
		ctx = xcontext.WithHTTPRequest(ctx, httpReq)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithErrorHolder(ctx)
		ctx = xcontext.WithResponseHolder(ctx)

		defer func() {
			for _, closer := range r.closers {
				closer(ctx)
			}
		}()

		for _, middleware := range r.befores {
			newCtx, err := middleware(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				writeResponse(ctx, w)
				return
			}

			// A middleware returning a nil context keeps the current one.
			if newCtx != nil {
				ctx = newCtx
			}
		}

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = bindQuery(httpReq.URL.Query(), &req)
		case http.MethodPost:
			err = json.NewDecoder(httpReq.Body).Decode(&req)
		}
		if err != nil {
			r.logger.Debugf("Cannot bind the request: %v", err)
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot parse the request"))
			writeResponse(ctx, w)
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.SetError(ctx, err)
		} else {
			xcontext.SetResponse(ctx, resp)
		}

		for _, middleware := range r.afters {
			newCtx, err := middleware(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				break
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		writeResponse(ctx, w)
	}
}
