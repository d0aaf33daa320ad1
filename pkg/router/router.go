package router

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/fitstride-lab/backend/config"
	"github.com/fitstride-lab/backend/internal/model"
	"github.com/fitstride-lab/backend/pkg/authenticator"
	"github.com/fitstride-lab/backend/pkg/logger"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can derive a new context which
// is passed to the next middleware and the handler.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, for logging and metrics. It
// can read the handler result via xcontext.GetResponse and xcontext.Error.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux
	cfg config.Configs

	db        *gorm.DB
	logger    logger.Logger
	snowflake *snowflake.Node

	accessTokenEngine authenticator.TokenEngine[model.AccessToken]

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, lg logger.Logger) *Router {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	return &Router{
		mux:               http.NewServeMux(),
		cfg:               cfg,
		db:                db,
		logger:            lg,
		snowflake:         node,
		accessTokenEngine: authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.TokenSecret, cfg.Auth.AccessToken),
	}
}

// Branch creates a router sharing the same underlying mux but with an
// independent middleware chain. Routes registered on the branch keep the
// middlewares of the parent registered so far.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r.Branch(), http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r.Branch(), http.MethodPost, handler))
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   r.cfg.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(r.mux)
}
