package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Reporter receives every error that carries a reference, so operators can
// find the full cause from the reference shown to the caller.
type Reporter interface {
	Report(ctx context.Context, err *pkgerror.Error, route string)
}

// Observer counts error responses.
type Observer interface {
	ObserveError(code, status int)
}

// Dependency groups the collaborators of the router. All fields are optional.
type Dependency struct {
	ID       Generator
	Reporter Reporter
	Observer Observer
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr       *httprouter.Router
	reporter Reporter
	observer Observer
	encoder  func(ctx context.Context, w http.ResponseWriter, resp any)
	mws      []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(dep Dependency) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, errorResponse{Message: "endpoint not found"}, http.StatusNotFound)
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, errorResponse{Message: "method not allowed"}, http.StatusMethodNotAllowed)
		}),
	}

	okCodec := func(ctx context.Context, w http.ResponseWriter, resp any) {
		code := http.StatusOK
		if sc, ok := resp.(interface {
			StatusCode() int
		}); ok {
			code = sc.StatusCode()
		}

		if code == http.StatusNoContent || resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		msg := "request has been successfully"
		if m, ok := resp.(interface {
			Message() string
		}); ok {
			msg = m.Message()
		}

		var meta map[string]any
		if m, ok := resp.(interface {
			Meta() map[string]any
		}); ok {
			meta = m.Meta()
		}

		writeJSON(w, successReponse{
			Message: msg,
			Data:    resp,
			Meta:    meta,
		}, code)
	}

	ro := &Router{
		hr:       hr,
		reporter: dep.Reporter,
		observer: dep.Observer,
		encoder:  okCodec,
	}
	ro.mws = []Middleware{
		ro.middlewareRecoverer,
		middlewareCorrelationID(dep.ID),
		middlewareLogging,
	}

	ro.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "hi from wsgate"}, http.StatusOK)
	}))

	ro.Handle(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "server is running well"}, http.StatusOK)
	}))

	return ro
}

// Use appends middleware to the existing middleware stack. It only applies to
// routes registered afterwards.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, r.chain(path, h, mws))
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, r.chain(path, http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.WriteError(w, re, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), mws))
}

func (r *Router) chain(path string, h http.Handler, mws []Middleware) http.Handler {
	all := make([]Middleware, 0, len(r.mws)+len(mws)+1)
	all = append(all, withRoute(path))
	all = append(all, r.mws...)
	all = append(all, mws...)
	return Chain(h, all...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// WriteError renders err as a JSON error response.
//
// Catalogue errors keep their status and message. Anything else is replaced by
// an InternalWebError so no internal detail reaches the caller. Errors with a
// reference are logged with their cause and handed to the Reporter.
func (r *Router) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	ctx := req.Context()

	serr, ok := pkgerror.As(err)
	if !ok {
		serr = pkgerror.WrapInternal(pkgerror.InternalWebError, err)
	}

	if ref := serr.Reference(); ref != "" {
		route := RouteFromContext(ctx)
		slog.ErrorContext(ctx, "internal error returned to caller",
			"reference", ref,
			"code", serr.Code(),
			"route", route,
			"error", serr.Unwrap(),
		)
		if r.reporter != nil {
			r.reporter.Report(ctx, serr, route)
		}
	}

	if r.observer != nil {
		r.observer.ObserveError(serr.Code(), serr.StatusCode())
	}

	writeJSON(w, errorResponse{Message: serr.Msg(), Reference: serr.Reference()}, serr.StatusCode())
}

type errorResponse struct {
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

type successReponse struct {
	Message string         `json:"message"`
	Data    any            `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
