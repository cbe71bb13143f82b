package pkgrouter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const maxLoggedBodyBytes = 64 * 1024

const masked = "***"

//nolint:gochecknoglobals // read-only lookup tables
var (
	sensitiveKeys = map[string]struct{}{
		"password":      {},
		"access_token":  {},
		"refresh_token": {},
		"authorization": {},
		"x-api-key":     {},
		"api_key":       {},
		"cookie":        {},
		"set-cookie":    {},
	}

	// Matches the "(E19) " style prefix of catalogue messages.
	messageCode = regexp.MustCompile(`^\(E(\d{2,})\) `)
)

func isSensitive(key string) bool {
	_, found := sensitiveKeys[strings.ToLower(key)]
	return found
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if isSensitive(key) {
			result.Set(key, masked)
		}
	}
	return result
}

func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if isSensitive(k) {
				out[k] = masked
				continue
			}
			out[k] = maskData(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = maskData(item)
		}
		return out
	default:
		return v
	}
}

// responseRecorder keeps the status and the first maxLoggedBodyBytes of the
// body so the response can be logged after the handler returns.
type responseRecorder struct {
	http.ResponseWriter
	status    int
	written   int
	body      bytes.Buffer
	truncated bool
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if room := maxLoggedBodyBytes - w.body.Len(); room < len(p) {
		w.body.Write(p[:max(room, 0)])
		w.truncated = true
	} else {
		w.body.Write(p)
	}

	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

func (w *responseRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

//nolint:err113 // it use dynamic error
func (w *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	return h.Hijack()
}

func (w *responseRecorder) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func matchedRoutePath(r *http.Request) string {
	if pattern := RouteFromContext(r.Context()); pattern != "" {
		return pattern
	}
	return r.URL.Path
}

func parseAndMaskBody(contentType string, body []byte) any {
	if len(body) == 0 {
		return nil
	}

	var jsonBody any
	if err := json.Unmarshal(body, &jsonBody); err == nil {
		return maskData(jsonBody)
	}

	if strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		if values, err := url.ParseQuery(string(body)); err == nil {
			form := make(map[string]any, len(values))
			for k, v := range values {
				switch {
				case isSensitive(k):
					form[k] = masked
				case len(v) == 1:
					form[k] = v[0]
				default:
					form[k] = v
				}
			}
			return form
		}
	}

	if !utf8.Valid(body) {
		return "<binary body omitted>"
	}
	if len(body) > maxLoggedBodyBytes {
		return string(body[:maxLoggedBodyBytes]) + "...(truncated)"
	}
	return string(body)
}

// errorAttrs pulls the message code and reference out of an error response
// written by WriteError.
func errorAttrs(body []byte) []any {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}

	var attrs []any
	if m := messageCode.FindStringSubmatch(resp.Message); m != nil {
		attrs = append(attrs, "error_code", "E"+m[1])
	}
	if resp.Reference != "" {
		attrs = append(attrs, "reference", resp.Reference)
	}
	return attrs
}

func responseLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		route := matchedRoutePath(r)
		start := time.Now()

		var reqBody []byte
		if r.Body != nil {
			//nolint:errcheck // best effort for logging only
			reqBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		slog.InfoContext(ctx, "request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"headers", maskHeaders(r.Header),
			"body", parseAndMaskBody(r.Header.Get("Content-Type"), reqBody),
		)

		rec := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.statusCode()
		attrs := []any{
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.written,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if status >= http.StatusBadRequest {
			attrs = append(attrs, errorAttrs(rec.body.Bytes())...)
		}

		respBody := parseAndMaskBody(rec.Header().Get("Content-Type"), rec.body.Bytes())
		if rec.truncated {
			respBody = map[string]any{"body": respBody, "truncated": true}
		}
		attrs = append(attrs, "body", respBody)

		slog.Log(ctx, responseLevel(status), "response sent", attrs...)
	})
}
