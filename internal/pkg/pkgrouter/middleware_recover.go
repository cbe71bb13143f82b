package pkgrouter

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
)

// middlewareRecoverer turns a panic into an InternalWebError response. Panics
// raised by the error catalogue (unknown kind, bad template arguments) land
// here too.
func (ro *Router) middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				lines := strings.Split(string(debug.Stack()), "\n")
				printStackTrace(lines)

				ro.WriteError(w, r, panicError{value: rvr})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

type panicError struct {
	value any
}

func (p panicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}

func (p panicError) Unwrap() error {
	if err, ok := p.value.(error); ok {
		return err
	}
	return nil
}

func printStackTrace(lines []string) {
	fmt.Fprintln(os.Stderr, "===== ===== START ===== =====")
	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i+1])
		if !strings.Contains(line, "/internal/") || !strings.Contains(line, ".go") {
			continue
		}
		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}
		end := strings.Index(line[idx:], " ")
		if end == -1 {
			end = len(line)
		} else {
			end += idx
		}
		shortPath := line[:end]
		if internalIdx := strings.Index(shortPath, "/internal/"); internalIdx != -1 {
			fmt.Fprintln(os.Stderr, "stack trace: ", shortPath[internalIdx+1:])
		}
	}
	fmt.Fprintln(os.Stderr, "===== ===== END ===== =====")
}
