package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
)

func TestClassString(t *testing.T) {
	if got := ClassCatalogued.String(); got != "ERROR_CLASS_CATALOGUED" {
		t.Fatalf("unexpected catalogued string: %q", got)
	}
	if got := ClassInternal.String(); got != "ERROR_CLASS_INTERNAL" {
		t.Fatalf("unexpected internal string: %q", got)
	}
	if got := ClassBusiness.String(); got != "ERROR_CLASS_BUSINESS" {
		t.Fatalf("unexpected business string: %q", got)
	}
	if got := Class(99).String(); got != "ERROR_CLASS_UNKNOWN" {
		t.Fatalf("unexpected unknown class string: %q", got)
	}
}

func TestNewCatalogued(t *testing.T) {
	err := NewCatalogued(RateLimitExceeded)
	if got := err.StatusCode(); got != http.StatusTooManyRequests {
		t.Fatalf("unexpected status: %d", got)
	}
	if got := err.Msg(); got != "(E19) Concurrency limit exceeded" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := err.Error(); got != err.Msg() {
		t.Fatalf("expected Error() to equal Msg(), got %q", got)
	}
	if got := err.Reference(); got != "" {
		t.Fatalf("expected no reference, got %q", got)
	}
	if got := err.Class(); got != ClassCatalogued {
		t.Fatalf("unexpected class: %v", got)
	}
	if got := err.Kind(); got != RateLimitExceeded {
		t.Fatalf("unexpected kind: %v", got)
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected no cause")
	}
}

func TestNewCataloguedWithArgs(t *testing.T) {
	err := NewCatalogued(UnauthorizedProtocol, "http")
	if got := err.Msg(); got != "(E14) Protocol http not authorized" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := err.StatusCode(); got != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestNewCataloguedPanicsOnArgumentMismatch(t *testing.T) {
	defer func() {
		rvr := recover()
		if rvr == nil {
			t.Fatalf("expected panic")
		}
		err, ok := rvr.(error)
		if !ok || !errors.Is(err, ErrArgumentCount) {
			t.Fatalf("expected ErrArgumentCount panic, got %v", rvr)
		}
	}()

	NewCatalogued(RequiredParameter)
}

func TestNewCataloguedPanicsOnUnregisteredKind(t *testing.T) {
	defer func() {
		rvr := recover()
		err, ok := rvr.(error)
		if !ok || !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("expected ErrUnknownKind panic, got %v", rvr)
		}
	}()

	NewCatalogued(UnauthorizedUser)
}

func TestNewInternal(t *testing.T) {
	err := NewInternal(InternalWebError)
	if got := err.StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", got)
	}
	ref := err.Reference()
	if ref == "" {
		t.Fatalf("expected reference")
	}
	if got, want := err.Msg(), "(E90) Internal error. Ref="+ref; got != want {
		t.Fatalf("unexpected msg: got %q want %q", got, want)
	}
	if got := err.Class(); got != ClassInternal {
		t.Fatalf("unexpected class: %v", got)
	}
}

func TestNewInternalEngine(t *testing.T) {
	err := NewInternal(InternalEngineError)
	if !strings.HasPrefix(err.Msg(), "(E91) Internal error. Ref=") {
		t.Fatalf("unexpected msg: %q", err.Msg())
	}
}

func TestNewInternalWithTemplatedKindForcesServerStatus(t *testing.T) {
	err := NewInternal(InvalidParameter)
	if got := err.StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", got)
	}
	if got, want := err.Msg(), "(E02) Parameter "+err.Reference()+" invalid"; got != want {
		t.Fatalf("unexpected msg: got %q want %q", got, want)
	}
}

func TestNewInternalPanics(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want error
	}{
		{name: "unregistered user kind", kind: UnauthorizedUser, want: ErrUnknownKind},
		{name: "unregistered entity kind", kind: UnprocessableEntity, want: ErrUnknownKind},
		{name: "kind without placeholder", kind: InvalidCredentials, want: ErrArgumentCount},
		{name: "kind without placeholder rate", kind: RateLimitExceeded, want: ErrArgumentCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				rvr := recover()
				err, ok := rvr.(error)
				if !ok || !errors.Is(err, tt.want) {
					t.Fatalf("expected %v panic, got %v", tt.want, rvr)
				}
			}()

			NewInternal(tt.kind)
		})
	}
}

func TestWrapInternalHidesCause(t *testing.T) {
	root := errors.New("pq: connection refused to 10.0.0.3")
	err := WrapInternal(InternalEngineError, root)

	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped cause")
	}
	if strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("cause leaked into caller message: %q", err.Error())
	}
	str := err.String()
	if !strings.Contains(str, "connection refused") {
		t.Fatalf("expected cause in verbose string: %q", str)
	}
	if !strings.Contains(str, err.Reference()) {
		t.Fatalf("expected reference in verbose string: %q", str)
	}
	if !strings.Contains(str, "INTERNAL_ENGINE_ERROR") {
		t.Fatalf("expected kind in verbose string: %q", str)
	}
}

func TestNewInternalReferencesAreUnique(t *testing.T) {
	const samples = 10000

	seen := make(map[string]struct{}, samples)
	for i := 0; i < samples; i++ {
		ref := NewInternal(InternalWebError).Reference()
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference %q after %d samples", ref, i)
		}
		seen[ref] = struct{}{}
	}
}

func TestNewInternalConcurrent(t *testing.T) {
	const workers, perWorker = 8, 500

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, NewInternal(InternalEngineError).Reference())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, ref := range local {
				seen[ref] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if got := len(seen); got != workers*perWorker {
		t.Fatalf("expected %d unique references, got %d", workers*perWorker, got)
	}
}

func TestNewBusinessError(t *testing.T) {
	err := NewBusinessError(20, "Order {0} already closed", "A123")
	if got := err.StatusCode(); got != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", got)
	}
	if got := err.Msg(); got != "(E20) Order A123 already closed" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := err.Reference(); got != "" {
		t.Fatalf("expected no reference, got %q", got)
	}
	if got := err.Class(); got != ClassBusiness {
		t.Fatalf("unexpected class: %v", got)
	}
	if got := err.Code(); got != 20 {
		t.Fatalf("unexpected code: %d", got)
	}
}

func TestNewBusinessErrorUnregisteredCode(t *testing.T) {
	err := NewBusinessError(120, "Quota {0} of {1} reached", "orders", 50)
	if got := err.Msg(); got != "(E120) Quota orders of 50 reached" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := err.StatusCode(); got != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestNewBusinessErrorPanicsOnMismatch(t *testing.T) {
	defer func() {
		rvr := recover()
		err, ok := rvr.(error)
		if !ok || !errors.Is(err, ErrArgumentCount) {
			t.Fatalf("expected ErrArgumentCount panic, got %v", rvr)
		}
	}()

	NewBusinessError(20, "Order {0} already closed")
}

func TestAsAndStatusCode(t *testing.T) {
	inner := NewCatalogued(InvalidCredentials)
	wrapped := fmt.Errorf("auth: %w", inner)

	got, ok := As(wrapped)
	if !ok || got != inner {
		t.Fatalf("expected to extract inner error")
	}
	if code := StatusCode(wrapped); code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", code)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Fatalf("did not expect plain error to match")
	}
	if code := StatusCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Fatalf("unexpected status for plain error: %d", code)
	}
}
