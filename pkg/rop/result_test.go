package rop

import (
	"errors"
	"fmt"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(42)
	if !r.IsSuccess() || r.IsFailure() || r.IsEmpty() {
		t.Fatalf("expected success, got success=%v failure=%v empty=%v", r.IsSuccess(), r.IsFailure(), r.IsEmpty())
	}
	if r.Result() != 42 || r.Err() != nil {
		t.Fatalf("expected 42 without error, got %v, %v", r.Result(), r.Err())
	}
	if r.CreatedAt().Location().String() != "UTC" {
		t.Fatalf("expected UTC creation time, got %v", r.CreatedAt().Location())
	}
}

func TestFail(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Fail[int](err)
	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure, got success=%v", r.IsSuccess())
	}
	v, gotErr := r.Get()
	if v != 0 || !errors.Is(gotErr, err) {
		t.Fatalf("expected zero value and boom, got %v, %v", v, gotErr)
	}
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()
	in := Fail[string](errors.New("x"))
	out := FailFrom[string, int](in)
	if out.Id() != in.Id() || !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("expected id and creation time to be carried over")
	}
	if !out.IsFailure() || out.Err().Error() != "x" {
		t.Fatalf("expected failure 'x', got %v", out.Err())
	}
}

func TestResultIdsAreUnique(t *testing.T) {
	t.Parallel()
	if Success(1).Id() == Success(1).Id() {
		t.Fatalf("expected distinct ids")
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	var r Result[int]
	if !r.IsEmpty() || r.IsSuccess() || r.IsFailure() {
		t.Fatalf("zero result should be empty")
	}
}

func TestIs(t *testing.T) {
	t.Parallel()
	target := errors.New("missing")

	if Is(Success(7), target) {
		t.Fatalf("success must not match an error")
	}
	if !Is(Fail[int](fmt.Errorf("lookup: %w", target)), target) {
		t.Fatalf("expected wrapped failure to match target")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	if len(GetErrors(nil)) != 0 {
		t.Fatalf("expected no errors for nil")
	}
	a, b := errors.New("a"), errors.New("b")
	if errs := GetErrors(errors.Join(a, b)); len(errs) != 2 {
		t.Fatalf("expected 2 joined errors, got %d", len(errs))
	}
	if errs := GetErrors(a); len(errs) != 1 || errs[0] != a {
		t.Fatalf("expected single error, got %v", errs)
	}
}
