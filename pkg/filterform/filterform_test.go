package filterform

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type row struct {
	ID string
}

func staticFetcher(rows []row, err error) (Fetcher[row], *[]url.Values) {
	var calls []url.Values
	var mu sync.Mutex
	f := func(_ context.Context, filters url.Values) ([]row, error) {
		mu.Lock()
		calls = append(calls, filters)
		mu.Unlock()
		return rows, err
	}
	return f, &calls
}

func TestController_SetFieldDoesNotFetch(t *testing.T) {
	fetch, calls := staticFetcher([]row{{ID: "1"}}, nil)
	c := NewController(fetch, zerolog.Nop())

	c.SetField("first_name", "ali")
	c.SetField("role", "2")

	if len(*calls) != 0 {
		t.Fatalf("editing must not trigger fetches, got %d", len(*calls))
	}
	if c.Pending().Get("first_name") != "ali" {
		t.Error("pending state not updated")
	}
	if len(c.Applied()) != 0 {
		t.Error("applied state must stay untouched until submit")
	}
}

func TestController_SubmitCommitsPendingAndFetchesOnce(t *testing.T) {
	fetch, calls := staticFetcher([]row{{ID: "1"}, {ID: "2"}}, nil)
	c := NewController(fetch, zerolog.Nop())

	c.SetField("first_name", "ali")
	c.Submit(context.Background())

	if len(*calls) != 1 {
		t.Fatalf("expected exactly one fetch, got %d", len(*calls))
	}
	if (*calls)[0].Get("first_name") != "ali" {
		t.Errorf("fetch must use the committed filters, got %v", (*calls)[0])
	}
	if c.Applied().Get("first_name") != "ali" {
		t.Error("applied state not committed")
	}
	if len(c.Results()) != 2 {
		t.Errorf("results not replaced, got %d rows", len(c.Results()))
	}
}

func TestController_PendingEditsAfterSubmitDoNotAffectApplied(t *testing.T) {
	fetch, _ := staticFetcher(nil, nil)
	c := NewController(fetch, zerolog.Nop())

	c.SetField("email", "a@b")
	c.Submit(context.Background())
	c.SetField("email", "zz@zz")

	if c.Applied().Get("email") != "a@b" {
		t.Errorf("applied must keep the last submitted value, got %q", c.Applied().Get("email"))
	}
	if c.Pending().Get("email") != "zz@zz" {
		t.Errorf("pending must carry the edit, got %q", c.Pending().Get("email"))
	}
}

func TestController_FetchFailureEmptiesResults(t *testing.T) {
	okFetch, _ := staticFetcher([]row{{ID: "1"}}, nil)
	c := NewController(okFetch, zerolog.Nop())
	c.Submit(context.Background())
	if len(c.Results()) != 1 {
		t.Fatalf("precondition: expected 1 row, got %d", len(c.Results()))
	}

	c.fetch, _ = staticFetcher(nil, errors.New("backend down"))
	c.Submit(context.Background())

	if got := c.Results(); len(got) != 0 || got == nil {
		t.Fatalf("failed fetch must leave an empty, non-nil result set, got %v", got)
	}
}

func TestController_ClearResetsBothStatesAndRefetches(t *testing.T) {
	fetch, calls := staticFetcher([]row{{ID: "1"}}, nil)
	c := NewController(fetch, zerolog.Nop())

	c.SetField("first_name", "ali")
	c.Submit(context.Background())
	c.Clear(context.Background())

	if len(c.Pending()) != 0 || len(c.Applied()) != 0 {
		t.Error("clear must reset both filter sets")
	}
	if len(*calls) != 2 {
		t.Fatalf("clear must refetch, got %d calls", len(*calls))
	}
	if len((*calls)[1]) != 0 {
		t.Errorf("clear must fetch unfiltered, got %v", (*calls)[1])
	}
}

func TestController_ClearThenSubmitMatchesInitialLoad(t *testing.T) {
	fetch, calls := staticFetcher([]row{{ID: "1"}, {ID: "2"}}, nil)
	c := NewController(fetch, zerolog.Nop())

	// Initial unfiltered load.
	c.Submit(context.Background())
	initial := c.Results()

	c.SetField("role", "2")
	c.Submit(context.Background())

	c.Clear(context.Background())
	c.Submit(context.Background())

	if !reflect.DeepEqual(c.Results(), initial) {
		t.Error("clear then submit must reproduce the initial result set")
	}
	last := (*calls)[len(*calls)-1]
	if len(last) != 0 {
		t.Errorf("final fetch must be unfiltered, got %v", last)
	}
}

func TestController_BusyFlagGuardsDuplicateSubmission(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int
	var mu sync.Mutex

	fetch := func(_ context.Context, _ url.Values) ([]row, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		close(started)
		<-release
		return nil, nil
	}
	c := NewController(fetch, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		c.Submit(context.Background())
		close(done)
	}()
	<-started

	if !c.Loading() {
		t.Error("controller must report loading while a fetch is in flight")
	}
	// Second submission while busy is dropped.
	c.Submit(context.Background())

	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("busy flag must drop duplicate submissions, got %d fetches", calls)
	}
}

func TestController_SetFieldEmptyRemovesKey(t *testing.T) {
	fetch, _ := staticFetcher(nil, nil)
	c := NewController(fetch, zerolog.Nop())

	c.SetField("email", "a@b")
	c.SetField("email", "")

	if len(c.Pending()) != 0 {
		t.Errorf("empty value must remove the key, got %v", c.Pending())
	}
}
