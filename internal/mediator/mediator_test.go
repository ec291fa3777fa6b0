// internal/mediator/mediator_test.go
package mediator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooqhub/sooq-backend/internal/results"
)

type pingQuery struct {
	Name string
}

type otherQuery struct{}

func TestSendDispatchesToRegisteredHandler(t *testing.T) {
	m := New()
	RegisterFunc(m, func(_ context.Context, q pingQuery) results.Result[string] {
		return results.Ok("hello " + q.Name)
	})

	r := Send[string](context.Background(), m, pingQuery{Name: "sooq"})

	require.True(t, r.Success)
	assert.Equal(t, "hello sooq", r.Data)
}

func TestSendWithoutHandlerReturnsInternal(t *testing.T) {
	m := New()

	r := Send[string](context.Background(), m, otherQuery{})

	assert.False(t, r.Success)
	assert.Equal(t, results.StatusInternalError, r.Status)
}

func TestSendResponseTypeMismatchReturnsInternal(t *testing.T) {
	m := New()
	RegisterFunc(m, func(_ context.Context, _ pingQuery) results.Result[string] {
		return results.Ok("x")
	})

	// Asked for int, handler answers string.
	r := Send[int](context.Background(), m, pingQuery{})

	assert.Equal(t, results.StatusInternalError, r.Status)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	m := New()
	RegisterFunc(m, func(_ context.Context, _ pingQuery) results.Result[string] {
		return results.Ok("first")
	})

	assert.Panics(t, func() {
		RegisterFunc(m, func(_ context.Context, _ pingQuery) results.Result[string] {
			return results.Ok("second")
		})
	})
}

func TestHandlersForDistinctRequestTypesCoexist(t *testing.T) {
	m := New()
	RegisterFunc(m, func(_ context.Context, _ pingQuery) results.Result[string] {
		return results.Ok("ping")
	})
	RegisterFunc(m, func(_ context.Context, _ otherQuery) results.Result[int] {
		return results.Ok(7)
	})

	assert.Equal(t, "ping", Send[string](context.Background(), m, pingQuery{}).Data)
	assert.Equal(t, 7, Send[int](context.Background(), m, otherQuery{}).Data)
}
