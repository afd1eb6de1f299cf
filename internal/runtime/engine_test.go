package runtime_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aretw0/deferio/internal/runtime"
	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockConsole records calls made by the evaluator.
type MockConsole struct {
	mock.Mock
}

func (m *MockConsole) ReadLine(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockConsole) WriteLine(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

func ignore(next action.Action) action.Continuation {
	return func(string) action.Action { return next }
}

func TestEvaluator_Primitives(t *testing.T) {
	ctx := context.Background()

	t.Run("Wrap", func(t *testing.T) {
		console := memory.NewConsole("unused")
		got, err := runtime.NewEvaluator(console).Perform(ctx, action.Wrap("value"))
		require.NoError(t, err)
		assert.Equal(t, "value", got)
		assert.Empty(t, console.Transcript())
		assert.Equal(t, 1, console.Remaining())
	})

	t.Run("WriteLine", func(t *testing.T) {
		console := memory.NewConsole()
		got, err := runtime.NewEvaluator(console).Perform(ctx, action.WriteLine("hello"))
		require.NoError(t, err)
		assert.Equal(t, "", got)
		assert.Equal(t, []string{"hello"}, console.Output())
	})

	t.Run("ReadLine", func(t *testing.T) {
		console := memory.NewConsole("Paul", "extra")
		got, err := runtime.NewEvaluator(console).Perform(ctx, action.ReadLine())
		require.NoError(t, err)
		assert.Equal(t, "Paul", got)
		assert.Equal(t, 1, console.Remaining())
	})
}

func TestEvaluator_Greeting(t *testing.T) {
	program := action.WriteLine("Enter your name").
		Bind(ignore(action.ReadLine())).
		Bind(func(name string) action.Action {
			return action.WriteLine("Hello " + name + ".")
		})

	console := memory.NewConsole("Paul")
	got, err := runtime.NewEvaluator(console).Perform(context.Background(), program)

	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, []memory.Entry{
		{Kind: memory.EntryWrite, Text: "Enter your name"},
		{Kind: memory.EntryRead, Text: "Paul"},
		{Kind: memory.EntryWrite, Text: "Hello Paul."},
	}, console.Transcript())
}

func TestEvaluator_ContinuationSeesRealResult(t *testing.T) {
	var seen []string
	program := action.ReadLine().Bind(func(first string) action.Action {
		seen = append(seen, first)
		return action.ReadLine().Bind(func(second string) action.Action {
			seen = append(seen, second)
			return action.Wrap(first + "+" + second)
		})
	})

	console := memory.NewConsole("a", "b")
	got, err := runtime.NewEvaluator(console).Perform(context.Background(), program)

	require.NoError(t, err)
	assert.Equal(t, "a+b", got)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestEvaluator_ChainOrder(t *testing.T) {
	console := memory.NewConsole()
	var order []string

	a := action.WriteLine("a")
	k1 := func(string) action.Action {
		order = append(order, "k1")
		assert.Equal(t, []string{"a"}, console.Output(), "k1 must run after a's effect")
		return action.WriteLine("k1")
	}
	k2 := func(string) action.Action {
		order = append(order, "k2")
		assert.Equal(t, []string{"a", "k1"}, console.Output(), "k2 must run after k1's effect")
		return action.WriteLine("k2")
	}

	_, err := runtime.NewEvaluator(console).Perform(context.Background(), a.Bind(k1).Bind(k2))

	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, order)
	assert.Equal(t, []string{"a", "k1", "k2"}, console.Output())
}

func TestEvaluator_ReadFailureStopsEvaluation(t *testing.T) {
	console := new(MockConsole)
	console.On("WriteLine", mock.Anything, "before").Return(nil).Once()
	console.On("ReadLine", mock.Anything).Return("", io.EOF).Once()

	continued := false
	program := action.WriteLine("before").
		Bind(ignore(action.ReadLine())).
		Bind(func(string) action.Action {
			continued = true
			return action.WriteLine("after")
		})

	got, err := runtime.NewEvaluator(console).Perform(context.Background(), program)

	assert.Same(t, io.EOF, err, "channel failure must be surfaced unchanged")
	assert.Equal(t, "", got)
	assert.False(t, continued)
	console.AssertExpectations(t)
	console.AssertNotCalled(t, "WriteLine", mock.Anything, "after")
}

func TestEvaluator_WriteFailureIsReturnedUnchanged(t *testing.T) {
	broken := errors.New("broken pipe")
	console := new(MockConsole)
	console.On("WriteLine", mock.Anything, "x").Return(broken)

	_, err := runtime.NewEvaluator(console).Perform(context.Background(), action.WriteLine("x"))
	assert.Same(t, broken, err)
}

func TestEvaluator_CancelledContextIsChannelFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	console := memory.NewConsole("x")
	_, err := runtime.NewEvaluator(console).Perform(ctx, action.ReadLine())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, console.Remaining())
}

func TestEvaluator_PanicsOnNil(t *testing.T) {
	eval := runtime.NewEvaluator(memory.NewConsole())

	assert.PanicsWithValue(t, "runtime: Perform on nil Action", func() {
		_, _ = eval.Perform(context.Background(), nil)
	})
	assert.PanicsWithValue(t, "runtime: continuation returned nil Action", func() {
		_, _ = eval.Perform(context.Background(), action.Wrap("").Bind(func(string) action.Action { return nil }))
	})
	assert.Panics(t, func() { runtime.NewEvaluator(nil) })
}
