package lispedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lispedit/ast"
)

func TestEnvironmentCreate(t *testing.T) {
	env := NewEnvironment()
	assert.NotNil(t, env)

	assert.Equal(t, []string{"*", "+", "-", "/", "eq?", "false", "nil", "true"}, env.Names())
	assert.Equal(t, DefaultMaxDepth, env.MaxDepth())

	for _, name := range []string{"+", "-", "*", "/", "eq?"} {
		v, err := env.Get(name)
		require.NoError(t, err)
		assert.True(t, v.Is(ast.NodeTypeFunction))
		assert.Equal(t, name, v.FunctionName())
	}
}

func TestEnvironmentSetGet(t *testing.T) {
	env := NewEnvironment()

	{
		v, err := env.Get("foo")
		assert.ErrorIs(t, err, ErrUnboundIdentifier)
		assert.Nil(t, v)
	}

	{
		env.Set("foo", ast.True)

		v, err := env.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, ast.True, v)
	}

	{
		env.Set("foo", ast.NewInt(nil, 3))

		v, err := env.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), v.Int())
	}
}

func TestEnvironmentsAreIndependent(t *testing.T) {
	a := NewEnvironment()
	b := NewEnvironment()

	_, err := evalOne(t, a, `(def x 1)`)
	require.NoError(t, err)

	_, err = b.Get("x")
	assert.ErrorIs(t, err, ErrUnboundIdentifier)
}

func TestEnvironmentOptions(t *testing.T) {
	env := NewEnvironment(
		WithMaxDepth(20),
		WithConstants(map[string]*ast.Node{
			"answer": ast.NewInt(nil, 42),
			"name":   ast.NewString(nil, "lispedit"),
		}),
	)

	assert.Equal(t, 20, env.MaxDepth())

	value, err := evalOne(t, env, `(+ answer 1)`)
	require.NoError(t, err)
	assert.Equal(t, int64(43), value.Int())

	value, err = evalOne(t, env, `name`)
	require.NoError(t, err)
	assert.Equal(t, "lispedit", value.Str())

	assert.Equal(t, DefaultMaxDepth, NewEnvironment(WithMaxDepth(0)).MaxDepth())
}

func TestSymbolTableJournal(t *testing.T) {
	st := newSymbolTable()
	st.Set("a", ast.NewInt(nil, 1))

	st.begin()
	st.Set("a", ast.NewInt(nil, 2))
	st.Set("b", ast.NewInt(nil, 3))
	st.Set("a", ast.NewInt(nil, 4))
	st.rollback()

	a, ok := st.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.Int())

	_, ok = st.Get("b")
	assert.False(t, ok)

	st.begin()
	st.Set("b", ast.NewInt(nil, 5))
	st.commit()

	st.Set("c", ast.NewInt(nil, 6))
	assert.Empty(t, st.journal)

	b, ok := st.Get("b")
	require.True(t, ok)
	assert.Equal(t, int64(5), b.Int())
}
