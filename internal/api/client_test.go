package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltyhana/goalie/internal/auth"
	"github.com/saltyhana/goalie/internal/goal"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, auth.Static("test-token"))
}

func TestAccounts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/accounts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		_, _ = w.Write([]byte(`[
			{"id": 3, "accountAlias": "주거래 통장", "accountNumber": "110-123-456789", "main": true},
			{"id": 4, "accountAlias": "비상금", "accountNumber": "110-987-654321", "main": false}
		]`))
	})

	accounts, err := c.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, int64(3), accounts[0].ID)
	assert.Equal(t, "주거래 통장", accounts[0].AccountAlias)
	assert.True(t, accounts[0].Main)
}

func TestProducts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": 1, "name": "내맘적금", "maxRate": 3.5}]`))
	})

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "내맘적금", products[0].Name)
}

func TestGoal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/goals/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"goalName": "제주도 여행", "goalMoney": 90000, "goalType": 5}`))
	})

	g, err := c.Goal(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "제주도 여행", g.GoalName)
	assert.Equal(t, int64(90000), g.GoalMoney)
}

func TestCreateGoal(t *testing.T) {
	var got goal.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/goals", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	icon := 23
	req := goal.Request{
		GoalName: "제주도 여행", GoalMoney: 90000,
		StartDate: "2024-01-01", EndDate: "2024-01-10",
		GoalType: 5, IconID: &icon, ConnectedAccount: 3,
	}
	require.NoError(t, c.CreateGoal(context.Background(), req))
	assert.Equal(t, req, got)
}

func TestUpdateGoal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/goals/42", r.URL.Path)
	})

	err := c.UpdateGoal(context.Background(), 42, goal.Request{GoalName: "이름"})
	require.NoError(t, err)
}

func TestCreateGoalFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := c.CreateGoal(context.Background(), goal.Request{})
	assert.ErrorIs(t, err, ErrCreateFailed)
}

func TestUpdateGoalFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.UpdateGoal(context.Background(), 1, goal.Request{})
	assert.ErrorIs(t, err, ErrUpdateFailed)
}

func TestUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := c.Accounts(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)

		err = c.CreateGoal(context.Background(), goal.Request{})
		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)
		assert.ErrorIs(t, err, ErrCreateFailed, "status %d", status)
	}
}

func TestTokenSourceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server without a token")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, auth.NewFileStore(t.TempDir()))
	_, err := c.Accounts(context.Background())
	assert.ErrorIs(t, err, auth.ErrNoToken)
}
