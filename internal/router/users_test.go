package router_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCreateUserBody = `{
	"user": {"name": "Alice", "age": 30},
	"item": {"name": "Hammer", "price": 9.99}
}`

func TestCreateUser(t *testing.T) {
	e := newTestRouter(t)

	t.Run("payloads nest under their own keys", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/users/create42?q=hello", validCreateUserBody)

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decode(t, rec)

		user, ok := payload["user"].(map[string]any)
		require.True(t, ok, "body: %s", rec.Body.String())
		assert.Equal(t, "Alice", user["name"])
		assert.Equal(t, float64(30), user["age"])

		item, ok := payload["item"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Hammer", item["name"])

		assert.Equal(t, "hello", payload["q"])
	})

	t.Run("importance defaults to medium", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/users/create42", validCreateUserBody)

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decode(t, rec)
		assert.Equal(t, "medium", payload["importance"])
		assert.NotContains(t, payload, "q")
	})

	t.Run("explicit importance echoed", func(t *testing.T) {
		body := `{
			"user": {"name": "Alice", "age": 30},
			"item": {"name": "Hammer", "price": 9.99},
			"importance": "high"
		}`
		rec := do(t, e, http.MethodPost, "/users/create42", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "high", decode(t, rec)["importance"])
	})

	t.Run("empty importance is not defaulted", func(t *testing.T) {
		body := `{
			"user": {"name": "Alice", "age": 30},
			"item": {"name": "Hammer", "price": 9.99},
			"importance": ""
		}`
		rec := do(t, e, http.MethodPost, "/users/create42", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, rec), "importance")
	})

	t.Run("invalid importance", func(t *testing.T) {
		body := `{
			"user": {"name": "Alice", "age": 30},
			"item": {"name": "Hammer", "price": 9.99},
			"importance": "urgent"
		}`
		rec := do(t, e, http.MethodPost, "/users/create42", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, rec), "importance")
	})

	t.Run("both payloads are required", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/users/create42", `{"user": {"name": "Alice", "age": 30}}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, rec), "item")
	})
}

func TestCreateUserAgeBounds(t *testing.T) {
	e := newTestRouter(t)

	cases := []struct {
		age    int
		status int
	}{
		{age: 0, status: http.StatusOK},
		{age: 120, status: http.StatusOK},
		{age: -1, status: http.StatusBadRequest},
		{age: 121, status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("age=%d", tc.age), func(t *testing.T) {
			body := fmt.Sprintf(`{
				"user": {"name": "Alice", "age": %d},
				"item": {"name": "Hammer", "price": 9.99}
			}`, tc.age)
			rec := do(t, e, http.MethodPost, "/users/create42", body)

			require.Equal(t, tc.status, rec.Code, "body: %s", rec.Body.String())
			if tc.status == http.StatusBadRequest {
				assert.Contains(t, errorFields(t, rec), "age")
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	e := newTestRouter(t)

	t.Run("embedded body accepted", func(t *testing.T) {
		rec := do(t, e, http.MethodPut, "/users/7", `{"user": {"name": "A", "age": 30}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decode(t, rec)
		assert.Equal(t, float64(7), payload["user_id"])

		user, ok := payload["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "A", user["name"])
	})

	t.Run("flat body rejected", func(t *testing.T) {
		rec := do(t, e, http.MethodPut, "/users/7", `{"name": "A", "age": 30}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, rec), "user")
	})

	t.Run("missing age inside embedded user", func(t *testing.T) {
		rec := do(t, e, http.MethodPut, "/users/7", `{"user": {"name": "A"}}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, rec), "age")
	})
}
