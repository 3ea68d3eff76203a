package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecodeUserListPlainArray(t *testing.T) {
	body := []byte(`[{"id":1,"name":"Alice","status":"active"},{"id":2,"name":"Bob","status":"inactive"}]`)

	users, err := DecodeUserList(body)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "1", users[0].ID)
	require.Equal(t, "Alice", users[0].Name)
}

func TestDecodeUserListWrappers(t *testing.T) {
	for _, key := range []string{"data", "users", "result"} {
		body := []byte(`{"` + key + `":[{"id":7,"name":"Carol"}]}`)
		users, err := DecodeUserList(body)
		require.NoError(t, err, "wrapper key %s", key)
		require.Len(t, users, 1)
		require.Equal(t, "Carol", users[0].Name)
	}
}

func TestDecodeUserListAlternateIDKeys(t *testing.T) {
	users, err := DecodeUserList([]byte(`[{"userId":42,"name":"A"}]`))
	require.NoError(t, err)
	require.Equal(t, "42", users[0].ID)

	users, err = DecodeUserList([]byte(`[{"_id":"66a1f","name":"B"}]`))
	require.NoError(t, err)
	require.Equal(t, "66a1f", users[0].ID)

	// id優先於其餘key
	users, err = DecodeUserList([]byte(`[{"id":"9","userId":42,"_id":"x","name":"C"}]`))
	require.NoError(t, err)
	require.Equal(t, "9", users[0].ID)
}

func TestDecodeUserListStringAndNumericIDsMixed(t *testing.T) {
	// 同一份名單混用字串與數字id，單筆不能拖垮整份解析
	users, err := DecodeUserList([]byte(`[{"id":"u-1","name":"A"},{"id":2,"name":"B"}]`))
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "u-1", users[0].ID)
	require.Equal(t, "2", users[1].ID)

	users, err = DecodeUserList([]byte(`[{"userId":"emp-7","name":"C"}]`))
	require.NoError(t, err)
	require.Equal(t, "emp-7", users[0].ID)
}

func TestDecodeUserListUnexpectedShape(t *testing.T) {
	// 認不出來的形狀回傳空清單與錯誤，不是nil
	users, err := DecodeUserList([]byte(`{"message":"maintenance"}`))
	require.ErrorIs(t, err, ErrUnexpectedShape)
	require.NotNil(t, users)
	require.Empty(t, users)

	users, err = DecodeUserList([]byte(`not json at all`))
	require.ErrorIs(t, err, ErrUnexpectedShape)
	require.Empty(t, users)
}

func TestFetchUserList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"name":"Alice"}]}`))
	}))
	defer srv.Close()

	c := NewCompanyUserClient(srv.URL, 5*time.Second)
	users, err := c.FetchUserList(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Alice", users[0].Name)
}

func TestFetchUserListNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewCompanyUserClient(srv.URL, 5*time.Second)
	_, err := c.FetchUserList(context.Background())
	require.Error(t, err)
}
