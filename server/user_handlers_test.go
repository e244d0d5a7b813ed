package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "me@b.com")
	token := bearerFor(t, user.Id)

	w := doJSON(t, router, "GET", "/users/"+user.Id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "me@b.com")
	assert.NotContains(t, w.Body.String(), `"password"`)

	w = doJSON(t, router, "GET", "/users/ghost", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser_NoToken(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "me@b.com")

	w := doJSON(t, router, "GET", "/users/"+user.Id, "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddRemoveFriend_Symmetric(t *testing.T) {
	s, router := newTestServer(t)
	alice := registerUser(t, s, router, "alice@b.com")
	bob := registerUser(t, s, router, "bob@b.com")
	token := bearerFor(t, alice.Id)

	// Add: both sides see the friendship.
	w := doJSON(t, router, "PATCH", "/users/"+alice.Id+"/"+bob.Id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var friends []struct {
		Id string `json:"id"`
	}
	decodeBody(t, w, &friends)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.Id, friends[0].Id)

	w = doJSON(t, router, "GET", "/users/"+bob.Id+"/friends", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &friends)
	require.Len(t, friends, 1)
	assert.Equal(t, alice.Id, friends[0].Id)

	// Toggle again: removed on both sides.
	w = doJSON(t, router, "PATCH", "/users/"+alice.Id+"/"+bob.Id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &friends)
	assert.Empty(t, friends)

	w = doJSON(t, router, "GET", "/users/"+bob.Id+"/friends", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &friends)
	assert.Empty(t, friends)
}

func TestAddRemoveFriend_Self(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "loner@b.com")

	w := doJSON(t, router, "PATCH", "/users/"+user.Id+"/"+user.Id, bearerFor(t, user.Id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddRemoveFriend_UnknownFriend(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "real@b.com")

	w := doJSON(t, router, "PATCH", "/users/"+user.Id+"/ghost", bearerFor(t, user.Id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
