package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Luismorlan/sociomux/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "author@b.com")

	w := doMultipart(t, router, "/posts", bearerFor(t, user.Id), map[string]string{
		"description": "hello",
	}, "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var post model.Post
	decodeBody(t, w, &post)
	assert.Equal(t, "hello", post.Description)
	assert.Empty(t, post.PicturePath)
	assert.Equal(t, user.Id, post.UserID)
	// Author fields are denormalized at write time.
	assert.Equal(t, "Jane", post.FirstName)
	assert.Equal(t, "SF", post.Location)
	assert.Empty(t, post.Likes)

	var count int64
	require.NoError(t, s.DB.Model(&model.Post{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreatePost_WithPicture(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "author@b.com")

	w := doMultipart(t, router, "/posts", bearerFor(t, user.Id), map[string]string{
		"description": "with image",
	}, "sunset.jpg", []byte("fake image bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	var post model.Post
	decodeBody(t, w, &post)
	assert.NotEqual(t, "sunset.jpg", post.PicturePath)

	// The stored key round-trips into the persisted document.
	var persisted model.Post
	require.NoError(t, s.DB.First(&persisted, "id = ?", post.Id).Error)
	assert.Equal(t, post.PicturePath, persisted.PicturePath)
}

func TestCreatePost_UserNotFound(t *testing.T) {
	s, router := newTestServer(t)

	w := doMultipart(t, router, "/posts", bearerFor(t, "ghost-user"), map[string]string{
		"description": "hello",
	}, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")

	// Nothing was inserted.
	var count int64
	require.NoError(t, s.DB.Model(&model.Post{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreatePost_NoToken(t *testing.T) {
	_, router := newTestServer(t)

	w := doMultipart(t, router, "/posts", "", map[string]string{
		"description": "hello",
	}, "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLikePost_Toggle(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "liker@b.com")
	token := bearerFor(t, user.Id)

	w := doMultipart(t, router, "/posts", token, map[string]string{"description": "like me"}, "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var post model.Post
	decodeBody(t, w, &post)

	// First toggle: liked.
	w = doJSON(t, router, "PATCH", "/posts/"+post.Id+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var liked model.Post
	decodeBody(t, w, &liked)
	assert.Contains(t, liked.Likes, user.Id)

	// Second toggle: back to the original empty map.
	w = doJSON(t, router, "PATCH", "/posts/"+post.Id+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var unliked model.Post
	decodeBody(t, w, &unliked)
	assert.NotContains(t, unliked.Likes, user.Id)
	assert.Empty(t, unliked.Likes)
}

func TestLikePost_NotFound(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "liker@b.com")

	w := doJSON(t, router, "PATCH", "/posts/ghost-post/like", bearerFor(t, user.Id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentPost(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "commenter@b.com")
	token := bearerFor(t, user.Id)

	w := doMultipart(t, router, "/posts", token, map[string]string{"description": "discuss"}, "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var post model.Post
	decodeBody(t, w, &post)

	w = doJSON(t, router, "POST", "/posts/"+post.Id+"/comment", token, map[string]string{
		"comment": "nice one",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nice one")
	assert.Contains(t, w.Body.String(), user.Id)
}

func TestGetFeedPosts_Pagination(t *testing.T) {
	s, router := newTestServer(t)
	user := registerUser(t, s, router, "feed@b.com")
	token := bearerFor(t, user.Id)

	for i := 0; i < 3; i++ {
		w := doMultipart(t, router, "/posts", token, map[string]string{
			"description": fmt.Sprintf("post %d", i),
		}, "", nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, "GET", "/posts?limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Posts []model.Post `json:"posts"`
		Next  int32        `json:"next"`
	}
	decodeBody(t, w, &page)
	require.Len(t, page.Posts, 2)
	// Newest first.
	assert.Equal(t, "post 2", page.Posts[0].Description)
	assert.Equal(t, "post 1", page.Posts[1].Description)
	require.NotZero(t, page.Next)

	w = doJSON(t, router, "GET", fmt.Sprintf("/posts?limit=2&before=%d", page.Next), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &page)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "post 0", page.Posts[0].Description)
	assert.Zero(t, page.Next)
}

func TestGetUserPosts(t *testing.T) {
	s, router := newTestServer(t)
	alice := registerUser(t, s, router, "alice@b.com")
	bob := registerUser(t, s, router, "bob@b.com")

	w := doMultipart(t, router, "/posts", bearerFor(t, alice.Id), map[string]string{"description": "from alice"}, "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doMultipart(t, router, "/posts", bearerFor(t, bob.Id), map[string]string{"description": "from bob"}, "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/posts/"+alice.Id+"/posts", bearerFor(t, bob.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Posts []model.Post `json:"posts"`
	}
	decodeBody(t, w, &page)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "from alice", page.Posts[0].Description)
}
