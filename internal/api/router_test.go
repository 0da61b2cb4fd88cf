package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"placeholder/internal/api/controllers"
	"placeholder/internal/infra/infratest"
	"placeholder/internal/models/db_models"
	"placeholder/internal/repositories"
	"placeholder/internal/services"
	mem "placeholder/pkg/memcache"
	"placeholder/pkg/metrics"
	"placeholder/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.RegisterJSONFieldNames()
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

type envelope struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := infratest.NewDB(t)

	accountRepo := repositories.NewAccountRepository(db)
	albumRepo := repositories.NewAlbumRepository(db)
	postRepo := repositories.NewPostRepository(db)

	credentialService := services.NewCredentialService(
		accountRepo,
		repositories.NewCredentialRepository(db),
		utils.NewTokenSigner("router-secret"),
		mem.NewCredentialKeys(),
		time.Minute,
	)
	photoService := services.NewPhotoService(repositories.NewPhotoRepository(db), albumRepo)
	commentService := services.NewCommentService(repositories.NewCommentRepository(db), postRepo)

	ctrl := Controllers{
		Account:    controllers.NewAccountController(services.NewAccountService(accountRepo, services.NewAccountComposer(accountRepo))),
		Credential: controllers.NewCredentialController(credentialService),
		Album:      controllers.NewAlbumController(services.NewAlbumService(albumRepo, accountRepo), photoService),
		Photo:      controllers.NewPhotoController(photoService),
		Post:       controllers.NewPostController(services.NewPostService(postRepo, accountRepo), commentService),
		Comment:    controllers.NewCommentController(commentService),
		ToDo:       controllers.NewToDoController(services.NewToDoService(repositories.NewToDoRepository(db), accountRepo)),
		Health:     controllers.NewHealthController(db),
	}

	router := NewRouter(ctrl, credentialService, metrics.New(), RouterOptions{
		CORSOrigins:             []string{"*"},
		CredentialRatePerMinute: 100,
	})
	return &testServer{t: t, db: db, router: router}
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

// signUpAndLogin registers an account and returns its id and a token.
func (s *testServer) signUpAndLogin(email string) (string, string) {
	s.t.Helper()
	rec, env := s.do(http.MethodPost, "/accounts", "", gin.H{
		"email": email, "password": "s3cret-pass", "name": "Leanne Graham", "username": "Bret",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var account struct {
		ID string `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &account))

	rec, env = s.do(http.MethodPost, "/credentials", "", gin.H{"email": email, "password": "s3cret-pass"})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &login))
	return account.ID, login.Token
}

func TestRegister_NestedAccountWithoutPassword(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodPost, "/accounts", "", gin.H{
		"email":    "Sincere@april.biz",
		"password": "s3cret-pass",
		"name":     "Leanne Graham",
		"username": "Bret",
		"address": gin.H{
			"street": "Kulas Light", "suite": "Apt. 556", "city": "Gwenborough", "zipcode": "92998-3874",
			"geo": gin.H{"lat": "-37.3159", "lng": "81.1496"},
		},
		"company": gin.H{"name": "Romaguera-Crona"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotContains(t, data, "password")
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")

	address := data["address"].(map[string]interface{})
	assert.Equal(t, "Kulas Light", address["street"])
	geo := address["geo"].(map[string]interface{})
	assert.Equal(t, "-37.315900000", geo["lat"])
	assert.Equal(t, "Romaguera-Crona", data["company"].(map[string]interface{})["name"])
}

func TestRegister_FieldErrors(t *testing.T) {
	s := newTestServer(t)
	s.signUpAndLogin("dup@example.com")

	rec, env := s.do(http.MethodPost, "/accounts", "", gin.H{
		"email": "dup@example.com", "password": "s3cret-pass", "name": "n", "username": "u",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"account with this email already exists."}, env.Errors["email"])

	rec, env = s.do(http.MethodPost, "/accounts", "", gin.H{
		"email": "short@example.com", "password": "abc", "name": "n", "username": "u",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "password")

	rec, env = s.do(http.MethodPost, "/accounts", "", gin.H{
		"email": "nested@example.com", "password": "s3cret-pass", "name": "n", "username": "u",
		"address": gin.H{"city": "c", "zipcode": "z"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"This field is required."}, env.Errors["address.street"])

	var n int64
	require.NoError(t, s.db.Model(&db_models.Account{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestCredentials_BadPassword(t *testing.T) {
	s := newTestServer(t)
	s.signUpAndLogin("login@example.com")

	rec, env := s.do(http.MethodPost, "/credentials", "", gin.H{"email": "login@example.com", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, utils.NonFieldErrors)
}

func TestUnauthenticatedMutationLeavesRowUntouched(t *testing.T) {
	s := newTestServer(t)
	_, token := s.signUpAndLogin("owner@example.com")

	rec, env := s.do(http.MethodPost, "/todo", token, gin.H{"title": "X", "completed": false})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var todo struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &todo))

	path := "/todo/" + todo.ID
	for _, token := range []string{"", "garbage"} {
		rec, _ = s.do(http.MethodPatch, path, token, gin.H{"title": "hijacked"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		rec, _ = s.do(http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	var stored db_models.ToDo
	require.NoError(t, s.db.First(&stored, "id = ?", todo.ID).Error)
	assert.Equal(t, "X", stored.Title)
}

func TestReissuedTokenRevokesOldOne(t *testing.T) {
	s := newTestServer(t)
	_, oldToken := s.signUpAndLogin("rotate@example.com")

	rec, env := s.do(http.MethodPost, "/credentials", "", gin.H{"email": "rotate@example.com", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	rec, _ = s.do(http.MethodGet, "/posts", oldToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = s.do(http.MethodGet, "/posts", login.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScopedRoutesReportMissingParent(t *testing.T) {
	s := newTestServer(t)
	_, token := s.signUpAndLogin("reader@example.com")
	unknown := "00000000-0000-0000-0000-000000000001"

	tests := []struct {
		path    string
		message string
	}{
		{"/albums/" + unknown + "/user_albums", "user not found"},
		{"/albums/user/" + unknown, "user not found"},
		{"/posts/user/" + unknown, "user not found"},
		{"/todo/" + unknown + "/user_todos", "user not found"},
		{"/comments/post/" + unknown, "post not found"},
		{"/comments/" + unknown + "/filter-by-post", "post not found"},
		{"/posts/" + unknown + "/comments", "post not found"},
		{"/albums/" + unknown + "/photos", "album not found"},
		{"/posts/not-a-uuid", "post not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, env := s.do(http.MethodGet, tt.path, token, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}

func TestPostsAndCommentsFlow(t *testing.T) {
	s := newTestServer(t)
	authorID, authorToken := s.signUpAndLogin("author@example.com")
	_, readerToken := s.signUpAndLogin("reader@example.com")

	rec, env := s.do(http.MethodPost, "/posts", authorToken, gin.H{
		"title": "sunt aut facere", "body": "quia et suscipit", "userId": "ignored",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var post struct {
		ID     string `json:"id"`
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, authorID, post.UserID)

	rec, _ = s.do(http.MethodPost, "/comments", readerToken, gin.H{"postId": post.ID, "body": "nice"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = s.do(http.MethodGet, fmt.Sprintf("/comments/post/%s", post.ID), readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var comments []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "reader@example.com", comments[0]["email"])

	rec, _ = s.do(http.MethodPost, "/comments", readerToken, gin.H{"postId": "00000000-0000-0000-0000-000000000001", "body": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = s.do(http.MethodGet, "/posts/user/"+authorID, readerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	assert.Len(t, posts, 1)

	rec, _ = s.do(http.MethodDelete, "/posts/"+post.ID, readerToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec, env = s.do(http.MethodGet, "/posts/"+post.ID, readerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "post not found", env.Message)
}

func TestAlbumsFlow(t *testing.T) {
	s := newTestServer(t)
	ownerID, token := s.signUpAndLogin("albums@example.com")

	rec, env := s.do(http.MethodPost, "/albums", token, gin.H{"title": "quidem molestiae enim"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var album struct {
		ID     string `json:"id"`
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &album))
	assert.Equal(t, ownerID, album.UserID)

	rec, env = s.do(http.MethodPost, "/albums", token, gin.H{"title": "quidem molestiae enim"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "title")

	rec, _ = s.do(http.MethodPost, "/photos", token, gin.H{
		"albumId": album.ID, "title": "p", "url": "https://via.placeholder.com/600/92c952",
		"thumbnailUrl": "https://via.placeholder.com/150/92c952",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = s.do(http.MethodGet, "/albums/"+album.ID+"/photos", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var photos []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &photos))
	require.Len(t, photos, 1)
	assert.Equal(t, album.ID, photos[0]["albumId"])

	rec, env = s.do(http.MethodGet, "/albums/"+ownerID+"/user_albums", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var albums []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &albums))
	assert.Len(t, albums, 1)

	rec, _ = s.do(http.MethodPut, "/albums/"+album.ID, token, gin.H{"title": "renamed"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToDoRoundTripOverHTTP(t *testing.T) {
	s := newTestServer(t)
	_, token := s.signUpAndLogin("todo@example.com")

	rec, env := s.do(http.MethodPost, "/todo", token, gin.H{"title": "X", "completed": false})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	path := "/todo/" + created["id"].(string)

	rec, env = s.do(http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created, fetched)

	rec, _ = s.do(http.MethodPatch, path, token, gin.H{"title": "Y"})
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = s.do(http.MethodGet, path, token, nil)
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Y", fetched["title"])
	assert.Equal(t, false, fetched["completed"])

	rec, env = s.do(http.MethodPost, "/todo", token, gin.H{"title": "no flag"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "completed")
}

func TestAccountUpdateAndDelete(t *testing.T) {
	s := newTestServer(t)
	id, token := s.signUpAndLogin("update@example.com")

	rec, env := s.do(http.MethodPatch, "/accounts/"+id, token, gin.H{
		"address": gin.H{"street": "Victor Plains", "city": "Wisokyburgh", "zipcode": "90566-7771"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var account map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, "Victor Plains", account["address"].(map[string]interface{})["street"])

	rec, env = s.do(http.MethodPatch, "/accounts/"+id, token, gin.H{
		"address": gin.H{"city": "McKenziehaven"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &account))
	address := account["address"].(map[string]interface{})
	assert.Equal(t, "McKenziehaven", address["city"])
	assert.Equal(t, "Victor Plains", address["street"])
	assert.Equal(t, "90566-7771", address["zipcode"])

	rec, _ = s.do(http.MethodDelete, "/accounts/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// the token died with the account
	rec, _ = s.do(http.MethodGet, "/accounts", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOpenEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	s.router.ServeHTTP(metricsRec, req)
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "placeholder_http_requests_total")
}
