package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/models"
	"placehub/internal/microservices/http-api/registry"

	"github.com/gin-gonic/gin"
)

const (
	anonymous = ""
	asUser    = models.RoleUser
	asAdmin   = models.RoleAdmin

	testUserID int64 = 42
)

// mockAuthMiddleware signs the request in with the given role, or leaves it anonymous.
func mockAuthMiddleware(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role != anonymous {
			middleware.SetUser(c, &models.User{ID: testUserID, OpenID: "open-42", Role: role})
		}
		c.Next()
	}
}

func setupRouter(role string, providers ...registry.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry.RegisterValidators()

	r := gin.New()
	r.Use(mockAuthMiddleware(role))
	registry.Mount(r.Group(registry.BasePath), registry.Collect(providers...))
	return r
}

func query(r http.Handler, name string, params url.Values) *httptest.ResponseRecorder {
	target := registry.BasePath + "/" + name
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mutate(r http.Handler, name string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	} else {
		payload = []byte("{}")
	}
	req, _ := http.NewRequest(http.MethodPost, registry.BasePath+"/"+name, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var response map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return response
}
