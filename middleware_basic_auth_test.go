package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeAuthedHandler() http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return newBasicAuthMiddleware(next, "admin", "pass")
}

func TestBasicAuthOk(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.SetBasicAuth("admin", "pass")

	resp := httptest.NewRecorder()
	makeAuthedHandler().ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestBasicAuthWrongPassword(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.SetBasicAuth("admin", "nope")

	resp := httptest.NewRecorder()
	makeAuthedHandler().ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.NotEmpty(t, resp.Header().Get("WWW-Authenticate"))
}

func TestBasicAuthNoCredentials(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	resp := httptest.NewRecorder()
	makeAuthedHandler().ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
