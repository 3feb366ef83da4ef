package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMapsConfigHandler_MapsConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		key  string
	}{
		{name: "configured key", key: "public-key-123"},
		{name: "empty key is still a 200", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMapsConfigHandler(tt.key)

			req := httptest.NewRequest(http.MethodGet, "/api/config/maps", nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			h.MapsConfig(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var body map[string]string
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.key, body["mapsApiKey"])
		})
	}
}
