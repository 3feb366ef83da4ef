package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/borourke9/leadscraper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesClient_SearchNearby(t *testing.T) {
	var gotMethod, gotPath, gotAPIKey, gotFieldMask string
	var gotBody nearbySearchRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("X-Goog-Api-Key")
		gotFieldMask = r.Header.Get("X-Goog-FieldMask")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"places": [
				{
					"displayName": {"text": "Acme Electric"},
					"formattedAddress": "123 Main St, Traverse City, MI",
					"nationalPhoneNumber": "(231) 555-0100",
					"rating": 4.5,
					"location": {"latitude": 44.76, "longitude": -85.62},
					"types": ["electrician", "establishment"]
				},
				{
					"displayName": {"text": "Smith Electric"},
					"formattedAddress": "9 Pine Rd, Traverse City, MI",
					"websiteUri": "https://smithelectric.com",
					"location": {"latitude": 44.77, "longitude": -85.63},
					"types": ["electrician"]
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewPlacesClient("test-key", server.URL)
	center := models.Coordinates{Latitude: 44.7631, Longitude: -85.6206}

	places, err := client.SearchNearby(context.Background(), "electrician", center, 16090)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/places:searchNearby", gotPath)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Contains(t, gotFieldMask, "places.websiteUri")
	assert.Contains(t, gotFieldMask, "places.displayName")

	assert.Equal(t, []string{"electrician"}, gotBody.IncludedTypes)
	assert.Equal(t, 20, gotBody.MaxResultCount)
	assert.Equal(t, center, gotBody.LocationRestriction.Circle.Center)
	assert.Equal(t, 16090.0, gotBody.LocationRestriction.Circle.Radius)

	require.Len(t, places, 2)
	assert.Equal(t, "Acme Electric", places[0].DisplayName.Text)
	assert.Equal(t, "(231) 555-0100", places[0].NationalPhoneNumber)
	require.NotNil(t, places[0].Rating)
	assert.Equal(t, 4.5, *places[0].Rating)
	assert.Empty(t, places[0].WebsiteURI)
	assert.Equal(t, "https://smithelectric.com", places[1].WebsiteURI)
	assert.Nil(t, places[1].Rating)
}

func TestPlacesClient_SearchNearby_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The places API omits the "places" field entirely when nothing matches.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewPlacesClient("test-key", server.URL)
	places, err := client.SearchNearby(context.Background(), "plumber", models.Coordinates{}, 1000)

	assert.NoError(t, err)
	assert.Empty(t, places)
}

func TestPlacesClient_SearchNearby_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "invalid type"}}`))
	}))
	defer server.Close()

	client := NewPlacesClient("test-key", server.URL)
	places, err := client.SearchNearby(context.Background(), "not_a_type", models.Coordinates{}, 1000)

	assert.Nil(t, places)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
