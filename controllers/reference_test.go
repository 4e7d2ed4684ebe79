package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masalamart/masalamart-api/utils"
)

func referenceRouter() *mux.Router {
	rc := NewReferenceController()
	router := mux.NewRouter()
	router.HandleFunc("/api/country", rc.GetCountries).Methods("GET")
	router.HandleFunc("/api/delivery/options", rc.GetDeliveryOptions).Methods("GET")
	router.HandleFunc("/api/dietary", rc.GetDietaryTags).Methods("GET")
	return router
}

func getEnvelope(t *testing.T, router *mux.Router, path string) (int, utils.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestGetCountriesReturnsFullList(t *testing.T) {
	code, env := getEnvelope(t, referenceRouter(), "/api/country")

	require.Equal(t, http.StatusOK, code)
	data := env.Data.(map[string]interface{})
	countries := data["countries"].([]interface{})
	assert.Len(t, countries, 15)
}

func TestGetCountryByID(t *testing.T) {
	code, env := getEnvelope(t, referenceRouter(), "/api/country?id=IN")

	require.Equal(t, http.StatusOK, code)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "India", data["name"])
}

func TestGetCountryByAlternateQueryKey(t *testing.T) {
	code, env := getEnvelope(t, referenceRouter(), "/api/country?countryId=SG")

	require.Equal(t, http.StatusOK, code)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "Singapore", data["name"])
}

func TestGetUnknownCountryIs404(t *testing.T) {
	code, env := getEnvelope(t, referenceRouter(), "/api/country?id=ZZ")

	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestGetDeliveryOptions(t *testing.T) {
	code, env := getEnvelope(t, referenceRouter(), "/api/delivery/options")

	require.Equal(t, http.StatusOK, code)
	data := env.Data.(map[string]interface{})
	options := data["options"].([]interface{})
	assert.NotEmpty(t, options)
}

func TestGetDeliveryOptionByType(t *testing.T) {
	code, env := getEnvelope(t, referenceRouter(), "/api/delivery/options?type=express")

	require.Equal(t, http.StatusOK, code)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "Express Delivery", data["label"])
}

func TestGetUnknownDeliveryTypeIs404(t *testing.T) {
	code, _ := getEnvelope(t, referenceRouter(), "/api/delivery/options?type=drone")

	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetDietaryTags(t *testing.T) {
	code, env := getEnvelope(t, referenceRouter(), "/api/dietary")

	require.Equal(t, http.StatusOK, code)
	data := env.Data.(map[string]interface{})
	tags := data["tags"].([]interface{})
	assert.NotEmpty(t, tags)
}
