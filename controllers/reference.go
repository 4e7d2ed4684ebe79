package controllers

import (
	"net/http"

	"github.com/masalamart/masalamart-api/models"
	"github.com/masalamart/masalamart-api/utils"
)

// ReferenceController serves the static country, delivery and dietary data.
type ReferenceController struct{}

// NewReferenceController creates a ReferenceController.
func NewReferenceController() *ReferenceController {
	return &ReferenceController{}
}

// GetCountries handles GET /api/country. With an id or countryId query it
// returns one country, otherwise the full list.
func (rc *ReferenceController) GetCountries(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		id = r.URL.Query().Get("countryId")
	}

	if id == "" {
		utils.WriteJSON(w, http.StatusOK, "countries fetched", map[string]interface{}{
			"countries": models.Countries,
		})
		return
	}

	country, ok := models.CountryByID(id)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, "country not found", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "country fetched", country)
}

// GetDeliveryOptions handles GET /api/delivery/options. With a type query it
// returns one option, otherwise all of them.
func (rc *ReferenceController) GetDeliveryOptions(w http.ResponseWriter, r *http.Request) {
	optionType := r.URL.Query().Get("type")

	if optionType == "" {
		utils.WriteJSON(w, http.StatusOK, "delivery options fetched", map[string]interface{}{
			"options": models.DeliveryOptions,
		})
		return
	}

	option, ok := models.DeliveryOptionByType(optionType)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, "delivery option not found", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "delivery option fetched", option)
}

// GetDietaryTags handles GET /api/dietary.
func (rc *ReferenceController) GetDietaryTags(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, "dietary tags fetched", map[string]interface{}{
		"tags": models.DietaryTags,
	})
}
