package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/masalamart/masalamart-api/models"
	"github.com/masalamart/masalamart-api/services"
	"github.com/masalamart/masalamart-api/utils"
)

// BlogController handles storefront article requests.
type BlogController struct {
	Blogs *services.BlogService
}

// NewBlogController creates a BlogController.
func NewBlogController(blogs *services.BlogService) *BlogController {
	return &BlogController{Blogs: blogs}
}

// GetByID handles GET /api/blogs/{id}. The path id may be the article's
// slug or its storage id; the resolver tries both in that order.
func (bc *BlogController) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		utils.WriteJSON(w, http.StatusBadRequest, "blog id is required", nil)
		return
	}

	blog, err := bc.Blogs.Resolve(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "blog fetched", blog)
}

// Create handles POST /api/blogs (admin only).
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var blog models.Blog
	if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	created, err := bc.Blogs.Create(r.Context(), &blog)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, "blog created", created)
}

// Update handles PUT /api/blogs/{id} (admin only). Only the fields present
// in the body change; the article keeps its slug.
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["id"]

	var changes models.BlogUpdate
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	blog, err := bc.Blogs.Update(r.Context(), slug, changes)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "blog updated", blog)
}

// Delete handles DELETE /api/blogs/{id} (admin only). The article is
// soft-deleted and disappears from read paths while staying on record.
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["id"]
	if err := bc.Blogs.Delete(r.Context(), slug); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "blog deleted", nil)
}
