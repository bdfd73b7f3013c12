package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"quill/app/middleware"
	"quill/app/repositories"
	"quill/app/services"

	"github.com/gorilla/mux"
)

// maxUploadSize bounds the in-memory portion of multipart parsing.
const maxUploadSize = 32 << 20

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
	assets      *services.AssetService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, assets *services.AssetService) *PostController {
	return &PostController{postService: postService, assets: assets}
}

// Create handles POST /post. The session is verified by middleware; the
// author is captured from the token's claims, and the cover file is required.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, "invalid or missing session token", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		sendError(w, "expected multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		sendError(w, "cover file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	cover, err := pc.assets.Store(file, header.Filename)
	if err != nil {
		if errors.Is(err, services.ErrNoExtension) {
			sendError(w, "cover filename must have an extension", http.StatusBadRequest)
			return
		}
		log.Printf("failed to store cover: %v", err)
		sendError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	doc, err := pc.postService.CreatePost(formFields(r), cover, claims.UserID)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, doc)
}

// Index handles GET /posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	docs, err := pc.postService.ListRecent()
	if err != nil {
		log.Printf("failed to list posts: %v", err)
		sendError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, http.StatusOK, docs)
}

// Show handles GET /posts/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	doc, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, doc)
}

// Update handles PUT /posts/{id}. A new cover replaces the stored one only
// when a file part accompanies the request.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		sendError(w, "expected multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	var cover string
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		cover, err = pc.assets.Store(file, header.Filename)
		if err != nil {
			if errors.Is(err, services.ErrNoExtension) {
				sendError(w, "cover filename must have an extension", http.StatusBadRequest)
				return
			}
			log.Printf("failed to store cover: %v", err)
			sendError(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	} else if err != http.ErrMissingFile {
		sendError(w, "invalid file part: "+err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := pc.postService.UpdatePost(id, formFields(r), cover)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, doc)
}

// Delete handles DELETE /posts/{id}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	deleted, err := pc.postService.DeletePost(id)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Post deleted successfully",
		"deletedPost": deleted,
	})
}

// postID extracts and validates the {id} route variable.
func (pc *PostController) postID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// sendServiceError maps service-layer failures to status codes.
func (pc *PostController) sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidInput):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("post operation failed: %v", err)
		sendError(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// formFields reads the editable post fields from the parsed form.
func formFields(r *http.Request) repositories.PostFields {
	return repositories.PostFields{
		Title:   r.FormValue("title"),
		Summary: r.FormValue("summary"),
		Content: r.FormValue("content"),
	}
}

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
