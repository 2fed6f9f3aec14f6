package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"main/model"
	"main/repository"
)

func TestGetHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repository.NewEntryStore()
	store.AddStudy(model.StudyEntry{Subject: "Math"})
	h := NewSystemHandler(store)

	router := gin.New()
	router.GET("/api/system/health", h.GetHealth)

	w := doRequest(t, router, http.MethodGet, "/api/system/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := decodeData(t, w)
	if data["status"] != "ok" {
		t.Errorf("status = %v", data["status"])
	}
	counts, ok := data["entry_counts"].(map[string]interface{})
	if !ok {
		t.Fatalf("entry_counts = %v", data["entry_counts"])
	}
	if counts["study"] != 1.0 {
		t.Errorf("study count = %v, want 1", counts["study"])
	}
	if _, ok := data["uptime"]; !ok {
		t.Error("response missing uptime")
	}
}
