package handlers

import "net/http"

type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// Get returns mock analytics. start_date and end_date query parameters are
// accepted for forward compatibility but do not change the result yet.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	_ = r.URL.Query().Get("start_date")
	_ = r.URL.Query().Get("end_date")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalConversations":  1250,
		"averageResponseTime": "1.2s",
		"satisfactionRate":    "94%",
		"topTopics": []string{
			"workflow automation",
			"pricing",
			"demos",
			"agentic automation",
		},
		"conversationsByDay": []map[string]interface{}{
			{"date": "2024-01-01", "count": 45},
			{"date": "2024-01-02", "count": 52},
		},
	})
}
