package riskai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/riskai"
)

func TestRiskAIClient(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RiskAI Client Suite")
}

func modelReply(text string) string {
	reply := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(reply)
	return string(raw)
}

var _ = Describe("RiskAI Client", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
	)

	newClient := func() *riskai.Client {
		return riskai.NewClient(internal.RiskAIConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
			Model:   "gemini-pro",
			Timeout: 2 * time.Second,
		})
	}

	input := riskai.Input{
		BusinessName: "Cafe Hapina",
		BusinessType: "Restaurant or coffee shop",
		Findings:     "Blocked emergency exit",
		Status:       "fail",
	}

	BeforeEach(func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(modelReply(`{"riskLevel":"High","summary":"ok","recommendations":["fix it"]}`)))
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	It("sends the findings to the model endpoint with the API key", func() {
		var gotPath, gotKey string
		var gotBody map[string]any
		handler = func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.URL.Query().Get("key")
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(modelReply(`{"riskLevel":"Low","summary":"s","recommendations":[]}`)))
		}

		_, err := newClient().AssessRisk(context.Background(), input)
		Expect(err).NotTo(HaveOccurred())
		Expect(gotPath).To(Equal("/v1beta/models/gemini-pro:generateContent"))
		Expect(gotKey).To(Equal("test-key"))

		raw, _ := json.Marshal(gotBody)
		Expect(string(raw)).To(ContainSubstring("Blocked emergency exit"))
		Expect(string(raw)).To(ContainSubstring("Cafe Hapina"))
	})

	It("parses a clean JSON verdict", func() {
		a, err := newClient().AssessRisk(context.Background(), input)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.RiskLevel).To(Equal(riskai.RiskHigh))
		Expect(a.Recommendations).To(ConsistOf("fix it"))
	})

	It("strips markdown code fences around the verdict", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(modelReply("```json\n{\"riskLevel\":\"Medium\",\"summary\":\"s\",\"recommendations\":[]}\n```")))
		}

		a, err := newClient().AssessRisk(context.Background(), input)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.RiskLevel).To(Equal(riskai.RiskMedium))
	})

	It("rejects a verdict that is not JSON", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(modelReply("the business seems risky")))
		}

		_, err := newClient().AssessRisk(context.Background(), input)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown risk level", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(modelReply(`{"riskLevel":"Extreme","summary":"s","recommendations":[]}`)))
		}

		_, err := newClient().AssessRisk(context.Background(), input)
		Expect(err).To(HaveOccurred())
	})

	It("surfaces a non-200 response as an external error", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}

		_, err := newClient().AssessRisk(context.Background(), input)
		Expect(err).To(HaveOccurred())
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeExternal))
	})

	It("rejects a response with no candidates", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}

		_, err := newClient().AssessRisk(context.Background(), input)
		Expect(err).To(HaveOccurred())
	})
})
