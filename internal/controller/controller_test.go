package controller

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartfinance-ai-be/internal/constant"
	"smartfinance-ai-be/internal/dto"
	"smartfinance-ai-be/internal/handler"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/internal/pkg/metrics"
	"smartfinance-ai-be/internal/pkg/serverutils"
	"smartfinance-ai-be/internal/repository/memory"
	"smartfinance-ai-be/internal/service"
	"smartfinance-ai-be/pkg/ai/assistant"
	"smartfinance-ai-be/pkg/ai/stream"
	"smartfinance-ai-be/pkg/embedding"
	"smartfinance-ai-be/pkg/llm"
	"smartfinance-ai-be/pkg/llm/llmtest"
	"smartfinance-ai-be/pkg/llm/mock"
	memstore "smartfinance-ai-be/pkg/store/memory"
	"smartfinance-ai-be/pkg/utils"
	"smartfinance-ai-be/pkg/worker"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestApp(t *testing.T, routerLLM, responderLLM llm.LLMProvider, mockMode bool) *fiber.App {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	log := logger.NewNop()
	contextStore := memstore.NewStore(embedding.NewHashingProvider(64))

	a := assistant.New(assistant.Config{
		RouterLLM:    routerLLM,
		ResponderLLM: responderLLM,
		Store:        contextStore,
		Cache:        memory.NewPassageCache(),
		Logger:       log,
		Metrics:      m,
	})
	events := service.NewEventPublisher(nil, log)
	chatService := service.NewChatService(a.Graph, worker.NewPool(2, m.WorkerInFlight), a.BillingCache, events, m, log, 0)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })
	ingestion := service.NewIngestionService(pubSub, pubSub, constant.IngestDocumentTopic, contextStore, utils.NewTextSplitter(0, 0), events, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	health := NewHealthController(HealthInfo{Environment: "test", MockMode: mockMode, AIProvider: responderLLM.Name()}, reg)
	health.RegisterRootRoutes(app)

	api := app.Group("/api")
	NewChatController(chatService, log).RegisterRoutes(api)
	NewDocumentController(ingestion).RegisterRoutes(api)
	health.RegisterRoutes(api)
	handler.NewChatStreamHandler(chatService, log).RegisterRoutes(api)

	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func readEvents(t *testing.T, body []byte) []stream.Event {
	t.Helper()
	var out []stream.Event
	sc := bufio.NewScanner(strings.NewReader(string(body)))
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev stream.Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev))
		out = append(out, ev)
	}
	return out
}

func TestChat_BalanceQuestionRoutesToBilling(t *testing.T) {
	app := newTestApp(t, mock.NewMockProvider(), mock.NewMockProvider(), true)

	code, body := post(t, app, "/api/chat", `{"message":"What is my account balance?"}`)
	require.Equal(t, fiber.StatusOK, code)

	var res envelope[dto.ChatResponse]
	require.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, res.Success)
	assert.Equal(t, "billing_agent", res.Data.AgentUsed)
	assert.NotEmpty(t, res.Data.Message)
	assert.NotEmpty(t, res.Data.SessionID)
}

func TestChat_LongQuestionAccepted(t *testing.T) {
	app := newTestApp(t, mock.NewMockProvider(), mock.NewMockProvider(), true)

	question := strings.Repeat("why was I charged this fee ", 400)
	payload, err := json.Marshal(dto.ChatRequest{Message: question})
	require.NoError(t, err)

	code, body := post(t, app, "/api/chat", string(payload))
	require.Equal(t, fiber.StatusOK, code, string(body))

	var res envelope[dto.ChatResponse]
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "billing_agent", res.Data.AgentUsed)
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	routerLLM := llmtest.Returning("billing_agent")
	responder := llmtest.Returning("unused")
	app := newTestApp(t, routerLLM, responder, false)

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "chat empty", path: "/api/chat", body: `{"message":""}`},
		{name: "chat whitespace", path: "/api/chat", body: `{"message":"   "}`},
		{name: "stream empty", path: "/api/chat/stream", body: `{"message":""}`},
		{name: "malformed", path: "/api/chat", body: `{"message":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := post(t, app, tt.path, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, code)

			var res envelope[any]
			require.NoError(t, json.Unmarshal(body, &res))
			assert.False(t, res.Success)
		})
	}

	assert.Empty(t, routerLLM.Calls())
	assert.Empty(t, responder.Calls())
}

func TestChat_FailingBackend(t *testing.T) {
	failing := llmtest.Failing(errors.New("upstream unavailable"))
	app := newTestApp(t, failing, failing, false)

	t.Run("stream yields one error event", func(t *testing.T) {
		code, body := post(t, app, "/api/chat/stream", `{"message":"What is my balance?","session_id":"s-9"}`)
		require.Equal(t, fiber.StatusOK, code)

		events := readEvents(t, body)
		require.Len(t, events, 1)
		assert.True(t, events[0].Done)
		assert.Equal(t, "error", events[0].Agent)
		assert.Equal(t, "I apologize, but I encountered an error: upstream unavailable. Please try again.", events[0].Content)
	})

	t.Run("chat returns error agent", func(t *testing.T) {
		code, body := post(t, app, "/api/chat", `{"message":"What is my balance?"}`)
		require.Equal(t, fiber.StatusOK, code)

		var res envelope[dto.ChatResponse]
		require.NoError(t, json.Unmarshal(body, &res))
		assert.Equal(t, "error", res.Data.AgentUsed)
		assert.Contains(t, res.Data.Message, "upstream unavailable")
	})
}

func TestChat_Stream(t *testing.T) {
	app := newTestApp(t, llmtest.Returning("technical_agent"), llmtest.Returning("Open settings and tap update now please"), false)

	req := httptest.NewRequest("POST", "/api/chat/stream", strings.NewReader(`{"message":"App is stuck","session_id":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "abc", resp.Header.Get("X-Session-Id"))

	body, _ := io.ReadAll(resp.Body)
	events := readEvents(t, body)
	require.Len(t, events, 4)

	var text strings.Builder
	for _, ev := range events[:3] {
		assert.False(t, ev.Done)
		assert.Equal(t, "technical_agent", ev.Agent)
		text.WriteString(ev.Content)
	}
	assert.Equal(t, "Open settings and tap update now please", text.String())
	assert.Equal(t, stream.Event{Agent: "technical_agent", Done: true}, events[3])
}

func TestClearSessionCache(t *testing.T) {
	app := newTestApp(t, mock.NewMockProvider(), mock.NewMockProvider(), true)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/sessions/s-1/cache", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res envelope[dto.ClearSessionCacheResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "s-1", res.Data.SessionID)
	assert.True(t, res.Data.Cleared)
}

func TestDocuments_Ingest(t *testing.T) {
	app := newTestApp(t, mock.NewMockProvider(), mock.NewMockProvider(), true)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "accepted",
			body:     `{"collection":"billing_documents","source":"fees.txt","type":"billing","content":"Overdraft fee is $35."}`,
			wantCode: fiber.StatusAccepted,
		},
		{
			name:     "unknown collection",
			body:     `{"collection":"other","source":"fees.txt","content":"x"}`,
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "missing content",
			body:     `{"collection":"billing_documents","source":"fees.txt"}`,
			wantCode: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := post(t, app, "/api/documents", tt.body)
			assert.Equal(t, tt.wantCode, code)

			var res envelope[dto.IngestDocumentResponse]
			require.NoError(t, json.Unmarshal(body, &res))
			assert.Equal(t, tt.wantCode, res.Code)
			if tt.wantCode == fiber.StatusAccepted {
				assert.Equal(t, "billing_documents", res.Data.Collection)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		mockMode bool
		wantMode string
	}{
		{name: "api demo", path: "/api/health", mockMode: true, wantMode: "demo"},
		{name: "root live", path: "/health", mockMode: false, wantMode: "live"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, mock.NewMockProvider(), mock.NewMockProvider(), tt.mockMode)

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var res envelope[dto.HealthResponse]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
			assert.Equal(t, "healthy", res.Data.Status)
			assert.Equal(t, tt.wantMode, res.Data.Mode)
			assert.Equal(t, "mock", res.Data.AIProvider)
		})
	}
}

func TestInfoAndMetrics(t *testing.T) {
	app := newTestApp(t, mock.NewMockProvider(), mock.NewMockProvider(), true)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	var info dto.InfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, ServiceName, info.Service)
	assert.Equal(t, "running", info.Status)

	_, _ = post(t, app, "/api/chat", `{"message":"What fees do you charge?"}`)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `router_decisions_total{agent="billing_agent"} 1`)
}

func TestChatWebsocket_RequiresUpgrade(t *testing.T) {
	app := newTestApp(t, mock.NewMockProvider(), mock.NewMockProvider(), true)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/ws", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
