package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-videotube/internal/config"
	"github.com/sbilibin2017/gw-videotube/internal/jwt"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func testApp(t *testing.T) *app {
	t.Helper()
	os.Clearenv()
	cfg, err := config.Load("nonexistent.env")
	require.NoError(t, err)

	return &app{
		cfg: cfg,
		tokens: jwt.New(
			jwt.WithAccessSecret("access"),
			jwt.WithRefreshSecret("refresh"),
		),
	}
}

func TestRouter(t *testing.T) {
	router := newRouter(testApp(t))

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"healthcheck", http.MethodGet, "/api/v1/healthcheck", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"videos require token", http.MethodGet, "/api/v1/videos", http.StatusUnauthorized},
		{"current user requires token", http.MethodGet, "/api/v1/users/current-user", http.StatusUnauthorized},
		{"dashboard requires token", http.MethodGet, "/api/v1/dashboard/stats/abc", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	mongoReq := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: mongoReq, Started: true})
	require.NoError(t, err)
	defer mongoContainer.Terminate(ctx)

	mongoHost, _ := mongoContainer.Host(ctx)
	mongoPort, _ := mongoContainer.MappedPort(ctx, "27017")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := &config.Config{
		App: config.AppConfig{Host: "127.0.0.1", Port: "8086", LogLevel: "debug", CORSOrigins: []string{"*"}},
		Mongo: config.MongoConfig{
			URI:      fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort.Port()),
			Database: "videotube_test",
			Timeout:  10 * time.Second,
		},
		Redis: config.RedisConfig{Host: redisHost, Port: redisPort.Int(), PoolSize: 10, MinIdleConns: 2, StatsTTL: time.Minute},
		Kafka: config.KafkaConfig{Topic: "videotube.events"},
		JWT: config.JWTConfig{
			AccessSecret:  "access",
			AccessExpiry:  time.Hour,
			RefreshSecret: "refresh",
			RefreshExpiry: 24 * time.Hour,
		},
		Storage: config.StorageConfig{
			Backend:   "s3",
			Bucket:    "videotube",
			Region:    "us-east-1",
			Endpoint:  "http://127.0.0.1:9",
			AccessKey: "test",
			SecretKey: "test",
		},
		Upload: config.UploadConfig{TempDir: t.TempDir(), MaxBytes: 1 << 20},
		Limits: config.RateLimitConfig{Requests: 10, Window: time.Minute},
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
