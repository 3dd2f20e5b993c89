package secrets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type fakeSecretsClient struct {
	value string
	err   error
	calls int
}

func (f *fakeSecretsClient) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.value)}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAPIKeyFromStructuredSecret(t *testing.T) {
	client := &fakeSecretsClient{value: `{"OpenWeatherMapApiKey": "from-secret"}`}
	r := NewResolver(client, "weather/api-key", "from-env", testLogger())

	key, err := r.APIKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "from-secret" {
		t.Fatalf("expected key from structured secret, got %q", key)
	}
	if client.calls != 1 {
		t.Fatalf("expected exactly one lookup, got %d", client.calls)
	}
}

func TestAPIKeyFromRawSecret(t *testing.T) {
	client := &fakeSecretsClient{value: "raw-key-value"}
	r := NewResolver(client, "weather/api-key", "from-env", testLogger())

	key, err := r.APIKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "raw-key-value" {
		t.Fatalf("expected the raw secret value, got %q", key)
	}
}

func TestAPIKeyLookupFailureFallsBack(t *testing.T) {
	client := &fakeSecretsClient{err: errors.New("access denied")}
	r := NewResolver(client, "weather/api-key", "from-env", testLogger())

	key, err := r.APIKey(context.Background())
	if err != nil {
		t.Fatalf("lookup failure should not be an error: %v", err)
	}
	if key != "from-env" {
		t.Fatalf("expected the environment fallback, got %q", key)
	}
}

func TestAPIKeyWithoutSecretName(t *testing.T) {
	client := &fakeSecretsClient{value: "never-used"}
	r := NewResolver(client, "", "from-env", testLogger())

	key, err := r.APIKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "from-env" {
		t.Fatalf("expected the environment fallback, got %q", key)
	}
	if client.calls != 0 {
		t.Fatalf("secret store must not be queried without a secret name")
	}
}

func TestAPIKeyAbsentEverywhere(t *testing.T) {
	r := NewResolver(nil, "", "", testLogger())

	key, err := r.APIKey(context.Background())
	if err != nil {
		t.Fatalf("absence is not an error: %v", err)
	}
	if key != "" {
		t.Fatalf("expected an empty key, got %q", key)
	}
}
