package secrets

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// secretKeyField is the JSON field holding the API key when the secret
// value is a structured payload rather than a raw key string.
const secretKeyField = "OpenWeatherMapApiKey"

// SecretsAPI is the slice of the Secrets Manager client the resolver needs.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Resolver obtains the weather API key, preferring a Secrets Manager lookup
// and falling back to a plain environment value.
type Resolver struct {
	client      SecretsAPI
	secretName  string
	fallbackKey string
	log         *slog.Logger
}

// NewResolver creates a Resolver. secretName may be empty, in which case the
// secret lookup is skipped and only the fallback key is consulted. client may
// be nil when secretName is empty.
func NewResolver(client SecretsAPI, secretName, fallbackKey string, log *slog.Logger) *Resolver {
	return &Resolver{
		client:      client,
		secretName:  secretName,
		fallbackKey: fallbackKey,
		log:         log,
	}
}

// APIKey resolves the API key. An empty result with a nil error means no
// source yielded a value; the caller decides whether that is fatal.
func (r *Resolver) APIKey(ctx context.Context) (string, error) {
	if r.secretName == "" || r.client == nil {
		r.log.Info("no secret name configured, using environment variable")
		return r.fallbackKey, nil
	}

	r.log.Info("retrieving API key from secret", "secret", r.secretName)

	out, err := r.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(r.secretName),
	})
	if err != nil {
		r.log.Error("failed to retrieve API key from secrets manager", "secret", r.secretName, "err", err)
		return r.fallbackKey, nil
	}

	secret := aws.ToString(out.SecretString)

	// The secret could be a JSON payload or just the key itself.
	var payload map[string]string
	if err := json.Unmarshal([]byte(secret), &payload); err == nil {
		return payload[secretKeyField], nil
	}

	return secret, nil
}
