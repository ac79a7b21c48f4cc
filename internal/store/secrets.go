package store

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Secrets path
// projects/{project}/secrets/{whatsapp-verify-token|whatsapp-api-token}/versions/latest

const (
	verifyTokenSecretID = "whatsapp-verify-token"
	apiTokenSecretID    = "whatsapp-api-token"
)

type channelSecretsStore struct {
	client    *secretmanager.Client
	projectID string
}

func NewChannelSecretsStore(client *secretmanager.Client, projectID string) *channelSecretsStore {
	return &channelSecretsStore{
		client:    client,
		projectID: projectID,
	}
}

func (s *channelSecretsStore) GetVerifyToken(ctx context.Context) (string, error) {
	return s.access(ctx, verifyTokenSecretID)
}

func (s *channelSecretsStore) GetAPIToken(ctx context.Context) (string, error) {
	return s.access(ctx, apiTokenSecretID)
}

func (s *channelSecretsStore) access(ctx context.Context, secretID string) (string, error) {
	res, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", s.projectID, secretID),
	})
	if err != nil {
		return "", err
	}
	return string(res.Payload.Data), nil
}
