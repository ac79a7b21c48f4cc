package bootstrap

import (
	"context"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
)

func InitSecretManager(ctx context.Context) (*secretmanager.Client, error) {
	return secretmanager.NewClient(ctx)
}
