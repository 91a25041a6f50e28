package app

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

type SecretAccessor interface {
	AccessSecret(name string) (string, error)
	Close() error
}

type gsmSecretAccessor struct {
	client    *secretmanager.Client
	projectID string
}

func SecretVersionName(projectID string, name string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, name)
}

func (a *gsmSecretAccessor) AccessSecret(name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: SecretVersionName(a.projectID, name),
	}

	result, err := a.client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(result.Payload.Data)), nil
}

func (a *gsmSecretAccessor) Close() error {
	return a.client.Close()
}

func newGSMSecretAccessor(projectID string) (SecretAccessor, error) {
	client, err := secretmanager.NewClient(context.Background())
	if err != nil {
		return nil, err
	}
	return &gsmSecretAccessor{client: client, projectID: projectID}, nil
}

var newSecretAccessor = newGSMSecretAccessor

func readMnemonicFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.Mnemonic != "" {
		log.Debug("[GSM] Mnemonic already set, skipping Google Secret Manager")
		return
	}

	if Config.GoogleSecretManager.ProjectID == "" {
		log.Fatalf("[GSM] ProjectID is empty")
	}
	if Config.GoogleSecretManager.MnemonicSecretName == "" {
		log.Fatalf("[GSM] Mnemonic secret name is empty")
	}

	accessor, err := newSecretAccessor(Config.GoogleSecretManager.ProjectID)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer accessor.Close()

	log.Debug("[GSM] Reading mnemonic")
	Config.Mnemonic, err = accessor.AccessSecret(Config.GoogleSecretManager.MnemonicSecretName)
	if err != nil {
		log.Fatalf("[GSM] Failed to access mnemonic: %v", err)
	}
	log.Info("[GSM] Successfully read mnemonic")
}
