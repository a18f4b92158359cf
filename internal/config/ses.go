package config

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

type SESConfig struct {
	Region string
	Sender string
}

func DefaultSESConfig() *SESConfig {
	return &SESConfig{
		Region: getEnvWithDefault("AWS_SES_REGION", "us-east-1"),
		Sender: getEnvWithDefault("SES_SENDER_EMAIL", "nao-responda@oficinapro.com.br"),
	}
}

func (c *SESConfig) GetClient(ctx context.Context) (*sesv2.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Region))
	if err != nil {
		return nil, err
	}
	return sesv2.NewFromConfig(cfg), nil
}
