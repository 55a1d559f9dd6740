package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ParameterReader is the slice of the SSM API used to resolve secrets.
type ParameterReader interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewParameterReader builds an SSM client from the default AWS credential chain.
func NewParameterReader(ctx context.Context, region string) (*ssm.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(awsCfg), nil
}

// ResolveJWTSecret returns JWT_SECRET_KEY when set, otherwise the decrypted
// SSM parameter named by JWT_SECRET_SSM_PARAM. An empty result means neither is configured.
func ResolveJWTSecret(ctx context.Context, c map[string]string, reader ParameterReader) (string, error) {
	if secret := GetString(c, "JWT_SECRET_KEY", ""); secret != "" {
		return secret, nil
	}
	name := GetString(c, "JWT_SECRET_SSM_PARAM", "")
	if name == "" || reader == nil {
		return "", nil
	}
	out, err := reader.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("read ssm parameter %s: %w", name, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("ssm parameter %s is empty", name)
	}
	return aws.ToString(out.Parameter.Value), nil
}
