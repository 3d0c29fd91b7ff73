package repository

import (
	"context"
	"encoding/json"

	"nextops_proposals/internal/domain/pricing"
	"nextops_proposals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	pricingConfigItemID      = "pricing"
)

type pricingConfigItem struct {
	ID         string `dynamodbav:"id"`
	ConfigJSON string `dynamodbav:"config"`
}

// PricingConfigDynamoRepository stores the single pricing overlay document.
//
// Table requirements:
//   - PK: id (string); the overlay always lives under id "pricing".
//
// The overlay body is persisted as a JSON document so its shape can evolve
// without table migrations.

type PricingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// Get returns (nil, nil) when no overlay has been saved yet.
func (r *PricingConfigDynamoRepository) Get(ctx context.Context) (*pricing.Config, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: pricingConfigItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it pricingConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}

	var cfg pricing.Config
	if err := json.Unmarshal([]byte(it.ConfigJSON), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *PricingConfigDynamoRepository) Put(ctx context.Context, cfg pricing.Config) (pricing.Config, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return pricing.Config{}, err
	}

	av, err := attributevalue.MarshalMap(pricingConfigItem{
		ID:         pricingConfigItemID,
		ConfigJSON: string(b),
	})
	if err != nil {
		return pricing.Config{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return pricing.Config{}, err
	}
	return cfg, nil
}
