package repository

import (
	"context"
	"errors"
	"time"

	"nextops_proposals/internal/domain/entities"
	"nextops_proposals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID          string `dynamodbav:"id"`
	Company     string `dynamodbav:"company"`
	ContactName string `dynamodbav:"contact_name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Employees   string `dynamodbav:"employees,omitempty"`
	Industry    string `dynamodbav:"industry,omitempty"`
	Message     string `dynamodbav:"message,omitempty"`
	Status      string `dynamodbav:"status"`
	Source      string `dynamodbav:"source"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	var leads []entities.Lead

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		var items []leadItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			leads = append(leads, fromLeadItem(it))
		}
	}
	return leads, nil
}

func (r *LeadDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:          l.ID,
		Company:     l.Company,
		ContactName: l.ContactName,
		Email:       l.Email,
		Phone:       l.Phone,
		Employees:   l.Employees,
		Industry:    l.Industry,
		Message:     l.Message,
		Status:      string(l.Status),
		Source:      l.Source,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Lead{
		ID:          it.ID,
		Company:     it.Company,
		ContactName: it.ContactName,
		Email:       it.Email,
		Phone:       it.Phone,
		Employees:   it.Employees,
		Industry:    it.Industry,
		Message:     it.Message,
		Status:      entities.LeadStatus(it.Status),
		Source:      it.Source,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
