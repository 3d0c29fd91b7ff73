package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nextops_proposals/internal/domain/entities"
	"nextops_proposals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

type proposalItem struct {
	ID           string   `dynamodbav:"id"`
	Title        string   `dynamodbav:"title"`
	Product      string   `dynamodbav:"product"`
	ProfileJSON  string   `dynamodbav:"company_profile"`
	Modules      []string `dynamodbav:"modules,omitempty"`
	PaymentTerms string   `dynamodbav:"payment_terms"`
	ItemsJSON    string   `dynamodbav:"items"`
	Total        float64  `dynamodbav:"total"`
	Sprints      int      `dynamodbav:"sprints"`
	Status       string   `dynamodbav:"status"`
	ValidUntil   string   `dynamodbav:"valid_until"`
	Notes        string   `dynamodbav:"notes,omitempty"`
	CheckoutURL  string   `dynamodbav:"checkout_url,omitempty"`
	CreatedBy    string   `dynamodbav:"created_by,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The company profile and item list are stored as JSON documents inside the
// item; they are snapshots owned by the proposal and never queried by field.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it, err := toProposalItem(p)
	if err != nil {
		return entities.Proposal{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	var proposals []entities.Proposal

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		var items []proposalItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			p, err := fromProposalItem(it)
			if err != nil {
				return nil, err
			}
			proposals = append(proposals, p)
		}
	}
	return proposals, nil
}

func (r *ProposalDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) SetCheckoutURLByID(ctx context.Context, id string, checkoutURL string) (entities.Proposal, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #checkout_url = :checkout_url, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":checkout_url": &types.AttributeValueMemberS{Value: checkoutURL},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#checkout_url": "checkout_url",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Proposal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func toProposalItem(p entities.Proposal) (proposalItem, error) {
	profileJSON, err := json.Marshal(p.Profile)
	if err != nil {
		return proposalItem{}, err
	}
	itemsJSON, err := json.Marshal(p.Items)
	if err != nil {
		return proposalItem{}, err
	}

	return proposalItem{
		ID:           p.ID,
		Title:        p.Title,
		Product:      p.Product,
		ProfileJSON:  string(profileJSON),
		Modules:      p.Modules,
		PaymentTerms: p.PaymentTerms,
		ItemsJSON:    string(itemsJSON),
		Total:        p.Total,
		Sprints:      p.Sprints,
		Status:       string(p.Status),
		ValidUntil:   p.ValidUntil.UTC().Format(time.RFC3339Nano),
		Notes:        p.Notes,
		CheckoutURL:  p.CheckoutURL,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromProposalItem(it proposalItem) (entities.Proposal, error) {
	var profile entities.CompanyProfile
	if it.ProfileJSON != "" {
		if err := json.Unmarshal([]byte(it.ProfileJSON), &profile); err != nil {
			return entities.Proposal{}, err
		}
	}
	var items []entities.ProposalItem
	if it.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.ItemsJSON), &items); err != nil {
			return entities.Proposal{}, err
		}
	}

	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Proposal{
		ID:           it.ID,
		Title:        it.Title,
		Product:      it.Product,
		Profile:      profile,
		Modules:      it.Modules,
		PaymentTerms: it.PaymentTerms,
		Items:        items,
		Total:        it.Total,
		Sprints:      it.Sprints,
		Status:       entities.ProposalStatus(it.Status),
		ValidUntil:   validUntil,
		Notes:        it.Notes,
		CheckoutURL:  it.CheckoutURL,
		CreatedBy:    it.CreatedBy,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
