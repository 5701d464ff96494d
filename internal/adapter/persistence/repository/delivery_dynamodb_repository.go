package repository

import (
	"context"
	"sort"

	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDeliveriesTableName = "webhook_deliveries"
	deliveriesUserIDIndex      = "user_id-index"
)

// dynamoAPI is the part of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type deliveryItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	OutTradeNo string `dynamodbav:"out_trade_no,omitempty"`
	Decision   string `dynamodbav:"decision"`
	Reason     string `dynamodbav:"reason,omitempty"`
	Detail     string `dynamodbav:"detail,omitempty"`
	ReceivedAt string `dynamodbav:"received_at"`
}

// DeliveryDynamoRepository persists WebhookDelivery records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type DeliveryDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDeliveryRepository = (*DeliveryDynamoRepository)(nil)

func NewDeliveryDynamoRepository(ddb *dynamodb.Client, tableName string) *DeliveryDynamoRepository {
	return newDeliveryDynamoRepository(ddb, tableName)
}

func newDeliveryDynamoRepository(ddb dynamoAPI, tableName string) *DeliveryDynamoRepository {
	if tableName == "" {
		tableName = defaultDeliveriesTableName
	}
	return &DeliveryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DeliveryDynamoRepository) Record(ctx context.Context, d entities.WebhookDelivery) error {
	av, err := attributevalue.MarshalMap(toDeliveryItem(d))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// ListByUserID returns the deliveries of one bot, newest first.
func (r *DeliveryDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.WebhookDelivery, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(deliveriesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WebhookDelivery, 0, len(out.Items))
	for _, raw := range out.Items {
		var it deliveryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDeliveryItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ReceivedAt.After(items[j].ReceivedAt) })
	return items, nil
}

func toDeliveryItem(d entities.WebhookDelivery) deliveryItem {
	return deliveryItem{
		ID:         d.ID,
		UserID:     d.UserID,
		OutTradeNo: d.OutTradeNo,
		Decision:   string(d.Decision),
		Reason:     d.Reason,
		Detail:     d.Detail,
		ReceivedAt: formatTime(d.ReceivedAt),
	}
}

func fromDeliveryItem(it deliveryItem) entities.WebhookDelivery {
	return entities.WebhookDelivery{
		ID:         it.ID,
		UserID:     it.UserID,
		OutTradeNo: it.OutTradeNo,
		Decision:   entities.DeliveryDecision(it.Decision),
		Reason:     it.Reason,
		Detail:     it.Detail,
		ReceivedAt: parseTime(it.ReceivedAt),
	}
}
