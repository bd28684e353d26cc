package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLedgerTableName = "ledger_collections"

const (
	collectionInward    = "inward"
	collectionOutward   = "outward"
	collectionHardDisk  = "hardDisk"
	collectionOverrides = "overrides"
	collectionCounters  = "counters"
)

// collectionItem is the storage shape: one item per named collection, the
// whole collection serialized as JSON text in the data attribute.
type collectionItem struct {
	Name      string `dynamodbav:"name"`
	Data      string `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LedgerDynamoStore persists the ledger collections in DynamoDB.
//
// Table requirements:
//   - PK: name (string)
//
// A single PutItem makes each collection overwrite atomic, and
// TransactWriteItems makes the multi-collection commits (delivery, import,
// clear) all-or-nothing, so readers never observe a half-applied update.

type LedgerDynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILedgerStore = (*LedgerDynamoStore)(nil)

func NewLedgerDynamoStore(ddb *dynamodb.Client) *LedgerDynamoStore {
	return &LedgerDynamoStore{
		ddb:       ddb,
		tableName: getenvDefault("LEDGER_TABLE", defaultLedgerTableName),
	}
}

func (r *LedgerDynamoStore) ReadInward(ctx context.Context) ([]entities.InwardRecord, error) {
	return readCollection[entities.InwardRecord](ctx, r, collectionInward)
}

func (r *LedgerDynamoStore) ReadOutward(ctx context.Context) ([]entities.OutwardRecord, error) {
	return readCollection[entities.OutwardRecord](ctx, r, collectionOutward)
}

func (r *LedgerDynamoStore) ReadHardDisks(ctx context.Context) ([]entities.HardDiskRecord, error) {
	return readCollection[entities.HardDiskRecord](ctx, r, collectionHardDisk)
}

func (r *LedgerDynamoStore) ReadOverrides(ctx context.Context) ([]entities.StatusOverride, error) {
	return readCollection[entities.StatusOverride](ctx, r, collectionOverrides)
}

func (r *LedgerDynamoStore) ReadCounters(ctx context.Context) ([]entities.Counter, error) {
	return readCollection[entities.Counter](ctx, r, collectionCounters)
}

func (r *LedgerDynamoStore) WriteInward(ctx context.Context, records []entities.InwardRecord) error {
	return r.WriteBatch(ctx, entities.CollectionBatch{Inward: &records})
}

func (r *LedgerDynamoStore) WriteOutward(ctx context.Context, records []entities.OutwardRecord) error {
	return r.WriteBatch(ctx, entities.CollectionBatch{Outward: &records})
}

func (r *LedgerDynamoStore) WriteHardDisks(ctx context.Context, records []entities.HardDiskRecord) error {
	return r.WriteBatch(ctx, entities.CollectionBatch{HardDisks: &records})
}

func (r *LedgerDynamoStore) WriteOverrides(ctx context.Context, overrides []entities.StatusOverride) error {
	return r.WriteBatch(ctx, entities.CollectionBatch{Overrides: &overrides})
}

func (r *LedgerDynamoStore) WriteCounters(ctx context.Context, counters []entities.Counter) error {
	return r.WriteBatch(ctx, entities.CollectionBatch{Counters: &counters})
}

// WriteBatch commits every set collection in one transaction.
func (r *LedgerDynamoStore) WriteBatch(ctx context.Context, batch entities.CollectionBatch) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	var items []types.TransactWriteItem
	add := func(name, data string) error {
		av, err := attributevalue.MarshalMap(collectionItem{Name: name, Data: data, UpdatedAt: now})
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.tableName), Item: av},
		})
		return nil
	}

	if batch.Inward != nil {
		data, err := encodeCollection(*batch.Inward)
		if err != nil {
			return err
		}
		if err := add(collectionInward, data); err != nil {
			return err
		}
	}
	if batch.Outward != nil {
		data, err := encodeCollection(*batch.Outward)
		if err != nil {
			return err
		}
		if err := add(collectionOutward, data); err != nil {
			return err
		}
	}
	if batch.HardDisks != nil {
		data, err := encodeCollection(*batch.HardDisks)
		if err != nil {
			return err
		}
		if err := add(collectionHardDisk, data); err != nil {
			return err
		}
	}
	if batch.Overrides != nil {
		data, err := encodeCollection(*batch.Overrides)
		if err != nil {
			return err
		}
		if err := add(collectionOverrides, data); err != nil {
			return err
		}
	}
	if batch.Counters != nil {
		data, err := encodeCollection(*batch.Counters)
		if err != nil {
			return err
		}
		if err := add(collectionCounters, data); err != nil {
			return err
		}
	}

	if len(items) == 0 {
		return nil
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return fmt.Errorf("ledger store: write batch: %w", err)
	}
	return nil
}

// Clear deletes every collection in one transaction, resetting the store to
// its empty initial state.
func (r *LedgerDynamoStore) Clear(ctx context.Context) error {
	names := []string{collectionInward, collectionOutward, collectionHardDisk, collectionOverrides, collectionCounters}

	items := make([]types.TransactWriteItem, 0, len(names))
	for _, name := range names {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"name": &types.AttributeValueMemberS{Value: name},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return fmt.Errorf("ledger store: clear: %w", err)
	}
	return nil
}

// readCollection loads and decodes one named collection. Absent items and
// unparseable stored text both degrade to an empty collection; only a medium
// failure surfaces as an error.
func readCollection[T any](ctx context.Context, r *LedgerDynamoStore, name string) ([]T, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("ledger store: read %s: %w", name, err)
	}
	if len(out.Item) == 0 {
		return []T{}, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("ledger store: read %s: %w", name, err)
	}
	return decodeCollection[T](name, it.Data), nil
}

func decodeCollection[T any](name, data string) []T {
	var records []T
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		log.Printf("[ledger][store] collection %s holds unparseable data; treating as empty err=%v", name, err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

func encodeCollection[T any](records []T) (string, error) {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
